package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/email"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/streakfreeze/pkg/streak"
)

// EmailParams defines SMTP delivery of the status report
type EmailParams struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      bool
	StartTLS bool
	Timeout  time.Duration
	From     string
	To       []string
	Subject  string
	Logger   lgr.L
}

// sender is the part of email.Sender used here
type sender interface {
	Send(text string, params email.Params) error
}

// Email sends the status report as a plain text message
type Email struct {
	EmailParams
	sender sender
}

// NewEmail makes an email notifier
func NewEmail(params EmailParams) *Email {
	if params.Logger == nil {
		params.Logger = lgr.Default()
	}
	opts := []email.Option{
		email.Port(params.Port),
		email.TLS(params.TLS),
		email.STARTTLS(params.StartTLS),
		email.TimeOut(params.Timeout),
		email.ContentType("text/plain"),
	}
	if params.Username != "" {
		opts = append(opts, email.Auth(params.Username, params.Password))
	}
	return &Email{EmailParams: params, sender: email.NewSender(params.Host, opts...)}
}

// Send delivers the report to all recipients
func (e *Email) Send(ctx context.Context, r streak.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := e.body(r)
	params := email.Params{From: e.From, To: e.To, Subject: e.Subject}
	if err := e.sender.Send(body, params); err != nil {
		return fmt.Errorf("send status email to %s: %w", strings.Join(e.To, ","), err)
	}
	e.Logger.Logf("[DEBUG] status email sent to %s", strings.Join(e.To, ","))
	return nil
}

func (e *Email) body(r streak.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Streak status for %s\n\n", r.Username)
	for _, line := range r.Lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nrun: %s\n", r.RunID)
	return sb.String()
}
