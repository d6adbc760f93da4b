package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/streakfreeze/pkg/config"
	"github.com/umputun/streakfreeze/pkg/duolingo"
	"github.com/umputun/streakfreeze/pkg/notify"
	"github.com/umputun/streakfreeze/pkg/streak"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file"`
	Verbose bool   `short:"v" long:"verbose" description:"be more verbose"`
	Quiet   bool   `short:"q" long:"quiet" description:"run quietly, errors only"`

	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
	Version bool `short:"V" long:"version" description:"show version info"`
}

var revision = "unknown"

// log destinations, replaced in tests
var stdout, stderr io.Writer = os.Stdout, os.Stderr

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = `buy another "Streak on Ice" in Duolingo`
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if err := checkOpts(opts); err != nil {
		parser.WriteHelp(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts)
	log.Printf("[DEBUG] streakfreeze version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[WARN] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// checkOpts validates option combinations, called before any config loading
func checkOpts(opts Opts) error {
	if opts.Verbose && opts.Quiet {
		return errors.New("--verbose and --quiet can't be set at the same time")
	}
	if opts.Config == "" {
		return errors.New("configfile is required")
	}
	return nil
}

// run loads the config, logs in and performs a single workflow pass
func run(ctx context.Context, opts Opts) error {
	if err := checkOpts(opts); err != nil {
		return err
	}

	log.Printf("[DEBUG] config file: %s", opts.Config)
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// secrets are known only after config load
	logger := setupLog(opts, cfg.Secrets()...)

	client := duolingo.New(duolingo.Opts{
		BaseURL:      cfg.Remote.BaseURL,
		Username:     cfg.Account.Username,
		Password:     cfg.Account.Password,
		Timeout:      cfg.Remote.Timeout,
		ReadAttempts: cfg.Remote.ReadAttempts,
		UserAgent:    cfg.Remote.UserAgent,
		Logger:       logger,
	})
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	var notifier streak.Notifier
	if cfg.Email.Enabled() && cfg.Status.SendStatus {
		notifier = notify.NewEmail(notify.EmailParams{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			TLS:      cfg.Email.TLS,
			StartTLS: cfg.Email.StartTLS,
			Timeout:  cfg.Email.Timeout,
			From:     cfg.SenderAddress,
			To:       cfg.Email.To,
			Subject:  cfg.Email.Subject,
			Logger:   logger,
		})
	}

	wf := streak.New(client, notifier, streak.Params{
		BuyStreak:   cfg.Shop.BuyStreak,
		SendStatus:  cfg.Status.SendStatus,
		SendFriends: cfg.Status.SendFriends,
		ItemID:      cfg.Shop.ItemID,
		Language:    cfg.Shop.Language,
		Logger:      logger,
	})
	if err := wf.Run(ctx); err != nil {
		return fmt.Errorf("streak workflow for %s: %w", cfg.Account.Username, err)
	}
	return nil
}

// setupLog configures global and std loggers and returns a logger with the same options.
// Quiet mode drops everything but errors, verbose mode enables debug with caller info.
func setupLog(opts Opts, secs ...string) lgr.L {
	logOpts := []lgr.Option{lgr.LevelBraces, lgr.Out(stdout), lgr.Err(stderr)}
	switch {
	case opts.Verbose:
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.CallerFunc, lgr.StackTraceOnError)
	case opts.Quiet:
		logOpts = append(logOpts, lgr.Out(io.Discard))
	}

	color.NoColor = color.NoColor || opts.NoColor
	if !opts.NoColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
	return lgr.New(logOpts...)
}
