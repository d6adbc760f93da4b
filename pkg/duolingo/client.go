// Package duolingo implements a minimal client for the Duolingo web API: login, user data,
// daily xp progress and shop purchases.
package duolingo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// ErrAlreadyOwned returned by purchases when the account already has the item
var ErrAlreadyOwned = errors.New("item already owned")

// ErrLoginFailed returned when the service rejects credentials
var ErrLoginFailed = errors.New("login failed")

// ErrNotLoggedIn returned by calls made before a successful Login
var ErrNotLoggedIn = errors.New("not logged in")

// errClientStatus marks 4xx responses, those are not repeated
var errClientStatus = errors.New("client error status")

const alreadyHaveStoreItem = "ALREADY_HAVE_STORE_ITEM"

// Opts defines client parameters
type Opts struct {
	BaseURL      string
	Username     string
	Password     string
	Timeout      time.Duration
	ReadAttempts int    // attempts for read-only calls, purchases are sent once
	UserAgent    string
	Logger       lgr.L
}

// Client talks to the Duolingo web API on behalf of a single account
type Client struct {
	opts   Opts
	client *http.Client
	logger lgr.L
	now    func() time.Time

	jwt    string
	userID int64
}

// New makes a client, Login must be called before any other method
func New(opts Opts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://www.duolingo.com"
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.ReadAttempts < 1 {
		opts.ReadAttempts = 1
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; streakfreeze/1.0)"
	}
	if opts.Logger == nil {
		opts.Logger = lgr.Default()
	}

	jar, _ := cookiejar.New(nil) // never fails with nil options
	return &Client{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout, Jar: jar},
		logger: opts.Logger,
		now:    time.Now,
	}
}

// Login authenticates the account and resolves its user id
func (c *Client) Login(ctx context.Context) error {
	body := map[string]string{"login": c.opts.Username, "password": c.opts.Password}
	resp, err := c.send(ctx, http.MethodPost, "/login", body)
	if err != nil {
		return fmt.Errorf("login %s: %w", c.opts.Username, err)
	}
	defer resp.Body.Close()

	var res struct {
		Response string `json:"response"`
		Failure  string `json:"failure"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		if resp.StatusCode != http.StatusOK {
			// error pages are not always json
			return fmt.Errorf("%w for %s: status %d", ErrLoginFailed, c.opts.Username, resp.StatusCode)
		}
		return fmt.Errorf("login %s: decode response: %w", c.opts.Username, err)
	}
	if resp.StatusCode != http.StatusOK || res.Response != "OK" {
		reason := res.Failure
		if reason == "" {
			reason = res.Message
		}
		return fmt.Errorf("%w for %s: status %d %s", ErrLoginFailed, c.opts.Username, resp.StatusCode, reason)
	}

	c.jwt = resp.Header.Get("jwt")

	user, err := c.userData(ctx)
	if err != nil {
		return fmt.Errorf("login %s: %w", c.opts.Username, err)
	}
	c.userID = user.ID
	c.logger.Logf("[DEBUG] logged in as %s, id %d", user.Username, user.ID)
	return nil
}

// getJSON performs a read-only request and decodes the response into dest.
// Server side and network errors are repeated up to ReadAttempts times.
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	rpt := repeater.NewBackoff(c.opts.ReadAttempts, 250*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := rpt.Do(ctx, func() error {
		resp, err := c.send(ctx, http.MethodGet, path, nil)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("%w: status %d for %s", errClientStatus, resp.StatusCode, path)
		}
		if resp.StatusCode != http.StatusOK {
			c.logger.Logf("[DEBUG] unexpected status %d for %s", resp.StatusCode, path)
			return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
		}
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	}, errClientStatus)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

// send makes a request with auth headers, body is marshaled to JSON if not nil
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.jwt != "" {
		req.Header.Set("Authorization", "Bearer "+c.jwt)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
