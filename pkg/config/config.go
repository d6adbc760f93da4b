package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// ErrInsecurePermissions returned when the config file is readable by group or others.
// The file holds a plaintext password.
var ErrInsecurePermissions = errors.New("config must not be group or world readable")

// ErrNoConfig returned when no config path was given
var ErrNoConfig = errors.New("config file is required")

const insecureBits = 0o044 // group and other read

// Config holds the application configuration
type Config struct {
	Account       AccountConfig `yaml:"account" json:"account" jsonschema:"description=Account credentials"`
	SenderAddress string        `yaml:"sender_address" json:"sender_address" jsonschema:"description=From address for status emails"`
	Status        StatusConfig  `yaml:"status" json:"status" jsonschema:"description=Status reporting"`
	Shop          ShopConfig    `yaml:"shop" json:"shop" jsonschema:"description=Shop purchases"`
	Email         EmailConfig   `yaml:"email" json:"email,omitempty" jsonschema:"description=SMTP delivery of the status report (optional)"`
	Remote        RemoteConfig  `yaml:"remote" json:"remote,omitempty" jsonschema:"description=Remote service access (optional)"`
}

// AccountConfig holds login credentials
type AccountConfig struct {
	Username string `yaml:"username" json:"username" jsonschema:"description=Account user name"`
	Password string `yaml:"password" json:"password" jsonschema:"description=Account password (can use environment variable)"`
}

// StatusConfig controls the status report
type StatusConfig struct {
	SendStatus  bool `yaml:"send_status" json:"send_status" jsonschema:"description=Report streak status after the shop step"`
	SendFriends bool `yaml:"send_friends" json:"send_friends" jsonschema:"description=Report friends status (not supported by the service right now)"`
}

// ShopConfig controls purchases
type ShopConfig struct {
	BuyStreak bool   `yaml:"buy_streak" json:"buy_streak" jsonschema:"description=Buy streak freeze when below the cap"`
	ItemID    string `yaml:"item_id" json:"item_id,omitempty" jsonschema:"default=streak_freeze,description=Shop item id for the generic purchase"`
	Language  string `yaml:"language" json:"language,omitempty" jsonschema:"default=en,description=Learning language for the generic purchase"`
}

// EmailConfig holds SMTP settings, delivery is enabled when SMTPHost is set
type EmailConfig struct {
	SMTPHost string        `yaml:"smtp_host" json:"smtp_host,omitempty" jsonschema:"description=SMTP server host"`
	SMTPPort int           `yaml:"smtp_port" json:"smtp_port,omitempty" jsonschema:"default=25,description=SMTP server port"`
	Username string        `yaml:"username" json:"username,omitempty" jsonschema:"description=SMTP user name"`
	Password string        `yaml:"password" json:"password,omitempty" jsonschema:"description=SMTP password"`
	TLS      bool          `yaml:"tls" json:"tls,omitempty" jsonschema:"default=false,description=Use TLS connection"`
	StartTLS bool          `yaml:"starttls" json:"starttls,omitempty" jsonschema:"default=false,description=Use STARTTLS"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout,omitempty" jsonschema:"description=SMTP timeout (30s if empty)"`
	To       []string      `yaml:"to" json:"to,omitempty" jsonschema:"description=Recipients (sender_address if empty)"`
	Subject  string        `yaml:"subject" json:"subject,omitempty" jsonschema:"description=Email subject"`
}

// RemoteConfig holds remote service access settings
type RemoteConfig struct {
	BaseURL      string        `yaml:"base_url" json:"base_url,omitempty" jsonschema:"default=https://www.duolingo.com,description=Service base URL"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout,omitempty" jsonschema:"description=HTTP request timeout (30s if empty)"`
	ReadAttempts int           `yaml:"read_attempts" json:"read_attempts,omitempty" jsonschema:"default=1,minimum=1,description=Attempts for read-only calls (purchases are never repeated)"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent,omitempty" jsonschema:"description=User agent for HTTP requests"`
}

// Load reads configuration from a YAML file.
// The file must not be readable by group or others, and all required keys must be present.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrNoConfig
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("read config file: %s is not a file", path)
	}
	if perm := fi.Mode().Perm(); perm&insecureBits != 0 {
		return nil, fmt.Errorf("%w: %s has mode %04o", ErrInsecurePermissions, path, perm)
	}

	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := []byte(expandEnv(string(data)))

	var raw map[string]any
	if err := yaml.Unmarshal(expanded, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := verifyRequired(raw); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// expandEnv replaces $VAR and ${VAR} with environment values, $$ stays as a literal $
func expandEnv(s string) string {
	return os.Expand(s, func(name string) string {
		if name == "$" {
			return "$"
		}
		return os.Getenv(name)
	})
}

func (c *Config) setDefaults() {
	if c.Shop.ItemID == "" {
		c.Shop.ItemID = "streak_freeze"
	}
	if c.Shop.Language == "" {
		c.Shop.Language = "en"
	}

	if c.Remote.BaseURL == "" {
		c.Remote.BaseURL = "https://www.duolingo.com"
	}
	c.Remote.BaseURL = strings.TrimSuffix(c.Remote.BaseURL, "/")
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 30 * time.Second
	}
	if c.Remote.ReadAttempts == 0 {
		c.Remote.ReadAttempts = 1
	}

	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 25
	}
	if c.Email.Timeout == 0 {
		c.Email.Timeout = 30 * time.Second
	}
	if len(c.Email.To) == 0 && c.SenderAddress != "" {
		c.Email.To = []string{c.SenderAddress}
	}
	if c.Email.Subject == "" {
		c.Email.Subject = "streak status for " + c.Account.Username
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Account.Username) == "" {
		return errors.New("account.username must not be empty")
	}
	if cfg.Account.Password == "" {
		return errors.New("account.password must not be empty")
	}
	if _, err := mail.ParseAddress(cfg.SenderAddress); err != nil {
		return fmt.Errorf("sender_address %q is invalid: %w", cfg.SenderAddress, err)
	}

	if cfg.Remote.Timeout < 0 {
		return errors.New("remote.timeout must be non-negative")
	}
	if cfg.Remote.ReadAttempts < 1 {
		return errors.New("remote.read_attempts must be at least 1")
	}

	if cfg.Email.Enabled() {
		if cfg.Email.SMTPPort < 1 || cfg.Email.SMTPPort > 65535 {
			return fmt.Errorf("email.smtp_port %d is out of range", cfg.Email.SMTPPort)
		}
		if cfg.Email.TLS && cfg.Email.StartTLS {
			return errors.New("email.tls and email.starttls can't be set at the same time")
		}
		for _, to := range cfg.Email.To {
			if _, err := mail.ParseAddress(to); err != nil {
				return fmt.Errorf("email.to %q is invalid: %w", to, err)
			}
		}
	}

	return nil
}

// Enabled reports whether email delivery is configured
func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

// Secrets returns values which should be masked in logs
func (c *Config) Secrets() []string {
	res := []string{}
	if c.Account.Password != "" {
		res = append(res, c.Account.Password)
	}
	if c.Email.Password != "" {
		res = append(res, c.Email.Password)
	}
	return res
}
