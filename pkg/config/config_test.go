package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
account:
  username: learner
  password: secret-pass
sender_address: learner@example.com
status:
  send_status: true
  send_friends: false
shop:
  buy_streak: true
`

func writeConfig(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "streak.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), perm))
	require.NoError(t, os.Chmod(configPath, perm)) // umask may strip bits on write
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig, 0o600))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "learner", cfg.Account.Username)
		assert.Equal(t, "secret-pass", cfg.Account.Password)
		assert.Equal(t, "learner@example.com", cfg.SenderAddress)
		assert.True(t, cfg.Status.SendStatus)
		assert.False(t, cfg.Status.SendFriends)
		assert.True(t, cfg.Shop.BuyStreak)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig, 0o600))
		require.NoError(t, err)

		assert.Equal(t, "streak_freeze", cfg.Shop.ItemID)
		assert.Equal(t, "en", cfg.Shop.Language)
		assert.Equal(t, "https://www.duolingo.com", cfg.Remote.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, 1, cfg.Remote.ReadAttempts)
		assert.Equal(t, 25, cfg.Email.SMTPPort)
		assert.Equal(t, []string{"learner@example.com"}, cfg.Email.To)
		assert.Equal(t, "streak status for learner", cfg.Email.Subject)
		assert.False(t, cfg.Email.Enabled())
	})

	t.Run("optional sections", func(t *testing.T) {
		content := validConfig + `
email:
  smtp_host: smtp.example.com
  smtp_port: 587
  starttls: true
  to: [ops@example.com]
remote:
  base_url: http://localhost:9999/
  timeout: 5s
  read_attempts: 3
`
		cfg, err := Load(writeConfig(t, content, 0o600))
		require.NoError(t, err)

		assert.True(t, cfg.Email.Enabled())
		assert.Equal(t, 587, cfg.Email.SMTPPort)
		assert.True(t, cfg.Email.StartTLS)
		assert.Equal(t, []string{"ops@example.com"}, cfg.Email.To)
		assert.Equal(t, "http://localhost:9999", cfg.Remote.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, 3, cfg.Remote.ReadAttempts)
	})

	t.Run("password from env", func(t *testing.T) {
		t.Setenv("STREAK_TEST_PASSWORD", "from-env")
		content := `
account:
  username: learner
  password: ${STREAK_TEST_PASSWORD}
sender_address: learner@example.com
status: {send_status: false, send_friends: false}
shop: {buy_streak: false}
`
		cfg, err := Load(writeConfig(t, content, 0o600))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Account.Password)
	})

	t.Run("escaped dollar in password", func(t *testing.T) {
		t.Setenv("w", "unexpected")
		content := `
account:
  username: learner
  password: pa$$w
sender_address: learner@example.com
status: {send_status: false, send_friends: false}
shop: {buy_streak: false}
`
		cfg, err := Load(writeConfig(t, content, 0o600))
		require.NoError(t, err)
		assert.Equal(t, "pa$w", cfg.Account.Password)
	})

	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.ErrorIs(t, err, ErrNoConfig)
		assert.Nil(t, cfg)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("directory instead of file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0o700))
		cfg, err := Load(dir)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "is not a file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "invalid: yaml: content: [", 0o600))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid sender address", func(t *testing.T) {
		content := `
account: {username: learner, password: pass}
sender_address: not an address
status: {send_status: false, send_friends: false}
shop: {buy_streak: false}
`
		_, err := Load(writeConfig(t, content, 0o600))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate config")
		assert.Contains(t, err.Error(), "sender_address")
	})

	t.Run("empty password", func(t *testing.T) {
		content := `
account: {username: learner, password: ""}
sender_address: learner@example.com
status: {send_status: false, send_friends: false}
shop: {buy_streak: false}
`
		_, err := Load(writeConfig(t, content, 0o600))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account.password must not be empty")
	})

	t.Run("tls and starttls together", func(t *testing.T) {
		content := validConfig + `
email: {smtp_host: smtp.example.com, tls: true, starttls: true}
`
		_, err := Load(writeConfig(t, content, 0o600))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't be set at the same time")
	})
}

func TestLoad_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		perm    os.FileMode
		wantErr bool
	}{
		{name: "owner only", perm: 0o600},
		{name: "owner read only", perm: 0o400},
		{name: "group writable only", perm: 0o620},
		{name: "group readable", perm: 0o640, wantErr: true},
		{name: "world readable", perm: 0o604, wantErr: true},
		{name: "everyone", perm: 0o644, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, validConfig, tt.perm))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInsecurePermissions)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}

	t.Run("rejected even when content is broken", func(t *testing.T) {
		_, err := Load(writeConfig(t, "invalid: yaml: content: [", 0o644))
		require.ErrorIs(t, err, ErrInsecurePermissions)
	})
}

func TestLoad_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing []string
	}{
		{
			name: "no password",
			content: `
account: {username: learner}
sender_address: learner@example.com
status: {send_status: true, send_friends: false}
shop: {buy_streak: true}
`,
			missing: []string{"account/password"},
		},
		{
			name: "no account section",
			content: `
sender_address: learner@example.com
status: {send_status: true, send_friends: false}
shop: {buy_streak: true}
`,
			missing: []string{"account", "account/username", "account/password"},
		},
		{
			name: "several leaves",
			content: `
account: {username: learner, password: pass}
status: {send_status: true}
shop: {}
`,
			missing: []string{"sender_address", "status/send_friends", "shop/buy_streak"},
		},
		{
			name:    "empty document",
			content: "# nothing here\n",
			missing: []string{"account", "account/username", "account/password", "sender_address",
				"status", "status/send_status", "status/send_friends", "shop", "shop/buy_streak"},
		},
		{
			name: "section is not a mapping",
			content: `
account: {username: learner, password: pass}
sender_address: learner@example.com
status: true
shop: {buy_streak: true}
`,
			missing: []string{"status/send_status", "status/send_friends"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content, 0o600))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "verify config")

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			require.Len(t, merr.Errors, len(tt.missing))
			for i, key := range tt.missing {
				assert.Equal(t, "missing '"+key+"' in config file", merr.Errors[i].Error())
			}
		})
	}
}

func TestConfig_Secrets(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.Secrets())

	cfg.Account.Password = "pass1"
	cfg.Email.Password = "pass2"
	assert.Equal(t, []string{"pass1", "pass2"}, cfg.Secrets())
}
