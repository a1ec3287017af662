package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newMemoryConfig() *Config {
	cfg := &Config{}
	cfg.Storage.Driver = StorageDriverMemory
	cfg.Token.Secret = "test-secret"

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := newMemoryConfig()
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Token.Lifetime)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, 60*time.Second, cfg.OTP.CleanupInterval)
	assert.Equal(t, 10*time.Minute, cfg.OTP.ResetTicketTTL)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.OTP.TimeZone)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, MailProviderLog, cfg.Mail.Provider)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, 10*time.Second, cfg.GoogleOAuth.Timeout)
	assert.True(t, cfg.OTP.Reveal())

	ps := cfg.PasswordStrength
	assert.Equal(t, 8, ps.MinLength)
	assert.Equal(t, 72, ps.MaxLength)
	assert.True(t, ps.RequireUppercase)
	assert.True(t, ps.RequireLowercase)
	assert.True(t, ps.RequireNumbers)
	assert.False(t, ps.RequireSpecial)

	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_KeepsExplicitPolicy(t *testing.T) {
	cfg := newMemoryConfig()
	cfg.PasswordStrength = PasswordStrengthConfig{MinLength: 12, RequireSpecial: true, MaxLength: 200}
	cfg.applyDefaults()

	assert.Equal(t, 12, cfg.PasswordStrength.MinLength)
	assert.Equal(t, 72, cfg.PasswordStrength.MaxLength)
	assert.True(t, cfg.PasswordStrength.RequireSpecial)
	assert.False(t, cfg.PasswordStrength.RequireUppercase)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "missing secret",
			mutate: func(c *Config) { c.Token.Secret = "" },
			errMsg: "token.secret must be set",
		},
		{
			name:   "postgres driver without section",
			mutate: func(c *Config) { c.Storage.Driver = StorageDriverPostgres },
			errMsg: "postgres section is required",
		},
		{
			name:   "unknown driver",
			mutate: func(c *Config) { c.Storage.Driver = "sqlite" },
			errMsg: "unknown storage driver",
		},
		{
			name:   "postmark without token",
			mutate: func(c *Config) { c.Mail.Provider = MailProviderPostmark },
			errMsg: "postmarkServerToken",
		},
		{
			name:   "bad time zone",
			mutate: func(c *Config) { c.OTP.TimeZone = "Mars/Olympus" },
			errMsg: "otp.timeZone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newMemoryConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSigningKey(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0xff}

	key, err := TokenConfig{Secret: "base64:" + base64.StdEncoding.EncodeToString(raw)}.SigningKey()
	require.NoError(t, err)
	assert.Equal(t, raw, key)

	key, err = TokenConfig{Secret: "plain"}.SigningKey()
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), key)

	_, err = TokenConfig{Secret: "base64:%%%"}.SigningKey()
	assert.Error(t, err)
}

func TestOTPConfigReveal(t *testing.T) {
	hide := false
	assert.False(t, OTPConfig{RevealUnknownEmail: &hide}.Reveal())
	assert.True(t, OTPConfig{}.Reveal())
}
