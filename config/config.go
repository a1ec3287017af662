package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	// Embedded zone database so otp.timeZone resolves in minimal images.
	_ "time/tzdata"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	MailProviderPostmark = "postmark"
	MailProviderLog      = "log"

	defaultTokenLifetime   = 24 * time.Hour
	defaultTokenIssuer     = "todo"
	defaultOtpTTL          = 5 * time.Minute
	DefaultOTPCleanupInterval = 60 * time.Second
	defaultResetTicketTTL  = 10 * time.Minute
	defaultOtpTimeZone     = "Asia/Ho_Chi_Minh"
	defaultOutboundTimeout = 10 * time.Second
	defaultMinPasswordLen  = 8
	// bcrypt ignores input past 72 bytes.
	defaultMaxPasswordLen = 72
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	CORS CORSConfig `json:"cors" yaml:"cors"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Token TokenConfig `json:"token" yaml:"token"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	GoogleOAuth GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	OTP OTPConfig `json:"otp" yaml:"otp"`

	Mail MailConfig `json:"mail" yaml:"mail"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// StorageConfig selects the repository implementation.
type StorageConfig struct {
	// Driver is "postgres" or "memory".
	Driver string `json:"driver" yaml:"driver"`
}

// TokenConfig configures bearer token signing.
type TokenConfig struct {
	// Secret is the HS256 key. Prefix with "base64:" to supply encoded bytes.
	Secret   string        `json:"secret" yaml:"secret"`
	Lifetime time.Duration `json:"lifetime" yaml:"lifetime"`
	Issuer   string        `json:"issuer" yaml:"issuer"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type GoogleOAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	// DefaultRedirectURI is used when a code arrives without one.
	DefaultRedirectURI string `json:"defaultRedirectUri" yaml:"defaultRedirectUri"`
	// AllowedRedirectURIs restricts the redirect URIs clients may send. Empty allows any.
	AllowedRedirectURIs  []string      `json:"allowedRedirectUris" yaml:"allowedRedirectUris"`
	Scopes               []string      `json:"scopes" yaml:"scopes"`
	AllowUnverifiedEmail bool          `json:"allowUnverifiedEmail" yaml:"allowUnverifiedEmail"`
	Timeout              time.Duration `json:"timeout" yaml:"timeout"`
	// TokenURL overrides the provider token endpoint. Tests and emulators only.
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`
}

// OTPConfig drives the password reset flow and its cleanup sweep.
type OTPConfig struct {
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
	// TimeZone is used when the sweep logs its clock.
	TimeZone       string        `json:"timeZone" yaml:"timeZone"`
	ResetTicketTTL time.Duration `json:"resetTicketTtl" yaml:"resetTicketTtl"`
	// RevealUnknownEmail makes a reset request for an unknown email fail with
	// EMAIL_NOT_FOUND. When false the request silently succeeds.
	RevealUnknownEmail *bool `json:"revealUnknownEmail" yaml:"revealUnknownEmail"`
}

// MailConfig selects and configures outbound mail.
type MailConfig struct {
	// Provider is "postmark" or "log".
	Provider             string        `json:"provider" yaml:"provider"`
	PostmarkServerToken  string        `json:"postmarkServerToken" yaml:"postmarkServerToken"`
	PostmarkAccountToken string        `json:"postmarkAccountToken" yaml:"postmarkAccountToken"`
	SenderEmail          string        `json:"senderEmail" yaml:"senderEmail"`
	SupportEmail         string        `json:"supportEmail" yaml:"supportEmail"`
	Timeout              time.Duration `json:"timeout" yaml:"timeout"`
}

// Reveal reports whether unknown emails are disclosed by reset requests.
func (c OTPConfig) Reveal() bool {
	return c.RevealUnknownEmail == nil || *c.RevealUnknownEmail
}

// SigningKey decodes Token.Secret.
func (c TokenConfig) SigningKey() ([]byte, error) {
	if encoded, ok := strings.CutPrefix(c.Secret, "base64:"); ok {
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, errors.Wrap(err, "decode token secret")
		}

		return key, nil
	}

	return []byte(c.Secret), nil
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}
	if c.Token.Lifetime <= 0 {
		c.Token.Lifetime = defaultTokenLifetime
	}
	if c.Token.Issuer == "" {
		c.Token.Issuer = defaultTokenIssuer
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = bcrypt.DefaultCost
	}

	ps := &c.PasswordStrength
	if ps.MinLength == 0 && ps.MaxLength == 0 && !ps.RequireUppercase && !ps.RequireLowercase && !ps.RequireNumbers && !ps.RequireSpecial {
		ps.RequireUppercase = true
		ps.RequireLowercase = true
		ps.RequireNumbers = true
	}
	if ps.MinLength == 0 {
		ps.MinLength = defaultMinPasswordLen
	}
	if ps.MaxLength == 0 || ps.MaxLength > defaultMaxPasswordLen {
		ps.MaxLength = defaultMaxPasswordLen
	}

	if c.GoogleOAuth.Timeout <= 0 {
		c.GoogleOAuth.Timeout = defaultOutboundTimeout
	}
	if len(c.GoogleOAuth.Scopes) == 0 {
		c.GoogleOAuth.Scopes = []string{"openid", "email", "profile"}
	}

	if c.OTP.TTL <= 0 {
		c.OTP.TTL = defaultOtpTTL
	}
	if c.OTP.CleanupInterval <= 0 {
		c.OTP.CleanupInterval = DefaultOTPCleanupInterval
	}
	if c.OTP.ResetTicketTTL <= 0 {
		c.OTP.ResetTicketTTL = defaultResetTicketTTL
	}
	if c.OTP.TimeZone == "" {
		c.OTP.TimeZone = defaultOtpTimeZone
	}

	if c.Mail.Provider == "" {
		c.Mail.Provider = MailProviderLog
	}
	if c.Mail.Timeout <= 0 {
		c.Mail.Timeout = defaultOutboundTimeout
	}
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	key, err := c.Token.SigningKey()
	if err != nil {
		return err
	}
	if len(key) == 0 {
		return errors.New("token.secret must be set")
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres storage driver")
		}
	case StorageDriverMemory:
	default:
		return errors.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	switch c.Mail.Provider {
	case MailProviderPostmark:
		if c.Mail.PostmarkServerToken == "" || c.Mail.SenderEmail == "" {
			return errors.New("mail.postmarkServerToken and mail.senderEmail are required for postmark")
		}
	case MailProviderLog:
	default:
		return errors.Errorf("unknown mail provider: %s", c.Mail.Provider)
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return errors.Errorf("auth.bcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.PasswordStrength.MinLength > c.PasswordStrength.MaxLength {
		return errors.New("passwordStrength.minLength exceeds maxLength")
	}

	if _, err := time.LoadLocation(c.OTP.TimeZone); err != nil {
		return errors.Wrapf(err, "otp.timeZone %q", c.OTP.TimeZone)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
