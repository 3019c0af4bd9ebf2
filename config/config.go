package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionCookieName  = "vidshare.session-token"
	defaultMaxPoolSize        = 10
	defaultOperationTimeout   = 5 * time.Second
	defaultProviderTimeout    = 10 * time.Second
	defaultUploadTokenTTL     = 30 * time.Minute
	defaultQRCodeSize         = 256

	// EnvLocal marks a developer machine.
	EnvLocal = "local"

	// DefaultOAuthStateTTL bounds how long a sign-in redirect may take.
	DefaultOAuthStateTTL = 10 * time.Minute

	// MinSessionSecretLength is the shortest HMAC secret accepted for signing sessions.
	MinSessionSecretLength = 32
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
		// PublicBaseURL is the externally visible origin, used for OAuth redirect URIs and share links.
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		Timeouts      struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Session SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	OAuth OAuthConfig `json:"oauth" yaml:"oauth"`

	// Redis backs the OAuth state store when configured; an in-process store is used otherwise.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// ImageKit holds the keys used to sign direct-to-CDN upload requests
	ImageKit *ImageKitConfig `json:"imagekit" yaml:"imagekit"`

	// PubSub configuration for video event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for video share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// StorageConfig bounds the shared connection pool and every storage call.
type StorageConfig struct {
	MaxPoolSize      int           `json:"maxPoolSize" yaml:"maxPoolSize"`
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
	AutoMigrate      bool          `json:"autoMigrate" yaml:"autoMigrate"`
}

// SessionConfig defines how session tokens are signed and carried.
type SessionConfig struct {
	Secret       string `json:"secret" yaml:"secret"`
	CookieName   string `json:"cookieName" yaml:"cookieName"`
	CookieDomain string `json:"cookieDomain" yaml:"cookieDomain"`
	Secure       bool   `json:"secure" yaml:"secure"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	ProviderTimeout time.Duration `json:"providerTimeout" yaml:"providerTimeout"`
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

// OAuthConfig lists the external identity providers. A provider without a client ID is disabled.
type OAuthConfig struct {
	StateTTL time.Duration        `json:"stateTtl" yaml:"stateTtl"`
	Google   *OAuthProviderConfig `json:"google" yaml:"google"`
	GitHub   *OAuthProviderConfig `json:"github" yaml:"github"`
}

type OAuthProviderConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	// RedirectURI overrides the default {publicBaseUrl}/api/auth/callback/{provider}
	RedirectURI string `json:"redirectUri" yaml:"redirectUri"`
	Scopes      string `json:"scopes" yaml:"scopes"`
	// APIBaseURL overrides the provider API origin (GitHub only), mainly for tests and GitHub Enterprise
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
}

// Enabled reports whether the provider has credentials configured.
func (c *OAuthProviderConfig) Enabled() bool {
	return c != nil && c.ClientID != ""
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// ImageKitConfig defines the credentials for ImageKit client-side uploads
type ImageKitConfig struct {
	PublicKey  string        `json:"publicKey" yaml:"publicKey"`
	PrivateKey string        `json:"privateKey" yaml:"privateKey"`
	TokenTTL   time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SESSION_COOKIENAME -> session.cookieName, aligned with the YAML key casing.
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional setting left empty by the file and environment.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage.MaxPoolSize <= 0 {
		c.Storage.MaxPoolSize = defaultMaxPoolSize
	}
	if c.Storage.OperationTimeout <= 0 {
		c.Storage.OperationTimeout = defaultOperationTimeout
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultSessionCookieName
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.ProviderTimeout <= 0 {
		c.Auth.ProviderTimeout = defaultProviderTimeout
	}
	if c.OAuth.StateTTL <= 0 {
		c.OAuth.StateTTL = DefaultOAuthStateTTL
	}
	if c.ImageKit != nil && c.ImageKit.TokenTTL <= 0 {
		c.ImageKit.TokenTTL = defaultUploadTokenTTL
	}
	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < MinSessionSecretLength {
		return errors.Errorf("session.secret must be at least %d bytes", MinSessionSecretLength)
	}
	if c.Postgres == nil {
		return errors.New("postgres configuration is required")
	}
	if (c.OAuth.Google.Enabled() || c.OAuth.GitHub.Enabled()) && c.HTTP.PublicBaseURL == "" {
		return errors.New("http.publicBaseUrl is required when an OAuth provider is enabled")
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
