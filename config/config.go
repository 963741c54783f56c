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
	defaultPath                = "."
	defaultMaxRequestBodySize  = "100KB"
	defaultCurrency            = "IDR"
	defaultMinimumContribution = 10000
	defaultFontSize            = 28
	defaultMinFontSize         = 16
	defaultMaxFontSize         = 56
	defaultAccessTokenTTL      = 15 * time.Minute
	defaultBreakerTimeout      = 30 * time.Second
	defaultBreakerFailures     = 5
	defaultReferencePrefix     = "INFAQ-"
	defaultReferenceLength     = 12
	defaultReferenceAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Infaq configures the unlock dialog and its minimum contribution
	Infaq *InfaqConfig `json:"infaq" yaml:"infaq"`

	// DisplaySettings holds the default rendering preferences for lesson content
	DisplaySettings *DisplayConfig `json:"displaySettings" yaml:"displaySettings"`

	// Breaker guards entitlement store calls
	Breaker *BreakerConfig `json:"breaker" yaml:"breaker"`

	// Reference configures generated entitlement references
	Reference *ReferenceConfig `json:"reference" yaml:"reference"`

	// QRCode configuration for infaq receipt QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

// DatabaseConfig controls schema management on startup
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Statements slower than this are logged as warnings (0 keeps the 200ms default)
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// SecretKeyConfig holds token signing secrets
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	Issuer         string        `json:"issuer" yaml:"issuer"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// InfaqConfig defines contribution settings for unlocking courses
type InfaqConfig struct {
	Currency string `json:"currency" yaml:"currency"`

	// Used when a course does not set its own minimum
	MinimumContribution int64 `json:"minimumContribution" yaml:"minimumContribution"`

	// Ordered preset amounts shown in the unlock dialog
	Presets []PresetConfig `json:"presets" yaml:"presets"`
}

// PresetConfig is one labelled preset amount
type PresetConfig struct {
	Label  string `json:"label" yaml:"label"`
	Amount int64  `json:"amount" yaml:"amount"`
}

// DisplayConfig defines default display settings for Arabic content
type DisplayConfig struct {
	FontSize            int  `json:"fontSize" yaml:"fontSize"`
	MinFontSize         int  `json:"minFontSize" yaml:"minFontSize"`
	MaxFontSize         int  `json:"maxFontSize" yaml:"maxFontSize"`
	ShowTranslation     bool `json:"showTranslation" yaml:"showTranslation"`
	ShowTransliteration bool `json:"showTransliteration" yaml:"showTransliteration"`
}

// BreakerConfig defines circuit breaker settings for the entitlement store
type BreakerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Requests allowed through while half-open
	MaxRequests uint32 `json:"maxRequests" yaml:"maxRequests"`

	// Cyclic period of the closed state for clearing counts (0 never clears)
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Time spent open before probing again
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	ConsecutiveFailures uint32 `json:"consecutiveFailures" yaml:"consecutiveFailures"`
}

// ReferenceConfig defines the shape of generated entitlement references
type ReferenceConfig struct {
	Prefix   string `json:"prefix" yaml:"prefix"`
	Length   int    `json:"length" yaml:"length"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = cfg.Env.ServiceName
	}

	if cfg.Infaq == nil {
		cfg.Infaq = &InfaqConfig{}
	}
	if cfg.Infaq.Currency == "" {
		cfg.Infaq.Currency = defaultCurrency
	}
	if cfg.Infaq.MinimumContribution <= 0 {
		cfg.Infaq.MinimumContribution = defaultMinimumContribution
	}
	if len(cfg.Infaq.Presets) == 0 {
		cfg.Infaq.Presets = []PresetConfig{
			{Label: "Rp 10.000", Amount: 10000},
			{Label: "Rp 25.000", Amount: 25000},
			{Label: "Rp 50.000", Amount: 50000},
			{Label: "Rp 100.000", Amount: 100000},
		}
	}

	if cfg.DisplaySettings == nil {
		cfg.DisplaySettings = &DisplayConfig{ShowTranslation: true, ShowTransliteration: true}
	}
	if cfg.DisplaySettings.MinFontSize <= 0 {
		cfg.DisplaySettings.MinFontSize = defaultMinFontSize
	}
	if cfg.DisplaySettings.MaxFontSize < cfg.DisplaySettings.MinFontSize {
		cfg.DisplaySettings.MaxFontSize = defaultMaxFontSize
	}
	if cfg.DisplaySettings.FontSize <= 0 {
		cfg.DisplaySettings.FontSize = defaultFontSize
	}

	if cfg.Breaker == nil {
		cfg.Breaker = &BreakerConfig{Enabled: true}
	}
	if cfg.Breaker.Timeout <= 0 {
		cfg.Breaker.Timeout = defaultBreakerTimeout
	}
	if cfg.Breaker.ConsecutiveFailures == 0 {
		cfg.Breaker.ConsecutiveFailures = defaultBreakerFailures
	}
	if cfg.Breaker.MaxRequests == 0 {
		cfg.Breaker.MaxRequests = 1
	}

	if cfg.Reference == nil {
		cfg.Reference = &ReferenceConfig{Prefix: defaultReferencePrefix}
	}
	if cfg.Reference.Length <= 0 {
		cfg.Reference.Length = defaultReferenceLength
	}
	if cfg.Reference.Alphabet == "" {
		cfg.Reference.Alphabet = defaultReferenceAlphabet
	}
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
