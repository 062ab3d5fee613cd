package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// Remote booking API.
	APIURL              string  `mapstructure:"API_URL"`
	APITimeoutSeconds   int     `mapstructure:"API_TIMEOUT_SECONDS"`
	BreakerFailureRatio float64 `mapstructure:"BREAKER_FAILURE_RATIO"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisWizardDB  int    `mapstructure:"REDIS_WIZARD_DB"`

	// Browser session.
	SessionCookie     string `mapstructure:"SESSION_COOKIE"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	WizardTTLMinutes  int    `mapstructure:"WIZARD_TTL_MINUTES"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("API_TIMEOUT_SECONDS", 10)
	v.SetDefault("BREAKER_FAILURE_RATIO", 0.6)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_WIZARD_DB", 1)
	v.SetDefault("SESSION_COOKIE", "twc_session")
	v.SetDefault("SESSION_TTL_MINUTES", 720)
	v.SetDefault("WIZARD_TTL_MINUTES", 30)
}

// Load reads configuration from the given viper instance. A missing config
// file is not an error; environment variables and defaults still apply.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// APITimeout is the per-request timeout for calls to the booking API.
func (c Config) APITimeout() time.Duration {
	if c.APITimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// TrustedProxyList is the comma-separated TRUSTED_PROXIES value split into
// addresses or CIDRs. Empty means no proxy is trusted.
func (c Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c Config) WizardTTL() time.Duration {
	return time.Duration(c.WizardTTLMinutes) * time.Minute
}
