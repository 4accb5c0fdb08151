package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv      = "PINDEXA_CONFIG"
	logLevelEnv        = "PINDEXA_LOG_LEVEL"
	httpAddrEnv        = "PINDEXA_HTTP_ADDR"
	databaseDSNEnv     = "DATABASE_DSN"
	feedSourceEnv      = "PINDEXA_FEED_SOURCE"
	feedPathEnv        = "PINDEXA_FEED_PATH"
	feedBucketEnv      = "PINDEXA_FEED_BUCKET"
	feedKeyEnv         = "PINDEXA_FEED_KEY"
	awsRegionEnv       = "AWS_REGION"
	footballDataKeyEnv = "FOOTBALL_DATA_API_KEY"
	cookieSecureEnv    = "PINDEXA_COOKIE_SECURE"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging      LoggingConfig      `yaml:"logging"`
	HTTP         HTTPConfig         `yaml:"http"`
	Database     DatabaseConfig     `yaml:"database"`
	Feed         FeedConfig         `yaml:"feed"`
	FootballData FootballDataConfig `yaml:"footballData"`
	Auth         AuthConfig         `yaml:"auth"`
}

// LoggingConfig controls the slog handler level.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HTTPConfig describes the listener and CORS policy of the site.
type HTTPConfig struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// FeedConfig selects where the prediction feed is read from.
type FeedConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
	Bucket string `yaml:"bucket"`
	Key    string `yaml:"key"`
	Region string `yaml:"region"`
}

// FootballDataConfig defines how to contact football-data.org.
type FootballDataConfig struct {
	BaseURL     string        `yaml:"baseUrl"`
	APIKey      string        `yaml:"apiKey"`
	Competition string        `yaml:"competition"`
	Timeout     time.Duration `yaml:"timeout"`
	CacheTTL    time.Duration `yaml:"cacheTtl"`
}

// AuthConfig tunes credential hashing and session lifetime.
type AuthConfig struct {
	SessionTTL    time.Duration `yaml:"sessionTtl"`
	SweepInterval time.Duration `yaml:"sweepInterval"`
	CookieName    string        `yaml:"cookieName"`
	CookieSecure  bool          `yaml:"cookieSecure"`
	BcryptCost    int           `yaml:"bcryptCost"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(feedSourceEnv); v != "" {
		c.Feed.Source = v
	}
	if v := os.Getenv(feedPathEnv); v != "" {
		c.Feed.Path = v
	}
	if v := os.Getenv(feedBucketEnv); v != "" {
		c.Feed.Bucket = v
	}
	if v := os.Getenv(feedKeyEnv); v != "" {
		c.Feed.Key = v
	}
	if v := os.Getenv(awsRegionEnv); v != "" {
		c.Feed.Region = v
	}

	if v := os.Getenv(footballDataKeyEnv); v != "" {
		c.FootballData.APIKey = v
	}

	if v := os.Getenv(cookieSecureEnv); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			c.Auth.CookieSecure = secure
		} else {
			log.Printf("config: ignoring %s=%q: %v", cookieSecureEnv, v, err)
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.HTTP.Addr != "" {
		base.HTTP.Addr = override.HTTP.Addr
	}
	if override.HTTP.ReadTimeout > 0 {
		base.HTTP.ReadTimeout = override.HTTP.ReadTimeout
	}
	if override.HTTP.WriteTimeout > 0 {
		base.HTTP.WriteTimeout = override.HTTP.WriteTimeout
	}
	if len(override.HTTP.AllowedOrigins) > 0 {
		base.HTTP.AllowedOrigins = override.HTTP.AllowedOrigins
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Feed.Source != "" {
		base.Feed.Source = override.Feed.Source
	}
	if override.Feed.Path != "" {
		base.Feed.Path = override.Feed.Path
	}
	if override.Feed.Bucket != "" {
		base.Feed.Bucket = override.Feed.Bucket
	}
	if override.Feed.Key != "" {
		base.Feed.Key = override.Feed.Key
	}
	if override.Feed.Region != "" {
		base.Feed.Region = override.Feed.Region
	}

	if override.FootballData.BaseURL != "" {
		base.FootballData.BaseURL = override.FootballData.BaseURL
	}
	if override.FootballData.APIKey != "" {
		base.FootballData.APIKey = override.FootballData.APIKey
	}
	if override.FootballData.Competition != "" {
		base.FootballData.Competition = override.FootballData.Competition
	}
	if override.FootballData.Timeout > 0 {
		base.FootballData.Timeout = override.FootballData.Timeout
	}
	if override.FootballData.CacheTTL > 0 {
		base.FootballData.CacheTTL = override.FootballData.CacheTTL
	}

	if override.Auth.SessionTTL > 0 {
		base.Auth.SessionTTL = override.Auth.SessionTTL
	}
	if override.Auth.SweepInterval > 0 {
		base.Auth.SweepInterval = override.Auth.SweepInterval
	}
	if override.Auth.CookieName != "" {
		base.Auth.CookieName = override.Auth.CookieName
	}
	if override.Auth.CookieSecure {
		base.Auth.CookieSecure = true
	}
	if override.Auth.BcryptCost > 0 {
		base.Auth.BcryptCost = override.Auth.BcryptCost
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		HTTP: HTTPConfig{
			Addr:           ":3000",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Feed: FeedConfig{
			Source: "file",
			Path:   "public/data/predictions.json",
			Key:    "data/predictions.json",
			Region: "eu-west-1",
		},
		FootballData: FootballDataConfig{
			BaseURL:     "https://api.football-data.org/v4",
			Competition: "PL",
			Timeout:     10 * time.Second,
			CacheTTL:    time.Hour,
		},
		Auth: AuthConfig{
			SessionTTL:    30 * 24 * time.Hour,
			SweepInterval: time.Hour,
			CookieName:    "pindexa_session",
			BcryptCost:    10,
		},
	}
}
