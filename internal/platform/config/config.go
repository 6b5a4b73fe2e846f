package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	pstrings "realestate/pkg/platform/strings"
)

// Config is the process configuration for the catalog server.
type Config struct {
	Server   Server
	Mongo    Mongo
	LogLevel string
	CORS     CORS
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	RequestTimeout time.Duration
}

// Mongo captures the document store connection settings.
type Mongo struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type CORS struct {
	AllowedOrigins []string
}

// Default returns the configuration used when neither a file nor the
// environment overrides a value.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Mongo: Mongo{
			URI:      "mongodb://localhost:27017",
			Database: "realestate",
			Timeout:  10 * time.Second,
		},
		LogLevel: "info",
		CORS:     CORS{AllowedOrigins: []string{"*"}},
	}
}

// Load reads config.yaml from configPath (optional) and applies environment
// overrides such as MONGO_URI or HTTP_REQUEST_TIMEOUT.
func Load(configPath string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", def.Server.Addr)
	v.SetDefault("http.request_timeout", def.Server.RequestTimeout)
	v.SetDefault("mongo.uri", def.Mongo.URI)
	v.SetDefault("mongo.database", def.Mongo.Database)
	v.SetDefault("mongo.timeout", def.Mongo.Timeout)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("cors.allowed_origins", def.CORS.AllowedOrigins)

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Server: Server{
			Addr:           v.GetString("http.addr"),
			RequestTimeout: v.GetDuration("http.request_timeout"),
		},
		Mongo: Mongo{
			URI:      v.GetString("mongo.uri"),
			Database: v.GetString("mongo.database"),
			Timeout:  v.GetDuration("mongo.timeout"),
		},
		LogLevel: v.GetString("log.level"),
		CORS:     CORS{AllowedOrigins: pstrings.SplitList(v.GetStringSlice("cors.allowed_origins"), ",")},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("http.request_timeout must be positive")
	}
	if c.Mongo.URI == "" {
		return errors.New("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is required")
	}
	if c.Mongo.Timeout <= 0 {
		return errors.New("mongo.timeout must be positive")
	}
	return nil
}
