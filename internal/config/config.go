package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the profile endpoint, the mock
// HTTP server, credential storage and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Profile configures the client side of the profile exchange
	Profile struct {
		// Endpoint is the absolute URL of the profile document
		Endpoint string `env:"PROFILE_ENDPOINT" env-default:"http://localhost:8080/v1/profile?delay=2500ms" yaml:"endpoint"`
		// Method is the HTTP method used for the exchange
		Method string `env:"PROFILE_METHOD" env-default:"GET" yaml:"method"`
		// Timeout bounds a single exchange including reading the body
		Timeout time.Duration `env:"PROFILE_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// MaxBodyBytes caps the accepted response size
		MaxBodyBytes int64 `env:"PROFILE_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// LogBodies logs request and response bodies when the logger is at debug level
		LogBodies bool `env:"PROFILE_LOG_BODIES" env-default:"false" yaml:"logBodies"`
	} `yaml:"profile"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// MaxDelay caps the artificial latency a client may request
		MaxDelay time.Duration `env:"HTTP_MAX_DELAY" env-default:"5s" yaml:"maxDelay"`
	} `yaml:"http"`

	// Fixture configures the profile served by the mock server
	Fixture struct {
		// Path optionally points to a profile document replacing the embedded one
		Path string `env:"FIXTURE_PATH" yaml:"path"`
		// Delay is applied to every response that does not ask for its own delay
		Delay time.Duration `env:"FIXTURE_DELAY" env-default:"0s" yaml:"delay"`
	} `yaml:"fixture"`

	// Store configures where remembered credentials are kept
	Store struct {
		// Driver is either "sqlite" or "postgres"
		Driver string `env:"STORE_DRIVER" env-default:"sqlite" yaml:"driver"`
		// SQLitePath is the database file used by the sqlite driver
		SQLitePath string `env:"STORE_SQLITE_PATH" env-default:"data/summit.db" yaml:"sqlitePath"`
		// Slot is the key remembered credentials are stored under
		Slot string `env:"STORE_SLOT" env-default:"default" yaml:"slot"`
		// Secret derives the key that seals remembered passwords
		Secret string `env:"STORE_SECRET" env-default:"summit-development-secret" yaml:"secret"`
	} `yaml:"store"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"summit" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

const (
	// StoreDriverSQLite keeps remembered credentials in a local SQLite file.
	StoreDriverSQLite = "sqlite"
	// StoreDriverPostgres keeps remembered credentials in PostgreSQL.
	StoreDriverPostgres = "postgres"
)

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist, only environment variables and defaults apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case configPath == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	default:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverSQLite, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Slot == "" {
		return errors.New("store slot must not be empty")
	}
	if c.Store.Secret == "" {
		return errors.New("store secret must not be empty")
	}
	if c.Profile.Endpoint == "" {
		return errors.New("profile endpoint must not be empty")
	}

	return nil
}
