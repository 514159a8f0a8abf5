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
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

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
		// MaxBodyBytes limits the size of request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RateLimit is the number of requests per second accepted by the server; zero disables limiting
		RateLimit float64 `env:"HTTP_RATE_LIMIT" env-default:"0" yaml:"rateLimit"`
		// RateBurst is the maximum burst of requests accepted above RateLimit
		RateBurst int `env:"HTTP_RATE_BURST" env-default:"50" yaml:"rateBurst"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host               string        `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME" env-default:"promptparser" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to authenticate API callers
	JWT struct {
		// PublicKey is the PEM encoded key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Parser configures prompt parsing
	Parser struct {
		// MaxInputBytes rejects prompts longer than this many bytes; zero means unlimited
		MaxInputBytes int `env:"PARSER_MAX_INPUT_BYTES" env-default:"65536" yaml:"maxInputBytes"`
		// MaxAttempts is how many times a submitted prompt is processed before it is marked failed
		MaxAttempts int `env:"PARSER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// Concurrency bounds how many files the parse command handles at once
		Concurrency int `env:"PARSER_CONCURRENCY" env-default:"4" yaml:"concurrency"`
	} `yaml:"parser"`

	// Worker configures the background job workers
	Worker struct {
		// MaxWorkers is the number of prompts processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist, the configuration is read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
