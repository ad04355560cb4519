package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
//
// Booleans that default to true carry no env-default tag: cleanenv would
// apply it to an explicit false from YAML. They are preset by Defaults.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Images   ImagesConfig   `yaml:"images"`
	Events   EventsConfig   `yaml:"events"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds relational storage settings. Pool settings apply to
// postgres only; sqlite always runs on a single connection.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token verification settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"planboard"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	// Required rejects API calls without a valid bearer token.
	Required bool `yaml:"required" env:"AUTH_REQUIRED"`
}

// Image storage drivers.
const (
	ImagesFS     = "fs"
	ImagesS3     = "s3"
	ImagesMemory = "memory"
)

// ImagesConfig holds mockup image storage settings.
type ImagesConfig struct {
	Driver       string `yaml:"driver"        env:"IMAGES_DRIVER"        env-default:"fs"`
	Root         string `yaml:"root"          env:"IMAGES_ROOT"          env-default:"./data/images"`
	PublicPrefix string `yaml:"public_prefix" env:"IMAGES_PUBLIC_PREFIX" env-default:"/images"`
	MaxBytes     int64  `yaml:"max_bytes"     env:"IMAGES_MAX_BYTES"     env-default:"10485760"`

	S3Bucket       string `yaml:"s3_bucket"         env:"IMAGES_S3_BUCKET"`
	S3Region       string `yaml:"s3_region"         env:"IMAGES_S3_REGION"         env-default:"us-east-1"`
	S3Endpoint     string `yaml:"s3_endpoint"       env:"IMAGES_S3_ENDPOINT"`
	S3UsePathStyle bool   `yaml:"s3_use_path_style" env:"IMAGES_S3_USE_PATH_STYLE" env-default:"false"`
	S3AccessKey    string `yaml:"s3_access_key"     env:"IMAGES_S3_ACCESS_KEY"`
	S3SecretKey    string `yaml:"s3_secret_key"     env:"IMAGES_S3_SECRET_KEY"`
}

// EventsConfig holds lifecycle event streaming settings.
type EventsConfig struct {
	Enabled          bool `yaml:"enabled"           env:"EVENTS_ENABLED"`
	SubscriberBuffer int  `yaml:"subscriber_buffer" env:"EVENTS_SUBSCRIBER_BUFFER" env-default:"64"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Defaults returns the configuration the loader starts from before YAML
// and ENV are applied.
func Defaults() Config {
	var cfg Config
	cfg.CORS.AllowCredentials = true
	cfg.Auth.Required = true
	cfg.Events.Enabled = true
	cfg.Metrics.Enabled = true
	return cfg
}

// Origins splits AllowedOrigins into a trimmed list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
