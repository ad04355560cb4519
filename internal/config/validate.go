package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Images.validate(); err != nil {
		return fmt.Errorf("images: %w", err)
	}

	if c.Events.SubscriberBuffer <= 0 {
		return fmt.Errorf("events.subscriber_buffer must be > 0 (got %d)", c.Events.SubscriberBuffer)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
		}
		if d.MinConns < 0 || d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", d.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (i *ImagesConfig) validate() error {
	if i.MaxBytes <= 0 {
		return fmt.Errorf("max_bytes must be > 0 (got %d)", i.MaxBytes)
	}

	switch i.Driver {
	case ImagesFS:
		if i.Root == "" {
			return fmt.Errorf("root is required for the fs driver")
		}
	case ImagesS3:
		if i.S3Bucket == "" {
			return fmt.Errorf("s3_bucket is required for the s3 driver")
		}
	case ImagesMemory:
	default:
		return fmt.Errorf("unknown driver %q", i.Driver)
	}
	return nil
}
