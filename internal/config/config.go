package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Activity  ActivityConfig  `yaml:"activity"`
	Log       LogConfig       `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LifecycleConfig holds slug resolution and identifier issuance settings.
type LifecycleConfig struct {
	SlugMaxAttempts int `yaml:"slug_max_attempts" env:"LIFECYCLE_SLUG_MAX_ATTEMPTS" env-default:"1000"`
	ReferenceLength int `yaml:"reference_length"  env:"LIFECYCLE_REFERENCE_LENGTH"  env-default:"12"`
	SecretLength    int `yaml:"secret_length"     env:"LIFECYCLE_SECRET_LENGTH"     env-default:"40"`
}

// ActivityConfig holds activity log settings.
type ActivityConfig struct {
	RetentionDays int `yaml:"retention_days" env:"ACTIVITY_RETENTION_DAYS" env-default:"365"`
	ListLimit     int `yaml:"list_limit"     env:"ACTIVITY_LIST_LIMIT"     env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
