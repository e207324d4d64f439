package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Lookup  LookupConfig  `yaml:"lookup"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Log     LogConfig     `yaml:"log"`
}

// LookupConfig holds settings for the remote definition-lookup service.
type LookupConfig struct {
	BaseURL string        `yaml:"base_url" env:"LOOKUP_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"LOOKUP_TIMEOUT"  env-default:"10s"`
}

// StorageConfig selects and configures the favorites store.
// Backend is either "file" (single JSON slot on disk) or "postgres".
type StorageConfig struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`

	FilePath string `yaml:"file_path" env:"STORAGE_FILE_PATH" env-default:"favorites.json"`

	DSN             string        `yaml:"dsn"                env:"STORAGE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"STORAGE_MAX_CONNS"          env-default:"4"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORAGE_MAX_CONN_LIFETIME"  env-default:"1h"`
}

// CacheConfig holds settings for the in-memory lookup result cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"CACHE_ENABLED"          env-default:"true"`
	TTL             time.Duration `yaml:"ttl"              env:"CACHE_TTL"              env-default:"15m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
