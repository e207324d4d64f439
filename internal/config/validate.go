package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Lookup.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("lookup.base_url must be an absolute URL (got %q)", c.Lookup.BaseURL)
	}
	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("lookup.timeout must be > 0 (got %v)", c.Lookup.Timeout)
	}

	switch strings.ToLower(c.Storage.Backend) {
	case "file":
		if c.Storage.FilePath == "" {
			return fmt.Errorf("storage.file_path is required for the file backend")
		}
	case "postgres":
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be \"file\" or \"postgres\" (got %q)", c.Storage.Backend)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be > 0 (got %v)", c.Cache.TTL)
		}
		if c.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("cache.cleanup_interval must be > 0 (got %v)", c.Cache.CleanupInterval)
		}
	}

	return nil
}
