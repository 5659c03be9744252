package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Lifecycle.validate(); err != nil {
		return fmt.Errorf("lifecycle: %w", err)
	}
	if err := c.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *LifecycleConfig) validate() error {
	if c.SlugMaxAttempts <= 0 {
		return fmt.Errorf("slug_max_attempts must be > 0 (got %d)", c.SlugMaxAttempts)
	}
	if c.ReferenceLength < 8 {
		return fmt.Errorf("reference_length must be at least 8 (got %d)", c.ReferenceLength)
	}
	// Secret tokens back scannable lookup links and must stay unguessable.
	if c.SecretLength < 32 {
		return fmt.Errorf("secret_length must be at least 32 (got %d)", c.SecretLength)
	}
	return nil
}

func (c *ActivityConfig) validate() error {
	if c.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", c.RetentionDays)
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("list_limit must be > 0 (got %d)", c.ListLimit)
	}
	return nil
}
