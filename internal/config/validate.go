package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Paths.InputDir == "" {
		return fmt.Errorf("paths.input_dir is required")
	}
	if c.Paths.ExportDir == "" {
		return fmt.Errorf("paths.export_dir is required")
	}
	if c.Reports.TopWordsLimit < 1 {
		return fmt.Errorf("reports.top_words_limit must be >= 1 (got %d)", c.Reports.TopWordsLimit)
	}
	if c.Reports.RecentWordsLimit < 1 {
		return fmt.Errorf("reports.recent_words_limit must be >= 1 (got %d)", c.Reports.RecentWordsLimit)
	}
	return nil
}
