package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxIndent bounds the output indentation step.
const maxIndent = 8

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be \"json\" or \"text\" (got %q)", c.Log.Format)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if strings.TrimSpace(c.SourcePath) == "" {
		return fmt.Errorf("source_path is required")
	}
	if strings.TrimSpace(c.DestinationPath) == "" {
		return fmt.Errorf("destination_path is required")
	}
	if filepath.Clean(c.SourcePath) == filepath.Clean(c.DestinationPath) {
		return fmt.Errorf("destination_path must differ from source_path (%s)", c.SourcePath)
	}
	if c.Indent < 0 || c.Indent > maxIndent {
		return fmt.Errorf("indent must be between 0 and %d (got %d)", maxIndent, c.Indent)
	}
	return nil
}
