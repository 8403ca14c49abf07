package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScorebook(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScorebook() error {
	if c.Scorebook.Team == "" {
		return errors.New("scorebook.team must be set (the team code from the export's @Bat column, e.g. MIL)")
	}
	if c.Scorebook.MinInnings < 1 {
		return errors.New("scorebook.min_innings must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "tsv", "csv":
	default:
		return fmt.Errorf("output.format must be one of table, tsv, csv (got %q)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be one of auto, always, never (got %q)", c.Output.Color)
	}
	return nil
}
