package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Store) == "" {
		errs = append(errs, fmt.Errorf("%s: store is required", EnvStore))
	}
	if strings.TrimSpace(c.Worksheet) == "" {
		errs = append(errs, fmt.Errorf("%s: worksheet name is required", EnvWorksheet))
	}
	if err := validateBosses(c); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}
	return nil
}

// validateBosses checks each definition and rejects names that collide
// after Unicode normalization, since they would map to the same columns.
func validateBosses(c *Config) error {
	if len(c.Bosses) == 0 {
		return errors.New("at least one boss is required")
	}
	var errs []error
	seen := make(map[string]int, len(c.Bosses))
	for _, b := range c.Bosses {
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		key := domain.CanonicalHeader(b.Name)
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("boss %q: duplicate of boss %d", b.Name, prev))
			continue
		}
		seen[key] = b.Index
	}
	return errors.Join(errs...)
}
