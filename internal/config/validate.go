package config

import (
	"errors"
	"fmt"
)

// Validate checks the catalog document for missing and conflicting entries.
// Field values inside node pool records are checked by their parsers when
// the catalog is decoded.
func (c *Config) Validate() error {
	if c.Cluster == "" {
		return errors.New("cluster is required")
	}

	if err := c.validateNodePools(); err != nil {
		return fmt.Errorf("node pool validation failed: %w", err)
	}

	return nil
}

func (c *Config) validateNodePools() error {
	seen := make(map[string]bool, len(c.NodePools))
	for i, pool := range c.NodePools {
		if pool.Name == "" {
			return fmt.Errorf("node_pools[%d].name is required", i)
		}
		if seen[pool.Name] {
			return fmt.Errorf("duplicate node pool name %q", pool.Name)
		}
		seen[pool.Name] = true
	}
	return nil
}
