package nodepool

import (
	"encoding/json"
	"fmt"
)

// Management is the management block of a node pool. It owns the
// node pool's UpgradeOptions.
type Management struct {
	AutoUpgrade    *bool           `json:"autoUpgrade,omitempty" mapstructure:"auto_upgrade" yaml:"auto_upgrade"`
	AutoRepair     *bool           `json:"autoRepair,omitempty" mapstructure:"auto_repair" yaml:"auto_repair"`
	UpgradeOptions *UpgradeOptions `json:"upgradeOptions,omitempty" mapstructure:"upgrade_options" yaml:"upgrade_options"`
}

// NodePool is the subset of a GKE node pool that carries its management block.
type NodePool struct {
	Name       string      `json:"name" mapstructure:"name" yaml:"name"`
	Management *Management `json:"management,omitempty" mapstructure:"management" yaml:"management"`
}

// UpgradeOptions returns the pool's upgrade options, or nil when the pool
// has no management block.
func (p *NodePool) UpgradeOptions() *UpgradeOptions {
	if p == nil || p.Management == nil {
		return nil
	}
	return p.Management.UpgradeOptions
}

// NodePoolFromAPI decodes a node pool from an API response body.
func NodePoolFromAPI(data []byte) (*NodePool, error) {
	var pool NodePool
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("failed to decode node pool: %w", err)
	}
	return &pool, nil
}
