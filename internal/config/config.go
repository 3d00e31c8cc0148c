package config

import "github.com/imamik/gcontainer/internal/container/nodepool"

// DefaultConfigFilename is the default catalog filename.
const DefaultConfigFilename = "gcontainer.yaml"

// Config holds a node pool catalog.
type Config struct {
	Project  string `mapstructure:"project" yaml:"project"`
	Location string `mapstructure:"location" yaml:"location"` // zone or region, e.g. europe-west1
	Cluster  string `mapstructure:"cluster" yaml:"cluster"`

	NodePools []nodepool.NodePool `mapstructure:"node_pools" yaml:"node_pools"`
}

// NodePool returns the pool with the given name.
func (c *Config) NodePool(name string) (*nodepool.NodePool, bool) {
	for i := range c.NodePools {
		if c.NodePools[i].Name == name {
			return &c.NodePools[i], true
		}
	}
	return nil, false
}
