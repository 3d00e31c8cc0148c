package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/gcontainer/internal/container/nodepool"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: Config{
				Cluster:   "primary",
				NodePools: []nodepool.NodePool{{Name: "a"}, {Name: "b"}},
			},
		},
		{
			name: "no pools",
			cfg:  Config{Cluster: "primary"},
		},
		{
			name:    "missing cluster",
			cfg:     Config{},
			wantErr: "cluster is required",
		},
		{
			name: "missing pool name",
			cfg: Config{
				Cluster:   "primary",
				NodePools: []nodepool.NodePool{{Name: "a"}, {}},
			},
			wantErr: "node_pools[1].name is required",
		},
		{
			name: "duplicate pool name",
			cfg: Config{
				Cluster:   "primary",
				NodePools: []nodepool.NodePool{{Name: "a"}, {Name: "a"}},
			},
			wantErr: `duplicate node pool name "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigNodePoolNotFound(t *testing.T) {
	cfg := Config{NodePools: []nodepool.NodePool{{Name: "a"}}}

	_, ok := cfg.NodePool("b")
	assert.False(t, ok)
}
