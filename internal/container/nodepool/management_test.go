package nodepool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/gcontainer/internal/util/ptr"
)

func TestNodePoolFromAPI(t *testing.T) {
	body := []byte(`{
		"name": "default-pool",
		"management": {
			"autoUpgrade": true,
			"autoRepair": false,
			"upgradeOptions": {
				"autoUpgradeStartTime": "2023-01-01T00:00:00Z",
				"description": "maintenance window"
			}
		}
	}`)

	pool, err := NodePoolFromAPI(body)
	require.NoError(t, err)

	assert.Equal(t, "default-pool", pool.Name)
	require.NotNil(t, pool.Management.AutoRepair)
	assert.False(t, *pool.Management.AutoRepair)

	want := NewUpgradeOptions(&jan1, nil)
	assert.True(t, pool.UpgradeOptions().Equal(want))
}

func TestNodePoolFromAPIWithoutManagement(t *testing.T) {
	pool, err := NodePoolFromAPI([]byte(`{"name":"bare"}`))
	require.NoError(t, err)

	assert.Nil(t, pool.UpgradeOptions())
}

func TestNodePoolFromAPIInvalid(t *testing.T) {
	_, err := NodePoolFromAPI([]byte(`{"management":{"upgradeOptions":{"autoUpgradeStartTime":42}}}`))
	assert.Error(t, err)
}

func TestNodePoolMarshalAPIShape(t *testing.T) {
	pool := NodePool{
		Name: "default-pool",
		Management: &Management{
			UpgradeOptions: NewUpgradeOptions(nil, ptr.String("x")),
		},
	}

	data, err := json.Marshal(pool)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"default-pool","management":{"upgradeOptions":{"description":"x"}}}`, string(data))
}
