// internal/models/resource_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Wire Boundary Tests
// ==========================

func TestRecommendation_WireFormat(t *testing.T) {
	rec := Recommendation{
		Kind:        KindCompute,
		Name:        "WebServer",
		Description: "Compute instance for hosting the website",
		Spec: ComputeSpec{
			Shape:         "VM.Standard.E4.Flex",
			OCPUs:         2,
			MemoryGBs:     16,
			InstanceCount: 1,
			ImageID:       "Oracle-Linux-8.6-2022.05.31-0",
		},
		EstimatedCost: EstimatedCost{Monthly: 100, Currency: "USD"},
		Dependencies:  []string{"WebsiteVCN"},
	}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	// Specifications serialize as a generic attribute map.
	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "compute", wire["resource_type"])
	specs, ok := wire["specifications"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VM.Standard.E4.Flex", specs["shape"])
	assert.Equal(t, float64(2), specs["ocpus"])

	var decoded Recommendation
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, rec, decoded)
}

func TestSpecFromAttributes_StorageDisambiguation(t *testing.T) {
	t.Run("storage_tier means object storage", func(t *testing.T) {
		spec, err := SpecFromAttributes(KindStorage, map[string]interface{}{
			"storage_tier": "Standard",
			"auto_tiering": true,
		})
		require.NoError(t, err)

		object, ok := spec.(ObjectStorageSpec)
		require.True(t, ok)
		assert.Equal(t, "Standard", object.StorageTier)
		assert.True(t, object.AutoTiering)
	})

	t.Run("size means block volume", func(t *testing.T) {
		spec, err := SpecFromAttributes(KindStorage, map[string]interface{}{
			"size_in_gbs": float64(200),
			"vpus_per_gb": float64(10),
		})
		require.NoError(t, err)

		block, ok := spec.(BlockStorageSpec)
		require.True(t, ok)
		assert.Equal(t, 200, block.SizeGBs)
		assert.Equal(t, 10, block.VPUsPerGB)
	})
}

func TestSpecFromAttributes_UnknownKind(t *testing.T) {
	_, err := SpecFromAttributes(ResourceKind("quantum"), nil)
	assert.Error(t, err)
}

func TestSpecFromAttributes_NetworkRules(t *testing.T) {
	spec, err := SpecFromAttributes(KindNetwork, map[string]interface{}{
		"vcn_cidr":    "10.0.0.0/16",
		"subnet_cidr": "10.0.0.0/24",
		"security_list_rules": []interface{}{
			map[string]interface{}{"protocol": "6", "port": float64(80), "source": "0.0.0.0/0"},
			map[string]interface{}{"protocol": "6", "port": float64(443), "source": "0.0.0.0/0"},
		},
	})
	require.NoError(t, err)

	network, ok := spec.(NetworkSpec)
	require.True(t, ok)
	require.Len(t, network.SecurityRules, 2)
	assert.Equal(t, 80, network.SecurityRules[0].Port)
	assert.Equal(t, "0.0.0.0/0", network.SecurityRules[1].Source)
}
