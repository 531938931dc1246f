// internal/orderer/orderer_test.go
package orderer

import (
	"testing"

	commonerrors "cloud-advisor/internal/common/errors"
	"cloud-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func rec(name string, deps ...string) models.Recommendation {
	return models.Recommendation{
		Kind:         models.KindCompute,
		Name:         name,
		Spec:         models.ComputeSpec{Shape: "VM.Standard.E4.Flex", OCPUs: 1, MemoryGBs: 8, InstanceCount: 1},
		Dependencies: deps,
	}
}

func names(recs []models.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func indexOf(t *testing.T, list []string, name string) int {
	t.Helper()
	for i, n := range list {
		if n == name {
			return i
		}
	}
	t.Fatalf("%q not in order %v", name, list)
	return -1
}

// ==========================
// Core Functionality Tests
// ==========================

func TestOrder_DependenciesComeFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.Recommendation
		expected []string
	}{
		{
			name:     "chain reversed in input",
			input:    []models.Recommendation{rec("D", "C"), rec("C", "B"), rec("B", "A"), rec("A")},
			expected: []string{"A", "B", "C", "D"},
		},
		{
			name:     "no dependencies keeps input order",
			input:    []models.Recommendation{rec("X"), rec("Y"), rec("Z")},
			expected: []string{"X", "Y", "Z"},
		},
		{
			name:     "empty batch",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "single resource",
			input:    []models.Recommendation{rec("only")},
			expected: []string{"only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := Order(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(order))
		})
	}
}

func TestOrder_DiamondGraph(t *testing.T) {
	// LB and DB both depend on VCN; Storage depends on WebServer.
	input := []models.Recommendation{
		rec("WebServer"),
		rec("WebsiteVCN"),
		rec("WebsiteLoadBalancer", "WebsiteVCN"),
		rec("WebsiteDB", "WebsiteVCN"),
		rec("WebsiteStorage", "WebServer"),
		rec("WebsiteBucket"),
	}

	order, err := Order(input)
	require.NoError(t, err)

	got := names(order)
	assert.Less(t, indexOf(t, got, "WebsiteVCN"), indexOf(t, got, "WebsiteLoadBalancer"))
	assert.Less(t, indexOf(t, got, "WebsiteVCN"), indexOf(t, got, "WebsiteDB"))
	assert.Less(t, indexOf(t, got, "WebServer"), indexOf(t, got, "WebsiteStorage"))
	assert.Len(t, got, len(input))
}

func TestOrder_Deterministic(t *testing.T) {
	input := []models.Recommendation{
		rec("c", "a"),
		rec("b", "a"),
		rec("a"),
		rec("d", "b", "c"),
	}

	first, err := Order(input)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := Order(input)
		require.NoError(t, err)
		assert.Equal(t, names(first), names(again))
	}
}

// ==========================
// Edge Cases
// ==========================

func TestOrder_UnknownDependenciesDropped(t *testing.T) {
	input := []models.Recommendation{
		rec("A", "not-in-batch"),
		rec("B", "A", "also-missing"),
	}

	order, err := Order(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(order))
}

func TestOrder_CycleFailsWholeBatch(t *testing.T) {
	tests := []struct {
		name  string
		input []models.Recommendation
	}{
		{
			name:  "two node cycle",
			input: []models.Recommendation{rec("A", "B"), rec("B", "A")},
		},
		{
			name:  "self dependency",
			input: []models.Recommendation{rec("A", "A")},
		},
		{
			name: "cycle buried in a larger batch",
			input: []models.Recommendation{
				rec("ok"),
				rec("X", "Y"),
				rec("Y", "Z"),
				rec("Z", "X"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := Order(tt.input)

			require.Error(t, err)
			assert.Nil(t, order, "a cycle must not yield a partial order")

			var cycleErr *commonerrors.CycleError
			require.ErrorAs(t, err, &cycleErr)
			assert.NotEmpty(t, cycleErr.Resource)
		})
	}
}

func TestOrder_DuplicateEdgesTolerated(t *testing.T) {
	input := []models.Recommendation{
		rec("base"),
		rec("top", "base", "base"),
	}

	order, err := Order(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "top"}, names(order))
}
