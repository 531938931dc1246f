// internal/analyzer/analyzer_test.go
package analyzer

import (
	"testing"

	"cloud-advisor/internal/common/logger"
	"cloud-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Integration Tests
// ==========================

func TestAnalyzer_Analyze_EcommerceHighTraffic(t *testing.T) {
	a := New(logger.NewTestLogger(t))

	recs := a.Analyze(userMessages(
		"I need to host an e-commerce site with high traffic and a SQL database",
	))

	require.Len(t, recs, 6)
	assert.Equal(t, []string{
		NameWebServer, NameWebsiteVCN, NameLoadBalancer, NameWebsiteDB, NameStorage, NameBucket,
	}, recommendationNames(recs))

	compute := findRecommendation(t, recs, NameWebServer).Spec.(models.ComputeSpec)
	assert.Equal(t, 2, compute.InstanceCount)
	assert.Equal(t, 4, compute.OCPUs)
	assert.Equal(t, 32, compute.MemoryGBs)

	storage := findRecommendation(t, recs, NameStorage).Spec.(models.BlockStorageSpec)
	assert.Equal(t, 100, storage.SizeGBs)
}

func TestAnalyzer_Analyze_StaticLowTraffic(t *testing.T) {
	a := New(logger.NewTestLogger(t))

	recs := a.Analyze(userMessages("just a simple static website with low traffic"))

	// No load balancer, no database.
	assert.Equal(t, []string{NameWebServer, NameWebsiteVCN, NameStorage, NameBucket},
		recommendationNames(recs))

	compute := findRecommendation(t, recs, NameWebServer).Spec.(models.ComputeSpec)
	assert.Equal(t, "VM.Standard.E2.1.Micro", compute.Shape)
	assert.Equal(t, 1, compute.InstanceCount)

	storage := findRecommendation(t, recs, NameStorage).Spec.(models.BlockStorageSpec)
	assert.Equal(t, 50, storage.SizeGBs)
}

func TestAnalyzer_Analyze_Idempotent(t *testing.T) {
	a := New(logger.NewTestLogger(t))
	messages := userMessages("a dynamic website with medium traffic, a db, 2 TB storage, in asia")

	first := a.Analyze(messages)
	second := a.Analyze(messages)

	assert.Equal(t, first, second)
}
