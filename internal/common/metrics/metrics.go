// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResourcesProvisioned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_resources_provisioned_total",
			Help: "Total number of resources provisioned successfully",
		},
		[]string{"resource_type"},
	)

	ResourcesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_resources_failed_total",
			Help: "Total number of resources that failed to provision",
		},
		[]string{"resource_type", "error_code"},
	)

	ProvisioningDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "advisor_provisioning_duration_seconds",
			Help: "Duration of single-resource provisioning in seconds",
		},
		[]string{"resource_type"},
	)

	BatchesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_batches_active",
			Help: "Number of provisioning batches currently running",
		},
	)

	AnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_analyses_total",
			Help: "Total number of conversation analyses performed",
		},
	)
)
