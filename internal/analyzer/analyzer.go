// internal/analyzer/analyzer.go

// Package analyzer turns a free-form hosting conversation into a list of
// typed resource recommendations: deterministic signal extraction, rule
// based requirement resolution, and recommendation building with declared
// dependency edges. The whole pipeline is pure; repeated calls over the
// same conversation yield the same batch.
package analyzer

import (
	"cloud-advisor/internal/common/logger"
	"cloud-advisor/internal/common/metrics"
	"cloud-advisor/internal/models"
)

type Analyzer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Analyzer {
	return &Analyzer{
		logger: log.With(map[string]interface{}{
			"component": "analyzer",
		}),
	}
}

// Analyze runs extraction, resolution and recommendation building over the
// conversation. No state is persisted.
func (a *Analyzer) Analyze(messages []models.ConversationMessage) []models.Recommendation {
	signals := Extract(messages)

	a.logger.Debug("extracted signals", map[string]interface{}{
		"websiteType":  string(signals.WebsiteType),
		"trafficLevel": string(signals.TrafficLevel),
		"databaseKind": string(signals.DatabaseKind),
		"storageGBs":   signals.StorageAmountGBs,
	})

	requirements := ResolveRequirements(signals)
	recommendations := BuildRecommendations(requirements)

	metrics.AnalysesTotal.Inc()
	a.logger.Info("generated recommendations", map[string]interface{}{
		"count": len(recommendations),
	})

	return recommendations
}
