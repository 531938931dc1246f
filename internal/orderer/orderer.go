// internal/orderer/orderer.go

// Package orderer linearizes a recommendation batch so every resource is
// provisioned after everything it depends on.
package orderer

import (
	commonerrors "cloud-advisor/internal/common/errors"
	"cloud-advisor/internal/models"
)

type color int

const (
	unvisited color = iota
	inProgress
	done
)

// Order performs a depth-first topological sort over the batch's declared
// dependency edges. Dependency names that do not belong to the batch are
// dropped. A cycle fails the whole call with a CycleError naming one
// participant; no partial order is returned. Given the same input order the
// output is deterministic.
func Order(recommendations []models.Recommendation) ([]models.Recommendation, error) {
	byName := make(map[string]models.Recommendation, len(recommendations))
	for _, rec := range recommendations {
		byName[rec.Name] = rec
	}

	deps := make(map[string][]string, len(recommendations))
	for _, rec := range recommendations {
		var inBatch []string
		for _, dep := range rec.Dependencies {
			if _, ok := byName[dep]; ok {
				inBatch = append(inBatch, dep)
			}
		}
		deps[rec.Name] = inBatch
	}

	colors := make(map[string]color, len(recommendations))
	order := make([]string, 0, len(recommendations))

	var visit func(name string) error
	visit = func(name string) error {
		switch colors[name] {
		case done:
			return nil
		case inProgress:
			return &commonerrors.CycleError{Resource: name}
		}

		colors[name] = inProgress
		for _, dep := range deps[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		colors[name] = done
		order = append(order, name)
		return nil
	}

	// Iterate in input order, not map order, to keep ties deterministic.
	for _, rec := range recommendations {
		if err := visit(rec.Name); err != nil {
			return nil, err
		}
	}

	sorted := make([]models.Recommendation, 0, len(order))
	for _, name := range order {
		sorted = append(sorted, byName[name])
	}
	return sorted, nil
}
