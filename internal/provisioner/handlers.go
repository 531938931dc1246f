// internal/provisioner/handlers.go
package provisioner

import (
	"context"

	"cloud-advisor/internal/backend"
	commonerrors "cloud-advisor/internal/common/errors"
	"cloud-advisor/internal/models"
)

// provisionResource translates one recommendation into the backend call for
// its kind. The typed spec decides the operation; a recommendation whose
// spec has no handler fails on its own without touching the batch.
func provisionResource(ctx context.Context, client backend.Client, rec models.Recommendation) (*backend.Result, error) {
	switch spec := rec.Spec.(type) {
	case models.ComputeSpec:
		return client.ProvisionCompute(ctx, rec.Name, spec)
	case models.NetworkSpec:
		return client.ProvisionNetwork(ctx, rec.Name, spec)
	case models.DatabaseSpec:
		return client.ProvisionDatabase(ctx, rec.Name, spec)
	case models.BlockStorageSpec:
		return client.ProvisionBlockStorage(ctx, rec.Name, spec)
	case models.ObjectStorageSpec:
		return client.ProvisionObjectStorage(ctx, rec.Name, spec)
	case models.LoadBalancerSpec:
		return client.ProvisionLoadBalancer(ctx, rec.Name, spec)
	default:
		return nil, commonerrors.NewUnsupportedKindError(string(rec.Kind))
	}
}

// outcomeFromResult builds the success record for one provisioned resource.
func outcomeFromResult(rec models.Recommendation, result *backend.Result) models.ResourceOutcome {
	return models.ResourceOutcome{
		Name:       rec.Name,
		Kind:       rec.Kind,
		Status:     result.State,
		ResourceID: result.ID,
		Details:    result.Details,
		AccessInfo: result.AccessInfo,
	}
}

// outcomeFromError builds the failure record; the error message is kept as
// data so the caller can see a mixed success/failure batch.
func outcomeFromError(rec models.Recommendation, err error) models.ResourceOutcome {
	return models.ResourceOutcome{
		Name:   rec.Name,
		Kind:   rec.Kind,
		Status: models.StatusFailed,
		Error:  err.Error(),
	}
}
