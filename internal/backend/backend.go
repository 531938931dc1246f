// internal/backend/backend.go

// Package backend defines the resource-provisioning capability this service
// delegates to, one operation per resource kind. The real cloud SDK lives
// behind this interface; the service never reimplements it.
package backend

import (
	"context"

	"cloud-advisor/internal/models"
)

// Result is what the backend reports for one provisioned resource.
type Result struct {
	ID         string
	State      models.ResourceStatus
	Details    map[string]interface{}
	AccessInfo map[string]string
}

// Client is the provisioning capability. Every call either returns a result
// with a generated identifier or an error the caller records as a failed
// outcome.
type Client interface {
	ProvisionCompute(ctx context.Context, name string, spec models.ComputeSpec) (*Result, error)
	ProvisionNetwork(ctx context.Context, name string, spec models.NetworkSpec) (*Result, error)
	ProvisionDatabase(ctx context.Context, name string, spec models.DatabaseSpec) (*Result, error)
	ProvisionBlockStorage(ctx context.Context, name string, spec models.BlockStorageSpec) (*Result, error)
	ProvisionObjectStorage(ctx context.Context, name string, spec models.ObjectStorageSpec) (*Result, error)
	ProvisionLoadBalancer(ctx context.Context, name string, spec models.LoadBalancerSpec) (*Result, error)

	// Catalog queries surfaced by the API layer.
	AvailableResourceTypes() []string
	ComputeShapes(ctx context.Context) ([]ComputeShape, error)
}

// ComputeShape describes one VM shape offered by the provider.
type ComputeShape struct {
	Shape                string `json:"shape"`
	OCPUs                string `json:"ocpus"`
	MemoryGBs            string `json:"memory_in_gbs"`
	ProcessorDescription string `json:"processor_description"`
}
