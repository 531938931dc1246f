// internal/backend/simulator.go
package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cloud-advisor/internal/common/logger"
	"cloud-advisor/internal/models"
)

// Simulator stands in for the cloud provider's resource-management client.
// It synthesizes provider-style identifiers, details and access info, and
// sleeps a configurable delay per call to mimic provisioning latency.
type Simulator struct {
	region string
	delay  time.Duration
	logger logger.Logger
}

func NewSimulator(region string, delay time.Duration, log logger.Logger) *Simulator {
	if region == "" {
		region = "us-ashburn-1"
	}
	return &Simulator{
		region: region,
		delay:  delay,
		logger: log.With(map[string]interface{}{
			"component": "backend-simulator",
		}),
	}
}

// Region returns the configured provider region.
func (s *Simulator) Region() string { return s.region }

// wait blocks for the simulated latency, honoring cancellation.
func (s *Simulator) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newID synthesizes a provider-style resource identifier.
func newID(kind models.ResourceKind) string {
	return fmt.Sprintf("ocid1.%s.oc1..aaaaaaaa%s", string(kind), strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func hostSuffix(name string) string {
	return strings.ToLower(name) + ".example.com"
}

func lastOctet() int {
	return int(uuid.New().ID() % 255)
}

func (s *Simulator) ProvisionCompute(ctx context.Context, name string, spec models.ComputeSpec) (*Result, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &Result{
		ID:    newID(models.KindCompute),
		State: models.StatusActive,
		Details: map[string]interface{}{
			"shape":               spec.Shape,
			"ocpus":               spec.OCPUs,
			"memory_in_gbs":       spec.MemoryGBs,
			"availability_domain": "AD-1",
			"fault_domain":        "FAULT-DOMAIN-1",
			"time_created":        time.Now().UTC().Format(time.RFC3339),
		},
		AccessInfo: map[string]string{
			"public_ip":  fmt.Sprintf("10.0.0.%d", lastOctet()),
			"private_ip": fmt.Sprintf("192.168.0.%d", lastOctet()),
			"hostname":   hostSuffix(name),
		},
	}, nil
}

func (s *Simulator) ProvisionNetwork(ctx context.Context, name string, spec models.NetworkSpec) (*Result, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	dnsLabel := strings.ReplaceAll(strings.ToLower(name), "-", "")
	return &Result{
		ID:    newID(models.KindNetwork),
		State: models.StatusActive,
		Details: map[string]interface{}{
			"vcn_cidr":     spec.VCNCIDR,
			"subnet_cidr":  spec.SubnetCIDR,
			"dns_label":    dnsLabel,
			"time_created": time.Now().UTC().Format(time.RFC3339),
		},
		AccessInfo: map[string]string{
			"vcn_domain_name": dnsLabel + ".oraclevcn.com",
		},
	}, nil
}

func (s *Simulator) ProvisionDatabase(ctx context.Context, name string, spec models.DatabaseSpec) (*Result, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &Result{
		ID:    newID(models.KindDatabase),
		State: models.StatusActive,
		Details: map[string]interface{}{
			"db_type":        spec.Type,
			"workload_type":  spec.WorkloadType,
			"storage_in_tbs": spec.StorageTBs,
			"time_created":   time.Now().UTC().Format(time.RFC3339),
		},
		AccessInfo: map[string]string{
			"connection_string": fmt.Sprintf("%s.adb.%s.oraclecloudapps.com", strings.ToLower(name), s.region),
			"admin_username":    "ADMIN",
		},
	}, nil
}

func (s *Simulator) ProvisionBlockStorage(ctx context.Context, name string, spec models.BlockStorageSpec) (*Result, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &Result{
		ID:    newID(models.KindStorage),
		State: models.StatusActive,
		Details: map[string]interface{}{
			"size_in_gbs":  spec.SizeGBs,
			"vpus_per_gb":  spec.VPUsPerGB,
			"time_created": time.Now().UTC().Format(time.RFC3339),
		},
		AccessInfo: map[string]string{
			"iqn":             fmt.Sprintf("iqn.2015-12.com.oracleiaas:%s", strings.ReplaceAll(uuid.NewString(), "-", "")),
			"attachment_type": "paravirtualized",
		},
	}, nil
}

func (s *Simulator) ProvisionObjectStorage(ctx context.Context, name string, spec models.ObjectStorageSpec) (*Result, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &Result{
		ID:    newID(models.KindStorage),
		State: models.StatusActive,
		Details: map[string]interface{}{
			"storage_tier": spec.StorageTier,
			"auto_tiering": spec.AutoTiering,
			"time_created": time.Now().UTC().Format(time.RFC3339),
		},
		AccessInfo: map[string]string{
			"bucket_url": fmt.Sprintf("https://objectstorage.%s.oraclecloud.com/n/advisor/b/%s", s.region, strings.ToLower(name)),
		},
	}, nil
}

func (s *Simulator) ProvisionLoadBalancer(ctx context.Context, name string, spec models.LoadBalancerSpec) (*Result, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return &Result{
		ID:    newID(models.KindLoadBalancer),
		State: models.StatusActive,
		Details: map[string]interface{}{
			"shape":              spec.Shape,
			"min_bandwidth_mbps": spec.MinBandwidthMbps,
			"max_bandwidth_mbps": spec.MaxBandwidthMbps,
			"time_created":       time.Now().UTC().Format(time.RFC3339),
		},
		AccessInfo: map[string]string{
			"ip_address": fmt.Sprintf("10.0.0.%d", lastOctet()),
			"hostname":   hostSuffix(name),
		},
	}, nil
}

// AvailableResourceTypes lists what the provisioning surface can create.
func (s *Simulator) AvailableResourceTypes() []string {
	return []string{
		"Compute Instance",
		"Virtual Cloud Network",
		"Subnet",
		"Internet Gateway",
		"Route Table",
		"Security List",
		"Network Security Group",
		"Load Balancer",
		"Autonomous Database",
		"Block Volume",
		"Object Storage Bucket",
		"File Storage",
		"Kubernetes Cluster",
	}
}

// ComputeShapes returns the provider's shape catalog for the region.
func (s *Simulator) ComputeShapes(ctx context.Context) ([]ComputeShape, error) {
	return []ComputeShape{
		{Shape: "VM.Standard.E4.Flex", OCPUs: "1-64", MemoryGBs: "16-1024", ProcessorDescription: "2.55 GHz AMD EPYC 7J13"},
		{Shape: "VM.Standard.E3.Flex", OCPUs: "1-64", MemoryGBs: "16-1024", ProcessorDescription: "2.25 GHz AMD EPYC 7742"},
		{Shape: "VM.Standard.A1.Flex", OCPUs: "1-80", MemoryGBs: "6-512", ProcessorDescription: "Ampere Altra Q80-30"},
		{Shape: "VM.Standard2.1", OCPUs: "1", MemoryGBs: "15", ProcessorDescription: "2.0 GHz Intel Xeon Platinum 8167M"},
	}, nil
}
