// internal/analyzer/requirements.go
package analyzer

import "cloud-advisor/internal/models"

// Baseline sizing constants. Shapes follow the provider's flexible VM naming.
const (
	shapeGeneralPurpose = "VM.Standard.E4.Flex"
	shapeMinimal        = "VM.Standard.E2.1.Micro"

	defaultVCNCIDR    = "10.0.0.0/16"
	defaultSubnetCIDR = "10.0.0.0/24"

	anySource   = "0.0.0.0/0"
	protocolTCP = "6"
)

// ResolveRequirements derives the per-kind requirement records from the
// extracted signals. Compute is resolved first because the network rules
// depend on the resolved instance count.
func ResolveRequirements(signals models.ExtractedSignals) models.Requirements {
	compute := resolveCompute(signals)
	return models.Requirements{
		Compute:  compute,
		Network:  resolveNetwork(signals, compute),
		Database: resolveDatabase(signals),
		Storage:  resolveStorage(signals),
	}
}

// resolveCompute sizes the instance pool. Website type overrides the
// baseline outright; high traffic applies floors (max of current vs the
// high-traffic minimum) so combined signals only ever grow the sizing.
func resolveCompute(signals models.ExtractedSignals) models.ComputeRequirement {
	req := models.ComputeRequirement{
		InstanceCount: 1,
		Shape:         shapeGeneralPurpose,
		OCPUs:         1,
		MemoryGBs:     8,
	}

	switch signals.WebsiteType {
	case models.WebsiteStatic:
		req.Shape = shapeMinimal
		req.OCPUs = 1
		req.MemoryGBs = 1
	case models.WebsiteEcommerce:
		req.Shape = shapeGeneralPurpose
		req.OCPUs = 2
		req.MemoryGBs = 16
	}

	if signals.TrafficLevel == models.TrafficHigh {
		req.InstanceCount = 2
		req.OCPUs = maxInt(req.OCPUs, 4)
		req.MemoryGBs = maxInt(req.MemoryGBs, 32)
	}

	if signals.ScalingRequired {
		req.Autoscaling = &models.AutoscalingBounds{
			MinInstances: req.InstanceCount,
			MaxInstances: req.InstanceCount * 3,
		}
	}

	return req
}

// resolveNetwork attaches a load balancer when traffic is high or the
// resolved compute pool has more than one instance. The three security
// rules are a permissive default, not a policy.
func resolveNetwork(signals models.ExtractedSignals, compute models.ComputeRequirement) models.NetworkRequirement {
	req := models.NetworkRequirement{
		VCNCIDR:    defaultVCNCIDR,
		SubnetCIDR: defaultSubnetCIDR,
	}

	if signals.TrafficLevel == models.TrafficHigh || compute.InstanceCount > 1 {
		req.LoadBalancer = &models.LoadBalancerRequirement{
			Shape:            "flexible",
			MinBandwidthMbps: 10,
			MaxBandwidthMbps: 100,
		}
	}

	req.SecurityRules = []models.SecurityRule{
		{Protocol: protocolTCP, Port: 80, Source: anySource},  // HTTP
		{Protocol: protocolTCP, Port: 443, Source: anySource}, // HTTPS
		{Protocol: protocolTCP, Port: 22, Source: anySource},  // SSH
	}

	return req
}

// resolveDatabase returns nil when no database signal was detected. High
// traffic overwrites cores and storage to fixed values rather than taking
// a maximum; this diverges from the compute policy on purpose.
func resolveDatabase(signals models.ExtractedSignals) *models.DatabaseRequirement {
	if signals.DatabaseKind == "" {
		return nil
	}

	req := &models.DatabaseRequirement{
		Type:         "autonomous",
		WorkloadType: "OLTP",
		StorageTBs:   1,
		CPUCoreCount: 1,
	}

	switch signals.DatabaseKind {
	case models.DatabaseRelational:
		req.Type = "autonomous"
		req.DBName = "AdvisorDB"
	case models.DatabaseNoSQL:
		req.Type = "nosql"
		req.TableName = "AdvisorTable"
	}

	if signals.TrafficLevel == models.TrafficHigh {
		req.CPUCoreCount = 2
		req.StorageTBs = 2
	}

	return req
}

// resolveStorage floors the block volume at the requested amount, then lets
// the website type adjust: static forces exactly 50 GB, ecommerce/dynamic
// floor at 100 GB.
func resolveStorage(signals models.ExtractedSignals) models.StorageRequirement {
	req := models.StorageRequirement{
		BlockVolumeGBs: 50,
		ObjectStorage:  true,
	}

	if signals.StorageAmountGBs > 0 {
		req.BlockVolumeGBs = maxInt(50, signals.StorageAmountGBs)
	}

	switch signals.WebsiteType {
	case models.WebsiteStatic:
		req.BlockVolumeGBs = 50
	case models.WebsiteEcommerce, models.WebsiteDynamic:
		req.BlockVolumeGBs = maxInt(req.BlockVolumeGBs, 100)
	}

	return req
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
