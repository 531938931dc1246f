// internal/models/requirements.go
package models

// AutoscalingBounds caps an instance pool when scaling was requested.
type AutoscalingBounds struct {
	MinInstances int `json:"min_instances"`
	MaxInstances int `json:"max_instances"`
}

// ComputeRequirement is the sized compute demand derived from signals.
type ComputeRequirement struct {
	Shape         string             `json:"shape"`
	OCPUs         int                `json:"ocpus"`
	MemoryGBs     int                `json:"memory_in_gbs"`
	InstanceCount int                `json:"instance_count"`
	Autoscaling   *AutoscalingBounds `json:"autoscaling,omitempty"`
}

// LoadBalancerRequirement is attached to the network requirement when
// traffic or instance count calls for one.
type LoadBalancerRequirement struct {
	Shape            string `json:"shape"`
	MinBandwidthMbps int    `json:"min_bandwidth_mbps"`
	MaxBandwidthMbps int    `json:"max_bandwidth_mbps"`
}

// NetworkRequirement is the sized network demand.
type NetworkRequirement struct {
	VCNCIDR       string                   `json:"vcn_cidr"`
	SubnetCIDR    string                   `json:"subnet_cidr"`
	LoadBalancer  *LoadBalancerRequirement `json:"load_balancer,omitempty"`
	SecurityRules []SecurityRule           `json:"security_list_rules"`
}

// DatabaseRequirement is present only when database signals were detected.
type DatabaseRequirement struct {
	Type         string `json:"type"`
	WorkloadType string `json:"workload_type"`
	DBName       string `json:"db_name,omitempty"`
	TableName    string `json:"table_name,omitempty"`
	StorageTBs   int    `json:"storage_in_tbs"`
	CPUCoreCount int    `json:"cpu_core_count"`
}

// StorageRequirement is the sized storage demand.
type StorageRequirement struct {
	BlockVolumeGBs int  `json:"block_volume_size_in_gbs"`
	ObjectStorage  bool `json:"object_storage"`
}

// Requirements bundles the per-kind requirement records for one analysis.
// Database is nil when no database signal was present.
type Requirements struct {
	Compute  ComputeRequirement   `json:"compute"`
	Network  NetworkRequirement   `json:"network"`
	Database *DatabaseRequirement `json:"database,omitempty"`
	Storage  StorageRequirement   `json:"storage"`
}
