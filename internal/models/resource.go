// internal/models/resource.go
package models

import (
	"encoding/json"
	"fmt"
)

// ResourceKind is the closed set of provisionable resource kinds.
type ResourceKind string

const (
	KindCompute      ResourceKind = "compute"
	KindNetwork      ResourceKind = "network"
	KindDatabase     ResourceKind = "database"
	KindStorage      ResourceKind = "storage"
	KindLoadBalancer ResourceKind = "load_balancer"
)

// ResourceStatus is the lifecycle status of a provisioned resource.
type ResourceStatus string

const (
	StatusActive ResourceStatus = "active"
	StatusFailed ResourceStatus = "failed"
)

// EstimatedCost is a monthly cost estimate for a recommendation.
type EstimatedCost struct {
	Monthly  float64 `json:"monthly"`
	Currency string  `json:"currency"`
}

// ResourceSpec carries the strongly typed sizing fields of one resource kind.
// The generic attribute map only appears at the serialization boundary.
type ResourceSpec interface {
	SpecKind() ResourceKind
	Attributes() map[string]interface{}
}

// ComputeSpec sizes a compute instance pool.
type ComputeSpec struct {
	Shape         string `json:"shape"`
	OCPUs         int    `json:"ocpus"`
	MemoryGBs     int    `json:"memory_in_gbs"`
	InstanceCount int    `json:"instance_count"`
	ImageID       string `json:"image_id"`
}

func (s ComputeSpec) SpecKind() ResourceKind { return KindCompute }

func (s ComputeSpec) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"shape":          s.Shape,
		"ocpus":          s.OCPUs,
		"memory_in_gbs":  s.MemoryGBs,
		"instance_count": s.InstanceCount,
		"image_id":       s.ImageID,
	}
}

// SecurityRule opens one port of the subnet security list.
type SecurityRule struct {
	Protocol string `json:"protocol"`
	Port     int    `json:"port"`
	Source   string `json:"source"`
}

// NetworkSpec sizes the virtual cloud network and its subnet.
type NetworkSpec struct {
	VCNCIDR       string         `json:"vcn_cidr"`
	SubnetCIDR    string         `json:"subnet_cidr"`
	SecurityRules []SecurityRule `json:"security_list_rules"`
}

func (s NetworkSpec) SpecKind() ResourceKind { return KindNetwork }

func (s NetworkSpec) Attributes() map[string]interface{} {
	rules := make([]interface{}, 0, len(s.SecurityRules))
	for _, r := range s.SecurityRules {
		rules = append(rules, map[string]interface{}{
			"protocol": r.Protocol,
			"port":     r.Port,
			"source":   r.Source,
		})
	}
	return map[string]interface{}{
		"vcn_cidr":            s.VCNCIDR,
		"subnet_cidr":         s.SubnetCIDR,
		"security_list_rules": rules,
	}
}

// LoadBalancerSpec sizes a flexible load balancer.
type LoadBalancerSpec struct {
	Shape            string `json:"shape"`
	MinBandwidthMbps int    `json:"min_bandwidth_mbps"`
	MaxBandwidthMbps int    `json:"max_bandwidth_mbps"`
}

func (s LoadBalancerSpec) SpecKind() ResourceKind { return KindLoadBalancer }

func (s LoadBalancerSpec) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"shape":              s.Shape,
		"min_bandwidth_mbps": s.MinBandwidthMbps,
		"max_bandwidth_mbps": s.MaxBandwidthMbps,
	}
}

// DatabaseSpec sizes a managed database.
type DatabaseSpec struct {
	Type         string `json:"type"`
	WorkloadType string `json:"workload_type"`
	StorageTBs   int    `json:"storage_in_tbs"`
	CPUCoreCount int    `json:"cpu_core_count"`
}

func (s DatabaseSpec) SpecKind() ResourceKind { return KindDatabase }

func (s DatabaseSpec) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"type":           s.Type,
		"workload_type":  s.WorkloadType,
		"storage_in_tbs": s.StorageTBs,
		"cpu_core_count": s.CPUCoreCount,
	}
}

// BlockStorageSpec sizes a block volume.
type BlockStorageSpec struct {
	SizeGBs   int `json:"size_in_gbs"`
	VPUsPerGB int `json:"vpus_per_gb"`
}

func (s BlockStorageSpec) SpecKind() ResourceKind { return KindStorage }

func (s BlockStorageSpec) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"size_in_gbs": s.SizeGBs,
		"vpus_per_gb": s.VPUsPerGB,
	}
}

// ObjectStorageSpec describes an object storage bucket.
type ObjectStorageSpec struct {
	StorageTier string `json:"storage_tier"`
	AutoTiering bool   `json:"auto_tiering"`
}

func (s ObjectStorageSpec) SpecKind() ResourceKind { return KindStorage }

func (s ObjectStorageSpec) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"storage_tier": s.StorageTier,
		"auto_tiering": s.AutoTiering,
	}
}

// Recommendation is a proposed, not-yet-provisioned resource with sizing,
// cost estimate and dependency edges. Names are unique within one batch;
// dependency entries reference other names in the same batch.
type Recommendation struct {
	Kind          ResourceKind
	Name          string
	Description   string
	Spec          ResourceSpec
	EstimatedCost EstimatedCost
	Dependencies  []string
}

// recommendationWire is the boundary form: specifications travel as a
// generic attribute map, matching the external API contract.
type recommendationWire struct {
	ResourceType   ResourceKind           `json:"resource_type"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description,omitempty"`
	Specifications map[string]interface{} `json:"specifications"`
	EstimatedCost  *EstimatedCost         `json:"estimated_cost,omitempty"`
	Dependencies   []string               `json:"dependencies,omitempty"`
}

func (r Recommendation) MarshalJSON() ([]byte, error) {
	w := recommendationWire{
		ResourceType: r.Kind,
		Name:         r.Name,
		Description:  r.Description,
		Dependencies: r.Dependencies,
	}
	if r.Spec != nil {
		w.Specifications = r.Spec.Attributes()
	}
	if r.EstimatedCost != (EstimatedCost{}) {
		cost := r.EstimatedCost
		w.EstimatedCost = &cost
	}
	return json.Marshal(w)
}

func (r *Recommendation) UnmarshalJSON(data []byte) error {
	var w recommendationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	spec, err := SpecFromAttributes(w.ResourceType, w.Specifications)
	if err != nil {
		return err
	}
	r.Kind = w.ResourceType
	r.Name = w.Name
	r.Description = w.Description
	r.Spec = spec
	r.Dependencies = w.Dependencies
	if w.EstimatedCost != nil {
		r.EstimatedCost = *w.EstimatedCost
	} else {
		r.EstimatedCost = EstimatedCost{}
	}
	return nil
}

// SpecFromAttributes rebuilds the typed spec for a kind from its boundary
// attribute map. Storage maps carrying a storage_tier are object storage;
// everything else under the storage kind is a block volume.
func SpecFromAttributes(kind ResourceKind, attrs map[string]interface{}) (ResourceSpec, error) {
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	switch kind {
	case KindCompute:
		return ComputeSpec{
			Shape:         attrString(attrs, "shape"),
			OCPUs:         attrInt(attrs, "ocpus"),
			MemoryGBs:     attrInt(attrs, "memory_in_gbs"),
			InstanceCount: attrInt(attrs, "instance_count"),
			ImageID:       attrString(attrs, "image_id"),
		}, nil
	case KindNetwork:
		spec := NetworkSpec{
			VCNCIDR:    attrString(attrs, "vcn_cidr"),
			SubnetCIDR: attrString(attrs, "subnet_cidr"),
		}
		if raw, ok := attrs["security_list_rules"].([]interface{}); ok {
			for _, entry := range raw {
				rule, ok := entry.(map[string]interface{})
				if !ok {
					continue
				}
				spec.SecurityRules = append(spec.SecurityRules, SecurityRule{
					Protocol: attrString(rule, "protocol"),
					Port:     attrInt(rule, "port"),
					Source:   attrString(rule, "source"),
				})
			}
		}
		return spec, nil
	case KindLoadBalancer:
		return LoadBalancerSpec{
			Shape:            attrString(attrs, "shape"),
			MinBandwidthMbps: attrInt(attrs, "min_bandwidth_mbps"),
			MaxBandwidthMbps: attrInt(attrs, "max_bandwidth_mbps"),
		}, nil
	case KindDatabase:
		return DatabaseSpec{
			Type:         attrString(attrs, "type"),
			WorkloadType: attrString(attrs, "workload_type"),
			StorageTBs:   attrInt(attrs, "storage_in_tbs"),
			CPUCoreCount: attrInt(attrs, "cpu_core_count"),
		}, nil
	case KindStorage:
		if _, ok := attrs["storage_tier"]; ok {
			auto, _ := attrs["auto_tiering"].(bool)
			return ObjectStorageSpec{
				StorageTier: attrString(attrs, "storage_tier"),
				AutoTiering: auto,
			}, nil
		}
		return BlockStorageSpec{
			SizeGBs:  attrInt(attrs, "size_in_gbs"),
			VPUsPerGB: attrInt(attrs, "vpus_per_gb"),
		}, nil
	default:
		return nil, fmt.Errorf("unknown resource type %q", kind)
	}
}

func attrString(attrs map[string]interface{}, key string) string {
	v, _ := attrs[key].(string)
	return v
}

func attrInt(attrs map[string]interface{}, key string) int {
	switch v := attrs[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	default:
		return 0
	}
}
