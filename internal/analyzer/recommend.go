// internal/analyzer/recommend.go
package analyzer

import "cloud-advisor/internal/models"

// Fixed recommendation names; dependency edges reference these.
const (
	NameWebServer    = "WebServer"
	NameWebsiteVCN   = "WebsiteVCN"
	NameLoadBalancer = "WebsiteLoadBalancer"
	NameWebsiteDB    = "WebsiteDB"
	NameStorage      = "WebsiteStorage"
	NameBucket       = "WebsiteBucket"

	defaultImageID = "Oracle-Linux-8.6-2022.05.31-0"
	currencyUSD    = "USD"
)

// Monthly cost model: flat rates per unit of the dominant sizing dimension.
const (
	computeCostPerOCPU   = 50.0
	lbBaseCost           = 10.0
	lbCostPerMbpsHour    = 0.0017
	hoursPerMonth        = 730
	dbCostPerCore        = 900.0
	storageCostPerGB     = 0.0255
	bucketAssumedSizeGBs = 100
)

// BuildRecommendations converts the requirement records into the ordered
// recommendation batch. Order is fixed: compute, network, then the
// conditional load balancer and database, storage, and the bucket.
func BuildRecommendations(req models.Requirements) []models.Recommendation {
	recs := make([]models.Recommendation, 0, 6)

	compute := req.Compute
	recs = append(recs, models.Recommendation{
		Kind:        models.KindCompute,
		Name:        NameWebServer,
		Description: "Compute instance for hosting the website",
		Spec: models.ComputeSpec{
			Shape:         compute.Shape,
			OCPUs:         compute.OCPUs,
			MemoryGBs:     compute.MemoryGBs,
			InstanceCount: compute.InstanceCount,
			ImageID:       defaultImageID,
		},
		EstimatedCost: models.EstimatedCost{
			Monthly:  computeCostPerOCPU * float64(compute.OCPUs) * float64(compute.InstanceCount),
			Currency: currencyUSD,
		},
	})

	network := req.Network
	recs = append(recs, models.Recommendation{
		Kind:        models.KindNetwork,
		Name:        NameWebsiteVCN,
		Description: "Virtual Cloud Network for the website",
		Spec: models.NetworkSpec{
			VCNCIDR:       network.VCNCIDR,
			SubnetCIDR:    network.SubnetCIDR,
			SecurityRules: network.SecurityRules,
		},
		EstimatedCost: models.EstimatedCost{
			Monthly:  0, // the VCN itself is free
			Currency: currencyUSD,
		},
	})

	if lb := network.LoadBalancer; lb != nil {
		recs = append(recs, models.Recommendation{
			Kind:        models.KindLoadBalancer,
			Name:        NameLoadBalancer,
			Description: "Load balancer for distributing traffic",
			Spec: models.LoadBalancerSpec{
				Shape:            lb.Shape,
				MinBandwidthMbps: lb.MinBandwidthMbps,
				MaxBandwidthMbps: lb.MaxBandwidthMbps,
			},
			EstimatedCost: models.EstimatedCost{
				Monthly:  lbBaseCost + lbCostPerMbpsHour*hoursPerMonth*float64(lb.MinBandwidthMbps),
				Currency: currencyUSD,
			},
			Dependencies: []string{NameWebsiteVCN},
		})
	}

	if db := req.Database; db != nil {
		recs = append(recs, models.Recommendation{
			Kind:        models.KindDatabase,
			Name:        NameWebsiteDB,
			Description: "Database for the website",
			Spec: models.DatabaseSpec{
				Type:         db.Type,
				WorkloadType: db.WorkloadType,
				StorageTBs:   db.StorageTBs,
				CPUCoreCount: db.CPUCoreCount,
			},
			EstimatedCost: models.EstimatedCost{
				Monthly:  dbCostPerCore * float64(db.CPUCoreCount),
				Currency: currencyUSD,
			},
			Dependencies: []string{NameWebsiteVCN},
		})
	}

	storage := req.Storage
	recs = append(recs, models.Recommendation{
		Kind:        models.KindStorage,
		Name:        NameStorage,
		Description: "Block volume for the website",
		Spec: models.BlockStorageSpec{
			SizeGBs:   storage.BlockVolumeGBs,
			VPUsPerGB: 10,
		},
		EstimatedCost: models.EstimatedCost{
			Monthly:  storageCostPerGB * float64(storage.BlockVolumeGBs),
			Currency: currencyUSD,
		},
		Dependencies: []string{NameWebServer},
	})

	if storage.ObjectStorage {
		recs = append(recs, models.Recommendation{
			Kind:        models.KindStorage,
			Name:        NameBucket,
			Description: "Object storage bucket for static assets",
			Spec: models.ObjectStorageSpec{
				StorageTier: "Standard",
				AutoTiering: true,
			},
			EstimatedCost: models.EstimatedCost{
				Monthly:  storageCostPerGB * bucketAssumedSizeGBs,
				Currency: currencyUSD,
			},
		})
	}

	return recs
}
