package skin

import (
	"fmt"
	"math"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Clusterer partitions feature vectors into k groups and returns one label
// per vector. Implementations own their randomness; the pipeline only
// depends on the labelling contract.
type Clusterer interface {
	Cluster(features [][]float64, k int) ([]int, error)
}

// KMeansClusterer clusters feature vectors with k-means, running several
// random restarts and keeping the labelling with the lowest inertia.
type KMeansClusterer struct {
	restarts int
}

// NewKMeansClusterer creates a KMeansClusterer with the given number of
// restarts. Values below 1 fall back to the default.
func NewKMeansClusterer(restarts int) *KMeansClusterer {
	if restarts < 1 {
		restarts = DefaultConfig().Restarts
	}
	return &KMeansClusterer{restarts: restarts}
}

// featureObservation adapts one feature vector for the clustering library
// while remembering which pixel it belongs to, so labels can be recovered
// from the partitioned clusters.
type featureObservation struct {
	index  int
	coords clusters.Coordinates
}

func (o featureObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o featureObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Cluster partitions the feature vectors into exactly k groups. Returns
// ErrInsufficientData when there are fewer vectors than clusters.
func (c *KMeansClusterer) Cluster(features [][]float64, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}
	if len(features) < k {
		return nil, fmt.Errorf("%w: %d pixels for %d clusters", ErrInsufficientData, len(features), k)
	}

	observations := make(clusters.Observations, len(features))
	for i, vec := range features {
		observations[i] = featureObservation{index: i, coords: clusters.Coordinates(vec)}
	}

	km := kmeans.New()

	var bestLabels []int
	bestInertia := math.MaxFloat64

	for restart := 0; restart < c.restarts; restart++ {
		partition, err := km.Partition(observations, k)
		if err != nil {
			return nil, fmt.Errorf("k-means partition failed: %w", err)
		}

		labels := make([]int, len(features))
		inertia := 0.0
		for clusterID, cluster := range partition {
			for _, obs := range cluster.Observations {
				fo := obs.(featureObservation)
				labels[fo.index] = clusterID
				inertia += fo.Distance(cluster.Center)
			}
		}

		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}

	return bestLabels, nil
}
