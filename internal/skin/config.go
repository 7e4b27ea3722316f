package skin

// ScoringConfig collects the tuned constants of the cluster-selection and
// summarisation stages. The defaults were calibrated against centred
// portrait photos; they are exposed as a single structure so they can be
// adjusted and tested independently of the algorithm.
type ScoringConfig struct {
	// ClusterCount is the fixed number of colour clusters per image.
	ClusterCount int

	// Restarts is how many random k-means restarts to run per image.
	Restarts int

	// PatchDivisor controls the centre patch half-width:
	// min(width,height)/PatchDivisor around the image centre.
	PatchDivisor int

	// BrightnessWeight, UniformityWeight and SizeWeight blend the three
	// cluster criteria into one score. They should sum to 1.
	BrightnessWeight float64
	UniformityWeight float64
	SizeWeight       float64

	// SkinBoost multiplies the score of clusters whose median colour
	// passes the skin heuristic.
	SkinBoost float64

	// MinBrightness is the brightness floor a cluster must clear to be a
	// confident match.
	MinBrightness float64

	// MinSizeFraction is the share of the centre patch a cluster must
	// cover to be a confident match.
	MinSizeFraction float64

	// PercentileRank and PercentileScale define the dark-tail filter of
	// the summariser: pixels keep only if their mean channel value exceeds
	// mean(per-channel PercentileRank percentile) * PercentileScale.
	PercentileRank  float64
	PercentileScale float64
}

// DefaultConfig returns the calibrated scoring configuration.
func DefaultConfig() ScoringConfig {
	return ScoringConfig{
		ClusterCount:     5,
		Restarts:         10,
		PatchDivisor:     4,
		BrightnessWeight: 0.4,
		UniformityWeight: 0.3,
		SizeWeight:       0.3,
		SkinBoost:        1.5,
		MinBrightness:    0.15,
		MinSizeFraction:  0.05,
		PercentileRank:   0.95,
		PercentileScale:  0.7,
	}
}
