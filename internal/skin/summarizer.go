package skin

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// Summarize reduces the selected cluster to a single skin tone profile. All
// pixels of the cluster take part, not just those inside the centre patch.
// A brightness tail filter drops pixels darker than a share of the
// per-channel 95th percentile (shadowed skin, eyebrows bleeding into the
// cluster); when the filter would empty the set it is skipped. The filtered
// pixels collapse to their per-channel median, which is truncated to 8-bit
// RGB and converted to CIE L* for categorisation.
func Summarize(set *PixelSet, labels []int, clusterID int, cfg ScoringConfig) (Profile, error) {
	var indices []int
	for i, label := range labels {
		if label == clusterID {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return Profile{}, ErrNoSkinPixels
	}

	threshold := brightnessThreshold(set.Colors, indices, cfg)

	var kept []int
	for _, idx := range indices {
		c := set.Colors[idx]
		if (c[0]+c[1]+c[2])/3.0 > threshold {
			kept = append(kept, idx)
		}
	}
	if len(kept) == 0 {
		kept = indices
	}

	median := medianColor(set.Colors, kept)
	rgb := toRGB(median)
	l := lightness(rgb)

	return Profile{
		L:        l,
		Category: CategoriseLightness(l),
		RGB:      rgb,
	}, nil
}

// brightnessThreshold computes the dark-tail cutoff: the mean of the
// per-channel high percentiles, scaled down by the configured factor.
func brightnessThreshold(colors [][3]float64, indices []int, cfg ScoringConfig) float64 {
	percentiles := make([]float64, 3)
	for ch := 0; ch < 3; ch++ {
		percentiles[ch] = quantile(channelValues(colors, indices, ch), cfg.PercentileRank)
	}
	return stat.Mean(percentiles, nil) * cfg.PercentileScale
}

// lightness converts an 8-bit RGB colour to CIE L* in [0,100].
func lightness(rgb RGB) float64 {
	c := colorful.Color{
		R: float64(rgb.R) / channelScale,
		G: float64(rgb.G) / channelScale,
		B: float64(rgb.B) / channelScale,
	}
	l, _, _ := c.Lab()
	return l * 100.0
}
