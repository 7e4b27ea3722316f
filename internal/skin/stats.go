package skin

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// quantile returns the p-quantile of values with linear interpolation.
// The input slice is not modified.
func quantile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// channelValues gathers one colour channel of the given pixel indices.
func channelValues(colors [][3]float64, indices []int, channel int) []float64 {
	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = colors[idx][channel]
	}
	return values
}

// medianColor computes the per-channel median colour of the given pixels.
func medianColor(colors [][3]float64, indices []int) [3]float64 {
	var median [3]float64
	for ch := 0; ch < 3; ch++ {
		median[ch] = quantile(channelValues(colors, indices, ch), 0.5)
	}
	return median
}

// meanChannelVariance computes the mean of the per-channel population
// variances over the given pixels.
func meanChannelVariance(colors [][3]float64, indices []int) float64 {
	if len(indices) < 2 {
		return 0
	}
	total := 0.0
	for ch := 0; ch < 3; ch++ {
		total += stat.PopVariance(channelValues(colors, indices, ch), nil)
	}
	return total / 3.0
}

// toRGB truncates a normalised colour to 8-bit channels. Truncation rather
// than rounding matches the summarisation contract.
func toRGB(c [3]float64) RGB {
	return RGB{
		R: truncateChannel(c[0]),
		G: truncateChannel(c[1]),
		B: truncateChannel(c[2]),
	}
}

func truncateChannel(v float64) uint8 {
	scaled := v * channelScale
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
