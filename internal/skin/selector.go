package skin

import (
	"sort"
)

// Selection is the outcome of cluster selection. Confident is true when the
// winning cluster cleared the brightness, size and skin-likeness gates, and
// false when it is only the best-effort fallback of the highest score.
type Selection struct {
	ID        int
	Confident bool
	Score     float64
}

// clusterCandidate carries the derived attributes of one cluster inside the
// centre patch.
type clusterCandidate struct {
	id         int
	median     [3]float64
	brightness float64
	variance   float64
	size       int
	skinLike   bool
	score      float64
}

// SelectCluster picks the cluster that most likely represents skin. Only
// pixels inside the centred square patch are considered: half-width
// min(width,height)/PatchDivisor around (width/2, height/2), which is where
// a roughly centred face puts its skin. Each represented cluster is scored
// on brightness, colour uniformity and patch coverage, boosted when its
// median colour passes the skin heuristic. Returns ErrEmptyCenterPatch when
// the patch holds no valid pixel; once it does, selection always succeeds.
func SelectCluster(set *PixelSet, labels []int, k int, cfg ScoringConfig) (Selection, error) {
	cx := set.Width / 2
	cy := set.Height / 2
	half := min(set.Width, set.Height) / cfg.PatchDivisor

	members := make(map[int][]int)
	total := 0
	for i, pt := range set.Coords {
		if absInt(pt.X-cx) > half || absInt(pt.Y-cy) > half {
			continue
		}
		members[labels[i]] = append(members[labels[i]], i)
		total++
	}

	if total == 0 {
		return Selection{}, ErrEmptyCenterPatch
	}

	candidates := make([]clusterCandidate, 0, k)
	for id := 0; id < k; id++ {
		indices, ok := members[id]
		if !ok {
			continue
		}

		median := medianColor(set.Colors, indices)
		brightness := (median[0] + median[1] + median[2]) / 3.0
		variance := meanChannelVariance(set.Colors, indices)
		rgb := toRGB(median)
		skinLike := IsSkin(rgb.R, rgb.G, rgb.B)

		score := cfg.BrightnessWeight*brightness +
			cfg.UniformityWeight*(1.0-variance) +
			cfg.SizeWeight*(float64(len(indices))/float64(total))
		if skinLike {
			score *= cfg.SkinBoost
		}

		candidates = append(candidates, clusterCandidate{
			id:         id,
			median:     median,
			brightness: brightness,
			variance:   variance,
			size:       len(indices),
			skinLike:   skinLike,
			score:      score,
		})
	}

	// Stable sort keeps cluster-id order among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	minSize := cfg.MinSizeFraction * float64(total)
	for _, cand := range candidates {
		if cand.brightness > cfg.MinBrightness && float64(cand.size) > minSize && cand.skinLike {
			return Selection{ID: cand.id, Confident: true, Score: cand.score}, nil
		}
	}

	// Nothing looked convincingly like skin; fall back to the top score.
	best := candidates[0]
	return Selection{ID: best.id, Confident: false, Score: best.score}, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
