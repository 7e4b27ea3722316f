package skin

import "errors"

// Pipeline error conditions. Each stage either fully succeeds or fails with
// one of these; no partial results are returned. Callers match them with
// errors.Is after unwrapping.
var (
	// ErrEmptyInput indicates the image holds no valid (sufficiently opaque) pixels.
	ErrEmptyInput = errors.New("no valid pixels in image")

	// ErrInsufficientData indicates fewer valid pixels than the cluster count.
	ErrInsufficientData = errors.New("not enough pixels to cluster")

	// ErrEmptyCenterPatch indicates the centred face patch holds no valid pixels.
	ErrEmptyCenterPatch = errors.New("no valid pixels in centre patch")

	// ErrNoSkinPixels indicates the selected cluster has no member pixels.
	ErrNoSkinPixels = errors.New("selected cluster has no pixels")
)
