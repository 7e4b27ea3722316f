package skin

import (
	"errors"
	"image"
	"testing"
)

var (
	skinTone   = [3]float64{210.0 / 255.0, 170.0 / 255.0, 140.0 / 255.0}
	blueTone   = [3]float64{10.0 / 255.0, 10.0 / 255.0, 200.0 / 255.0}
	whiteTone  = [3]float64{1, 1, 1}
	shadowTone = [3]float64{20.0 / 255.0, 15.0 / 255.0, 10.0 / 255.0}
)

// gridSet builds a PixelSet covering every pixel of a width x height grid,
// with colour and label chosen per coordinate.
func gridSet(width, height int, classify func(x, y int) ([3]float64, int)) (*PixelSet, []int) {
	set := &PixelSet{Width: width, Height: height}
	var labels []int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, label := classify(x, y)
			set.Coords = append(set.Coords, image.Point{X: x, Y: y})
			set.Colors = append(set.Colors, c)
			labels = append(labels, label)
		}
	}
	return set, labels
}

// inPatch reports whether a coordinate falls inside the centred square
// patch for a width x height image (half-width min/4, inclusive bounds).
func inPatch(x, y, width, height int) bool {
	half := min(width, height) / 4
	cx, cy := width/2, height/2
	dx, dy := x-cx, y-cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= half && dy <= half
}

func TestSelectClusterPicksSkin(t *testing.T) {
	// Skin fills the centre patch, blue background everywhere else.
	set, labels := gridSet(10, 10, func(x, y int) ([3]float64, int) {
		if inPatch(x, y, 10, 10) {
			return skinTone, 0
		}
		return blueTone, 1
	})

	sel, err := SelectCluster(set, labels, 5, DefaultConfig())
	if err != nil {
		t.Fatalf("SelectCluster returned error: %v", err)
	}
	if sel.ID != 0 {
		t.Errorf("Expected skin cluster 0, got %d", sel.ID)
	}
	if !sel.Confident {
		t.Error("Expected a confident selection")
	}
}

func TestSelectClusterSkinBeatsBrighterBackground(t *testing.T) {
	// White covers most of the patch and scores high on brightness and
	// size, but only the skin cluster passes the skin gate.
	set, labels := gridSet(10, 10, func(x, y int) ([3]float64, int) {
		if inPatch(x, y, 10, 10) && y >= 4 && y <= 6 {
			return skinTone, 1
		}
		return whiteTone, 0
	})

	sel, err := SelectCluster(set, labels, 5, DefaultConfig())
	if err != nil {
		t.Fatalf("SelectCluster returned error: %v", err)
	}
	if sel.ID != 1 {
		t.Errorf("Expected skin cluster 1, got %d", sel.ID)
	}
	if !sel.Confident {
		t.Error("Expected a confident selection")
	}
}

func TestSelectClusterFallback(t *testing.T) {
	// Nothing skin-like anywhere; selection must still return the top
	// scoring cluster, flagged as a fallback.
	set, labels := gridSet(10, 10, func(x, y int) ([3]float64, int) {
		if inPatch(x, y, 10, 10) {
			return blueTone, 2
		}
		return shadowTone, 3
	})

	sel, err := SelectCluster(set, labels, 5, DefaultConfig())
	if err != nil {
		t.Fatalf("SelectCluster returned error: %v", err)
	}
	if sel.ID != 2 {
		t.Errorf("Expected the only patch cluster 2, got %d", sel.ID)
	}
	if sel.Confident {
		t.Error("Expected a fallback selection, got a confident one")
	}
}

func TestSelectClusterEmptyCenterPatch(t *testing.T) {
	// Valid pixels only in the image corners, outside the centre patch.
	set := &PixelSet{Width: 20, Height: 20}
	labels := []int{0, 0, 0, 0, 0}
	for _, pt := range []image.Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}, {1, 1}} {
		set.Coords = append(set.Coords, pt)
		set.Colors = append(set.Colors, skinTone)
	}

	_, err := SelectCluster(set, labels, 5, DefaultConfig())
	if !errors.Is(err, ErrEmptyCenterPatch) {
		t.Errorf("Expected ErrEmptyCenterPatch, got %v", err)
	}
}
