package skin

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// uniformImage builds a fully opaque image of one colour.
func uniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestExtractFeaturesCoIndexed(t *testing.T) {
	img := uniformImage(4, 3, color.NRGBA{R: 210, G: 170, B: 140, A: 255})

	set, err := ExtractFeatures(img)
	if err != nil {
		t.Fatalf("ExtractFeatures returned error: %v", err)
	}

	if set.Len() != 12 {
		t.Errorf("Expected 12 valid pixels, got %d", set.Len())
	}
	if len(set.Coords) != len(set.Colors) || len(set.Colors) != len(set.Features) {
		t.Errorf("Slices not co-indexed: coords=%d colors=%d features=%d",
			len(set.Coords), len(set.Colors), len(set.Features))
	}
	if set.Width != 4 || set.Height != 3 {
		t.Errorf("Expected dimensions 4x3, got %dx%d", set.Width, set.Height)
	}
}

func TestExtractFeaturesNormalisation(t *testing.T) {
	img := uniformImage(1, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	set, err := ExtractFeatures(img)
	if err != nil {
		t.Fatalf("ExtractFeatures returned error: %v", err)
	}

	vec := set.Features[0]
	if len(vec) != 9 {
		t.Fatalf("Expected 9-dimensional feature vector, got %d", len(vec))
	}

	// RGB channels: pure red.
	if vec[0] != 1 || vec[1] != 0 || vec[2] != 0 {
		t.Errorf("Expected rgb features (1,0,0), got (%f,%f,%f)", vec[0], vec[1], vec[2])
	}
	// HSV channels: hue 0, full saturation and value.
	if vec[3] != 0 || vec[4] != 1 || vec[5] != 1 {
		t.Errorf("Expected hsv features (0,1,1), got (%f,%f,%f)", vec[3], vec[4], vec[5])
	}
	// Every feature stays within [0,1].
	for i, v := range vec {
		if v < 0 || v > 1 {
			t.Errorf("Feature %d out of range: %f", i, v)
		}
	}
}

func TestExtractFeaturesAlphaFloor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 127}) // excluded
	img.SetNRGBA(1, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 128}) // included

	set, err := ExtractFeatures(img)
	if err != nil {
		t.Fatalf("ExtractFeatures returned error: %v", err)
	}

	if set.Len() != 1 {
		t.Fatalf("Expected exactly 1 valid pixel, got %d", set.Len())
	}
	if set.Coords[0].X != 1 || set.Coords[0].Y != 0 {
		t.Errorf("Expected the opaque pixel at (1,0), got %v", set.Coords[0])
	}
}

func TestExtractFeaturesEmpty(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{
			name: "fully transparent",
			img:  uniformImage(4, 4, color.NRGBA{R: 200, G: 150, B: 120, A: 0}),
		},
		{
			name: "zero size",
			img:  image.NewNRGBA(image.Rect(0, 0, 0, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractFeatures(tt.img)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("Expected ErrEmptyInput, got %v", err)
			}
		})
	}
}
