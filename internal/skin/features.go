package skin

import (
	"fmt"
	"image"
	"image/color"
)

// alphaFloor is the opacity above which a pixel participates in the
// pipeline. Pixels at or below it are treated as transparent background.
const alphaFloor = 127

// Feature vector scaling. Hue uses the OpenCV 0-179 range; every other
// channel is 8-bit.
const (
	hueScale     = 179.0
	channelScale = 255.0
)

// PixelSet holds the valid pixels of one image in pipeline form. The three
// slices are co-indexed: Coords[i], Colors[i] and Features[i] all describe
// the same pixel.
type PixelSet struct {
	Width  int
	Height int

	// Coords holds (col, row) positions of valid pixels in image order.
	Coords []image.Point

	// Colors holds RGB triples normalised to [0,1].
	Colors [][3]float64

	// Features holds 9-dimensional vectors per pixel:
	// {r,g,b, h,s,v, y,cr,cb}, each scaled to [0,1].
	Features [][]float64
}

// Len returns the number of valid pixels in the set.
func (ps *PixelSet) Len() int {
	return len(ps.Coords)
}

// ExtractFeatures converts a decoded image into the co-indexed coordinate,
// colour and feature slices the clustering stages consume. Only pixels with
// opacity above the alpha floor are included; images without an alpha
// channel are fully opaque. Returns ErrEmptyInput when nothing survives.
func ExtractFeatures(img image.Image) (*PixelSet, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	set := &PixelSet{
		Width:  width,
		Height: height,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// NRGBA keeps the stored colour of semi-transparent pixels
			// instead of the premultiplied one.
			nrgba := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if nrgba.A <= alphaFloor {
				continue
			}

			set.Coords = append(set.Coords, image.Point{X: x - bounds.Min.X, Y: y - bounds.Min.Y})
			set.Colors = append(set.Colors, [3]float64{
				float64(nrgba.R) / channelScale,
				float64(nrgba.G) / channelScale,
				float64(nrgba.B) / channelScale,
			})
			set.Features = append(set.Features, featureVector(nrgba.R, nrgba.G, nrgba.B))
		}
	}

	if set.Len() == 0 {
		return nil, ErrEmptyInput
	}

	return set, nil
}

// featureVector builds the 9-d normalised feature vector for one colour.
func featureVector(r, g, b uint8) []float64 {
	h, s, v := hsvOpenCV(r, g, b)
	y, cr, cb := ycrcb(r, g, b)

	return []float64{
		float64(r) / channelScale,
		float64(g) / channelScale,
		float64(b) / channelScale,
		h / hueScale,
		s / channelScale,
		v / channelScale,
		y / channelScale,
		cr / channelScale,
		cb / channelScale,
	}
}
