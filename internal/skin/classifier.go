package skin

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Skin heuristic thresholds, combined across three colour spaces. The RGB
// and normalised-RGB rules must agree, or the HSV and YCrCb rules must.
// Hue uses the OpenCV convention (0-179), saturation/value and the YCrCb
// channels are 0-255.
const (
	skinMinR          = 95.0
	skinMinG          = 40.0
	skinMinB          = 20.0
	skinMinSpread     = 15.0 // max(r,g,b) - min(r,g,b)
	skinMinRGGap      = 15.0 // |r - g|
	skinMinNormR      = 0.35
	skinMaxNormB      = 0.35
	skinMaxNormRGGap  = 0.35
	skinMaxHue        = 50.0
	skinMinSaturation = 10.0
	skinMaxSaturation = 180.0
	skinMinValue      = 80.0
	skinMinCr         = 135.0
	skinMaxCr         = 180.0
	skinMinCb         = 85.0
	skinMaxCb         = 135.0
)

// IsSkin reports whether a single colour is skin-like. It is a pure
// heuristic over the RGB, normalised-RGB, HSV and YCrCb representations of
// the input; a colour passes when either the two RGB-based rules or the two
// chroma-based rules hold.
func IsSkin(r, g, b uint8) bool {
	rf, gf, bf := float64(r), float64(g), float64(b)

	sum := rf + gf + bf
	if sum == 0 {
		return false
	}

	nr := rf / sum
	ng := gf / sum
	nb := bf / sum

	maxC := max(rf, gf, bf)
	minC := min(rf, gf, bf)

	rgbRule := rf > skinMinR && gf > skinMinG && bf > skinMinB &&
		maxC-minC > skinMinSpread &&
		absFloat(rf-gf) > skinMinRGGap &&
		rf > gf && rf > bf

	normRule := nr > skinMinNormR && nb < skinMaxNormB &&
		nr > ng && ng > nb &&
		absFloat(nr-ng) < skinMaxNormRGGap

	if rgbRule && normRule {
		return true
	}

	h, s, v := hsvOpenCV(r, g, b)
	hsvRule := h >= 0 && h <= skinMaxHue &&
		s >= skinMinSaturation && s <= skinMaxSaturation &&
		v >= skinMinValue

	if !hsvRule {
		return false
	}

	_, cr, cb := ycrcb(r, g, b)
	return cr >= skinMinCr && cr <= skinMaxCr &&
		cb >= skinMinCb && cb <= skinMaxCb
}

// hsvOpenCV converts an 8-bit RGB colour to HSV scaled the way OpenCV does:
// hue in [0,180), saturation and value in [0,255].
func hsvOpenCV(r, g, b uint8) (h, s, v float64) {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h360, s1, v1 := c.Hsv()
	return h360 / 2.0, s1 * 255.0, v1 * 255.0
}

// ycrcb converts an 8-bit RGB colour to full-range YCrCb (ITU-R BT.601).
func ycrcb(r, g, b uint8) (y, cr, cb float64) {
	yy, ccb, ccr := color.RGBToYCbCr(r, g, b)
	return float64(yy), float64(ccr), float64(ccb)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
