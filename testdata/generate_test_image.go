// Test image generator for creating sample portraits for testing skin tone estimation
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	// Create a synthetic portrait: a centred block of skin tone over a
	// plain backdrop, roughly where a face sits in a framed photo
	width := 400
	height := 400
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	backdrop := color.NRGBA{R: 70, G: 90, B: 140, A: 255}
	skin := color.NRGBA{R: 210, G: 170, B: 140, A: 255}
	hair := color.NRGBA{R: 60, G: 40, B: 30, A: 255}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, backdrop)
		}
	}

	// Face block covering the centre patch
	for y := 120; y < 320; y++ {
		for x := 130; x < 270; x++ {
			img.SetNRGBA(x, y, skin)
		}
	}

	// Hair band above the face
	for y := 80; y < 120; y++ {
		for x := 120; x < 280; x++ {
			img.SetNRGBA(x, y, hair)
		}
	}

	f, err := os.Create("test_portrait.png")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}
