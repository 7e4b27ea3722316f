// Complexion - skin tone estimation from images
//
// Complexion estimates a representative skin tone from a photo of a face:
// a perceptual lightness value, a lightness category, and an RGB colour.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/complexion/internal/cli"
)

func main() {
	cli.Execute()
}
