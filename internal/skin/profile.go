// Package skin estimates a representative skin tone from a single image.
package skin

import "fmt"

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#d2aa8c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Category is the discrete lightness band of a skin tone.
type Category string

const (
	CategoryVeryLight   Category = "Very Light"
	CategoryLight       Category = "Light"
	CategoryMediumLight Category = "Medium Light"
	CategoryMedium      Category = "Medium"
	CategoryMediumDark  Category = "Medium Dark"
	CategoryDark        Category = "Dark"
	CategoryVeryDark    Category = "Very Dark"
)

// categoryBand pairs an inclusive lower L* bound with its category.
// Bands are contiguous and exhaustive over [0,100]; a boundary value
// belongs to the higher band.
type categoryBand struct {
	MinL     float64
	Category Category
}

// categoryBands is ordered from lightest to darkest so the first match wins.
var categoryBands = []categoryBand{
	{85, CategoryVeryLight},
	{70, CategoryLight},
	{55, CategoryMediumLight},
	{40, CategoryMedium},
	{25, CategoryMediumDark},
	{10, CategoryDark},
	{0, CategoryVeryDark},
}

// CategoriseLightness maps a perceptual lightness value onto its category.
func CategoriseLightness(l float64) Category {
	for _, band := range categoryBands {
		if l >= band.MinL {
			return band.Category
		}
	}
	// l < 0 only happens on malformed input; darkest band is the sane answer.
	return CategoryVeryDark
}

// Profile is the summarised skin tone of one image: a perceptual lightness
// value (CIE L*, 0-100), its discrete category, and a representative colour.
type Profile struct {
	L        float64  `json:"l_value"`
	Category Category `json:"category"`
	RGB      RGB      `json:"rgb"`
}

// String returns a human-readable one-line summary of the profile.
func (p Profile) String() string {
	return fmt.Sprintf("L*=%.1f %s %s", p.L, p.Category, p.RGB.Hex())
}
