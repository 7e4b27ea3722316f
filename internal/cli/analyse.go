// Package cli provides the command-line interface for Complexion.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/complexion/internal/image"
	"github.com/jmylchreest/complexion/internal/skin"
)

var (
	// Analyse command flags
	analyseFormat      string
	analyseOutput      string
	analyseShowPreview bool
)

// analyseCmd represents the analyse command
var analyseCmd = &cobra.Command{
	Use:   "analyse <image>",
	Short: "Estimate the skin tone of a single image",
	Long: `Analyse a single image and report its estimated skin tone.

The analyse command runs the full pipeline over one image and prints the
perceptual lightness value, the lightness category, and the representative
colour. Images with the face roughly centred in frame give the best
results; transparency is treated as background and ignored.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Analyse a local photo
  complexion analyse portrait.jpg

  # Analyse a remote image with a colour swatch
  complexion analyse --preview https://example.com/portrait.png

  # Output as JSON
  complexion analyse --format json portrait.jpg

  # Save the result to a file
  complexion analyse --output tone.txt portrait.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyse,
}

func init() {
	// Define flags for the analyse command
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", "text", "output format (text, hex, json)")
	analyseCmd.Flags().StringVarP(&analyseOutput, "output", "o", "", "output file (default: stdout)")
	analyseCmd.Flags().BoolVar(&analyseShowPreview, "preview", false, "show a colour swatch in the terminal")
}

// analyseResult is the JSON shape of a single analysis.
type analyseResult struct {
	skin.Profile
	Hex       string `json:"hex"`
	Confident bool   `json:"confident"`
}

// runAnalyse executes the analyse command.
func runAnalyse(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	// Validate the image path
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
	}

	analyzer := skin.NewAnalyzer()
	profile, selection, err := analyzer.AnalyzeSelection(img)
	if err != nil {
		return fmt.Errorf("failed to analyse image: %w", err)
	}

	if verbose && !selection.Confident {
		fmt.Fprintln(os.Stderr, "Warning: no cluster passed the skin gates; reporting best-effort fallback")
	}

	output, err := formatProfile(profile, selection)
	if err != nil {
		return err
	}

	// Write output to file or stdout
	if analyseOutput != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "Writing output to: %s\n", analyseOutput)
		}
		if err := os.WriteFile(analyseOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatProfile formats the analysis result according to the requested format.
func formatProfile(profile skin.Profile, selection skin.Selection) (string, error) {
	switch analyseFormat {
	case "text", "":
		if analyseShowPreview && term.IsTerminal(int(os.Stdout.Fd())) {
			return profile.PreviewString() + "\n", nil
		}
		return profile.String() + "\n", nil
	case "hex":
		return profile.RGB.Hex() + "\n", nil
	case "json":
		result := analyseResult{
			Profile:   profile,
			Hex:       profile.RGB.Hex(),
			Confident: selection.Confident,
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, hex, json)", analyseFormat)
	}
}
