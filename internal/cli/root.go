// Package cli provides the command-line interface for Complexion.
package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/complexion/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "complexion",
	Short: "Estimate a representative skin tone from an image",
	Long: `Complexion estimates a representative skin tone from a photo of a face.

Given an image with the face roughly centred in frame, it classifies
skin-like pixels across several colour spaces, clusters the image colours,
picks the cluster that best matches skin, and reports a perceptual
lightness value (CIE L*), a discrete lightness category, and a
representative RGB colour.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(batchCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
