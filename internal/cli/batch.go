// Package cli provides the command-line interface for Complexion.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/complexion/internal/batch"
	"github.com/jmylchreest/complexion/internal/skin"
)

var (
	// Batch command flags
	batchOutput  string
	batchFormat  string
	batchWorkers int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Analyse every image in a directory",
	Long: `Analyse every supported image in a directory and produce a report.

Each image yields one row with its filename, lightness value, category and
representative colour, sorted from darkest to lightest. An image that fails
to load or analyse is recorded with category ERROR and empty numeric
fields; the run always continues to the next file.

Examples:
  # Write a CSV report to stdout
  complexion batch ./photos

  # Write the report to a file
  complexion batch --output tones.csv ./photos

  # Render a table instead of CSV
  complexion batch --format table ./photos

  # Analyse four images at a time
  complexion batch --workers 4 ./photos`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	// Define flags for the batch command
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output file (default: stdout)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "csv", "output format (csv, table)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 1, "number of images to analyse concurrently")
}

// runBatch executes the batch command.
func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	verbose, _ := cmd.Flags().GetBool("verbose")
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "batch",
		Output: os.Stderr,
		Level:  level,
	})

	analyzer := skin.NewAnalyzer(skin.WithLogger(logger.Named("skin")))
	runner := batch.NewRunner(analyzer, logger, batchWorkers)

	rows, err := runner.Run(dir)
	if err != nil {
		return err
	}

	output, err := formatRows(rows)
	if err != nil {
		return err
	}

	if batchOutput != "" {
		if err := os.WriteFile(batchOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(rows), batchOutput)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatRows renders the report rows in the requested format.
func formatRows(rows []batch.Row) (string, error) {
	switch batchFormat {
	case "csv", "":
		var sb strings.Builder
		if err := batch.WriteCSV(&sb, rows); err != nil {
			return "", err
		}
		return sb.String(), nil
	case "table":
		table := NewTable([]string{"Filename", "L*", "Category", "RGB"})
		table.AlignRight(1)
		for _, row := range rows {
			l := ""
			rgb := ""
			if row.LValue != nil {
				l = fmt.Sprintf("%.1f", *row.LValue)
				rgb = "#" + row.RGBHex
			}
			table.AddRow([]string{row.Filename, l, row.Category, rgb})
		}
		return table.Render(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: csv, table)", batchFormat)
	}
}
