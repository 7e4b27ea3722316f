// Package batch runs the skin tone pipeline over a directory of images and
// produces a tabular report.
package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/jszwec/csvutil"

	"github.com/jmylchreest/complexion/internal/skin"
	"github.com/jmylchreest/complexion/internal/util"
)

// ErrorCategory marks the report row of an image that failed to analyse.
const ErrorCategory = "ERROR"

// Row is one line of the batch report. Numeric fields are pointers so that
// failed images serialise as empty cells rather than zeroes.
type Row struct {
	Filename string   `csv:"filename"`
	LValue   *float64 `csv:"L_value"`
	Category string   `csv:"category"`
	R        *uint8   `csv:"r"`
	G        *uint8   `csv:"g"`
	B        *uint8   `csv:"b"`
	RGBHex   string   `csv:"rgb_hex"`
}

// NewRow builds a report row from a successful analysis.
func NewRow(path string, profile skin.Profile) Row {
	l := profile.L
	r, g, b := profile.RGB.R, profile.RGB.G, profile.RGB.B
	return Row{
		Filename: filepath.Base(path),
		LValue:   &l,
		Category: string(profile.Category),
		R:        &r,
		G:        &g,
		B:        &b,
		RGBHex:   util.StripHash(profile.RGB.Hex()),
	}
}

// NewErrorRow builds the degraded row recorded when one image fails. The
// numeric fields stay empty and the category carries the error marker.
func NewErrorRow(path string) Row {
	return Row{
		Filename: filepath.Base(path),
		Category: ErrorCategory,
	}
}

// SortRows orders rows ascending by lightness; rows without a lightness
// value (failed images) sort last. The sort is stable, so failed images
// keep their directory order among themselves.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		li, lj := rows[i].LValue, rows[j].LValue
		switch {
		case li == nil:
			return false
		case lj == nil:
			return true
		default:
			return *li < *lj
		}
	})
}

// WriteCSV marshals the rows to CSV, header included.
func WriteCSV(w io.Writer, rows []Row) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
