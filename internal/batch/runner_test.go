package batch

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/complexion/internal/skin"
)

// writeSkinPNG writes a uniform skin-coloured test image.
func writeSkinPNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func TestRunnerContinuesOnError(t *testing.T) {
	dir := t.TempDir()

	writeSkinPNG(t, filepath.Join(dir, "light.png"), color.NRGBA{R: 230, G: 200, B: 180, A: 255})
	writeSkinPNG(t, filepath.Join(dir, "dark.png"), color.NRGBA{R: 110, G: 80, B: 60, A: 255})
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}

	runner := NewRunner(skin.NewAnalyzer(), nil, 1)
	rows, err := runner.Run(dir)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	// Sorted ascending by lightness, the broken image last.
	if rows[0].Filename != "dark.png" || rows[1].Filename != "light.png" {
		t.Errorf("Unexpected row order: %q, %q", rows[0].Filename, rows[1].Filename)
	}
	if rows[2].Filename != "broken.png" || rows[2].Category != ErrorCategory {
		t.Errorf("Expected broken.png as error row, got %+v", rows[2])
	}
	if rows[0].LValue == nil || rows[1].LValue == nil {
		t.Fatal("Expected lightness values on successful rows")
	}
	if *rows[0].LValue >= *rows[1].LValue {
		t.Errorf("Rows not sorted by lightness: %f >= %f", *rows[0].LValue, *rows[1].LValue)
	}
}

func TestRunnerParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	writeSkinPNG(t, filepath.Join(dir, "a.png"), color.NRGBA{R: 210, G: 170, B: 140, A: 255})
	writeSkinPNG(t, filepath.Join(dir, "b.png"), color.NRGBA{R: 150, G: 110, B: 90, A: 255})
	writeSkinPNG(t, filepath.Join(dir, "c.png"), color.NRGBA{R: 240, G: 220, B: 200, A: 255})

	sequential, err := NewRunner(skin.NewAnalyzer(), nil, 1).Run(dir)
	if err != nil {
		t.Fatalf("Sequential run returned error: %v", err)
	}
	parallel, err := NewRunner(skin.NewAnalyzer(), nil, 3).Run(dir)
	if err != nil {
		t.Fatalf("Parallel run returned error: %v", err)
	}

	if len(sequential) != len(parallel) {
		t.Fatalf("Row counts differ: %d vs %d", len(sequential), len(parallel))
	}
	for i := range sequential {
		if sequential[i].Filename != parallel[i].Filename {
			t.Errorf("Row %d differs: %q vs %q", i, sequential[i].Filename, parallel[i].Filename)
		}
	}
}

func TestRunnerMissingDirectory(t *testing.T) {
	runner := NewRunner(skin.NewAnalyzer(), nil, 1)
	if _, err := runner.Run(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
