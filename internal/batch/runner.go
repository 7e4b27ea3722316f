package batch

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	loader "github.com/jmylchreest/complexion/internal/image"
	"github.com/jmylchreest/complexion/internal/skin"
)

// Runner analyses every image in a directory, one row per image. A failed
// image degrades to an error row and the run continues; only an unreadable
// directory aborts the whole run.
type Runner struct {
	loader   loader.Loader
	analyzer *skin.Analyzer
	log      hclog.Logger
	workers  int
}

// NewRunner creates a Runner. Images share no state, so workers > 1 simply
// analyses that many images concurrently.
func NewRunner(analyzer *skin.Analyzer, log hclog.Logger, workers int) *Runner {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		loader:   loader.NewFileLoader(),
		analyzer: analyzer,
		log:      log,
		workers:  workers,
	}
}

// Run enumerates the directory and returns the report rows sorted ascending
// by lightness, failed images last.
func (r *Runner) Run(dir string) ([]Row, error) {
	paths, err := loader.ScanDirectoryForImages(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	rows := make([]Row, len(paths))

	if r.workers == 1 {
		for i, path := range paths {
			rows[i] = r.processOne(path)
		}
	} else {
		indices := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < r.workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indices {
					rows[i] = r.processOne(paths[i])
				}
			}()
		}
		for i := range paths {
			indices <- i
		}
		close(indices)
		wg.Wait()
	}

	SortRows(rows)
	return rows, nil
}

// processOne analyses a single image, degrading any failure to an error row.
func (r *Runner) processOne(path string) Row {
	img, err := r.loader.Load(path)
	if err != nil {
		r.log.Warn("failed to load image", "path", path, "error", err)
		return NewErrorRow(path)
	}

	profile, selection, err := r.analyzer.AnalyzeSelection(img)
	if err != nil {
		r.log.Warn("failed to analyse image", "path", path, "error", err)
		return NewErrorRow(path)
	}

	r.log.Info("analysed image",
		"path", path,
		"l", profile.L,
		"category", profile.Category,
		"rgb", profile.RGB.Hex(),
		"confident", selection.Confident,
	)
	return NewRow(path, profile)
}
