package skin

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"
)

// Analyzer runs the full skin tone pipeline over single images:
// feature extraction, clustering, cluster selection and summarisation, in
// one synchronous pass. Analyzers hold no per-image state and are safe to
// reuse across images.
type Analyzer struct {
	clusterer Clusterer
	cfg       ScoringConfig
	log       hclog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClusterer replaces the default k-means clusterer.
func WithClusterer(c Clusterer) Option {
	return func(a *Analyzer) {
		a.clusterer = c
	}
}

// WithConfig replaces the default scoring configuration.
func WithConfig(cfg ScoringConfig) Option {
	return func(a *Analyzer) {
		a.cfg = cfg
	}
}

// WithLogger attaches a logger for per-stage diagnostics.
func WithLogger(log hclog.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}

// NewAnalyzer creates an Analyzer with the calibrated defaults.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg: DefaultConfig(),
		log: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.clusterer == nil {
		a.clusterer = NewKMeansClusterer(a.cfg.Restarts)
	}
	return a
}

// Analyze estimates the skin tone profile of one image.
func (a *Analyzer) Analyze(img image.Image) (Profile, error) {
	profile, _, err := a.AnalyzeSelection(img)
	return profile, err
}

// AnalyzeSelection is Analyze with the cluster selection outcome exposed,
// so callers can tell a confident match from a best-effort fallback.
func (a *Analyzer) AnalyzeSelection(img image.Image) (Profile, Selection, error) {
	set, err := ExtractFeatures(img)
	if err != nil {
		return Profile{}, Selection{}, fmt.Errorf("feature extraction: %w", err)
	}
	a.log.Debug("extracted features", "pixels", set.Len(), "width", set.Width, "height", set.Height)

	labels, err := a.clusterer.Cluster(set.Features, a.cfg.ClusterCount)
	if err != nil {
		return Profile{}, Selection{}, fmt.Errorf("clustering: %w", err)
	}

	selection, err := SelectCluster(set, labels, a.cfg.ClusterCount, a.cfg)
	if err != nil {
		return Profile{}, Selection{}, fmt.Errorf("cluster selection: %w", err)
	}
	a.log.Debug("selected cluster", "id", selection.ID, "confident", selection.Confident, "score", selection.Score)

	profile, err := Summarize(set, labels, selection.ID, a.cfg)
	if err != nil {
		return Profile{}, Selection{}, fmt.Errorf("summarisation: %w", err)
	}
	a.log.Debug("summarised skin tone", "l", profile.L, "category", profile.Category, "rgb", profile.RGB.Hex())

	return profile, selection, nil
}
