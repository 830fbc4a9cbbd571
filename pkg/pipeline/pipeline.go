// Package pipeline provides the build → render pipeline for capfig figures.
//
// The CLI never draws figures directly. It hands a [Request] to a [Runner],
// which builds the figure from the configuration, encodes it in every
// requested format and caches the bytes, so an unchanged configuration is
// served from the cache on the next run.
//
// # Stages
//
//  1. Build: run the figure's models (capacity curves, disk packings) and
//     lay out its panels
//  2. Render: encode the panels as PNG, SVG or PDF
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Request{
//	    Figure:  "fig3",
//	    Formats: []string{"png", "pdf"},
//	    Config:  cfg,
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts["png"]
//
// # Caching
//
// Artifacts are keyed by figure, format, DPI and a hash of the model
// configuration. Output settings that do not change the bytes (output
// directory, the default format list) are left out of the hash.
package pipeline

import (
	"bytes"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/capfig/pkg/cache"
	"github.com/matzehuels/capfig/pkg/config"
	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/figures"
	"github.com/matzehuels/capfig/pkg/render"
)

// TTLArtifact is the cache lifetime of rendered artifacts. Zero keeps them
// until the cache is cleared.
const TTLArtifact time.Duration = 0

// statsFormat is the pseudo-format under which a figure's stats are cached
// next to its artifacts.
const statsFormat = "stats"

// Request selects one figure and its outputs.
type Request struct {
	// Figure is a name accepted by figures.Lookup.
	Figure string
	// Formats defaults to Config.Render.Formats.
	Formats []string
	// Config defaults to config.Default().
	Config *config.Config
	// DPI overrides Config.Render.DPI when positive.
	DPI int
	// Refresh skips cache reads; results are still stored.
	Refresh bool

	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// Result is the output of one request.
type Result struct {
	Figure    *figures.Figure
	Artifacts map[string][]byte
	Stats     []figures.Stat
	Timing    Timing
	CacheHit  bool // every artifact came from the cache
}

// Timing records how long each stage took. Zero when served from cache.
type Timing struct {
	Build  time.Duration
	Render time.Duration
}

// resolved is a validated request.
type resolved struct {
	figure  *figures.Figure
	formats []string
	cfg     *config.Config
	dpi     int
	hash    string
	refresh bool
	logger  *log.Logger
}

// resolve validates the request and fills in defaults.
func (r Request) resolve() (*resolved, error) {
	fig, err := figures.Lookup(r.Figure)
	if err != nil {
		return nil, err
	}
	cfg := r.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	formats := r.Formats
	if len(formats) == 0 {
		formats = cfg.Render.Formats
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	dpi := cfg.Render.DPI
	if r.DPI > 0 {
		dpi = r.DPI
	}
	hash, err := ConfigHash(cfg)
	if err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &resolved{
		figure:  fig,
		formats: dedupe(formats),
		cfg:     cfg,
		dpi:     dpi,
		hash:    hash,
		refresh: r.Refresh,
		logger:  logger,
	}, nil
}

func (r *resolved) key(k cache.Keyer, format string) string {
	return k.ArtifactKey(r.figure.Name, cache.ArtifactKeyOpts{
		Format:     format,
		DPI:        r.dpi,
		ConfigHash: r.hash,
	})
}

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range formats {
		if render.ContentType(f) == "application/octet-stream" {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, pdf)", f)
		}
	}
	return nil
}

// ConfigHash hashes the parts of cfg that change figure content.
func ConfigHash(cfg *config.Config) (string, error) {
	c := *cfg
	c.Render.Output = ""
	c.Render.Formats = nil
	c.Render.DPI = 0

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash config")
	}
	return cache.Hash(buf.Bytes()), nil
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
