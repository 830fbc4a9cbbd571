package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/capfig/pkg/cache"
	capio "github.com/matzehuels/capfig/pkg/io"
	"github.com/matzehuels/capfig/pkg/observability"
	"github.com/matzehuels/capfig/pkg/packing"
)

// PackRequest describes one standalone packing run.
type PackRequest struct {
	// Seed feeds packing.NewSource.
	Seed    uint64
	Options packing.Options
	// Refresh skips cache reads; the result is still stored.
	Refresh bool

	// Logger defaults to the runner's logger.
	Logger *log.Logger
}

// PackResult is the output of a packing run.
type PackResult struct {
	Packing *packing.Packing
	Meta    capio.Meta
	// Document is the JSON export of the packing, as cached.
	Document []byte
	Duration time.Duration
	CacheHit bool
}

// Pack runs the packer once, or loads the same run from the cache. The
// neighbour index is left out of the key since both indexes accept the
// same centers.
func (r *Runner) Pack(ctx context.Context, req PackRequest) (*PackResult, error) {
	logger := req.Logger
	if logger == nil {
		logger = r.Logger
	}
	if err := req.Options.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := packing.Mode(packing.Uniform{})
	if req.Options.Mode != nil {
		mode = req.Options.Mode
	}
	key := r.Keyer.PackingKey(packingKeyOpts(req.Seed, req.Options, mode))

	hooks := observability.Cache()
	if !req.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err == nil && hit {
			p, meta, err := capio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				hooks.OnCacheHit(ctx, packingKeyType)
				logger.Debug("packing served from cache", "key", key)
				return &PackResult{Packing: p, Meta: meta, Document: data, CacheHit: true}, nil
			}
			logger.Warn("discarding unreadable cached packing", "key", key, "error", err)
		}
		hooks.OnCacheMiss(ctx, packingKeyType)
	}

	start := time.Now()
	p, err := packing.Pack(packing.NewSource(req.Seed), req.Options)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	observability.Packing().OnPackComplete(ctx, mode.String(), p.Len(), req.Options.Attempts, elapsed)
	logger.Debug("packing complete", "mode", mode, "accepted", p.Len(), "duration", elapsed)

	var buf bytes.Buffer
	meta, err := capio.WriteJSON(p, capio.Meta{Mode: mode.String(), Seed: req.Seed}, &buf)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), TTLArtifact); err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	} else {
		hooks.OnCacheSet(ctx, packingKeyType, buf.Len())
	}

	return &PackResult{Packing: p, Meta: meta, Document: buf.Bytes(), Duration: elapsed}, nil
}

// packingKeyOpts lists every parameter that changes the accepted centers,
// at full precision.
func packingKeyOpts(seed uint64, opts packing.Options, mode packing.Mode) cache.PackingKeyOpts {
	region := opts.Region
	k := cache.PackingKeyOpts{
		Seed:          seed,
		Attempts:      opts.Attempts,
		Radius:        opts.Radius,
		MinDistFactor: opts.MinDistFactor,
		Region:        [4]float64{region.XMin, region.XMax, region.YMin, region.YMax},
		Mode:          "uniform",
	}
	if g, ok := mode.(packing.Gaussian); ok {
		k.Mode = "gaussian"
		k.CenterX, k.CenterY, k.StdDev = g.Center.X, g.Center.Y, g.StdDev
	}
	return k
}
