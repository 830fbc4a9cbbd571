package packing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/geom"
)

// Cluster is one Gaussian sub-population of a multi-cluster packing.
type Cluster struct {
	Center geom.Point `json:"center" toml:"center"`
	StdDev float64    `json:"std_dev" toml:"std_dev"`
}

// PackClusters packs each cluster independently with base options and a
// Gaussian mode around the cluster center. Cluster i draws from
// StreamSource(seed, i), so results do not depend on scheduling. Clusters
// are packed concurrently; the returned slice is in cluster order.
//
// Disks of different clusters are not checked against each other.
func PackClusters(ctx context.Context, seed uint64, base Options, clusters []Cluster) ([]*Packing, error) {
	if len(clusters) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at least one cluster is required")
	}

	opts := make([]Options, len(clusters))
	for i, c := range clusters {
		o := base
		o.Mode = Gaussian{Center: c.Center, StdDev: c.StdDev}
		if err := o.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cluster %d", i)
		}
		opts[i] = o
	}

	out := make([]*Packing, len(clusters))
	g, ctx := errgroup.WithContext(ctx)
	for i := range clusters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Pack(StreamSource(seed, i), opts[i])
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Total returns the number of disks across all packings.
func Total(ps []*Packing) int {
	n := 0
	for _, p := range ps {
		n += p.Len()
	}
	return n
}
