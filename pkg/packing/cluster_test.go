package packing

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/capfig/pkg/errors"
	"github.com/matzehuels/capfig/pkg/geom"
)

func hierarchicalClusters() []Cluster {
	return []Cluster{
		{Center: geom.Pt(0.3, 0.7), StdDev: 0.08},
		{Center: geom.Pt(0.7, 0.7), StdDev: 0.08},
		{Center: geom.Pt(0.5, 0.3), StdDev: 0.08},
	}
}

func hierarchicalBase() Options {
	return Options{Attempts: 1000, Radius: 0.03, MinDistFactor: 0.6, Region: geom.UnitSquare}
}

func TestPackClustersMatchesSequential(t *testing.T) {
	clusters := hierarchicalClusters()
	got, err := PackClusters(context.Background(), 2024, hierarchicalBase(), clusters)
	if err != nil {
		t.Fatalf("PackClusters() error: %v", err)
	}
	if len(got) != len(clusters) {
		t.Fatalf("got %d packings, want %d", len(got), len(clusters))
	}

	for i, c := range clusters {
		opts := hierarchicalBase()
		opts.Mode = Gaussian{Center: c.Center, StdDev: c.StdDev}
		want, err := Pack(StreamSource(2024, i), opts)
		if err != nil {
			t.Fatalf("Pack() error: %v", err)
		}
		if diff := cmp.Diff(want.Centers(), got[i].Centers()); diff != "" {
			t.Errorf("cluster %d differs from sequential run:\n%s", i, diff)
		}
		if got[i].Len() == 0 {
			t.Errorf("cluster %d is empty", i)
		}
	}

	if Total(got) != got[0].Len()+got[1].Len()+got[2].Len() {
		t.Errorf("Total() = %d", Total(got))
	}
}

func TestPackClustersDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := PackClusters(ctx, 7, hierarchicalBase(), hierarchicalClusters())
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		b, err := PackClusters(ctx, 7, hierarchicalBase(), hierarchicalClusters())
		if err != nil {
			t.Fatal(err)
		}
		for i := range a {
			if !cmp.Equal(a[i].Centers(), b[i].Centers()) {
				t.Fatalf("cluster %d changed between runs", i)
			}
		}
	}
}

func TestPackClustersStreamsDiffer(t *testing.T) {
	same := []Cluster{
		{Center: geom.Pt(0.5, 0.5), StdDev: 0.1},
		{Center: geom.Pt(0.5, 0.5), StdDev: 0.1},
	}
	got, err := PackClusters(context.Background(), 1, hierarchicalBase(), same)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(got[0].Centers(), got[1].Centers()) {
		t.Error("identical clusters should draw from independent streams")
	}
}

func TestPackClustersErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := PackClusters(ctx, 1, hierarchicalBase(), nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("no clusters: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	bad := hierarchicalClusters()
	bad[1].StdDev = -0.1
	if _, err := PackClusters(ctx, 1, hierarchicalBase(), bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("negative std: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	base := hierarchicalBase()
	base.Attempts = 0
	if _, err := PackClusters(ctx, 1, base, hierarchicalClusters()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero attempts: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestPackClustersCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PackClusters(ctx, 1, hierarchicalBase(), hierarchicalClusters())
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
