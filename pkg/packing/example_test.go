package packing_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/capfig/pkg/geom"
	"github.com/matzehuels/capfig/pkg/packing"
)

func ExamplePack() {
	p, err := packing.Pack(packing.NewSource(2024), packing.Options{
		Attempts:      2000,
		Radius:        0.11,
		MinDistFactor: 1.5,
		Region:        geom.UnitSquare,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	outside, collisions := p.Rejected()
	fmt.Println("disks:", p.Len())
	fmt.Println("outside:", outside)
	fmt.Println("collisions:", collisions)
	// Output:
	// disks: 19
	// outside: 0
	// collisions: 1981
}

func ExamplePack_grid() {
	opts := packing.Options{
		Attempts:      2000,
		Radius:        0.11,
		MinDistFactor: 1.5,
		Region:        geom.UnitSquare,
		Index:         packing.IndexGrid,
	}
	p, _ := packing.Pack(packing.NewSource(2024), opts)
	fmt.Println(p.Len(), p.At(0))
	// Output:
	// 19 (0.6828, 0.1331)
}

func ExamplePackClusters() {
	clusters := []packing.Cluster{
		{Center: geom.Pt(0.3, 0.7), StdDev: 0.08},
		{Center: geom.Pt(0.7, 0.7), StdDev: 0.08},
	}
	base := packing.Options{Attempts: 1000, Radius: 0.03, MinDistFactor: 0.6, Region: geom.UnitSquare}
	ps, err := packing.PackClusters(context.Background(), 2024, base, clusters)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("clusters:", len(ps))
	// Output:
	// clusters: 2
}
