// Package packing places disks of a fixed radius by rejection sampling.
//
// # Overview
//
// A packing run draws a fixed number of candidate centers and keeps every
// candidate that (a) lies strictly inside the region inset by the radius and
// (b) is at least min_dist = radius * MinDistFactor away from every center
// accepted before it. The result is a [Packing]: the accepted centers in
// acceptance order.
//
//	src := packing.NewSource(2024)
//	p, err := packing.Pack(src, packing.Options{
//	    Attempts:      2000,
//	    Radius:        0.11,
//	    MinDistFactor: 1.5,
//	    Region:        geom.UnitSquare,
//	})
//	fmt.Println(p.Len())
//
// # Overlap
//
// MinDistFactor controls how deep two disks may overlap:
//
//   - 2.0: disks may touch but never overlap
//   - 1.5: light overlap, up to half a radius deep
//   - 0.6: deep overlap, centers still kept apart
//   - 0.0: any overlap, only coincident centers are rejected
//
// # Sampling Modes
//
// [Uniform] draws candidates uniformly over the inset region. [Gaussian]
// draws them from an isotropic normal distribution around a center; draws
// that land outside the inset region are discarded like any other rejected
// candidate. Every attempt consumes exactly two draws from the [Source],
// so the stream advances identically regardless of what is accepted.
//
// # Determinism
//
// The packer never touches global random state. The caller passes a
// [Source], usually from [NewSource], and the same seed with the same
// options always yields the same centers in the same order. [PackClusters]
// derives an independent stream per cluster so clusters can be packed
// concurrently without changing the result.
//
// # Neighbour Search
//
// The default [IndexExhaustive] compares each candidate with every accepted
// center. [IndexGrid] buckets centers into cells of side min_dist and only
// scans the 3x3 neighbourhood, which yields the same result in near
// constant time per candidate.
package packing
