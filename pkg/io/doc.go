// Package io provides JSON import and export for disk packings.
//
// # Overview
//
// A packing is saved with its parameters so that it can be reloaded,
// inspected or drawn again without re-running the sampler. The format is:
//
//	{
//	  "id": "5f1c6a0e-4a8e-4c1e-9f55-0d3c2b1a9e77",
//	  "mode": "uniform",
//	  "seed": 2024,
//	  "radius": 0.11,
//	  "min_dist": 0.165,
//	  "attempts": 2000,
//	  "centers": [
//	    {"x": 0.6827871510254638, "y": 0.1331477205081597},
//	    {"x": 0.3021, "y": 0.7795}
//	  ]
//	}
//
// # Fields
//
// Required:
//   - id: UUID identifying this export
//   - radius, min_dist, attempts: the packer parameters
//   - centers: accepted centers in acceptance order
//
// Optional:
//   - mode: sampling mode description, e.g. "uniform" or "gaussian(...)"
//   - seed: the seed the packing was drawn with
//
// # Validation
//
// [ReadJSON] rebuilds the packing with [packing.Restore], so a file whose
// centers violate the minimum distance, or that lists more centers than
// attempts, is rejected.
//
// # Usage
//
//	if err := io.ExportJSON(p, io.Meta{Seed: 2024}, "packing.json"); err != nil {
//	    return err
//	}
//	p, meta, err := io.ImportJSON("packing.json")
package io
