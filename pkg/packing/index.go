package packing

import (
	"math"

	"github.com/matzehuels/capfig/pkg/geom"
)

// Index selects how a candidate is checked against accepted centers.
type Index int

const (
	// IndexExhaustive compares each candidate with every accepted center.
	IndexExhaustive Index = iota
	// IndexGrid compares each candidate with the centers in the 3x3 block of
	// grid cells around it. Cells have side min_dist, so no center closer
	// than min_dist can sit outside that block.
	IndexGrid
)

// String returns "exhaustive" or "grid".
func (i Index) String() string {
	switch i {
	case IndexExhaustive:
		return "exhaustive"
	case IndexGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// ParseIndex maps a name back to an Index.
func ParseIndex(s string) (Index, bool) {
	switch s {
	case "exhaustive", "":
		return IndexExhaustive, true
	case "grid":
		return IndexGrid, true
	}
	return 0, false
}

type neighbours interface {
	conflicts(c geom.Point) bool
	insert(c geom.Point)
}

func newIndex(kind Index, minDist float64) neighbours {
	if kind == IndexGrid && minDist > 0 {
		// Slightly oversized cells absorb rounding in the cell computation.
		return &grid{minDist: minDist, cell: minDist * (1 + 1e-9), cells: make(map[cellKey][]geom.Point)}
	}
	return &scan{minDist: minDist}
}

// tooClose is the rejection rule shared by every index.
func tooClose(c, q geom.Point, minDist float64) bool {
	d := c.Dist(q)
	return d < minDist || d == 0
}

type scan struct {
	minDist float64
	pts     []geom.Point
}

func (s *scan) conflicts(c geom.Point) bool {
	for _, q := range s.pts {
		if tooClose(c, q, s.minDist) {
			return true
		}
	}
	return false
}

func (s *scan) insert(c geom.Point) { s.pts = append(s.pts, c) }

type cellKey struct{ i, j int64 }

type grid struct {
	minDist float64
	cell    float64
	cells   map[cellKey][]geom.Point
}

func (g *grid) key(c geom.Point) cellKey {
	return cellKey{int64(math.Floor(c.X / g.cell)), int64(math.Floor(c.Y / g.cell))}
}

func (g *grid) conflicts(c geom.Point) bool {
	k := g.key(c)
	for di := int64(-1); di <= 1; di++ {
		for dj := int64(-1); dj <= 1; dj++ {
			for _, q := range g.cells[cellKey{k.i + di, k.j + dj}] {
				if tooClose(c, q, g.minDist) {
					return true
				}
			}
		}
	}
	return false
}

func (g *grid) insert(c geom.Point) {
	k := g.key(c)
	g.cells[k] = append(g.cells[k], c)
}
