// Package geom provides the planar primitives shared by the packer and the
// figure builders: points and axis-aligned regions.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	// Conversions keep the sum unfused so results match across architectures.
	return math.Sqrt(float64(dx*dx) + float64(dy*dy))
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y)
}

// Region is an axis-aligned rectangle.
type Region struct {
	XMin float64 `json:"xmin" toml:"xmin"`
	XMax float64 `json:"xmax" toml:"xmax"`
	YMin float64 `json:"ymin" toml:"ymin"`
	YMax float64 `json:"ymax" toml:"ymax"`
}

// UnitSquare is the region [0,1] x [0,1].
var UnitSquare = Region{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

// Rect builds a Region from its bounds.
func Rect(xmin, xmax, ymin, ymax float64) Region {
	return Region{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Valid reports whether all bounds are finite and the region has positive
// extent on both axes.
func (r Region) Valid() bool {
	for _, v := range [...]float64{r.XMin, r.XMax, r.YMin, r.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.XMin < r.XMax && r.YMin < r.YMax
}

// Width returns XMax - XMin.
func (r Region) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax - YMin.
func (r Region) Height() float64 { return r.YMax - r.YMin }

// Area returns the area of the region, or 0 if it is empty.
func (r Region) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Diagonal returns the length of the region's diagonal.
func (r Region) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Empty reports whether no point lies strictly inside the region.
func (r Region) Empty() bool {
	return !(r.XMin < r.XMax && r.YMin < r.YMax)
}

// Inset shrinks every side of the region by d. The result may be empty
// (or inverted) if d exceeds half the width or height.
func (r Region) Inset(d float64) Region {
	return Region{XMin: r.XMin + d, XMax: r.XMax - d, YMin: r.YMin + d, YMax: r.YMax - d}
}

// ContainsStrict reports whether p lies strictly inside the region on all
// four sides. Points on the boundary are not contained.
func (r Region) ContainsStrict(p Point) bool {
	return r.XMin < p.X && p.X < r.XMax && r.YMin < p.Y && p.Y < r.YMax
}

// Center returns the midpoint of the region.
func (r Region) Center() Point {
	return Point{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// String formats the region as "[xmin,xmax]x[ymin,ymax]".
func (r Region) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", r.XMin, r.XMax, r.YMin, r.YMax)
}
