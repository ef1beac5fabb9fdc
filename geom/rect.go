package geom

import "math"

// Rect is an axis-aligned bounding box, with Min the lower-left and Max
// the upper-right corner.
type Rect struct {
	Min, Max Point
}

// NewRect builds a Rect from two corner points in arbitrary order.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Intersects reports whether r and o overlap, treating touching edges
// (within eps) as overlapping — the sweep's coarse bounding-box reject
// before the expensive curve-curve intersection test.
func (r Rect) Intersects(o Rect, eps float64) bool {
	if r.Max.X < o.Min.X-eps || o.Max.X < r.Min.X-eps {
		return false
	}
	if r.Max.Y < o.Min.Y-eps || o.Max.Y < r.Min.Y-eps {
		return false
	}
	return true
}

// Contains reports whether p lies within r (inclusive of the boundary).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
