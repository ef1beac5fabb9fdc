package geom

import "math"

// axisAlign is the rigid transform (translate by -origin, then rotate
// by -theta) that carries the segment from origin in direction
// (cos theta, sin theta) onto the positive x-axis; newAxisAlign builds
// it and apply maps an arbitrary point through it. Used by line-cubic
// intersection to reduce "does this line cross this curve" to "where
// does the transformed curve cross y=0".
type axisAlign struct {
	origin   Point
	cos, sin float64
}

func newAxisAlign(origin, dir Point) axisAlign {
	length := dir.Length()
	if length == 0 {
		return axisAlign{origin: origin, cos: 1, sin: 0}
	}
	return axisAlign{origin: origin, cos: dir.X / length, sin: dir.Y / length}
}

func (a axisAlign) apply(p Point) Point {
	d := p.Sub(a.origin)
	return Point{
		X: d.X*a.cos + d.Y*a.sin,
		Y: -d.X*a.sin + d.Y*a.cos,
	}
}

func (a axisAlign) applyCubic(c Cubic) Cubic {
	return Cubic{a.apply(c.P0), a.apply(c.P1), a.apply(c.P2), a.apply(c.P3)}
}

// rotate returns p rotated by theta radians about the origin. Its only
// caller is Cubic.Normal, which uses it for a quarter-turn of the
// tangent.
func rotate(p Point, theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}
