package geom

import (
	"math"

	"github.com/cetz-package/contourklip/internal/numerics"
)

// Cubic is a cubic Bezier curve with control points P0..P3, P0 and P3
// being the endpoints.
type Cubic struct {
	P0, P1, P2, P3 Point
}

func (c Cubic) Start() Point { return c.P0 }
func (c Cubic) End() Point   { return c.P3 }

// Eval evaluates the curve at parameter t by summing the four Bernstein
// basis terms directly, not de Casteljau, since only the point is
// needed.
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	b := 3 * mt2 * t
	d := 3 * mt * t2
	e := t2 * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Deriv evaluates the curve's first derivative (tangent vector,
// un-normalized) at t.
func (c Cubic) Deriv(t float64) Point {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	d := 3 * t * t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return Point{
		X: a*d0.X + b*d1.X + d*d2.X,
		Y: a*d0.Y + b*d1.Y + d*d2.Y,
	}
}

func (c Cubic) Tangent(t float64) Point { return c.Deriv(t).Normalize() }

func (c Cubic) Normal(t float64) Point {
	return rotate(c.Tangent(t), math.Pi/2)
}

func (c Cubic) Reversed() Cubic {
	return Cubic{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// deCasteljau runs one full de Casteljau reduction of four control
// points down to a single point, recording every intermediate level so
// Subdivide can read off both halves directly.
func deCasteljau(pts [4]Point, t float64) (levels [4][4]Point) {
	levels[0] = pts
	for level := 1; level < 4; level++ {
		for i := 0; i < 4-level; i++ {
			levels[level][i] = levels[level-1][i].Lerp(levels[level-1][i+1], t)
		}
	}
	return levels
}

// Subdivide splits c at parameter t into two cubics covering [0,t] and
// [t,1], exact to machine precision via de Casteljau's algorithm.
func (c Cubic) Subdivide(t float64) (Cubic, Cubic) {
	pts := [4]Point{c.P0, c.P1, c.P2, c.P3}
	levels := deCasteljau(pts, t)
	left := Cubic{levels[0][0], levels[1][0], levels[2][0], levels[3][0]}
	right := Cubic{levels[3][0], levels[2][1], levels[1][2], levels[0][3]}
	return left, right
}

// Subsegment returns the portion of c between parameters t0 and t1
// (0 <= t0 < t1 <= 1), by subdividing twice and reconstructing the
// local parameterization ratio for the second cut.
func (c Cubic) Subsegment(t0, t1 float64) Cubic {
	if t0 == 0 {
		left, _ := c.Subdivide(t1)
		return left
	}
	_, tail := c.Subdivide(t0)
	if t1 == 1 {
		return tail
	}
	localT1 := (t1 - t0) / (1 - t0)
	left, _ := tail.Subdivide(localT1)
	return left
}

func (c Cubic) BoundingBox() Rect {
	box := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		box = box.Union(NewRect(c.Eval(t), c.Eval(t)))
	}
	return box
}

// Extrema returns the parameters in (0,1) at which the curve's x or y
// coordinate has a local extremum, found as the real roots of the
// (quadratic) derivative components.
func (c Cubic) Extrema() []float64 {
	var ts []float64
	addRoots := func(p0, p1, p2, p3 float64) {
		// Derivative of a cubic Bernstein component in monomial form,
		// coefficients of at^2+bt+c.
		a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
		b := 6 * (p0 - 2*p1 + p2)
		cc := 3 * (p1 - p0)
		for _, r := range numerics.SolveQuadratic(cc, b, a) {
			if r > 1e-9 && r < 1-1e-9 {
				ts = append(ts, r)
			}
		}
	}
	addRoots(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	addRoots(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return ts
}

// Inflections returns the parameters in (0,1) at which the curve's
// curvature changes sign, found via the cubic's inflection polynomial
// (the determinant of its derivative and second derivative).
func (c Cubic) Inflections() []float64 {
	// Align to P0 to simplify the determinant coefficients.
	p1 := c.P1.Sub(c.P0)
	p2 := c.P2.Sub(c.P0)
	p3 := c.P3.Sub(c.P0)

	a := p2.X * p1.Y - p1.X*p2.Y
	b := p3.X*p1.Y - p1.X*p3.Y
	cc := p3.X*p2.Y - p2.X*p3.Y

	x := -3*a + 3*b - cc
	y := 3*a - 2*b
	z := cc - b

	var roots []float64
	if math.Abs(x) < 1e-12 {
		if math.Abs(y) > 1e-12 {
			roots = append(roots, -z/y)
		}
	} else {
		roots = numerics.SolveQuadratic(z, y, x)
	}
	var ts []float64
	for _, r := range roots {
		if r > 1e-9 && r < 1-1e-9 {
			ts = append(ts, r)
		}
	}
	return ts
}

// MonotonicSplits returns the sorted, de-duplicated split parameters
// (x- and y-extrema) partitioning c into pieces that are each monotonic
// in both x and y, suitable as sweep-line edges.
func (c Cubic) MonotonicSplits() []float64 {
	ts := c.Extrema()
	return sortUnique(ts)
}

func sortUnique(ts []float64) []float64 {
	if len(ts) == 0 {
		return ts
	}
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j-1] > ts[j]; j-- {
			ts[j-1], ts[j] = ts[j], ts[j-1]
		}
	}
	out := ts[:1]
	for _, t := range ts[1:] {
		if t-out[len(out)-1] > 1e-9 {
			out = append(out, t)
		}
	}
	return out
}

// Split partitions c at the given sorted parameters (all in (0,1),
// expected to be x/y-extrema as returned by MonotonicSplits) into
// len(ts)+1 consecutive monotonic sub-curves. At each cut, the two new
// pieces' near-boundary control points are snapped so their near-axis
// coordinate exactly matches the boundary point's: since an
// x-extremum means the tangent there is exactly vertical (dx/dt=0),
// the adjacent control points must lie on that same vertical line, but
// de Casteljau subdivision alone can leave them off by a few ULPs —
// enough for later sweep-line x/y comparisons to disagree about which
// side of the boundary a control point falls on.
func (c Cubic) Split(ts []float64) []Cubic {
	if len(ts) == 0 {
		return []Cubic{c}
	}
	pieces := make([]Cubic, 0, len(ts)+1)
	rest := c
	prev := 0.0
	for _, t := range ts {
		local := (t - prev) / (1 - prev)
		left, right := rest.Subdivide(local)
		snapExtremum(&left, &right, c.Deriv(t))
		pieces = append(pieces, left)
		rest = right
		prev = t
	}
	pieces = append(pieces, rest)
	return pieces
}

// snapExtremum corrects the control points adjacent to a monotonic
// split boundary (left.P2 and right.P1) to share the boundary point's
// coordinate along whichever axis the tangent deriv is (near) zero in
// — the axis Extrema found a root for at this split.
func snapExtremum(left, right *Cubic, deriv Point) {
	boundary := left.P3 // == right.P0
	if math.Abs(deriv.X) <= math.Abs(deriv.Y) {
		left.P2.X = boundary.X
		right.P1.X = boundary.X
	} else {
		left.P2.Y = boundary.Y
		right.P1.Y = boundary.Y
	}
}
