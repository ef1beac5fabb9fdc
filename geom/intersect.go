package geom

import (
	"math"

	"github.com/cetz-package/contourklip/internal/polyroot"
)

// Intersection is a single point of intersection between two curves,
// reported as a parameter along each.
type Intersection struct {
	T, U  float64 // parameter on the first, second curve
	Point Point
}

const paramTol = 1e-9

// IntersectLineLine finds the intersection (if any) of two segments
// restricted to their own [0,1] parameter domains (i.e. an actual
// crossing of the finite segments, not their infinite extensions).
func IntersectLineLine(a, b Line) []Intersection {
	t, u, ok := a.IntersectLine(b)
	if !ok {
		return nil
	}
	if t < -paramTol || t > 1+paramTol || u < -paramTol || u > 1+paramTol {
		return nil
	}
	t = clamp01(t)
	u = clamp01(u)
	return []Intersection{{T: t, U: u, Point: a.Eval(t)}}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// IntersectLineCubic finds the intersections between a line segment and
// a cubic Bezier. The cubic is rotated and translated so the line lies
// on the x-axis, reducing the problem to isolating the real roots of
// the transformed curve's y(t) component (a cubic polynomial in t) in
// [0,1], then checking each candidate point projects back onto the
// segment's own [0,1] range.
func IntersectLineCubic(l Line, c Cubic) []Intersection {
	align := newAxisAlign(l.P0, l.P1.Sub(l.P0))
	rc := align.applyCubic(c)

	// y(t) in monomial form from the Bernstein coefficients y0..y3.
	y0, y1, y2, y3 := rc.P0.Y, rc.P1.Y, rc.P2.Y, rc.P3.Y
	a0 := y0
	a1 := 3 * (y1 - y0)
	a2 := 3 * (y0 - 2*y1 + y2)
	a3 := -y0 + 3*y1 - 3*y2 + y3

	roots := polyroot.Isolate([]float64{a0, a1, a2, a3}, 1e-10, 1e-10)

	lineLen := l.P1.Sub(l.P0).Length()
	if lineLen == 0 {
		return nil
	}

	var out []Intersection
	for _, t := range roots {
		p := c.Eval(t)
		rp := align.apply(p)
		u := rp.X / lineLen
		if u < -paramTol || u > 1+paramTol {
			continue
		}
		out = append(out, Intersection{T: u, U: t, Point: p})
	}
	return out
}

// IntersectCubicCubic finds the intersections between two cubic Bezier
// curves via implicitization: b's implicit algebraic curve is eliminated
// symbolically against a's parametric x(t), y(t) (each cubic in t),
// giving a single polynomial of degree up to 9 in t whose real roots in
// [0,1] are exactly a's parameter values at a crossing. internal/polyroot
// isolates and refines those roots; each root's point is then mapped
// back onto b's own parameter via a rational inverse of b's
// parameterization (the classical "moving line" construction).
//
// The elimination is done by building the 6x6 Sylvester resultant of
// the two cubic-in-s equations bx(s) - ax(t) = 0 and by(s) - ay(t) = 0
// (s is b's parameter, the eliminated variable), with a's monomial
// x(t)/y(t) entering the constant term of each, and evaluating the determinant with polynomial-in-t
// entries — equivalent to, but independently derived from, the
// moving-line elimination the algorithm is traditionally implemented
// with, since the generated closed-form expression for that shortcut
// is too large to transcribe reliably.
//
// Both curves are expected to already be monotonic pieces (the sweep
// splits on x/y extrema before calling this), which satisfies the
// precondition the inverse map relies on: a monotonic piece cannot
// self-intersect except possibly by touching at its own endpoints, so
// b's rational parameter inverse is well-defined and single-valued.
func IntersectCubicCubic(a, b Cubic, tol float64) []Intersection {
	boxA := a.BoundingBox()
	boxB := b.BoundingBox()
	if !boxA.Intersects(boxB, tol) {
		return nil
	}

	bx := cubicMonomial(b.P0.X, b.P1.X, b.P2.X, b.P3.X)
	by := cubicMonomial(b.P0.Y, b.P1.Y, b.P2.Y, b.P3.Y)
	ax := cubicMonomial(a.P0.X, a.P1.X, a.P2.X, a.P3.X)
	ay := cubicMonomial(a.P0.Y, a.P1.Y, a.P2.Y, a.P3.Y)

	// P(s) = bx[3]s^3 + bx[2]s^2 + bx[1]s + (bx[0] - ax(t))
	// Q(s) = by[3]s^3 + by[2]s^2 + by[1]s + (by[0] - ay(t))
	p0 := polySub(poly{bx[0]}, poly(ax[:]))
	q0 := polySub(poly{by[0]}, poly(ay[:]))
	z := poly{0}
	sylvester := [6][6]poly{
		{{bx[3]}, {bx[2]}, {bx[1]}, p0, z, z},
		{z, {bx[3]}, {bx[2]}, {bx[1]}, p0, z},
		{z, z, {bx[3]}, {bx[2]}, {bx[1]}, p0},
		{{by[3]}, {by[2]}, {by[1]}, q0, z, z},
		{z, {by[3]}, {by[2]}, {by[1]}, q0, z},
		{z, z, {by[3]}, {by[2]}, {by[1]}, q0},
	}
	resultant := polyDet(sylvester[:])

	roots := polyroot.Isolate(resultant, 1e-10, 1e-10)
	if len(roots) == 0 {
		return nil
	}

	inv, ok := curveInverter(b)
	if !ok {
		return nil
	}

	var out []Intersection
	for _, t := range roots {
		p := a.Eval(t)
		u := inv(p)
		if u < -paramTol || u > 1+paramTol {
			continue
		}
		out = append(out, Intersection{T: t, U: clamp01(u), Point: p})
	}
	return dedupeIntersections(out, tol)
}

// cubicMonomial converts one axis of a cubic Bezier's four control
// points to monomial form, ascending: f(t) = c[0] + c[1]t + c[2]t^2 +
// c[3]t^3.
func cubicMonomial(p0, p1, p2, p3 float64) [4]float64 {
	return [4]float64{
		p0,
		3 * (p1 - p0),
		3 * (p0 - 2*p1 + p2),
		-p0 + 3*p1 - 3*p2 + p3,
	}
}

// poly holds a univariate polynomial's coefficients in ascending order.
type poly []float64

func polyAdd(a, b poly) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(poly, n)
	for i := range out {
		if i < len(a) {
			out[i] += a[i]
		}
		if i < len(b) {
			out[i] += b[i]
		}
	}
	return out
}

func polyNeg(a poly) poly {
	out := make(poly, len(a))
	for i, v := range a {
		out[i] = -v
	}
	return out
}

func polySub(a, b poly) poly { return polyAdd(a, polyNeg(b)) }

func polyMul(a, b poly) poly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(poly, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// polyDet computes the determinant of a square matrix of polynomials
// via cofactor expansion along the first row.
func polyDet(m [][6]poly) poly {
	return detRows(toRows(m))
}

func toRows(m [][6]poly) [][]poly {
	rows := make([][]poly, len(m))
	for i, row := range m {
		r := make([]poly, len(row))
		copy(r, row[:])
		rows[i] = r
	}
	return rows
}

func detRows(m [][]poly) poly {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		return polySub(polyMul(m[0][0], m[1][1]), polyMul(m[0][1], m[1][0]))
	}
	result := poly{0}
	sign := 1.0
	for col := 0; col < n; col++ {
		minor := make([][]poly, n-1)
		for i := 1; i < n; i++ {
			row := make([]poly, 0, n-1)
			for j := 0; j < n; j++ {
				if j == col {
					continue
				}
				row = append(row, m[i][j])
			}
			minor[i-1] = row
		}
		term := polyMul(m[0][col], detRows(minor))
		if sign < 0 {
			term = polyNeg(term)
		}
		result = polyAdd(result, term)
		sign = -sign
	}
	return result
}

// curveInverter builds the rational inverse of c's parameterization:
// given a point known to lie on c, it returns c's parameter at that
// point. It is the "moving line" construction: two linear forms in
// (x,y), num and den, combine into u(x,y) = a + b*num(x,y)/den(x,y),
// valid for any point actually on c (the ratio is constant off the
// three degenerate control-point pairs it's built from only when c
// is non-self-intersecting). ok is false if c is degenerate (p1, p2,
// p3 collinear through the origin-shifted determinant), in which case
// no single-valued inverse exists.
func curveInverter(c Cubic) (inv func(Point) float64, ok bool) {
	invertedDir := collinear(c.P1, c.P2, c.P3)
	if invertedDir {
		c = c.Reversed()
	}

	detCoeffs := func(ax, ay, bx, by float64) [3]float64 {
		return [3]float64{ay - by, bx - ax, ax*by - bx*ay}
	}
	scale := func(s float64, a [3]float64) [3]float64 {
		return [3]float64{a[0] * s, a[1] * s, a[2] * s}
	}

	l31 := scale(3, detCoeffs(c.P3.X, c.P3.Y, c.P1.X, c.P1.Y))
	l30 := detCoeffs(c.P3.X, c.P3.Y, c.P0.X, c.P0.Y)
	l21 := scale(9, detCoeffs(c.P2.X, c.P2.Y, c.P1.X, c.P1.Y))
	l20 := scale(3, detCoeffs(c.P2.X, c.P2.Y, c.P0.X, c.P0.Y))
	l10 := scale(3, detCoeffs(c.P1.X, c.P1.Y, c.P0.X, c.P0.Y))

	det3 := func(ax, ay, bx, by, cx, cy float64) float64 {
		return ax*(by-cy) - ay*(bx-cx) + (bx*cy - by*cx)
	}

	d := 3 * det3(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	if d == 0 {
		return nil, false
	}
	c1 := det3(c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P3.X, c.P3.Y) / d
	c2 := -det3(c.P0.X, c.P0.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y) / d

	var num, den [3]float64
	for i := 0; i < 3; i++ {
		num[i] = c1*l30[i] + c2*l20[i] + l10[i]
		den[i] = num[i] - (c2*(l30[i]+l21[i]) + l20[i] + c1*l31[i])
	}

	a, b := 0.0, 1.0
	if invertedDir {
		a, b = 1.0, -1.0
	}
	return func(p Point) float64 {
		denom := den[0]*p.X + den[1]*p.Y + den[2]
		return a + b*(num[0]*p.X+num[1]*p.Y+num[2])/denom
	}, true
}

// collinear reports whether p lies exactly on the line through a and
// b (axis-aligned cases handled without cross-multiplying to avoid
// spurious rounding).
func collinear(a, b, p Point) bool {
	if a.X == b.X {
		return a.X == p.X
	}
	if a.Y == b.Y {
		return a.Y == p.Y
	}
	return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) == 0
}

func dedupeIntersections(in []Intersection, tol float64) []Intersection {
	var out []Intersection
	for _, c := range in {
		dup := false
		for _, k := range out {
			if math.Abs(c.T-k.T) < tol*4 && math.Abs(c.U-k.U) < tol*4 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}
