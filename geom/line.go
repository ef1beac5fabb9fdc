package geom

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Reversed() Line { return Line{P0: l.P1, P1: l.P0} }

func (l Line) Length() float64 { return l.P0.Distance(l.P1) }

func (l Line) Midpoint() Point { return l.P0.Lerp(l.P1, 0.5) }

// Subdivide splits l at parameter t into the two sub-segments [0,t]
// and [t,1].
func (l Line) Subdivide(t float64) (Line, Line) {
	mid := l.Eval(t)
	return Line{l.P0, mid}, Line{mid, l.P1}
}

// Subsegment returns the portion of l between parameters t0 and t1.
func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{l.Eval(t0), l.Eval(t1)}
}

func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// IntersectLine finds the intersection of l and o, if any, returning
// the parameter along each line at which they meet. Parallel or
// coincident lines report ok=false; a caller that needs overlap
// handling for coincident segments must check that case separately.
func (l Line) IntersectLine(o Line) (t, u float64, ok bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	denom := d1.Cross(d2)
	if denom == 0 {
		return 0, 0, false
	}
	diff := o.P0.Sub(l.P0)
	t = diff.Cross(d2) / denom
	u = diff.Cross(d1) / denom
	return t, u, true
}
