// Package contour defines the input/output data model for the clipping
// engine: contours made of straight and cubic-Bezier components.
package contour

import "github.com/cetz-package/contourklip/geom"

// Component is one segment of a Contour: either a LineTo or a CubicTo.
// It is a closed sum type — the only implementations are the two in
// this package — expressed via an unexported marker method.
type Component interface {
	// End returns the endpoint the component advances to.
	End() geom.Point
	isComponent()
}

// LineTo is a straight component ending at To.
type LineTo struct {
	To geom.Point
}

func (LineTo) isComponent()      {}
func (l LineTo) End() geom.Point { return l.To }

// CubicTo is a cubic Bezier component ending at To, with control points
// C1 and C2.
type CubicTo struct {
	C1, C2, To geom.Point
}

func (CubicTo) isComponent()      {}
func (c CubicTo) End() geom.Point { return c.To }

// Contour is an ordered sequence of components starting at Start. A
// Contour represents a closed loop when its last component's End
// coincides with Start; Close appends a LineTo back to Start if it
// doesn't already.
type Contour struct {
	Start      geom.Point
	Components []Component
}

// New starts a new, empty contour at start.
func New(start geom.Point) *Contour {
	return &Contour{Start: start}
}

// LineTo appends a straight component.
func (c *Contour) LineTo(to geom.Point) {
	c.Components = append(c.Components, LineTo{To: to})
}

// CubicTo appends a cubic Bezier component.
func (c *Contour) CubicTo(c1, c2, to geom.Point) {
	c.Components = append(c.Components, CubicTo{C1: c1, C2: c2, To: to})
}

// End returns the contour's current endpoint: Start if it has no
// components yet, otherwise the last component's End.
func (c *Contour) End() geom.Point {
	if len(c.Components) == 0 {
		return c.Start
	}
	return c.Components[len(c.Components)-1].End()
}

// Closed reports whether the contour's last point coincides with Start
// within eps.
func (c *Contour) Closed(eps float64) bool {
	if len(c.Components) == 0 {
		return false
	}
	return c.End().Equal(c.Start, eps)
}

// Close appends a LineTo back to Start if the contour isn't already
// closed within eps.
func (c *Contour) Close(eps float64) {
	if !c.Closed(eps) {
		c.LineTo(c.Start)
	}
}

// Vertices returns the contour's sequence of points, with Start first
// and each component's endpoint following, flattening every cubic
// component down to a single endpoint (the control points are not
// vertices of the polygonal shape).
func (c *Contour) Vertices() []geom.Point {
	pts := make([]geom.Point, 0, len(c.Components)+1)
	pts = append(pts, c.Start)
	for _, comp := range c.Components {
		pts = append(pts, comp.End())
	}
	return pts
}

// Area returns twice the signed area enclosed by the contour's vertex
// polygon (treating cubic components' control points as not affecting
// area, consistent with how the sweep itself only reasons about
// endpoints and intersection points). Positive for a counterclockwise
// contour, negative for clockwise, via the shoelace formula.
func (c *Contour) Area() float64 {
	pts := c.Vertices()
	if len(pts) < 3 {
		return 0
	}
	area := 0.0
	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}

// Reversed returns a new Contour tracing the same shape in the opposite
// direction: components are reversed in order, each LineTo/CubicTo
// re-anchored to end where the original's predecessor started, and
// CubicTo control points swapped to preserve curve shape.
func (c *Contour) Reversed() *Contour {
	pts := c.Vertices()
	n := len(c.Components)
	if n == 0 {
		return &Contour{Start: c.Start}
	}
	out := &Contour{Start: pts[n]}
	for i := n - 1; i >= 0; i-- {
		switch comp := c.Components[i].(type) {
		case LineTo:
			out.LineTo(pts[i])
		case CubicTo:
			out.CubicTo(comp.C2, comp.C1, pts[i])
		}
	}
	return out
}
