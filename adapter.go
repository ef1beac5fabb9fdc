package clipping

import (
	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/internal/sweep"
)

func toInputContours(cs []*contour.Contour) []sweep.InputContour {
	out := make([]sweep.InputContour, len(cs))
	for i, c := range cs {
		prev := c.Start
		spans := make([]sweep.InputSpan, 0, len(c.Components))
		for _, comp := range c.Components {
			switch v := comp.(type) {
			case contour.LineTo:
				spans = append(spans, sweep.InputSpan{P0: prev, P1: v.To})
			case contour.CubicTo:
				spans = append(spans, sweep.InputSpan{
					IsCubic: true,
					P0:      prev,
					C1:      v.C1,
					C2:      v.C2,
					P1:      v.To,
				})
			}
			prev = comp.End()
		}
		out[i] = sweep.InputContour{Spans: spans}
	}
	return out
}

func toOperation(op Operation) (sweep.Operation, bool) {
	switch op {
	case OpUnion:
		return sweep.Union, true
	case OpIntersection:
		return sweep.Intersection, true
	case OpDifference:
		return sweep.Difference, true
	case OpXOR:
		return sweep.XOR, true
	default:
		return 0, false
	}
}
