package clipping

import (
	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/geom"
)

// postprocess splits any contour that revisits the same vertex into
// separate simple loops, and optionally collapses runs of collinear
// line segments.
func postprocess(cs []*contour.Contour, cfg Config) []*contour.Contour {
	var out []*contour.Contour
	for _, c := range cs {
		for _, piece := range splitSelfIntersections(c, cfg.VertexMergeEps) {
			if cfg.CollapseCollinear {
				piece = collapseCollinear(piece, cfg.VertexMergeEps)
			}
			out = append(out, piece)
		}
	}
	return out
}

// splitSelfIntersections breaks c at any vertex that appears more than
// once along its boundary, producing one simple loop per repeated
// visit. Contours that never repeat a vertex pass through unchanged.
func splitSelfIntersections(c *contour.Contour, eps float64) []*contour.Contour {
	verts := c.Vertices()
	n := len(c.Components)
	if n == 0 {
		return []*contour.Contour{c}
	}

	seen := make(map[pointKey]int)
	var pieces []*contour.Contour
	cur := contour.New(c.Start)
	seen[keyOf(c.Start, eps)] = 0

	for i, comp := range c.Components {
		end := verts[i+1]
		switch v := comp.(type) {
		case contour.LineTo:
			cur.LineTo(v.To)
		case contour.CubicTo:
			cur.CubicTo(v.C1, v.C2, v.To)
		}

		k := keyOf(end, eps)
		if _, ok := seen[k]; ok {
			pieces = append(pieces, cur)
			cur = contour.New(end)
			seen = map[pointKey]int{k: 0}
		} else {
			seen[k] = i + 1
		}
	}

	if len(cur.Components) > 0 {
		pieces = append(pieces, cur)
	}
	if len(pieces) == 0 {
		return []*contour.Contour{c}
	}
	return pieces
}

// collapseCollinear merges consecutive LineTo components that are
// collinear within eps into a single LineTo, leaving cubic components
// untouched.
func collapseCollinear(c *contour.Contour, eps float64) *contour.Contour {
	if len(c.Components) < 2 {
		return c
	}
	out := contour.New(c.Start)

	i := 0
	prevPoint := c.Start
	for i < len(c.Components) {
		comp := c.Components[i]
		lineTo, ok := comp.(contour.LineTo)
		if !ok {
			out.Components = append(out.Components, comp)
			prevPoint = comp.End()
			i++
			continue
		}

		j := i
		last := lineTo.To
		for j+1 < len(c.Components) {
			next, ok := c.Components[j+1].(contour.LineTo)
			if !ok {
				break
			}
			if !geom.IsCollinear(prevPoint, last, next.To, eps) {
				break
			}
			last = next.To
			j++
		}
		out.LineTo(last)
		prevPoint = last
		i = j + 1
	}
	return out
}

