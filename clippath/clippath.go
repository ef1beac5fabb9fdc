// Package clippath implements the CBOR wire format the clipping engine
// is exposed through at its external boundary: a host (originally the
// cetz typesetting plugin) sends subject and mask contour sets plus an
// operation name as CBOR, and receives the result contours back the
// same way.
//
// The wire shape mirrors the host binding's own encode/decode lambdas
// (to_contour/to_path in the plugin's C++ source) exactly: a contour is
// a plain array of segments, each segment a tagged array — ["line",
// v1, v2, ...] for a polyline run, or ["cubic", start, end, c1, c2]
// for a single Bezier component — and every vertex is a 3-tuple
// [x, y, z]. z travels with the point but is never interpreted; on
// encode it is always written as 0, matching the host binding (the
// plugin only ever calls this engine with flat 2D contours).
package clippath

import (
	"context"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/cetz-package/contourklip/clipping"
	"github.com/cetz-package/contourklip/contour"
	"github.com/cetz-package/contourklip/geom"
)

// wireVertex is a single point on the wire: [x, y, z].
type wireVertex [3]float64

func (v wireVertex) point() geom.Point { return geom.Pt(v[0], v[1]) }

// wireSegment is one tagged-array segment: a "line" run of one or more
// vertices, or a "cubic" with exactly four (start, end, c1, c2). It
// marshals to and unmarshals from a bare CBOR array with the kind tag
// as its first element, since the vertex count varies by kind and
// can't be expressed by a single static struct shape.
type wireSegment struct {
	Kind  string
	Verts []wireVertex
}

func (s wireSegment) MarshalCBOR() ([]byte, error) {
	arr := make([]any, 0, len(s.Verts)+1)
	arr = append(arr, s.Kind)
	for _, v := range s.Verts {
		arr = append(arr, [3]float64(v))
	}
	return cbor.Marshal(arr)
}

func (s *wireSegment) UnmarshalCBOR(data []byte) error {
	var raw []cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("clippath: empty segment array")
	}
	if err := cbor.Unmarshal(raw[0], &s.Kind); err != nil {
		return fmt.Errorf("clippath: segment kind: %w", err)
	}
	s.Verts = make([]wireVertex, 0, len(raw)-1)
	for _, r := range raw[1:] {
		var v wireVertex
		if err := cbor.Unmarshal(r, &v); err != nil {
			return fmt.Errorf("clippath: segment vertex: %w", err)
		}
		s.Verts = append(s.Verts, v)
	}
	return nil
}

// wireContour is a contour's segments, in order — no wrapper, since
// the start point is simply the first vertex of the first segment.
type wireContour = []wireSegment

// closeEps is the tolerance used to decide whether a decoded contour
// is already closed, before the implicit close-back-to-start.
const closeEps = 1e-9

// toContour decodes a wireContour, replaying the host binding's
// to_contour logic: the contour's start point is the first vertex of
// its first segment; every "line" segment after the first skips its
// own first vertex (it's implicit, equal to the previous segment's
// endpoint); a "cubic" segment's own start is pushed as a preceding
// line point only if it differs from the running endpoint.
func toContour(segs wireContour) *contour.Contour {
	var c *contour.Contour
	started := false
	push := func(p geom.Point) {
		if !started {
			c = contour.New(p)
			started = true
			return
		}
		c.LineTo(p)
	}

	var last geom.Point
	isFirst := true
	for _, seg := range segs {
		switch seg.Kind {
		case "cubic":
			if len(seg.Verts) != 4 {
				isFirst = false
				continue
			}
			start := seg.Verts[0].point()
			end := seg.Verts[1].point()
			c1 := seg.Verts[2].point()
			c2 := seg.Verts[3].point()
			if isFirst || start != last {
				push(start)
			}
			c.CubicTo(c1, c2, end)
			last = end
		default: // "line": anything other than "cubic" is a polyline run
			from := 1
			if isFirst {
				from = 0
			}
			for i := from; i < len(seg.Verts); i++ {
				pt := seg.Verts[i].point()
				if isFirst || pt != last {
					push(pt)
				}
				last = pt
			}
		}
		isFirst = false
	}
	if !started {
		c = contour.New(geom.Point{})
	}
	c.Close(closeEps)
	return c
}

// fromContour encodes c, replaying the host binding's to_path logic:
// consecutive line-type components (including the contour's own start
// point, which plays the role of an initial line vertex) coalesce
// into a single "line" array; each cubic component flushes any open
// line array and emits its own ["cubic", start, end, c1, c2] segment,
// where start is the last point emitted so far.
func fromContour(c *contour.Contour) wireContour {
	var segs []wireSegment
	lineIdx := -1
	appendLinePoint := func(p geom.Point) {
		if lineIdx == -1 {
			segs = append(segs, wireSegment{Kind: "line"})
			lineIdx = len(segs) - 1
		}
		v := wireVertex{p.X, p.Y, 0}
		segs[lineIdx].Verts = append(segs[lineIdx].Verts, v)
	}

	last := c.Start
	appendLinePoint(c.Start)
	for _, comp := range c.Components {
		switch v := comp.(type) {
		case contour.LineTo:
			appendLinePoint(v.To)
		case contour.CubicTo:
			lineIdx = -1
			segs = append(segs, wireSegment{
				Kind: "cubic",
				Verts: []wireVertex{
					{last.X, last.Y, 0},
					{v.To.X, v.To.Y, 0},
					{v.C1.X, v.C1.Y, 0},
					{v.C2.X, v.C2.Y, 0},
				},
			})
		}
		last = comp.End()
	}
	return segs
}

// operationFromTag maps a CBOR operation tag to a clipping.Operation,
// defaulting to OpIntersection for any string it doesn't recognize —
// matching the host binding's behavior of never failing outright on an
// unexpected operation name.
func operationFromTag(tag string) clipping.Operation {
	switch tag {
	case "union":
		return clipping.OpUnion
	case "difference":
		return clipping.OpDifference
	case "xor":
		return clipping.OpXOR
	case "divide":
		return clipping.OpDivide
	case "intersection":
		return clipping.OpIntersection
	default:
		return clipping.OpIntersection
	}
}

// ClipPath decodes subjectsCBOR and masksCBOR as lists of wireContour,
// decodes opCBOR as an operation tag string, runs Clip, and returns the
// CBOR encoding of the resulting contours. Any decode or clip failure
// is swallowed and reported as the CBOR encoding of an empty list, the
// same fail-safe behavior the original host binding provides so a
// malformed call never panics the caller's renderer.
func ClipPath(subjectsCBOR, masksCBOR, opCBOR []byte) []byte {
	empty, _ := cbor.Marshal([]wireContour{})

	var subjectWire, maskWire []wireContour
	if err := cbor.Unmarshal(subjectsCBOR, &subjectWire); err != nil {
		return empty
	}
	if err := cbor.Unmarshal(masksCBOR, &maskWire); err != nil {
		return empty
	}
	var opTag string
	if err := cbor.Unmarshal(opCBOR, &opTag); err != nil {
		return empty
	}

	subjects := make([]*contour.Contour, len(subjectWire))
	for i, wc := range subjectWire {
		subjects[i] = toContour(wc)
	}
	masks := make([]*contour.Contour, len(maskWire))
	for i, wc := range maskWire {
		masks[i] = toContour(wc)
	}

	op := operationFromTag(opTag)
	result, err := clipping.Clip(context.Background(), subjects, masks, op, clipping.DefaultConfig())
	if err != nil {
		return empty
	}

	wireResult := make([]wireContour, len(result))
	for i, c := range result {
		wireResult[i] = fromContour(c)
	}
	out, err := cbor.Marshal(wireResult)
	if err != nil {
		return empty
	}
	return out
}
