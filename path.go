package sway

import "math"

// DefaultCurveSegments is the number of line segments each curve is split
// into when a path is flattened.
const DefaultCurveSegments = 16

type pathOp uint8

const (
	pathMoveTo pathOp = iota
	pathLineTo
	pathQuadTo
	pathCubeTo
	pathClose
)

type pathCmd struct {
	op  pathOp
	pts [3]Vec2
}

// Path is a geometric path built from move, line, quadratic Bézier, and cubic
// Bézier commands. Use it with PositionPathActivity to move a node along a
// curve.
type Path struct {
	cmds []pathCmd
}

// NewPolyline creates a path through the given points.
func NewPolyline(points ...Vec2) *Path {
	p := &Path{}
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: pathMoveTo, pts: [3]Vec2{{x, y}}})
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: pathLineTo, pts: [3]Vec2{{x, y}}})
	return p
}

// QuadTo adds a quadratic Bézier with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: pathQuadTo, pts: [3]Vec2{{cx, cy}, {x, y}}})
	return p
}

// CubeTo adds a cubic Bézier with control points (c1x, c1y) and (c2x, c2y)
// ending at (x, y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.cmds = append(p.cmds, pathCmd{op: pathCubeTo, pts: [3]Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}})
	return p
}

// Close adds a straight segment back to the start of the current subpath.
func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, pathCmd{op: pathClose})
	return p
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Flatten converts the path to a polyline, splitting every curve into
// segments straight pieces (DefaultCurveSegments if segments <= 0). A path
// that does not begin with MoveTo starts at the origin.
func (p *Path) Flatten(segments int) []Vec2 {
	if segments <= 0 {
		segments = DefaultCurveSegments
	}
	var (
		out        []Vec2
		cur, start Vec2
	)
	for i, c := range p.cmds {
		if i == 0 && c.op != pathMoveTo {
			out = append(out, cur)
		}
		switch c.op {
		case pathMoveTo:
			cur, start = c.pts[0], c.pts[0]
			out = append(out, cur)

		case pathLineTo:
			cur = c.pts[0]
			out = append(out, cur)

		case pathQuadTo:
			a, ctl, b := cur, c.pts[0], c.pts[1]
			for s := 1; s <= segments; s++ {
				t := float64(s) / float64(segments)
				u := 1 - t
				out = append(out, Vec2{
					X: u*u*a.X + 2*u*t*ctl.X + t*t*b.X,
					Y: u*u*a.Y + 2*u*t*ctl.Y + t*t*b.Y,
				})
			}
			cur = b

		case pathCubeTo:
			a, c1, c2, b := cur, c.pts[0], c.pts[1], c.pts[2]
			for s := 1; s <= segments; s++ {
				t := float64(s) / float64(segments)
				u := 1 - t
				u2 := u * u
				t2 := t * t
				out = append(out, Vec2{
					X: u2*u*a.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t2*t*b.X,
					Y: u2*u*a.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t2*t*b.Y,
				})
			}
			cur = b

		case pathClose:
			cur = start
			out = append(out, cur)
		}
	}
	return out
}

// arcLengthKnots returns, for each point, the cumulative polyline length up
// to it as a fraction of the total length. Degenerate polylines with zero
// total length get evenly spaced knots.
func arcLengthKnots(points []Vec2) []float64 {
	n := len(points)
	knots := make([]float64, n)
	if n < 2 {
		return knots
	}
	for i := 1; i < n; i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		knots[i] = knots[i-1] + math.Sqrt(dx*dx+dy*dy)
	}
	total := knots[n-1]
	for i := range knots {
		if total > 0 {
			knots[i] /= total
		} else {
			knots[i] = float64(i) / float64(n-1)
		}
	}
	knots[n-1] = 1
	return knots
}
