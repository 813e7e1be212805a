package sway

import (
	"sort"
	"time"
)

// PositionTarget is a value whose position can be animated.
type PositionTarget interface {
	SetPosition(x, y float64)
}

// PositionPathActivity moves a target along a sampled path. Samples are keyed
// by cumulative arc length, so equal progress covers equal distance whether
// the path is a long straight line or a tightly subdivided curve.
type PositionPathActivity struct {
	InterpolatingActivity

	target    PositionTarget
	positions []Vec2
	knots     []float64
}

// NewPositionPathActivity creates a path animation that starts now. Panics if
// target is nil or duration is not positive. path may be nil and set later.
func NewPositionPathActivity(duration, stepRate time.Duration, target PositionTarget, path *Path) *PositionPathActivity {
	if target == nil {
		panic("sway: position path activity needs a target")
	}
	pa := &PositionPathActivity{target: target}
	pa.initInterpolating(duration, stepRate, pa)
	pa.animation = true
	if path != nil {
		pa.SetPath(path)
	}
	return pa
}

// Target returns the animated value.
func (pa *PositionPathActivity) Target() PositionTarget { return pa.target }

// SetPath samples path with DefaultCurveSegments per curve.
func (pa *PositionPathActivity) SetPath(path *Path) {
	pa.SetPositions(path.Flatten(DefaultCurveSegments))
}

// SetPositions uses the given polyline as the path.
func (pa *PositionPathActivity) SetPositions(points []Vec2) {
	pa.positions = append(pa.positions[:0], points...)
	pa.knots = arcLengthKnots(pa.positions)
}

// Positions returns the sampled path. The returned slice MUST NOT be mutated.
func (pa *PositionPathActivity) Positions() []Vec2 { return pa.positions }

// Knots returns the arc-length fraction of each sample. The returned slice
// MUST NOT be mutated.
func (pa *PositionPathActivity) Knots() []float64 { return pa.knots }

// CaptureSource is a no-op: the path itself is the source.
func (pa *PositionPathActivity) CaptureSource() {}

// PositionAt returns the point at arc-length fraction t.
func (pa *PositionPathActivity) PositionAt(t float64) Vec2 {
	n := len(pa.positions)
	switch n {
	case 0:
		return Vec2{}
	case 1:
		return pa.positions[0]
	}
	t = clamp01(t)
	end := sort.SearchFloat64s(pa.knots, t)
	if end == 0 {
		return pa.positions[0]
	}
	if end >= n {
		return pa.positions[n-1]
	}
	start := end - 1
	span := pa.knots[end] - pa.knots[start]
	local := t - pa.knots[start]
	if span != 0 {
		local /= span
	}
	a, b := pa.positions[start], pa.positions[end]
	return Vec2{X: lerp(a.X, b.X, local), Y: lerp(a.Y, b.Y, local)}
}

// SetRelativeTargetValue moves the target to the point at arc-length
// fraction t.
func (pa *PositionPathActivity) SetRelativeTargetValue(t float64) {
	if len(pa.positions) == 0 {
		return
	}
	p := pa.PositionAt(t)
	pa.target.SetPosition(p.X, p.Y)
}

func (pa *PositionPathActivity) targetDisposed() bool { return isDisposed(pa.target) }
