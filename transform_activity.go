package sway

import (
	"time"

	"golang.org/x/image/math/f64"
)

// TransformTarget is a value whose 2D affine transform can be animated.
// Matrices are row-major with an implicit bottom row of [0 0 1].
type TransformTarget interface {
	// SourceMatrix writes the target's current transform into dst.
	SourceMatrix(dst *f64.Aff3)
	SetTransform(m f64.Aff3)
}

// TransformActivity interpolates each of the six affine coefficients of a
// target's transform independently.
type TransformActivity struct {
	InterpolatingActivity

	target      TransformTarget
	source      f64.Aff3
	destination f64.Aff3
}

// NewTransformActivity creates a transform animation that starts now. Panics
// if target is nil or duration is not positive.
func NewTransformActivity(duration, stepRate time.Duration, target TransformTarget, destination f64.Aff3) *TransformActivity {
	if target == nil {
		panic("sway: transform activity needs a target")
	}
	ta := &TransformActivity{target: target, destination: destination}
	ta.initInterpolating(duration, stepRate, ta)
	ta.animation = true
	return ta
}

// Target returns the animated value.
func (ta *TransformActivity) Target() TransformTarget { return ta.target }

// Source returns the matrix captured when the first loop started.
func (ta *TransformActivity) Source() f64.Aff3 { return ta.source }

// Destination returns the matrix reached at progress 1.
func (ta *TransformActivity) Destination() f64.Aff3 { return ta.destination }

// SetDestination changes the matrix reached at progress 1.
func (ta *TransformActivity) SetDestination(m f64.Aff3) { ta.destination = m }

// CaptureSource snapshots the target's current transform.
func (ta *TransformActivity) CaptureSource() {
	ta.target.SourceMatrix(&ta.source)
}

// SetRelativeTargetValue sets the target to the coefficient-wise blend of
// source and destination at t.
func (ta *TransformActivity) SetRelativeTargetValue(t float64) {
	var m f64.Aff3
	for i := range m {
		m[i] = lerp(ta.source[i], ta.destination[i], t)
	}
	ta.target.SetTransform(m)
}

func (ta *TransformActivity) targetDisposed() bool { return isDisposed(ta.target) }
