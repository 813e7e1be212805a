package sway

import "time"

// ColorTarget is a value whose color can be animated.
type ColorTarget interface {
	CurrentColor() Color
	SetColor(c Color)
}

// ColorActivity blends a target's color channel by channel from the color it
// had when the activity first started to a destination color.
type ColorActivity struct {
	InterpolatingActivity

	target      ColorTarget
	source      Color
	destination Color
}

// NewColorActivity creates a color animation that starts now. Panics if
// target is nil or duration is not positive.
func NewColorActivity(duration, stepRate time.Duration, target ColorTarget, destination Color) *ColorActivity {
	if target == nil {
		panic("sway: color activity needs a target")
	}
	ca := &ColorActivity{target: target, destination: destination}
	ca.initInterpolating(duration, stepRate, ca)
	ca.animation = true
	return ca
}

// Target returns the animated value.
func (ca *ColorActivity) Target() ColorTarget { return ca.target }

// Source returns the color captured when the first loop started.
func (ca *ColorActivity) Source() Color { return ca.source }

// Destination returns the color reached at progress 1.
func (ca *ColorActivity) Destination() Color { return ca.destination }

// SetDestination changes the color reached at progress 1.
func (ca *ColorActivity) SetDestination(c Color) { ca.destination = c }

// CaptureSource snapshots the target's current color.
func (ca *ColorActivity) CaptureSource() {
	ca.source = ca.target.CurrentColor()
}

// SetRelativeTargetValue sets the target to the blend of source and
// destination at t.
func (ca *ColorActivity) SetRelativeTargetValue(t float64) {
	ca.target.SetColor(ca.source.Lerp(ca.destination, t))
}

func (ca *ColorActivity) targetDisposed() bool { return isDisposed(ca.target) }
