package sway

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Mode selects the direction in which progress is applied to a target.
type Mode uint8

const (
	// SourceToDestination animates from the source value to the destination.
	SourceToDestination Mode = iota
	// DestinationToSource animates from the destination back to the source.
	DestinationToSource
	// SourceToDestinationToSource reaches the destination halfway through
	// each loop and returns to the source at the end.
	SourceToDestinationToSource
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case SourceToDestination:
		return "source-to-destination"
	case DestinationToSource:
		return "destination-to-source"
	case SourceToDestinationToSource:
		return "source-to-destination-to-source"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Adjust maps progress t to the relative target value for this mode.
func (m Mode) Adjust(t float64) float64 {
	switch m {
	case DestinationToSource:
		return 1 - t
	case SourceToDestinationToSource:
		if t <= 0.5 {
			return 2 * t
		}
		return 2 * (1 - t)
	default:
		return t
	}
}

// SlowInSlowOut is the symmetric quadratic ease-in/ease-out curve.
func SlowInSlowOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// Interpolator applies interpolated values to the target of an
// InterpolatingActivity.
type Interpolator interface {
	// CaptureSource snapshots the target's current value. It is called when
	// the first loop starts, before the target is set to progress 0.
	CaptureSource()
	// SetRelativeTargetValue applies the value at t, where 0 is the source
	// and 1 is the destination.
	SetRelativeTargetValue(t float64)
}

// InterpolatorFuncs adapts optional callbacks to the Interpolator interface.
type InterpolatorFuncs struct {
	Capture func()
	Apply   func(t float64)
}

func (f InterpolatorFuncs) CaptureSource() {
	if f.Capture != nil {
		f.Capture()
	}
}

func (f InterpolatorFuncs) SetRelativeTargetValue(t float64) {
	if f.Apply != nil {
		f.Apply(t)
	}
}

// disposable is implemented by targets that can be torn down while an
// activity still references them (see Node.IsDisposed).
type disposable interface {
	IsDisposed() bool
}

// targetDisposer is implemented by interpolators that can report whether
// their target has been disposed.
type targetDisposer interface {
	targetDisposed() bool
}

func isDisposed(target any) bool {
	d, ok := target.(disposable)
	return ok && d.IsDisposed()
}

// InterpolatingActivity maps elapsed time to progress in [0, 1], shapes it
// with easing and a Mode, and hands the result to an Interpolator. It can
// loop a fixed number of times or forever.
type InterpolatingActivity struct {
	Activity

	interp        Interpolator
	mode          Mode
	loopCount     int
	firstLoop     bool
	slowInSlowOut bool
	ease          ease.TweenFunc
}

// NewInterpolatingActivity creates an interpolating activity that starts now.
// interp may be nil. Panics if duration is not positive.
func NewInterpolatingActivity(duration, stepRate time.Duration, interp Interpolator) *InterpolatingActivity {
	ia := &InterpolatingActivity{}
	ia.initInterpolating(duration, stepRate, interp)
	return ia
}

func (ia *InterpolatingActivity) initInterpolating(duration, stepRate time.Duration, interp Interpolator) {
	if duration <= 0 {
		panic(fmt.Sprintf("sway: interpolating activity duration must be positive, got %v", duration))
	}
	ia.init(duration, stepRate, GlobalTime())
	ia.positive = true
	ia.hooks = ia
	ia.interp = interp
	ia.mode = SourceToDestination
	ia.loopCount = 1
	ia.firstLoop = true
	ia.slowInSlowOut = true
}

// Mode returns the activity's direction mode.
func (ia *InterpolatingActivity) Mode() Mode { return ia.mode }

// SetMode changes the activity's direction mode.
func (ia *InterpolatingActivity) SetMode(m Mode) { ia.mode = m }

// LoopCount returns the remaining number of loops, or LoopForever.
func (ia *InterpolatingActivity) LoopCount() int { return ia.loopCount }

// SetLoopCount sets the number of loops. Use LoopForever to repeat until
// terminated.
func (ia *InterpolatingActivity) SetLoopCount(n int) { ia.loopCount = n }

// FirstLoop reports whether the first loop has not yet completed.
func (ia *InterpolatingActivity) FirstLoop() bool { return ia.firstLoop }

// SetFirstLoop overrides the first-loop flag. Setting it true makes the next
// start snapshot the target's source value again.
func (ia *InterpolatingActivity) SetFirstLoop(first bool) { ia.firstLoop = first }

// SlowInSlowOut reports whether the quadratic ease-in/ease-out is applied.
func (ia *InterpolatingActivity) SlowInSlowOut() bool { return ia.slowInSlowOut }

// SetSlowInSlowOut enables or disables the quadratic ease-in/ease-out.
func (ia *InterpolatingActivity) SetSlowInSlowOut(on bool) { ia.slowInSlowOut = on }

// SetEase installs a gween easing curve that replaces slow-in/slow-out. Pass
// nil to go back to the built-in curve. Curves that overshoot, such as
// ease.OutBack or ease.OutElastic, are clamped to [0, 1].
func (ia *InterpolatingActivity) SetEase(fn ease.TweenFunc) { ia.ease = fn }

// Interpolator returns the value applier, or nil.
func (ia *InterpolatingActivity) Interpolator() Interpolator { return ia.interp }

// ApplyProgress applies progress t to the target after adjusting it for the
// activity's mode.
func (ia *InterpolatingActivity) ApplyProgress(t float64) {
	if ia.interp == nil || ia.interpDisposed() {
		return
	}
	ia.interp.SetRelativeTargetValue(ia.mode.Adjust(t))
}

func (ia *InterpolatingActivity) interpDisposed() bool {
	d, ok := ia.interp.(targetDisposer)
	return ok && d.targetDisposed()
}

// progress converts elapsed time to eased progress in [0, 1].
func (ia *InterpolatingActivity) progress(elapsed time.Duration) float64 {
	t := clamp01(float64(elapsed) / float64(ia.duration))
	switch {
	case ia.ease != nil:
		t = clamp01(float64(ia.ease(float32(t), 0, 1, 1)))
	case ia.slowInSlowOut:
		t = SlowInSlowOut(t)
	}
	return t
}

func (ia *InterpolatingActivity) activityStarted() {
	if ia.firstLoop && ia.interp != nil {
		ia.interp.CaptureSource()
	}
	ia.notifyStarted()
	ia.ApplyProgress(0)
}

func (ia *InterpolatingActivity) activityStep(elapsed time.Duration) {
	if ia.interpDisposed() {
		ia.TerminateWith(TerminateWithoutFinishing)
		return
	}
	ia.notifyStepped()
	ia.ApplyProgress(ia.progress(elapsed))
}

func (ia *InterpolatingActivity) activityFinished() {
	ia.ApplyProgress(1)
	ia.notifyFinished()

	if ia.loopCount <= 1 || ia.scheduler == nil {
		return
	}
	if ia.loopCount != LoopForever {
		ia.loopCount--
	}
	ia.firstLoop = false
	ia.SetStartTime(ia.scheduler.Host().GlobalTime())
	ia.scheduler.reschedule(&ia.Activity)
}

func (ia *InterpolatingActivity) activityTerminating() {
	ia.loopCount = 0
}
