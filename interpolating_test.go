package sway

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// valueRecorder captures every relative target value applied to it.
type valueRecorder struct {
	captures int
	values   []float64
}

func (v *valueRecorder) CaptureSource() { v.captures++ }

func (v *valueRecorder) SetRelativeTargetValue(t float64) { v.values = append(v.values, t) }

func (v *valueRecorder) last() float64 {
	if len(v.values) == 0 {
		return -1
	}
	return v.values[len(v.values)-1]
}

func newTestInterpolating(interp Interpolator) *InterpolatingActivity {
	ia := NewInterpolatingActivity(ms(100), ms(10), interp)
	ia.SetStartTime(0)
	return ia
}

// --- Curves ---

func TestSlowInSlowOut(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
	}
	for _, c := range cases {
		assertNear(t, "SlowInSlowOut", SlowInSlowOut(c.in), c.want)
	}
	// Symmetric about the midpoint.
	assertNear(t, "symmetry", SlowInSlowOut(0.3)+SlowInSlowOut(0.7), 1)
}

func TestModeAdjust(t *testing.T) {
	cases := []struct {
		mode Mode
		in   float64
		want float64
	}{
		{SourceToDestination, 0.3, 0.3},
		{DestinationToSource, 0, 1},
		{DestinationToSource, 0.3, 0.7},
		{DestinationToSource, 1, 0},
		{SourceToDestinationToSource, 0, 0},
		{SourceToDestinationToSource, 0.25, 0.5},
		{SourceToDestinationToSource, 0.5, 1},
		{SourceToDestinationToSource, 0.75, 0.5},
		{SourceToDestinationToSource, 1, 0},
	}
	for _, c := range cases {
		assertNear(t, c.mode.String(), c.mode.Adjust(c.in), c.want)
	}
}

func TestModeString(t *testing.T) {
	if DestinationToSource.String() != "destination-to-source" {
		t.Errorf("String = %q", DestinationToSource.String())
	}
	if Mode(5).String() != "Mode(5)" {
		t.Errorf("String = %q", Mode(5).String())
	}
}

// --- Construction ---

func TestNewInterpolatingDefaults(t *testing.T) {
	ia := NewInterpolatingActivity(ms(100), ms(10), nil)
	if ia.Mode() != SourceToDestination {
		t.Errorf("Mode = %v, want source-to-destination", ia.Mode())
	}
	if ia.LoopCount() != 1 {
		t.Errorf("LoopCount = %d, want 1", ia.LoopCount())
	}
	if !ia.FirstLoop() {
		t.Error("FirstLoop should be true")
	}
	if !ia.SlowInSlowOut() {
		t.Error("SlowInSlowOut should default to true")
	}
	if ia.Interpolator() != nil {
		t.Error("Interpolator should be nil")
	}
}

func TestInterpolatingNonPositiveDurationPanics(t *testing.T) {
	assertPanics(t, "duration must be positive", func() {
		NewInterpolatingActivity(0, ms(10), nil)
	})
	assertPanics(t, "duration must be positive", func() {
		NewInterpolatingActivity(Forever, ms(10), nil)
	})
	ia := NewInterpolatingActivity(ms(100), ms(10), nil)
	assertPanics(t, "duration must be positive", func() {
		ia.SetDuration(0)
	})
	if ia.Duration() != ms(100) {
		t.Errorf("Duration = %v after rejected set, want 100ms", ia.Duration())
	}
}

// --- Progress ---

func TestProgressClamped(t *testing.T) {
	ia := newTestInterpolating(nil)
	ia.SetSlowInSlowOut(false)

	assertNear(t, "before", ia.progress(-ms(50)), 0)
	assertNear(t, "mid", ia.progress(ms(25)), 0.25)
	assertNear(t, "after", ia.progress(ms(150)), 1)
}

func TestProgressSlowInSlowOut(t *testing.T) {
	ia := newTestInterpolating(nil)
	assertNear(t, "quarter", ia.progress(ms(25)), 0.125)
}

func TestProgressEaseOverridesSlowInSlowOut(t *testing.T) {
	ia := newTestInterpolating(nil)
	ia.SetEase(ease.InQuad)
	assertNear(t, "inQuad", ia.progress(ms(50)), 0.25)

	ia.SetEase(ease.Linear)
	assertNear(t, "linear", ia.progress(ms(50)), 0.5)

	ia.SetEase(nil)
	assertNear(t, "restored", ia.progress(ms(25)), 0.125)
}

func TestProgressOvershootingEaseClamped(t *testing.T) {
	ia := newTestInterpolating(nil)
	ia.SetEase(ease.OutBack)
	assertNear(t, "outBack", ia.progress(ms(70)), 1)

	ia.SetEase(ease.InBack)
	assertNear(t, "inBack", ia.progress(ms(20)), 0)
}

// --- Lifecycle ---

func TestInterpolatingStartAndFinishApplyEndpoints(t *testing.T) {
	v := &valueRecorder{}
	ia := newTestInterpolating(v)
	ia.SetSlowInSlowOut(false)

	ia.ProcessStep(0)
	if v.captures != 1 {
		t.Errorf("captures = %d, want 1", v.captures)
	}
	// started applies 0, then the step at elapsed 0 applies 0.
	if len(v.values) != 2 || v.values[0] != 0 || v.values[1] != 0 {
		t.Errorf("values = %v, want [0 0]", v.values)
	}

	ia.ProcessStep(ms(50))
	assertNear(t, "mid", v.last(), 0.5)

	ia.ProcessStep(ms(200))
	assertNear(t, "finish", v.last(), 1)
}

func TestInterpolatingModeAppliedToEndpoints(t *testing.T) {
	v := &valueRecorder{}
	ia := newTestInterpolating(v)
	ia.SetMode(DestinationToSource)

	ia.ProcessStep(0)
	assertNear(t, "start", v.values[0], 1)
	ia.ProcessStep(ms(200))
	assertNear(t, "finish", v.last(), 0)
}

func TestInterpolatingDelegateOrder(t *testing.T) {
	var order []string
	v := InterpolatorFuncs{
		Capture: func() { order = append(order, "capture") },
		Apply:   func(float64) { order = append(order, "apply") },
	}
	ia := newTestInterpolating(v)
	ia.SetDelegate(DelegateFuncs{
		OnStart:  func(*Activity) { order = append(order, "started") },
		OnStep:   func(*Activity) { order = append(order, "stepped") },
		OnFinish: func(*Activity) { order = append(order, "finished") },
	})

	ia.ProcessStep(0)
	ia.ProcessStep(ms(200))

	want := []string{"capture", "started", "apply", "stepped", "apply", "apply", "finished"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestInterpolatingNilInterpolator(t *testing.T) {
	rec := &recorder{}
	ia := newTestInterpolating(nil)
	ia.SetDelegate(rec)
	ia.ProcessStep(0)
	ia.ProcessStep(ms(200))
	assertEvents(t, rec, "started", "stepped", "finished")
}

// --- Looping ---

func TestInterpolatingLoopsThreeTimes(t *testing.T) {
	s, h := newTestScheduler()
	rec := &recorder{}
	v := &valueRecorder{}
	ia := newTestInterpolating(v)
	ia.SetLoopCount(3)
	ia.SetDelegate(rec)
	s.AddActivity(ia)

	for _, now := range []int64{0, 50, 101, 150, 202, 250, 303} {
		h.frame(ms(now))
	}

	if rec.count("started") != 3 || rec.count("finished") != 3 {
		t.Errorf("started/finished = %d/%d, want 3/3 (events %v)",
			rec.count("started"), rec.count("finished"), rec.events)
	}
	if v.captures != 1 {
		t.Errorf("captures = %d, want 1 (first loop only)", v.captures)
	}
	if s.Contains(ia) {
		t.Error("activity should be removed after its last loop")
	}
	if ia.FirstLoop() {
		t.Error("FirstLoop should be false after the first loop")
	}
	assertTimerRunning(t, s, h)
}

func TestInterpolatingLoopRestartsFromCurrentTime(t *testing.T) {
	s, h := newTestScheduler()
	ia := newTestInterpolating(nil)
	ia.SetLoopCount(2)
	s.AddActivity(ia)

	h.frame(0)
	h.frame(ms(170))

	if ia.StartTime() != ms(170) {
		t.Errorf("StartTime = %v, want 170ms", ia.StartTime())
	}
	if ia.LoopCount() != 1 {
		t.Errorf("LoopCount = %d, want 1", ia.LoopCount())
	}
	if !s.Contains(ia) {
		t.Error("activity should be rescheduled for its next loop")
	}
}

func TestInterpolatingRestartDeferredUntilPassEnds(t *testing.T) {
	s, h := newTestScheduler()
	ia := newTestInterpolating(nil)
	ia.SetLoopCount(2)
	var containedDuringFinish bool
	ia.SetDelegate(DelegateFuncs{OnFinish: func(*Activity) { containedDuringFinish = s.Contains(ia) }})
	s.AddActivity(ia)

	h.frame(0)
	h.frame(ms(150))

	if containedDuringFinish {
		t.Error("restart should not be scheduled while the pass is running")
	}
	if !s.Contains(ia) {
		t.Error("restart should be scheduled once the pass completes")
	}
}

func TestInterpolatingLoopForeverUntilTerminated(t *testing.T) {
	s, h := newTestScheduler()
	rec := &recorder{}
	ia := newTestInterpolating(nil)
	ia.SetLoopCount(LoopForever)
	ia.SetDelegate(rec)
	s.AddActivity(ia)

	now := int64(0)
	for range 10 {
		h.frame(ms(now))
		now += 60
	}
	if ia.LoopCount() != LoopForever {
		t.Errorf("LoopCount = %d, want LoopForever", ia.LoopCount())
	}
	if !s.Contains(ia) {
		t.Fatal("forever loop should still be scheduled")
	}
	finishedBefore := rec.count("finished")

	ia.Terminate()
	h.frame(ms(now + 500))

	if s.Contains(ia) {
		t.Error("terminated loop should not be rescheduled")
	}
	if rec.count("finished") != finishedBefore+1 {
		t.Errorf("finished = %d, want %d", rec.count("finished"), finishedBefore+1)
	}
	if ia.LoopCount() != 0 {
		t.Errorf("LoopCount = %d, want 0 after terminate", ia.LoopCount())
	}
}

func TestInterpolatingLoopWithoutSchedulerFinishes(t *testing.T) {
	rec := &recorder{}
	ia := newTestInterpolating(nil)
	ia.SetLoopCount(3)
	ia.SetDelegate(rec)

	ia.ProcessStep(0)
	ia.ProcessStep(ms(200))
	ia.ProcessStep(ms(400))

	if rec.count("finished") != 1 {
		t.Errorf("finished = %d, want 1 without a scheduler", rec.count("finished"))
	}
}

// --- Disposed targets ---

func TestInterpolatingDisposedTargetTerminates(t *testing.T) {
	s, h := newTestScheduler()
	rec := &recorder{}
	n := NewContainer("n")
	ca := NewColorActivity(ms(100), ms(10), n, Color{A: 1})
	ca.SetStartTime(0)
	ca.SetDelegate(rec)
	s.AddActivity(ca)

	h.frame(0)
	n.Dispose()
	h.frame(ms(50))

	assertEvents(t, rec, "started", "stepped")
	if s.Contains(ca) {
		t.Error("activity with a disposed target should be removed")
	}
	if n.Color != ColorWhite {
		t.Errorf("disposed node color = %v, want untouched white", n.Color)
	}
}
