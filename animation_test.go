package sway

import (
	"math"
	"testing"
	"time"
)

// --- AnimateTo helpers ---

func TestAnimateToZeroDurationAppliesImmediately(t *testing.T) {
	s, box, _ := newTestScene(t)

	if s.AnimateToColor(box, colorBlack, 0) != nil || box.Color != colorBlack {
		t.Error("zero-duration color should apply immediately")
	}
	if s.AnimateToAlpha(box, 0.25, 0) != nil || box.Alpha != 0.25 {
		t.Error("zero-duration alpha should apply immediately")
	}
	if s.AnimateToPositionScaleRotation(box, 5, 6, 2, 0, 0) != nil {
		t.Error("zero-duration transform should return nil")
	}
	assertNear(t, "X", box.X, 5)
	assertNear(t, "ScaleY", box.ScaleY, 2)
	if s.AnimateToPosition(box, 7, 8, 0) != nil {
		t.Error("zero-duration position should return nil")
	}
	assertNear(t, "moved Y", box.Y, 8)
	if s.AnimateAlongPath(box, NewPolyline(Vec2{0, 0}, Vec2{9, 9}), 0) != nil {
		t.Error("zero-duration path should return nil")
	}
	assertNear(t, "path X", box.X, 9)
	if s.Scheduler().Len() != 0 {
		t.Error("zero-duration helpers should not schedule anything")
	}
}

func TestAnimateToPositionCapturesStartOnFirstStep(t *testing.T) {
	s, box, clk := newTestScene(t)
	ia := s.AnimateToPosition(box, 100, 0, 100*time.Millisecond)
	ia.SetSlowInSlowOut(false)
	ia.SetStartTime(s.GlobalTime() + 50*time.Millisecond)

	// Moved after the activity was created but before it starts.
	box.SetPosition(0, 40)
	clk.advance(50 * time.Millisecond)
	s.Update()
	assertNear(t, "start Y", box.Y, 40)

	clk.advance(50 * time.Millisecond)
	s.Update()
	assertNear(t, "mid X", box.X, 50)
	assertNear(t, "mid Y", box.Y, 20)
}

func TestAnimateToPositionScaleRotation(t *testing.T) {
	s, box, clk := newTestScene(t)
	box.SetPivot(5, 5)
	s.AnimateToPositionScaleRotation(box, 80, 60, 2, 1, 100*time.Millisecond)

	s.Update()
	clk.advance(200 * time.Millisecond)
	s.Update()

	assertNear(t, "X", box.X, 80)
	assertNear(t, "Y", box.Y, 60)
	assertNear(t, "ScaleX", box.ScaleX, 2)
	assertNear(t, "ScaleY", box.ScaleY, 2)
	assertNear(t, "Rotation", box.Rotation, 1)
	assertNear(t, "SkewX", box.SkewX, 0)
}

func TestAnimateToAlphaLoops(t *testing.T) {
	s, box, clk := newTestScene(t)
	fade := s.AnimateToAlpha(box, 0, 100*time.Millisecond)
	fade.SetMode(SourceToDestinationToSource)
	fade.SetLoopCount(2)
	finished := 0
	fade.SetDelegate(DelegateFuncs{OnFinish: func(*Activity) { finished++ }})

	s.Update()
	for range 4 {
		clk.advance(60 * time.Millisecond)
		s.Update()
	}

	if finished != 2 {
		t.Errorf("finished = %d, want 2", finished)
	}
	assertNear(t, "alpha", box.Alpha, 1)
	if !fade.IsAnimation() {
		t.Error("alpha fade should be an animation")
	}
}

func TestAnimateAlongPath(t *testing.T) {
	s, box, clk := newTestScene(t)
	path := (&Path{}).MoveTo(0, 0).QuadTo(50, 50, 100, 0)
	pa := s.AnimateAlongPath(box, path, 100*time.Millisecond)
	if len(pa.Positions()) != DefaultCurveSegments+1 {
		t.Errorf("samples = %d, want %d", len(pa.Positions()), DefaultCurveSegments+1)
	}

	s.Update()
	clk.advance(150 * time.Millisecond)
	s.Update()

	assertNear(t, "X", box.X, 100)
	if math.Abs(box.Y) > 1e-9 {
		t.Errorf("Y = %v, want 0", box.Y)
	}
}

func TestAnimateDisposedNodeStops(t *testing.T) {
	s, box, clk := newTestScene(t)
	fade := s.AnimateToAlpha(box, 0, 100*time.Millisecond)
	finished := false
	fade.SetDelegate(DelegateFuncs{OnFinish: func(*Activity) { finished = true }})

	s.Update()
	box.Dispose()
	clk.advance(20 * time.Millisecond)
	s.Update()
	clk.advance(200 * time.Millisecond)
	s.Update()

	if finished {
		t.Error("activity on a disposed node should not finish")
	}
	if s.Scheduler().Len() != 0 {
		t.Error("activity on a disposed node should leave the scheduler")
	}
}
