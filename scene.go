package sway

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and the activity
// scheduler. It is the scheduler's Host: it supplies global time, creates the
// frame timer, and processes activities once per frame while any are
// scheduled.
type Scene struct {
	root      *Node
	scheduler *Scheduler
	debug     bool

	// ClearColor fills the screen before nodes are drawn. A zero alpha
	// leaves the screen as is.
	ClearColor Color

	timers     []*frameTimer
	updateFunc func() error

	// globalTime is fixed for the duration of a ProcessInputs pass so that
	// every activity in the pass sees the same time.
	globalTime time.Duration
	processing bool

	// Render state
	pixel *ebiten.Image
}

// NewScene creates a new scene with a pre-created root container and an empty
// scheduler.
func NewScene() *Scene {
	s := &Scene{root: NewContainer("root")}
	s.scheduler = NewScheduler(s)
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Scheduler returns the scene's activity scheduler.
func (s *Scene) Scheduler() *Scheduler {
	return s.scheduler
}

// AddActivity schedules a on the scene's scheduler.
func (s *Scene) AddActivity(a Schedulable) {
	s.scheduler.AddActivity(a)
}

// GlobalTime returns the time of the current ProcessInputs pass, or the live
// global clock outside of a pass.
func (s *Scene) GlobalTime() time.Duration {
	if s.processing {
		return s.globalTime
	}
	return GlobalTime()
}

// NewTimer creates a stopped timer fired from Update every interval.
func (s *Scene) NewTimer(interval time.Duration, fn func()) Timer {
	t := &frameTimer{interval: interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// ProcessInputs runs one frame of activity processing at the current global
// time and refreshes world transforms.
func (s *Scene) ProcessInputs() {
	s.globalTime = GlobalTime()
	s.processing = true
	s.scheduler.ProcessActivities(s.globalTime)
	s.processing = false
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// SetUpdateFunc sets a callback run once per tick after activities have been
// processed. An error returned from it stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update fires due timers (which process activities) and then the update
// func. Run calls it once per tick.
func (s *Scene) Update() error {
	now := GlobalTime()
	for i := 0; i < len(s.timers); i++ {
		s.timers[i].fire(now)
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw renders every visible sized node as a tinted quad using its world
// transform.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.NRGBA())
	}
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(ColorWhite.NRGBA())
	}
	s.drawNode(screen, s.root)
	if s.debug {
		s.drawDebugOverlay(screen)
	}
}

func (s *Scene) drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	if n.Width > 0 && n.Height > 0 && n.worldAlpha > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(n.WorldGeoM())
		a := float32(n.Color.A * n.worldAlpha)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		screen.DrawImage(s.pixel, &op)
	}
	for _, child := range n.children {
		s.drawNode(screen, child)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, per-pass scheduler stats are logged to stderr, and an
// overlay with scheduler counts is drawn.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.scheduler.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
