package sway

import (
	"fmt"
	"os"
	"slices"
	"time"
)

// Timer is a repeating host timer. The scheduler only starts and stops it.
type Timer interface {
	Start()
	Stop()
	IsRunning() bool
}

// Host is the root a Scheduler belongs to. It supplies global time and the
// repeating timer that drives activity processing. Scene is the standard
// implementation.
type Host interface {
	// GlobalTime returns the current global time.
	GlobalTime() time.Duration
	// NewTimer creates a stopped timer that calls fn every interval once
	// started.
	NewTimer(interval time.Duration, fn func()) Timer
	// ProcessInputs runs one host frame, which processes scheduled
	// activities at the current global time.
	ProcessInputs()
}

// Scheduler steps every scheduled activity once per host frame. Its host timer
// runs exactly while at least one activity is scheduled.
//
// Activities may add or remove activities, including themselves, while being
// stepped. Each pass walks a snapshot of the schedule, so such changes take
// effect on the next pass.
type Scheduler struct {
	host       Host
	frameDelay time.Duration
	debug      bool

	activities []*Activity
	processing []*Activity // snapshot reused across passes
	restarts   []*Activity // loop restarts requested during a pass
	inPass     bool

	activitiesChanged bool
	animating         bool

	timer Timer
}

// NewScheduler creates a scheduler for host. The host timer is created the
// first time an activity is added.
func NewScheduler(host Host) *Scheduler {
	return &Scheduler{
		host:       host,
		frameDelay: DefaultFrameDelay,
	}
}

// Host returns the scheduler's root.
func (s *Scheduler) Host() Host {
	return s.host
}

// SetFrameDelay changes the host timer interval. Takes effect for timers
// created afterwards.
func (s *Scheduler) SetFrameDelay(d time.Duration) {
	s.frameDelay = d
}

// AddActivity appends a to the schedule. No-op if a is already scheduled.
func (s *Scheduler) AddActivity(a Schedulable) {
	s.addActivity(a.activity(), false)
}

// AddActivityLast schedules a so that it is processed after every activity
// added with AddActivity. No-op if a is already scheduled.
func (s *Scheduler) AddActivityLast(a Schedulable) {
	s.addActivity(a.activity(), true)
}

func (s *Scheduler) addActivity(a *Activity, processLast bool) {
	if s.indexOf(a) >= 0 {
		return
	}
	s.activitiesChanged = true
	if processLast {
		s.activities = slices.Insert(s.activities, 0, a)
	} else {
		s.activities = append(s.activities, a)
	}
	a.scheduler = s
	a.done = false
	if t := s.activityTimer(); !t.IsRunning() {
		t.Start()
	}
}

// RemoveActivity removes a from the schedule. No-op if a is not scheduled.
func (s *Scheduler) RemoveActivity(a Schedulable) {
	act := a.activity()
	s.restarts = deleteActivity(s.restarts, act)
	i := s.indexOf(act)
	if i < 0 {
		return
	}
	s.activitiesChanged = true
	s.activities = slices.Delete(s.activities, i, i+1)
	if len(s.activities) == 0 {
		s.stopTimer()
	}
}

// RemoveAllActivities clears the schedule and stops the host timer.
func (s *Scheduler) RemoveAllActivities() {
	s.activitiesChanged = true
	clear(s.activities)
	s.activities = s.activities[:0]
	clear(s.restarts)
	s.restarts = s.restarts[:0]
	s.stopTimer()
}

// Contains reports whether a is scheduled.
func (s *Scheduler) Contains(a Schedulable) bool {
	return s.indexOf(a.activity()) >= 0
}

// Len returns the number of scheduled activities.
func (s *Scheduler) Len() int {
	return len(s.activities)
}

// Activities returns the schedule in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Scheduler) Activities() []*Activity {
	return s.activities
}

// Animating reports whether any scheduled activity is an animation. The
// answer is cached until the schedule changes.
func (s *Scheduler) Animating() bool {
	if s.activitiesChanged {
		s.animating = false
		for _, a := range s.activities {
			if a.IsAnimation() {
				s.animating = true
				break
			}
		}
		s.activitiesChanged = false
	}
	return s.animating
}

// ProcessActivities steps every scheduled activity at global time now,
// visiting them from the most recently appended to the first. Loop restarts
// requested during the pass are applied once it completes. A call made from
// inside a pass, such as a delegate driving the host, is ignored.
func (s *Scheduler) ProcessActivities(now time.Duration) {
	if s.inPass || len(s.activities) == 0 {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.processing = append(s.processing[:0], s.activities...)
	s.inPass = true
	for i := len(s.processing) - 1; i >= 0; i-- {
		s.processing[i].ProcessStep(now)
	}
	s.inPass = false
	processed := len(s.processing)
	clear(s.processing)
	s.processing = s.processing[:0]

	restarted := len(s.restarts)
	for i, a := range s.restarts {
		s.restarts[i] = nil
		s.addActivity(a, false)
	}
	s.restarts = s.restarts[:0]

	if s.debug {
		_, _ = fmt.Fprintf(os.Stderr,
			"[sway] activities: %d processed | %d restarted | %d scheduled | %v\n",
			processed, restarted, len(s.activities), time.Since(t0))
	}
}

// reschedule adds a back to the schedule for its next loop. During a pass the
// request is held until the pass completes.
func (s *Scheduler) reschedule(a *Activity) {
	if !s.inPass {
		s.addActivity(a, false)
		return
	}
	if !slices.Contains(s.restarts, a) {
		s.restarts = append(s.restarts, a)
	}
}

func (s *Scheduler) indexOf(a *Activity) int {
	return slices.Index(s.activities, a)
}

// activityTimer returns the host timer, creating it on first use.
func (s *Scheduler) activityTimer() Timer {
	if s.timer == nil {
		s.timer = s.host.NewTimer(s.frameDelay, s.host.ProcessInputs)
	}
	return s.timer
}

func (s *Scheduler) stopTimer() {
	if s.timer != nil && s.timer.IsRunning() {
		s.timer.Stop()
	}
}

func deleteActivity(list []*Activity, a *Activity) []*Activity {
	if i := slices.Index(list, a); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
