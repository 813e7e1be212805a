package sway

import (
	"fmt"
	"time"
)

// TerminateBehavior selects how Terminate resolves an activity's finish
// notifications.
type TerminateBehavior uint8

const (
	// TerminateWithoutFinishing stops the activity and never fires finished.
	TerminateWithoutFinishing TerminateBehavior = iota
	// TerminateAndFinish always ends in the finished state, firing started
	// first if the activity never began.
	TerminateAndFinish
	// TerminateAndFinishIfStepping fires finished only if the activity had
	// already started stepping.
	TerminateAndFinishIfStepping
)

// String returns a human-readable name for the behavior.
func (b TerminateBehavior) String() string {
	switch b {
	case TerminateWithoutFinishing:
		return "terminate-without-finishing"
	case TerminateAndFinish:
		return "terminate-and-finish"
	case TerminateAndFinishIfStepping:
		return "terminate-and-finish-if-stepping"
	default:
		return fmt.Sprintf("TerminateBehavior(%d)", uint8(b))
	}
}

// Delegate observes the lifecycle of an activity.
type Delegate interface {
	ActivityStarted(a *Activity)
	ActivityStepped(a *Activity)
	ActivityFinished(a *Activity)
}

// DelegateFuncs adapts optional callbacks to the Delegate interface. Nil
// callbacks are skipped.
type DelegateFuncs struct {
	OnStart  func(a *Activity)
	OnStep   func(a *Activity)
	OnFinish func(a *Activity)
}

func (d DelegateFuncs) ActivityStarted(a *Activity) {
	if d.OnStart != nil {
		d.OnStart(a)
	}
}

func (d DelegateFuncs) ActivityStepped(a *Activity) {
	if d.OnStep != nil {
		d.OnStep(a)
	}
}

func (d DelegateFuncs) ActivityFinished(a *Activity) {
	if d.OnFinish != nil {
		d.OnFinish(a)
	}
}

// Schedulable is implemented by every activity type. Types that embed
// Activity satisfy it automatically.
type Schedulable interface {
	activity() *Activity
}

// lifecycle lets an embedding activity type take over the started, step,
// finished, and terminate hooks.
type lifecycle interface {
	activityStarted()
	activityStep(elapsed time.Duration)
	activityFinished()
	activityTerminating()
}

// Activity is a time-bounded unit of work stepped by a Scheduler. It moves
// through three states: idle until its start time, stepping while inside its
// window, and finished once the window has passed or it is terminated.
//
// A plain Activity only notifies its Delegate. Interpolating activities embed
// it and apply values to a target on every step.
type Activity struct {
	startTime    time.Duration
	duration     time.Duration
	stepRate     time.Duration
	nextStepTime time.Duration
	stepping     bool
	done         bool
	animation    bool

	// positive is set by interpolating activities, which divide by duration.
	positive bool

	scheduler *Scheduler
	delegate  Delegate
	hooks     lifecycle
}

// NewActivity creates an activity that starts now and steps at
// DefaultStepRate. Pass Forever for an activity that runs until terminated.
func NewActivity(duration time.Duration) *Activity {
	return NewActivityAt(duration, DefaultStepRate, GlobalTime())
}

// NewActivityAt creates an activity with an explicit step rate and start time.
func NewActivityAt(duration, stepRate, startTime time.Duration) *Activity {
	a := &Activity{}
	a.init(duration, stepRate, startTime)
	return a
}

func (a *Activity) init(duration, stepRate, startTime time.Duration) {
	a.duration = duration
	a.stepRate = stepRate
	a.startTime = startTime
	a.nextStepTime = startTime
}

func (a *Activity) activity() *Activity { return a }

// --- Accessors ---

// StartTime returns the global time at which the activity begins.
func (a *Activity) StartTime() time.Duration { return a.startTime }

// SetStartTime moves the activity's window and returns a finished activity
// to idle. The next step is due immediately once the new start time is
// reached.
func (a *Activity) SetStartTime(t time.Duration) {
	a.startTime = t
	a.nextStepTime = t
	a.done = false
}

// Duration returns the activity's length, or Forever.
func (a *Activity) Duration() time.Duration { return a.duration }

// SetDuration changes the activity's length. Panics if the activity
// interpolates and d is not positive.
func (a *Activity) SetDuration(d time.Duration) {
	if a.positive && d <= 0 {
		panic(fmt.Sprintf("sway: interpolating activity duration must be positive, got %v", d))
	}
	a.duration = d
}

// StepRate returns the minimum interval between steps.
func (a *Activity) StepRate() time.Duration { return a.stepRate }

// SetStepRate changes the minimum interval between steps.
func (a *Activity) SetStepRate(r time.Duration) { a.stepRate = r }

// NextStepTime returns the earliest global time of the next step. Only
// meaningful while the activity is scheduled.
func (a *Activity) NextStepTime() time.Duration { return a.nextStepTime }

// StopTime returns the end of the activity's window. Activities with Forever
// duration never stop on their own and report the maximum representable time,
// as does any window that would end past it.
func (a *Activity) StopTime() time.Duration {
	if a.duration == Forever || a.startTime > maxTime-a.duration {
		return maxTime
	}
	return a.startTime + a.duration
}

// IsStepping reports whether started has fired and finished has not.
func (a *Activity) IsStepping() bool { return a.stepping }

// IsFinished reports whether the activity has finished or been terminated.
// Moving its start time makes it idle again.
func (a *Activity) IsFinished() bool { return a.done }

// IsAnimation reports whether the activity animates a visual property. The
// renderer may lower quality while any animation is scheduled.
func (a *Activity) IsAnimation() bool { return a.animation }

// Scheduler returns the scheduler the activity was last added to, or nil.
func (a *Activity) Scheduler() *Scheduler { return a.scheduler }

// Delegate returns the activity's lifecycle observer, or nil.
func (a *Activity) Delegate() Delegate { return a.delegate }

// SetDelegate sets the activity's lifecycle observer. Pass nil to clear it.
func (a *Activity) SetDelegate(d Delegate) { a.delegate = d }

// StartAfter schedules this activity to begin when other ends. The start time
// is computed once; later changes to other do not propagate.
func (a *Activity) StartAfter(other Schedulable) {
	o := other.activity()
	a.SetStartTime(o.StopTime())
}

// --- Stepping ---

// ProcessStep advances the activity's state machine to the given global time.
// It returns the delay until the activity wants to be stepped again, or Never
// once it has finished.
func (a *Activity) ProcessStep(now time.Duration) time.Duration {
	if a.done {
		return Never
	}
	if now < a.startTime {
		return a.startTime - now
	}

	if now > a.StopTime() {
		wasStepping := a.stepping
		a.stepping = false
		a.done = true
		if !wasStepping {
			a.started()
		}
		a.unschedule()
		a.finished()
		return Never
	}

	if !a.stepping {
		a.started()
		a.stepping = true
	}

	if now >= a.nextStepTime {
		a.step(now - a.startTime)
		a.nextStepTime = now + a.stepRate
	}

	return a.stepRate
}

// Terminate stops the activity with TerminateAndFinishIfStepping.
func (a *Activity) Terminate() {
	a.TerminateWith(TerminateAndFinishIfStepping)
}

// TerminateWith removes the activity from its scheduler and resolves its
// finish notification according to behavior. A finished activity is only
// unscheduled. Panics on an unknown behavior.
func (a *Activity) TerminateWith(behavior TerminateBehavior) {
	if behavior > TerminateAndFinishIfStepping {
		panic(fmt.Sprintf("sway: invalid termination behavior %d", uint8(behavior)))
	}
	if a.hooks != nil {
		a.hooks.activityTerminating()
	}
	a.unschedule()
	if a.done {
		return
	}

	wasStepping := a.stepping
	a.stepping = false
	a.done = true
	switch behavior {
	case TerminateAndFinish:
		if !wasStepping {
			a.started()
		}
		a.finished()
	case TerminateAndFinishIfStepping:
		if wasStepping {
			a.finished()
		}
	}
}

func (a *Activity) unschedule() {
	if a.scheduler != nil {
		a.scheduler.RemoveActivity(a)
	}
}

func (a *Activity) started() {
	if a.hooks != nil {
		a.hooks.activityStarted()
		return
	}
	a.notifyStarted()
}

func (a *Activity) step(elapsed time.Duration) {
	if a.hooks != nil {
		a.hooks.activityStep(elapsed)
		return
	}
	a.notifyStepped()
}

func (a *Activity) finished() {
	if a.hooks != nil {
		a.hooks.activityFinished()
		return
	}
	a.notifyFinished()
}

func (a *Activity) notifyStarted() {
	if a.delegate != nil {
		a.delegate.ActivityStarted(a)
	}
}

func (a *Activity) notifyStepped() {
	if a.delegate != nil {
		a.delegate.ActivityStepped(a)
	}
}

func (a *Activity) notifyFinished() {
	if a.delegate != nil {
		a.delegate.ActivityFinished(a)
	}
}
