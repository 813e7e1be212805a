package sway

import "time"

// frameTimer is a Timer fired from Scene.Update. It fires at most once per
// tick, so intervals shorter than a tick fire every tick.
type frameTimer struct {
	interval time.Duration
	fn       func()
	running  bool
	next     time.Duration
}

func (t *frameTimer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.next = GlobalTime()
}

func (t *frameTimer) Stop() {
	t.running = false
}

func (t *frameTimer) IsRunning() bool {
	return t.running
}

// fire calls fn if the timer is running and due at now.
func (t *frameTimer) fire(now time.Duration) {
	if !t.running || now < t.next {
		return
	}
	t.next = now + t.interval
	t.fn()
}
