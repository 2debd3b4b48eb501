package ports

import "time"

// Scheduler fires callbacks after a delay. There is no cancellation: fired
// callbacks are expected to re-check session liveness before applying any
// effect (see the widget's epoch guard).
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// WallScheduler schedules on real time via time.AfterFunc.
type WallScheduler struct{}

func (WallScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
