// Package runonce provides an idempotent, thread-safe "run once, remember the
// outcome" gate for platform subsystems that must be initialized exactly once
// per process (clipboard device setup, COM apartment initialization).
//
// Unlike a bare sync.Once, a Guard records the first run's error and returns
// it to every later caller, and it is an explicitly constructed value meant to
// be threaded into whatever needs it rather than hidden in package state.
package runonce

import "sync"

// Guard runs its function once and replays the recorded outcome afterwards.
// The zero value is ready to use.
type Guard struct {
	once sync.Once
	err  error
}

// Do runs fn the first time it is called on this Guard and stores the result.
// Every call, including the first, returns the stored result. Concurrent
// callers block until the first run completes.
func (g *Guard) Do(fn func() error) error {
	g.once.Do(func() { g.err = fn() })
	return g.err
}
