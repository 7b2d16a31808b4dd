// Package schedule provides cancellable delayed callbacks.
//
// Callbacks never run concurrently with the code that scheduled them: the
// Loop scheduler hands fired tasks back to the owning event loop, and the
// Manual scheduler runs them from Advance.
package schedule

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel prevents the callback from running. Safe to call more than once
	// and after the callback has already run.
	Cancel()
}

// Scheduler runs fn once after d unless the returned Task is cancelled first.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}
