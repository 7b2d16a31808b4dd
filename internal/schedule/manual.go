package schedule

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. It is meant for
// tests and for line-mode front ends that have no event loop.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	m.seq++
	t := &manualTask{due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every live task that came
// due, in deadline order. Tasks scheduled by a callback run in the same call
// if they fall due before the new time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.due
		t.fired = true
		t.fn()
	}
	m.now = target
	m.prune()
}

// Flush runs every live task regardless of its deadline.
func (m *Manual) Flush() {
	for {
		t := m.nextDue(-1)
		if t == nil {
			return
		}
		if t.due > m.now {
			m.now = t.due
		}
		t.fired = true
		t.fn()
		m.prune()
	}
}

// Len reports the number of tasks that are still waiting to fire.
func (m *Manual) Len() int {
	n := 0
	for _, t := range m.tasks {
		if t.live() {
			n++
		}
	}
	return n
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// nextDue returns the earliest live task due at or before limit.
// A negative limit matches any live task.
func (m *Manual) nextDue(limit time.Duration) *manualTask {
	live := make([]*manualTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.live() && (limit < 0 || t.due <= limit) {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (m *Manual) prune() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.live() {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
}

type manualTask struct {
	due       time.Duration
	seq       int
	fn        func()
	fired     bool
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

func (t *manualTask) live() bool { return !t.fired && !t.cancelled }
