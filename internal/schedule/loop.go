package schedule

import (
	"sync"
	"time"
)

// FiredMsg is posted to the event loop when a Loop task's delay elapses.
// The loop must call Run on its own goroutine.
type FiredMsg struct {
	task *loopTask
}

// Run executes the callback unless the task was cancelled.
func (m FiredMsg) Run() {
	if m.task == nil {
		return
	}
	m.task.run()
}

// Loop schedules callbacks through an event loop. Timers fire on their own
// goroutines but only post a FiredMsg; the callback itself runs when the
// loop calls FiredMsg.Run.
type Loop struct {
	mu   sync.Mutex
	send func(any)
}

// NewLoop creates a Loop. Bind must be called before the first task fires.
func NewLoop() *Loop {
	return &Loop{}
}

// Bind sets the function used to post FiredMsg values into the event loop,
// typically (*tea.Program).Send.
func (l *Loop) Bind(send func(any)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.send = send
}

func (l *Loop) post(msg FiredMsg) {
	l.mu.Lock()
	send := l.send
	l.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	t := &loopTask{fn: fn}
	t.timer = time.AfterFunc(d, func() {
		l.post(FiredMsg{task: t})
	})
	return t
}

type loopTask struct {
	mu        sync.Mutex
	fn        func()
	timer     *time.Timer
	cancelled bool
	done      bool
}

func (t *loopTask) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	t.timer.Stop()
}

func (t *loopTask) run() {
	t.mu.Lock()
	if t.cancelled || t.done {
		t.mu.Unlock()
		return
	}
	t.done = true
	fn := t.fn
	t.mu.Unlock()
	fn()
}
