// Package task runs long operations (simulated payment processing, scanner
// warm-up) in the background with start / progress / complete / cancel
// semantics.
//
// A task only ever mutates shared state through its own function, and that
// function commits at the very end. Cancelling a task cancels its context;
// Cancel then waits for the function to return, so by the time Cancel reports
// success the caller knows nothing was committed.
package task

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
)

var (
	// ErrTaskNotFound is returned when a task id is unknown.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotCancellable is returned when the task already reached a
	// terminal state (including committing before the cancel arrived).
	ErrTaskNotCancellable = errors.New("task not cancellable")
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal returns true for completed, failed and cancelled.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Progress tracks execution progress.
type Progress struct {
	CurrentStep int
	TotalSteps  int
	StepName    string
	Percentage  float64
}

// Reporter lets a running function publish progress.
type Reporter interface {
	Report(step, total int, name string)
}

// Func is the body of a task. It must honour ctx and return ctx.Err() (or an
// error wrapping it) when cancelled before committing.
type Func func(ctx context.Context, report Reporter) (any, error)

// Snapshot is a point-in-time copy of a task's state.
type Snapshot struct {
	ID          string
	Kind        string
	Status      Status
	Progress    Progress
	Result      any
	Err         error
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Task is a single background operation.
type Task struct {
	id    string
	kind  string
	clock clock.Clock

	mu          sync.RWMutex
	status      Status
	progress    Progress
	result      any
	err         error
	createdAt   time.Time
	completedAt *time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// ID returns the task identifier.
func (t *Task) ID() string { return t.id }

// Done is closed when the task reaches a terminal state.
func (t *Task) Done() <-chan struct{} { return t.done }

// Snapshot returns the current state.
func (t *Task) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Snapshot{
		ID:          t.id,
		Kind:        t.kind,
		Status:      t.status,
		Progress:    t.progress,
		Result:      t.result,
		Err:         t.err,
		CreatedAt:   t.createdAt,
		CompletedAt: t.completedAt,
	}
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-t.done:
		return t.Snapshot(), nil
	case <-ctx.Done():
		return t.Snapshot(), ctx.Err()
	}
}

// Cancel requests cancellation and waits for the task to stop.
func (t *Task) Cancel() error {
	if t.Snapshot().Status.IsTerminal() {
		return ErrTaskNotCancellable
	}

	t.cancel()
	<-t.done

	if t.Snapshot().Status != StatusCancelled {
		return ErrTaskNotCancellable
	}
	return nil
}

// Report implements Reporter.
func (t *Task) Report(step, total int, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.progress = Progress{CurrentStep: step, TotalSteps: total, StepName: name}
	if total > 0 {
		t.progress.Percentage = float64(step) / float64(total) * 100
	}
}

func (t *Task) run(ctx context.Context, fn Func) {
	defer close(t.done)
	defer t.cancel()

	result, err := fn(ctx, t)

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	t.completedAt = &now

	switch {
	case err == nil:
		t.status = StatusCompleted
		t.result = result
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		t.status = StatusCancelled
		t.err = err
	default:
		t.status = StatusFailed
		t.err = err
	}
}

// Manager starts tasks and tracks them by id.
type Manager struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	ids   ident.Generator
	clock clock.Clock
}

// NewManager creates a task manager.
func NewManager(ids ident.Generator, clk clock.Clock) *Manager {
	return &Manager{
		tasks: make(map[string]*Task),
		ids:   ids,
		clock: clk,
	}
}

// Start launches fn in the background. The task context is detached from
// any request context so it outlives the call that started it.
func (m *Manager) Start(kind string, fn Func) *Task {
	ctx, cancel := context.WithCancel(context.Background())

	t := &Task{
		id:        m.ids.NewID(),
		kind:      kind,
		clock:     m.clock,
		status:    StatusRunning,
		createdAt: m.clock.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	m.mu.Lock()
	m.tasks[t.id] = t
	m.mu.Unlock()

	go t.run(ctx, fn)
	return t
}

// Get returns a task by id.
func (m *Manager) Get(id string) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// Cancel cancels a task by id.
func (m *Manager) Cancel(id string) error {
	t, err := m.Get(id)
	if err != nil {
		return err
	}
	return t.Cancel()
}

// CancelAll cancels every running task and waits for them to stop. It
// returns how many were running.
func (m *Manager) CancelAll() int {
	m.mu.RLock()
	running := make([]*Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if !t.Snapshot().Status.IsTerminal() {
			running = append(running, t)
		}
	}
	m.mu.RUnlock()

	for _, t := range running {
		_ = t.Cancel()
	}
	return len(running)
}

// Prune forgets terminal tasks that completed before the cutoff.
func (m *Manager) Prune(before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, t := range m.tasks {
		snap := t.Snapshot()
		if snap.Status.IsTerminal() && snap.CompletedAt != nil && snap.CompletedAt.Before(before) {
			delete(m.tasks, id)
			removed++
		}
	}
	return removed
}
