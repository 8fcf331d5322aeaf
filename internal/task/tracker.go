package task

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/mhalvorsen/lsm-workbench/internal/model"
)

// Status is a task lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether no further updates can follow.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ErrNotFound is returned for unknown task IDs.
var ErrNotFound = errors.New("task not found")

// Snapshot is an immutable view of a task.
type Snapshot struct {
	ID       string               `json:"task_id"`
	Status   Status               `json:"status"`
	Progress string               `json:"progress"`
	Results  []model.ResultRecord `json:"results,omitempty"`
	Error    string               `json:"error,omitempty"`
}

type entry struct {
	snap Snapshot
	subs map[chan Snapshot]struct{}
}

// Tracker is an in-memory task store keyed by UUID.
type Tracker struct {
	mu    sync.RWMutex
	tasks map[string]*entry
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{tasks: make(map[string]*entry)}
}

// Create registers a new pending task and returns its ID.
func (t *Tracker) Create() string {
	id := uuid.NewString()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks[id] = &entry{
		snap: Snapshot{ID: id, Status: StatusPending, Progress: "Queued"},
		subs: make(map[chan Snapshot]struct{}),
	}
	return id
}

// Get returns the current snapshot of a task.
func (t *Tracker) Get(id string) (Snapshot, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.tasks[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return e.snap, nil
}

// SetRunning marks the task as running.
func (t *Tracker) SetRunning(id string) {
	t.update(id, func(s *Snapshot) {
		s.Status = StatusRunning
	})
}

// SetProgress updates the task's progress message.
func (t *Tracker) SetProgress(id, progress string) {
	t.update(id, func(s *Snapshot) {
		s.Progress = progress
	})
}

// Complete marks the task completed and attaches its results.
func (t *Tracker) Complete(id string, results []model.ResultRecord) {
	t.update(id, func(s *Snapshot) {
		s.Status = StatusCompleted
		s.Progress = "Done"
		s.Results = results
	})
}

// Fail marks the task failed with the given error.
func (t *Tracker) Fail(id string, err error) {
	t.update(id, func(s *Snapshot) {
		s.Status = StatusFailed
		s.Error = err.Error()
	})
}

// Subscribe returns a channel of snapshot updates for a task plus a
// cancel function. The channel immediately carries the current
// snapshot. Updates are latest-wins; the channel is never closed by the
// tracker, so receivers should stop at a terminal status.
func (t *Tracker) Subscribe(id string) (<-chan Snapshot, func(), error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.tasks[id]
	if !ok {
		return nil, nil, ErrNotFound
	}

	ch := make(chan Snapshot, 1)
	ch <- e.snap
	e.subs[ch] = struct{}{}

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(e.subs, ch)
	}
	return ch, cancel, nil
}

func (t *Tracker) update(id string, mutate func(*Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.tasks[id]
	if !ok {
		return
	}
	mutate(&e.snap)
	for ch := range e.subs {
		publishLatest(ch, e.snap)
	}
}

// publishLatest delivers snap without blocking: if the subscriber has
// not consumed the previous update, it is replaced.
func publishLatest(ch chan Snapshot, snap Snapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
