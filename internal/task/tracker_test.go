package task

import (
	"errors"
	"testing"
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/model"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker()
	id := tr.Create()

	snap, err := tr.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if snap.Status != StatusPending || snap.Progress != "Queued" {
		t.Errorf("new task = %+v, want pending/Queued", snap)
	}

	tr.SetRunning(id)
	tr.SetProgress(id, "Running 1/4 (scalar)")
	snap, _ = tr.Get(id)
	if snap.Status != StatusRunning {
		t.Errorf("Status = %v, want %v", snap.Status, StatusRunning)
	}
	if snap.Progress != "Running 1/4 (scalar)" {
		t.Errorf("Progress = %q", snap.Progress)
	}

	results := []model.ResultRecord{{CaseName: "unit", Backend: "scalar"}}
	tr.Complete(id, results)
	snap, _ = tr.Get(id)
	if snap.Status != StatusCompleted {
		t.Errorf("Status = %v, want %v", snap.Status, StatusCompleted)
	}
	if len(snap.Results) != 1 {
		t.Errorf("Results = %v, want one record", snap.Results)
	}
	if !snap.Status.Terminal() {
		t.Error("completed status not terminal")
	}
}

func TestTrackerFail(t *testing.T) {
	tr := NewTracker()
	id := tr.Create()

	tr.SetRunning(id)
	tr.Fail(id, errors.New("backend exploded"))

	snap, err := tr.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if snap.Status != StatusFailed {
		t.Errorf("Status = %v, want %v", snap.Status, StatusFailed)
	}
	if snap.Error != "backend exploded" {
		t.Errorf("Error = %q", snap.Error)
	}
}

func TestTrackerUnknownID(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if _, _, err := tr.Subscribe("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Subscribe error = %v, want ErrNotFound", err)
	}
}

func TestTrackerIDsUnique(t *testing.T) {
	tr := NewTracker()
	a, b := tr.Create(), tr.Create()
	if a == b {
		t.Errorf("Create returned duplicate ID %q", a)
	}
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	tr := NewTracker()
	id := tr.Create()

	ch, cancel, err := tr.Subscribe(id)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer cancel()

	// The current snapshot arrives immediately.
	select {
	case snap := <-ch:
		if snap.Status != StatusPending {
			t.Errorf("initial snapshot status = %v, want pending", snap.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	tr.Complete(id, nil)
	select {
	case snap := <-ch:
		if snap.Status != StatusCompleted {
			t.Errorf("update status = %v, want completed", snap.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("no update after Complete")
	}
}

// A subscriber that never drains still observes the latest state.
func TestSubscribeLatestWins(t *testing.T) {
	tr := NewTracker()
	id := tr.Create()

	ch, cancel, err := tr.Subscribe(id)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer cancel()

	tr.SetRunning(id)
	for i := 0; i < 100; i++ {
		tr.SetProgress(id, "Running")
	}
	tr.Complete(id, nil)

	var last Snapshot
	for {
		select {
		case snap := <-ch:
			last = snap
			continue
		default:
		}
		break
	}
	if last.Status != StatusCompleted {
		t.Errorf("latest observed status = %v, want completed", last.Status)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	tr := NewTracker()
	id := tr.Create()

	ch, cancel, err := tr.Subscribe(id)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	<-ch // drain initial snapshot
	cancel()

	tr.Complete(id, nil)
	select {
	case snap := <-ch:
		t.Errorf("received %+v after cancel", snap)
	default:
	}
}
