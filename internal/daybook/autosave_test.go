package daybook

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

type saveRecorder struct {
	mu    sync.Mutex
	calls [][]apiclient.LineItem
	block chan struct{} // when set, saves wait on it
}

func (r *saveRecorder) save(ctx context.Context, items []apiclient.LineItem) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, items)
	return nil
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAutosaveFiresAfterInactivity(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(10*time.Millisecond, rec.save)
	defer a.Stop()

	a.Touch([]apiclient.LineItem{{ProductID: "p1", QuantitySold: 1}})
	waitFor(t, func() bool { return rec.count() == 1 })
}

func TestAutosaveDebouncesEdits(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(40*time.Millisecond, rec.save)
	defer a.Stop()

	// rapid edits within the window collapse into one save
	for i := 1; i <= 5; i++ {
		a.Touch([]apiclient.LineItem{{ProductID: "p1", QuantitySold: i}})
		time.Sleep(5 * time.Millisecond)
	}
	waitFor(t, func() bool { return rec.count() == 1 })
	time.Sleep(80 * time.Millisecond)
	if rec.count() != 1 {
		t.Fatalf("saves = %d, want 1", rec.count())
	}

	// the save carries the last edit
	rec.mu.Lock()
	last := rec.calls[0][0].QuantitySold
	rec.mu.Unlock()
	if last != 5 {
		t.Fatalf("saved sold = %d, want 5", last)
	}
}

func TestAutosaveSkipsWhenNothingChanged(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(10*time.Millisecond, rec.save)
	defer a.Stop()

	items := []apiclient.LineItem{{ProductID: "p1", QuantitySold: 3}}
	a.SetBaseline(items)
	a.Touch(items)

	time.Sleep(60 * time.Millisecond)
	if rec.count() != 0 {
		t.Fatalf("saves = %d, want 0 (snapshot unchanged)", rec.count())
	}
}

func TestAutosaveSerializesOverlappingSaves(t *testing.T) {
	rec := &saveRecorder{block: make(chan struct{})}
	a := NewAutosaver(10*time.Millisecond, rec.save)
	defer a.Stop()

	a.Touch([]apiclient.LineItem{{ProductID: "p1", QuantitySold: 1}})
	time.Sleep(30 * time.Millisecond) // first save is now blocked in flight

	// edit during the in-flight save; its timer fires and must queue
	a.Touch([]apiclient.LineItem{{ProductID: "p1", QuantitySold: 2}})
	time.Sleep(30 * time.Millisecond)
	if rec.count() != 0 {
		t.Fatal("second save must not start while the first is in flight")
	}

	close(rec.block)
	waitFor(t, func() bool { return rec.count() == 2 })

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.calls[1][0].QuantitySold != 2 {
		t.Fatalf("follow-up save carried sold = %d, want 2", rec.calls[1][0].QuantitySold)
	}
}

func TestAutosaveFlush(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(time.Hour, rec.save)
	defer a.Stop()

	a.Touch([]apiclient.LineItem{{ProductID: "p1", QuantitySold: 1}})
	a.Flush()
	waitFor(t, func() bool { return rec.count() == 1 })
}

func TestAutosaveStop(t *testing.T) {
	rec := &saveRecorder{}
	a := NewAutosaver(10*time.Millisecond, rec.save)

	a.Touch([]apiclient.LineItem{{ProductID: "p1", QuantitySold: 1}})
	a.Stop()
	time.Sleep(60 * time.Millisecond)
	if rec.count() != 0 {
		t.Fatalf("saves = %d, want 0 after Stop", rec.count())
	}
}
