package daybook

import (
	"context"
	"sync"
	"time"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

// DefaultAutosaveDelay is the inactivity window after the last edit.
const DefaultAutosaveDelay = 800 * time.Millisecond

type SaveFunc func(ctx context.Context, items []apiclient.LineItem) error

// Autosaver debounces saves: every edit cancels the pending timer and
// starts a new one, so at most one timer exists at a time. When the timer
// fires, the save runs only if the serialized items differ from the last
// successfully persisted snapshot.
//
// Saves are serialized behind an in-flight guard: a timer firing while a
// save is still running queues exactly one follow-up, which re-checks the
// snapshot once the running save completes. This closes the out-of-order
// completion window where an older request could overwrite newer data.
type Autosaver struct {
	delay time.Duration
	save  SaveFunc

	mu        sync.Mutex
	timer     *time.Timer
	items     []apiclient.LineItem
	lastSaved string
	saving    bool
	pending   bool
	stopped   bool
}

func NewAutosaver(delay time.Duration, save SaveFunc) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{delay: delay, save: save}
}

// SetBaseline records the items as already persisted, so an untouched
// sheet never triggers a save. Call it after the initial load and after
// a successful manual save.
func (a *Autosaver) SetBaseline(items []apiclient.LineItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastSaved = Snapshot(items)
}

// Touch registers an edit: it captures the current items and restarts
// the inactivity timer.
func (a *Autosaver) Touch(items []apiclient.LineItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}

	a.items = make([]apiclient.LineItem, len(items))
	copy(a.items, items)

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	if a.saving {
		a.pending = true
		a.mu.Unlock()
		return
	}
	snap := Snapshot(a.items)
	if snap == a.lastSaved {
		a.mu.Unlock()
		return
	}
	items := make([]apiclient.LineItem, len(a.items))
	copy(items, a.items)
	a.saving = true
	a.mu.Unlock()

	err := a.save(context.Background(), items)

	a.mu.Lock()
	a.saving = false
	if err == nil {
		a.lastSaved = snap
	}
	rerun := a.pending
	a.pending = false
	a.mu.Unlock()

	if rerun {
		a.fire()
	}
}

// Flush cancels any pending timer and runs the dirty check immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.fire()
}

// Stop cancels the pending timer and refuses further work.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
