package rl

import (
	"slices"
	"sync"

	"github.com/gogpu/rl/native"
)

// tracker releases the resources of an owner (window or audio device) in
// reverse acquisition order when the owner closes.
type tracker struct {
	name    string
	nextID  uint64
	entries []trackEntry
	closed  bool
}

type trackEntry struct {
	id      uint64
	release func()
}

func newTracker(name string) *tracker {
	return &tracker{name: name, nextID: 1}
}

func (t *tracker) add(release func()) uint64 {
	id := t.nextID
	t.nextID++
	t.entries = append(t.entries, trackEntry{id: id, release: release})
	return id
}

// remove forgets id. Recent entries are the most likely to go first, so
// the search runs from the end.
func (t *tracker) remove(id uint64) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].id == id {
			t.entries = slices.Delete(t.entries, i, i+1)
			return
		}
	}
}

// len returns how many resources are still tracked.
func (t *tracker) len() int { return len(t.entries) }

// closeAll releases every tracked resource, last acquired first, and marks
// the owner closed so late collector releases are dropped.
func (t *tracker) closeAll() int {
	n := len(t.entries)
	for i := n - 1; i >= 0; i-- {
		t.entries[i].release()
	}
	t.entries = nil
	t.closed = true
	if n > 0 {
		Logger().Debug("rl: owner released resources", "owner", t.name, "count", n)
	}
	return n
}

// pendingRelease is a release queued by the garbage collector. It must
// not reference the resource state, or the state would never be collected.
type pendingRelease struct {
	kind    string
	lib     native.Library
	owner   *tracker
	ownerID uint64
	release func()
}

// reaper holds collector releases until the drawing thread drains them.
// The native library is not thread safe, and cleanups run on a runtime
// goroutine.
var reaper struct {
	mu      sync.Mutex
	pending []*pendingRelease
}

func enqueue(p *pendingRelease) {
	reaper.mu.Lock()
	reaper.pending = append(reaper.pending, p)
	reaper.mu.Unlock()
}

// ReleasePending releases resources that became unreachable without being
// closed. Window.Draw calls it after every frame, and Window.Close and
// AudioDevice.Close call it before shutting down, so most programs never
// need to call it directly. It must be called from the thread that drives
// the window. It returns how many resources were released.
func ReleasePending() int {
	reaper.mu.Lock()
	batch := reaper.pending
	reaper.pending = nil
	reaper.mu.Unlock()

	n := 0
	for _, p := range batch {
		if p.owner != nil {
			if p.owner.closed {
				// The owner took the resource down with it.
				Logger().Warn("rl: dropped release after owner closed", "kind", p.kind, "owner", p.owner.name)
				continue
			}
			p.owner.remove(p.ownerID)
		}
		p.release()
		n++
		Logger().Warn("rl: released by garbage collector, call Close", "kind", p.kind)
	}
	return n
}
