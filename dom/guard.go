package dom

import (
	"sync"

	"github.com/petermattis/goid"
	"github.com/signadot/go-dom/debug"
)

// guard is a read/write lock which tracks the goroutines holding it. Other
// goroutines block as with sync.RWMutex; a holder asking again panics with a
// *ReentrantAccessError.
//
// The zero value is an unlocked guard with an empty label.
type guard struct {
	label string
	rw    sync.RWMutex

	mu      sync.Mutex
	holders map[int64]bool
}

func (g *guard) lock()    { g.enter(true) }
func (g *guard) unlock()  { g.leave(true) }
func (g *guard) rlock()   { g.enter(false) }
func (g *guard) runlock() { g.leave(false) }

func (g *guard) enter(write bool) {
	id := goid.Get()
	// only this goroutine can add or remove its own id, so the answer
	// cannot change between the check and the acquisition below.
	g.mu.Lock()
	_, held := g.holders[id]
	g.mu.Unlock()
	if held {
		err := &ReentrantAccessError{Guard: g.label, Write: write}
		debug.Logger().Error("reentrant access", "guard", g.label, "write", write, "goroutine", id)
		panic(err)
	}
	if write {
		g.rw.Lock()
	} else {
		g.rw.RLock()
	}
	g.mu.Lock()
	if g.holders == nil {
		g.holders = make(map[int64]bool)
	}
	g.holders[id] = write
	g.mu.Unlock()
	if debug.Lock() {
		debug.Logger().Debug("acquired", "guard", g.label, "write", write, "goroutine", id)
	}
}

func (g *guard) leave(write bool) {
	id := goid.Get()
	g.mu.Lock()
	delete(g.holders, id)
	g.mu.Unlock()
	if write {
		g.rw.Unlock()
	} else {
		g.rw.RUnlock()
	}
	if debug.Lock() {
		debug.Logger().Debug("released", "guard", g.label, "write", write, "goroutine", id)
	}
}

// held reports whether the calling goroutine holds g.
func (g *guard) held() bool {
	id := goid.Get()
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.holders[id]
	return ok
}
