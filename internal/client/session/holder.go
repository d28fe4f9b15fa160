// Package session owns the single Session of a running client. Holder is the
// only writer; the store, the router and the UI read snapshots or subscribe
// to changes.
package session

import (
	"sync"

	"github.com/dmitrijs2005/dashauth/internal/client/models"
)

// Holder serializes Session mutations and broadcasts every new snapshot.
type Holder struct {
	mu      sync.Mutex
	current models.Session
	subs    map[int]chan models.Session
	nextID  int
}

// NewHolder returns a Holder starting from the anonymous Session.
func NewHolder() *Holder {
	return &Holder{
		current: models.AnonymousSession(),
		subs:    make(map[int]chan models.Session),
	}
}

// Snapshot returns a copy of the current Session.
func (h *Holder) Snapshot() models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current.Clone()
}

// Update applies fn to the Session under the lock, publishes the result and
// returns it.
func (h *Holder) Update(fn func(s *models.Session)) models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.current.Clone()
	fn(&next)
	h.current = next

	for _, ch := range h.subs {
		publish(ch, next.Clone())
	}
	return next.Clone()
}

// Reset replaces the Session with the anonymous defaults.
func (h *Holder) Reset() models.Session {
	return h.Update(func(s *models.Session) { *s = models.AnonymousSession() })
}

// Subscribe returns a channel receiving the Session after every Update, and
// a function that unsubscribes and closes the channel. The channel holds at
// most one pending value; a slow reader sees only the latest Session.
func (h *Holder) Subscribe() (<-chan models.Session, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan models.Session, 1)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish replaces any unread value in ch with s. Callers hold h.mu, so ch
// has no other sender.
func publish(ch chan models.Session, s models.Session) {
	select {
	case <-ch:
	default:
	}
	ch <- s
}
