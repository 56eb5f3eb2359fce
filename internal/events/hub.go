package events

import (
	"sync"

	"carexpress-dispatch/internal/domain"
)

// Buffered changes per subscriber. Slow subscribers miss changes rather
// than block the store.
const subscriberBuffer = 16

// Source emits entity store changes.
type Source interface {
	Subscribe(fn func(domain.Change)) (cancel func())
}

// Hub fans store changes out to any number of listeners.
type Hub struct {
	mu   sync.Mutex
	subs map[chan domain.Change]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[chan domain.Change]struct{}{}}
}

// Attach forwards every change emitted by src to the hub.
func (h *Hub) Attach(src Source) (detach func()) {
	return src.Subscribe(h.Publish)
}

func (h *Hub) Subscribe() chan domain.Change {
	ch := make(chan domain.Change, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes ch and closes it. Unknown channels are ignored.
func (h *Hub) Unsubscribe(ch chan domain.Change) {
	h.mu.Lock()
	_, ok := h.subs[ch]
	delete(h.subs, ch)
	h.mu.Unlock()
	if ok {
		close(ch)
	}
}

func (h *Hub) Publish(c domain.Change) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

// Number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
