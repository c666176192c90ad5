// Package broadcast fans auction events out to every connected observer.
//
// There is a single topic: every subscriber receives every broadcast. Each
// subscriber owns a bounded FIFO queue, and enqueueing never blocks. A
// subscriber whose queue is full is evicted and its queue closed, so one slow
// observer can never hold up the others or the caller publishing the event.
package broadcast

import (
	"sync"

	"live-auction/utils"
)

// Event names sent to observers
const (
	EventInit          = "init"
	EventUpdate        = "update"
	EventToggleAuction = "toggleAuction"
	EventAck           = "ack"
)

// DefaultBufferSize is the per-subscriber queue length used when none is given
const DefaultBufferSize = 64

// Event is a single message delivered to observers
type Event struct {
	Type    string `json:"event"`
	ReplyTo *int64 `json:"id,omitempty"`
	Data    any    `json:"data"`
}

// Subscriber is one observer's view of the hub
type Subscriber struct {
	id     string
	events chan Event
}

// ID returns the subscriber's unique identifier
func (s *Subscriber) ID() string {
	return s.id
}

// Events returns the subscriber's queue. It is closed when the subscriber
// is unsubscribed or evicted.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Hub is a concurrency-safe single-topic fanout
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]*Subscriber
	bufferSize  int
	closed      bool
}

// NewHub creates a hub whose subscribers buffer up to bufferSize events
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		subscribers: make(map[string]*Subscriber),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a new observer. Subscribing to a closed hub returns
// a subscriber whose queue is already closed.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		id:     utils.GenerateID(),
		events: make(chan Event, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(s.events)
		return s
	}
	h.subscribers[s.id] = s

	utils.Debug("subscriber registered", map[string]any{"subscriber_id": s.id, "subscribers": len(h.subscribers)})
	return s
}

// Unsubscribe removes the observer and closes its queue. Safe to call more than once.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.remove(s) {
		utils.Debug("subscriber unregistered", map[string]any{"subscriber_id": s.id, "subscribers": len(h.subscribers)})
	}
}

// Deliver enqueues an event for a single subscriber.
// It reports false if the subscriber is gone or was evicted for being full.
func (h *Hub) Deliver(s *Subscriber, e Event) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[s.id]; !ok {
		return false
	}
	return h.enqueue(s, e)
}

// Broadcast enqueues an event for every subscriber and returns how many accepted it.
func (h *Hub) Broadcast(e Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, s := range h.subscribers {
		if h.enqueue(s, e) {
			delivered++
		}
	}
	return delivered
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Close evicts every subscriber and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, s := range h.subscribers {
		h.remove(s)
	}
}

// enqueue must be called with h.mu held
func (h *Hub) enqueue(s *Subscriber, e Event) bool {
	select {
	case s.events <- e:
		return true
	default:
		h.remove(s)
		utils.Warn("subscriber evicted: queue full", map[string]any{"subscriber_id": s.id, "event": e.Type})
		return false
	}
}

// remove must be called with h.mu held
func (h *Hub) remove(s *Subscriber) bool {
	if _, ok := h.subscribers[s.id]; !ok {
		return false
	}
	delete(h.subscribers, s.id)
	close(s.events)
	return true
}
