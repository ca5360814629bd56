package remote

import "sync"

// Hub fans state frames out to connected remotes. Each subscriber holds at
// most one pending frame; a newer frame replaces an unsent one, so Publish
// never blocks on a slow remote.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	latest []byte
}

// Subscription is one remote's view of the hub.
type Subscription struct {
	frames chan []byte
}

// Frames delivers published frames. Only the newest unsent frame is kept.
func (s *Subscription) Frames() <-chan []byte {
	return s.frames
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Publish stores data as the latest frame and offers it to every
// subscriber.
func (h *Hub) Publish(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	for s := range h.subs {
		s.offer(data)
	}
}

// Latest returns the most recently published frame, or nil.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Subscribe registers a subscriber. Its channel starts with the latest
// frame if there is one.
func (h *Hub) Subscribe() *Subscription {
	s := &Subscription{frames: make(chan []byte, 1)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.latest != nil {
		s.frames <- h.latest
	}
	h.subs[s] = struct{}{}
	return s
}

// Unsubscribe removes s. Its channel is not closed; the writer stops on
// its own connection.
func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, s)
}

// Len returns the number of subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// offer replaces any pending frame with data. Only called under the hub
// lock, so there is a single sender per subscriber.
func (s *Subscription) offer(data []byte) {
	select {
	case s.frames <- data:
		return
	default:
	}
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- data:
	default:
	}
}
