package internal

import (
	"sync"

	"go.uber.org/zap"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const defaultSubscriberBuffer = 16

type subscription struct {
	events chan model.Event
}

// Hub fans events out to every live subscription of a user. Publish never
// blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu          sync.Mutex
	subscribers map[int]map[*subscription]struct{}
	buffer      int
	logger      *zap.SugaredLogger
}

func NewHub(buffer int, logger *zap.SugaredLogger) *Hub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Hub{
		subscribers: make(map[int]map[*subscription]struct{}),
		buffer:      buffer,
		logger:      logger,
	}
}

// Subscribe registers a new subscription for uid. The returned function
// releases it and closes the channel; calling it more than once is safe.
func (h *Hub) Subscribe(uid int) (<-chan model.Event, func()) {
	s := &subscription{events: make(chan model.Event, h.buffer)}

	h.mu.Lock()
	subs, ok := h.subscribers[uid]
	if !ok {
		subs = make(map[*subscription]struct{})
		h.subscribers[uid] = subs
	}
	subs[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return s.events, func() {
		once.Do(func() { h.unsubscribe(uid, s) })
	}
}

func (h *Hub) unsubscribe(uid int, s *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[uid]
	if !ok {
		return
	}
	delete(subs, s)
	if len(subs) == 0 {
		delete(h.subscribers, uid)
	}
	close(s.events)
}

func (h *Hub) Publish(uid int, e model.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subscribers[uid] {
		select {
		case s.events <- e:
		default:
			h.logger.Warnf("Publish: subscriber of user %d is full, %s event dropped", uid, e.Type)
		}
	}
}

func (h *Hub) Subscribers(uid int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[uid])
}
