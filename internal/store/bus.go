package store

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Subscription is an opaque handle identifying one registered callback
type Subscription uint64

// subscribers holds the ordered callback list for one collection
type subscribers[T Entity] struct {
	mu      sync.RWMutex
	nextID  Subscription
	ordered []subscriber[T]
}

type subscriber[T Entity] struct {
	id Subscription
	cb func([]T)
}

func newSubscribers[T Entity]() *subscribers[T] {
	return &subscribers[T]{nextID: 1}
}

func (s *subscribers[T]) add(cb func([]T)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.ordered = append(s.ordered, subscriber[T]{id: id, cb: cb})
	return id
}

func (s *subscribers[T]) remove(id Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.ordered {
		if sub.id == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			return
		}
	}
}

// notify runs every callback in registration order on the calling
// goroutine. Each call is isolated: a panicking subscriber is logged
// and must not prevent the remaining subscribers from firing.
func (s *subscribers[T]) notify(snapshot []T) {
	s.mu.RLock()
	callbacks := make([]subscriber[T], len(s.ordered))
	copy(callbacks, s.ordered)
	s.mu.RUnlock()

	for _, sub := range callbacks {
		invoke(sub.cb, snapshot)
	}
}

func invoke[T Entity](cb func([]T), snapshot []T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Store subscriber panicked")
		}
	}()
	cb(snapshot)
}

// ChangeEvent describes one collection mutation for the store-wide feed.
// Items is the post-mutation snapshot.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Items      []any  `json:"items"`
}

// changeFeed is the store-wide publish side consumed by the WebSocket
// hub. Delivery is non-blocking: if a listener's buffer is full the
// event is dropped, since every event carries a full snapshot and a
// later event supersedes it.
type changeFeed struct {
	mu        sync.RWMutex
	listeners []chan ChangeEvent
}

func (f *changeFeed) publish(ev ChangeEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ch := range f.listeners {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (f *changeFeed) listen() <-chan ChangeEvent {
	ch := make(chan ChangeEvent, 64)
	f.mu.Lock()
	f.listeners = append(f.listeners, ch)
	f.mu.Unlock()
	return ch
}
