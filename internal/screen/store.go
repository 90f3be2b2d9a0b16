package screen

import "sync"

// ReduceFunc computes the next snapshot for an event. A non-nil error rejects
// the event and leaves the snapshot unchanged.
type ReduceFunc[S, E any] func(S, E) (S, error)

// Store publishes snapshots produced by a reducer. Dispatch applies events in
// call order and notifies subscribers with each new snapshot.
type Store[S, E any] struct {
	dispatchMu sync.Mutex

	mu      sync.Mutex
	state   S
	reduce  ReduceFunc[S, E]
	nextID  int
	subs    map[int]func(S)
	ordered []int
}

// NewStore creates a store holding initial.
func NewStore[S, E any](initial S, reduce ReduceFunc[S, E]) *Store[S, E] {
	return &Store[S, E]{
		state:  initial,
		reduce: reduce,
		subs:   make(map[int]func(S)),
	}
}

// Snapshot returns the current state.
func (s *Store[S, E]) Snapshot() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces ev into a new snapshot, publishes it, and returns it. A
// rejected event returns the current snapshot and the reducer's error without
// notifying anyone. Subscribers may Subscribe or unsubscribe but must not call
// Dispatch.
func (s *Store[S, E]) Dispatch(ev E) (S, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next, err := s.reduce(s.state, ev)
	if err != nil {
		cur := s.state
		s.mu.Unlock()
		return cur, err
	}
	s.state = next
	subs := make([]func(S), 0, len(s.ordered))
	for _, id := range s.ordered {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next, nil
}

// Subscribe registers fn for future snapshots and returns a function that
// removes it.
func (s *Store[S, E]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.ordered = append(s.ordered, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
		for i, v := range s.ordered {
			if v == id {
				s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
				break
			}
		}
	}
}
