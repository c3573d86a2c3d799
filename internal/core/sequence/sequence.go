// Package sequence provides monotonic identifier allocation.
// The ledger keeps three independent sequences (vehicle, sale, expense);
// each identifier is handed out exactly once, even across concurrent
// callers, and is never reused after the entity is removed.
package sequence

import "sync"

// Sequence allocates strictly increasing int64 identifiers starting at 1.
// The zero value is ready to use.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

// New creates a Sequence whose first allocated identifier is 1.
func New() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Peek returns the identifier the next call to Next will produce.
func (s *Sequence) Peek() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last + 1
}

// Restore advances the sequence so that identifiers up to and including max
// are considered used. Used when rebuilding state from archived rows; a max
// below the current position is ignored so a sequence never moves backwards.
func (s *Sequence) Restore(max int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if max > s.last {
		s.last = max
	}
}
