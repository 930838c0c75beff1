package testutil

import "sync"

// Sequencer hands out increasing sequence numbers for ordering captured
// output. The first call to Next returns 1.
//
// Thread-safety: all methods are safe for concurrent use.
type Sequencer struct {
	mu  sync.Mutex
	seq int64
}

// NewSequencer creates a sequencer starting at 0.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next increments and returns the next sequence number.
func (s *Sequencer) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Current returns the last number handed out, or 0.
func (s *Sequencer) Current() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}
