package core

import (
	"sync"
	"time"
)

// SeedSequence hands out RNG seeds, one per session. With a non-zero base
// the sequence is base, base+1, base+2, ... so a server run is reproducible;
// with zero every seed comes from the clock.
type SeedSequence struct {
	mu   sync.Mutex
	base int64
	n    int64
}

// NewSeedSequence creates a sequence starting at base.
func NewSeedSequence(base int64) *SeedSequence {
	return &SeedSequence{base: base}
}

// Next returns the seed for the next session.
func (s *SeedSequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.base == 0 {
		return time.Now().UnixNano()
	}
	seed := s.base + s.n
	s.n++
	return seed
}
