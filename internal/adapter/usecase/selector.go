package usecase

import (
	"math/rand"
	"sync"
	"time"

	"relief-ads/internal/core/port"
)

// maxAdsPerRequest caps how many distinct winners one serve request may ask
// for.
const maxAdsPerRequest = 6

// selector draws candidates with probability proportional to their
// assignment weight. The rand source is process local and mutex guarded;
// requests share it but no ordering between them is promised.
type selector struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func newSelector() *selector {
	return &selector{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// newSeededSelector exists for deterministic tests.
func newSeededSelector(seed int64) *selector {
	return &selector{rand: rand.New(rand.NewSource(seed))}
}

// pickOne returns the index of the winning candidate, or -1 when the pool
// is empty. An all-zero (or negative, from bad data) weight sum degrades to
// a uniform draw rather than hiding inventory.
func (s *selector) pickOne(pool []port.Candidate) int {
	if len(pool) == 0 {
		return -1
	}
	total := 0
	for _, c := range pool {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if total <= 0 {
		return s.rand.Intn(len(pool))
	}
	point := s.rand.Intn(total)
	cumulative := 0
	for i, c := range pool {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if point < cumulative {
			return i
		}
	}
	// unreachable while total matches the positive weights
	return len(pool) - 1
}

// pickMany draws up to n distinct candidates by weighted sampling without
// replacement: each round removes the winner from the pool and redraws over
// what remains. The input slice is not modified.
func (s *selector) pickMany(pool []port.Candidate, n int) []port.Candidate {
	if n > maxAdsPerRequest {
		n = maxAdsPerRequest
	}
	if len(pool) == 0 || n <= 0 {
		return []port.Candidate{}
	}
	remaining := make([]port.Candidate, len(pool))
	copy(remaining, pool)
	if n > len(remaining) {
		n = len(remaining)
	}
	winners := make([]port.Candidate, 0, n)
	for len(winners) < n {
		i := s.pickOne(remaining)
		if i < 0 {
			break
		}
		winners = append(winners, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return winners
}
