package port

import "context"

// CandidateCache is an optional short-TTL cache in front of the eligibility
// query. It is load shedding only: a miss, an error or a stale entry never
// affects correctness, so implementations swallow their own failures and
// report them as misses.
type CandidateCache interface {
	// GetCandidates returns the cached eligible set for key and whether the
	// key was present.
	GetCandidates(ctx context.Context, key string) ([]Candidate, bool)
	// SetCandidates stores the eligible set for key until the cache TTL
	// elapses.
	SetCandidates(ctx context.Context, key string, cands []Candidate)
}
