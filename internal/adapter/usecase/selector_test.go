package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relief-ads/internal/core/domain"
	"relief-ads/internal/core/port"
)

func candidatesWithWeights(weights ...int) []port.Candidate {
	cands := make([]port.Candidate, len(weights))
	for i, w := range weights {
		cands[i] = port.Candidate{
			Campaign: domain.Campaign{ID: int64(i + 1), Status: domain.CampaignActive},
			Creative: domain.Creative{ID: int64(i + 1), IsEnabled: true},
			Weight:   w,
		}
	}
	return cands
}

// TestPickOneWeighting draws 6,000 times from a 5:1 weight split and checks
// the empirical frequencies land near 5,000/1,000.
func TestPickOneWeighting(t *testing.T) {
	sel := newSeededSelector(1)
	pool := candidatesWithWeights(5, 1)

	counts := make([]int, len(pool))
	const draws = 6000
	for i := 0; i < draws; i++ {
		idx := sel.pickOne(pool)
		require.GreaterOrEqual(t, idx, 0)
		counts[idx]++
	}
	require.Equal(t, draws, counts[0]+counts[1])
	require.InDelta(t, 5000, counts[0], 250)
	require.InDelta(t, 1000, counts[1], 250)
}

// TestPickOneConvergence checks proportionality over a larger pool: with
// weights 1,2,7 each empirical share must converge to w/Σw.
func TestPickOneConvergence(t *testing.T) {
	sel := newSeededSelector(42)
	pool := candidatesWithWeights(1, 2, 7)

	counts := make([]int, len(pool))
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[sel.pickOne(pool)]++
	}
	total := 1 + 2 + 7
	for i, w := range []int{1, 2, 7} {
		expected := float64(draws) * float64(w) / float64(total)
		require.InDelta(t, expected, float64(counts[i]), float64(draws)*0.015,
			"weight %d drifted too far", w)
	}
}

// TestPickOneEmpty: an empty pool returns no winner and never panics.
func TestPickOneEmpty(t *testing.T) {
	sel := newSeededSelector(1)
	require.Equal(t, -1, sel.pickOne(nil))
	require.Equal(t, -1, sel.pickOne([]port.Candidate{}))
}

// TestPickOneZeroWeights pins the misconfiguration behavior: an all-zero
// weight sum degrades to a uniform draw instead of dividing by zero or
// hiding inventory.
func TestPickOneZeroWeights(t *testing.T) {
	sel := newSeededSelector(7)
	pool := candidatesWithWeights(0, 0, 0, 0)

	counts := make([]int, len(pool))
	const draws = 10000
	for i := 0; i < draws; i++ {
		idx := sel.pickOne(pool)
		require.GreaterOrEqual(t, idx, 0)
		counts[idx]++
	}
	for i := range pool {
		require.InDelta(t, draws/4, counts[i], 300, "slot %d not uniform", i)
	}
}

// TestPickManyDistinct: winners are distinct creatives and exactly
// min(n, len(pool)) of them come back.
func TestPickManyDistinct(t *testing.T) {
	sel := newSeededSelector(3)
	pool := candidatesWithWeights(4, 1, 9, 2, 6)

	for n := 1; n <= 5; n++ {
		winners := sel.pickMany(pool, n)
		require.Len(t, winners, n)
		seen := map[int64]bool{}
		for _, w := range winners {
			require.False(t, seen[w.Creative.ID], "creative %d repeated", w.Creative.ID)
			seen[w.Creative.ID] = true
		}
	}
}

// TestPickManyCapped: the request cap and the pool size both bound the
// result.
func TestPickManyCapped(t *testing.T) {
	sel := newSeededSelector(3)

	// 12 candidates, ask for 10: capped to 6
	big := candidatesWithWeights(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	require.Len(t, sel.pickMany(big, 10), maxAdsPerRequest)

	// 2 candidates, ask for 4: bounded by the pool
	small := candidatesWithWeights(3, 1)
	require.Len(t, sel.pickMany(small, 4), 2)

	require.Empty(t, sel.pickMany(nil, 3))
	require.Empty(t, sel.pickMany(small, 0))
}

// TestPickManyDoesNotMutateInput: sampling without replacement works on a
// copy.
func TestPickManyDoesNotMutateInput(t *testing.T) {
	sel := newSeededSelector(9)
	pool := candidatesWithWeights(2, 3, 5)
	_ = sel.pickMany(pool, 3)
	require.Len(t, pool, 3)
	for i, c := range pool {
		require.Equal(t, int64(i+1), c.Creative.ID)
	}
}

// TestPickOneSkipsZeroAmongPositive: a zero-weight candidate mixed into a
// positively weighted pool never wins.
func TestPickOneSkipsZeroAmongPositive(t *testing.T) {
	sel := newSeededSelector(11)
	pool := candidatesWithWeights(0, 5, 3)
	for i := 0; i < 2000; i++ {
		require.NotEqual(t, 0, sel.pickOne(pool))
	}
}
