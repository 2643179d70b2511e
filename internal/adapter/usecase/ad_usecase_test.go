package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"relief-ads/internal/core/domain"
	"relief-ads/internal/core/port"
	"relief-ads/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func activeCandidate(id int64, crType domain.CreativeType, ratio *string, weight int) port.Candidate {
	return port.Candidate{
		Campaign: domain.Campaign{ID: id, AdvertiserName: "adv", Status: domain.CampaignActive},
		Creative: domain.Creative{
			ID:             id,
			CampaignID:     id,
			Name:           "cr",
			Type:           crType,
			AspectRatio:    ratio,
			DestinationURL: "https://example.com/landing",
			IsEnabled:      true,
		},
		PlacementID: 1,
		Weight:      weight,
	}
}

// TestServeAdsUnknownPlacement: a name missing from the spec table is the
// caller's misconfiguration and surfaces as ErrUnknownPlacement.
func TestServeAdsUnknownPlacement(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	svc := NewAdUseCase(repo, nil, testLogger())

	_, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "no-such-slot", Count: 1})
	require.ErrorIs(t, err, port.ErrUnknownPlacement)
}

// TestServeAdsFiltersTypeAndRatio: "clinic-above-fold" accepts only
// image_banner/native creatives with a 1:1 ratio, so html and text
// candidates and off-ratio banners must never win.
func TestServeAdsFiltersTypeAndRatio(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	cands := []port.Candidate{
		activeCandidate(1, domain.CreativeHTML, strPtr("1:1"), 100),
		activeCandidate(2, domain.CreativeText, nil, 100),
		activeCandidate(3, domain.CreativeNative, strPtr("1:1"), 1),
		activeCandidate(4, domain.CreativeImageBanner, strPtr("4:3"), 100),
	}
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "clinic-above-fold").
		Return(cands, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "clinic-above-fold", Count: 1})
	require.NoError(t, err)
	require.Len(t, resp.Ads, 1)
	require.Equal(t, "native", resp.Ads[0].Creative.CreativeType)
	svc.Drain()
}

// TestServeAdsDateWindow: an expired campaign never serves even while its
// status still reads active.
func TestServeAdsDateWindow(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	past := time.Now().Add(-time.Hour)
	expired := activeCandidate(1, domain.CreativeNative, strPtr("1:1"), 5)
	expired.Campaign.EndDate = &past
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "clinic-above-fold").
		Return([]port.Candidate{expired}, nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "clinic-above-fold", Count: 1})
	require.NoError(t, err)
	require.Empty(t, resp.Ads)
}

// TestServeAdsNoInventory: zero eligible assignments is a well-defined
// null-ad result, not an error.
func TestServeAdsNoInventory(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "blog-footer").
		Return([]port.Candidate{}, nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "blog-footer", Count: 1})
	require.NoError(t, err)
	require.Empty(t, resp.Ads)
}

// TestServeAdsCountClamped: count=10 comes back with at most 6 distinct
// winners, and never more than the eligible set holds.
func TestServeAdsCountClamped(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	cands := make([]port.Candidate, 0, 8)
	for i := int64(1); i <= 8; i++ {
		cands = append(cands, activeCandidate(i, domain.CreativeNative, strPtr("1:1"), int(i)))
	}
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "clinic-above-fold").
		Return(cands, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil).
		Times(6)

	svc := NewAdUseCase(repo, nil, testLogger())
	resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "clinic-above-fold", Path: "/clinics/denver", Count: 10})
	require.NoError(t, err)
	require.Len(t, resp.Ads, 6)

	seen := map[string]bool{}
	for _, ad := range resp.Ads {
		require.NotEmpty(t, ad.ClickID)
		require.True(t, strings.HasSuffix(ad.ClickURL, ad.ClickID))
		require.False(t, seen[ad.ClickID])
		seen[ad.ClickID] = true
	}
	svc.Drain()
}

// TestServeAdsClickTokenUniqueness mints tokens across sequential and
// concurrent serves and requires every one distinct.
func TestServeAdsClickTokenUniqueness(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "blog-footer").
		Return([]port.Candidate{activeCandidate(1, domain.CreativeText, nil, 1)}, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdUseCase(repo, nil, testLogger())

	var (
		mu     sync.Mutex
		tokens = make(map[string]bool, 10000)
		wg     sync.WaitGroup
	)
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "blog-footer", Count: 1})
				require.NoError(t, err)
				require.Len(t, resp.Ads, 1)
				mu.Lock()
				require.False(t, tokens[resp.Ads[0].ClickID], "token reused")
				tokens[resp.Ads[0].ClickID] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	svc.Drain()
	require.Len(t, tokens, 10000)
}

// TestServeAdsRepoError: repository failures propagate so the transport
// can fail open; nothing is served and nothing panics.
func TestServeAdsRepoError(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "blog-footer").
		Return(nil, errors.New("connection refused"))

	svc := NewAdUseCase(repo, nil, testLogger())
	_, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "blog-footer", Count: 1})
	require.Error(t, err)
}

// TestServeAdsImpressionFailureDoesNotBlock: a failing impression write is
// logged and swallowed; the response still carries the ad.
func TestServeAdsImpressionFailureDoesNotBlock(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "blog-footer").
		Return([]port.Candidate{activeCandidate(1, domain.CreativeText, nil, 1)}, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(errors.New("disk full"))

	svc := NewAdUseCase(repo, nil, testLogger())
	resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "blog-footer", Count: 1})
	require.NoError(t, err)
	require.Len(t, resp.Ads, 1)
	svc.Drain()
}

// memoryCache is a map-backed CandidateCache for tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]port.Candidate
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]port.Candidate{}}
}

func (m *memoryCache) GetCandidates(_ context.Context, key string) ([]port.Candidate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cands, ok := m.entries[key]
	return cands, ok
}

func (m *memoryCache) SetCandidates(_ context.Context, key string, cands []port.Candidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = cands
}

// TestServeAdsUsesCache: the second serve for the same placement+path hits
// the cache instead of the repository, but still mints a fresh token.
func TestServeAdsUsesCache(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "blog-footer").
		Return([]port.Candidate{activeCandidate(1, domain.CreativeText, nil, 1)}, nil).
		Once()
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdUseCase(repo, newMemoryCache(), testLogger())
	req := port.ServeRequest{Placement: "blog-footer", Path: "/blog/post", Count: 1}

	first, err := svc.ServeAds(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.ServeAds(context.Background(), req)
	require.NoError(t, err)
	require.NotEqual(t, first.Ads[0].ClickID, second.Ads[0].ClickID)
	svc.Drain()
}

// TestServeAdsStaleCacheRechecked: a cached candidate whose campaign has
// since expired is filtered out at serve time.
func TestServeAdsStaleCacheRechecked(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	cache := newMemoryCache()

	past := time.Now().Add(-time.Minute)
	stale := activeCandidate(1, domain.CreativeText, nil, 1)
	stale.Campaign.EndDate = &past
	cache.SetCandidates(context.Background(), "elig:blog-footer|", []port.Candidate{stale})

	svc := NewAdUseCase(repo, cache, testLogger())
	resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "blog-footer", Count: 1})
	require.NoError(t, err)
	require.Empty(t, resp.Ads)
}

// TestRegisterClick: the full redirect path charges the campaign's CPC and
// returns the destination URL.
func TestRegisterClick(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	imp := &domain.Impression{ID: 11, Token: "tok", CampaignID: 1, CreativeID: 2, PlacementID: 3}
	repo.EXPECT().FindImpressionByToken(mock.Anything, "tok").Return(imp, nil)
	repo.EXPECT().GetCreative(mock.Anything, int64(2)).
		Return(&domain.Creative{ID: 2, DestinationURL: "https://example.com/landing"}, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, CostPerClickCents: 150}, nil)
	repo.EXPECT().
		CreateClickAndDeductBudget(mock.Anything, mock.AnythingOfType("*domain.Click"), int64(150)).
		Run(func(_ context.Context, click *domain.Click, _ int64) {
			require.Equal(t, "tok", click.Token)
			require.Equal(t, int64(11), *click.ImpressionID)
			require.Equal(t, int64(3), click.PlacementID)
		}).
		Return(nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	url, err := svc.RegisterClick(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/landing", url)
}

// TestRegisterClickUnknownToken maps an unserved token to ErrTokenNotFound.
func TestRegisterClickUnknownToken(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FindImpressionByToken(mock.Anything, "ghost").Return(nil, nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	_, err := svc.RegisterClick(context.Background(), "ghost")
	require.ErrorIs(t, err, port.ErrTokenNotFound)

	_, err = svc.RegisterClick(context.Background(), "")
	require.ErrorIs(t, err, port.ErrTokenNotFound)
}

// TestRegisterClickOverBudget: the visitor is still redirected when the
// campaign cannot pay for the click.
func TestRegisterClickOverBudget(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)

	imp := &domain.Impression{ID: 1, Token: "tok", CampaignID: 1, CreativeID: 2, PlacementID: 3}
	repo.EXPECT().FindImpressionByToken(mock.Anything, "tok").Return(imp, nil)
	repo.EXPECT().GetCreative(mock.Anything, int64(2)).
		Return(&domain.Creative{ID: 2, DestinationURL: "https://example.com/landing"}, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, CostPerClickCents: 9000}, nil)
	repo.EXPECT().
		CreateClickAndDeductBudget(mock.Anything, mock.AnythingOfType("*domain.Click"), int64(9000)).
		Return(port.ErrInsufficientBudget)

	svc := NewAdUseCase(repo, nil, testLogger())
	url, err := svc.RegisterClick(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/landing", url)
}

// TestRegisterConversion attributes the conversion to the click's triple.
func TestRegisterConversion(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FindClickByToken(mock.Anything, "tok").
		Return(&domain.Click{ID: 9, Token: "tok", CampaignID: 1, CreativeID: 2, PlacementID: 3}, nil)
	repo.EXPECT().
		CreateConversion(mock.Anything, mock.AnythingOfType("*domain.Conversion")).
		Run(func(_ context.Context, conv *domain.Conversion) {
			require.Equal(t, "tok", conv.ClickToken)
			require.Equal(t, int64(1), conv.CampaignID)
			require.Equal(t, int64(2), conv.CreativeID)
			require.Equal(t, int64(3), conv.PlacementID)
		}).
		Return(nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	require.NoError(t, svc.RegisterConversion(context.Background(), "tok"))
}

// TestRegisterConversionUnknownToken: no click, no conversion.
func TestRegisterConversionUnknownToken(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	repo.EXPECT().FindClickByToken(mock.Anything, "ghost").Return(nil, nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	require.ErrorIs(t, svc.RegisterConversion(context.Background(), "ghost"), port.ErrTokenNotFound)
}

// TestServeAdsScenarioWeighting replays the 5:1 rotation scenario through
// the whole usecase: two eligible assignments, 6,000 serves, roughly
// 5,000/1,000 wins.
func TestServeAdsScenarioWeighting(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	cands := []port.Candidate{
		activeCandidate(1, domain.CreativeNative, strPtr("1:1"), 5),
		activeCandidate(2, domain.CreativeImageBanner, strPtr("1:1"), 1),
	}
	repo.EXPECT().
		GetEligibleCandidates(mock.Anything, "clinic-above-fold").
		Return(cands, nil)
	repo.EXPECT().
		CreateImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Return(nil)

	svc := NewAdUseCase(repo, nil, testLogger())
	svc.sel = newSeededSelector(6000)

	counts := map[string]int{}
	for i := 0; i < 6000; i++ {
		resp, err := svc.ServeAds(context.Background(), port.ServeRequest{Placement: "clinic-above-fold", Count: 1})
		require.NoError(t, err)
		require.Len(t, resp.Ads, 1)
		counts[resp.Ads[0].Creative.CreativeType]++
	}
	svc.Drain()
	require.InDelta(t, 5000, counts["native"], 250)
	require.InDelta(t, 1000, counts["image_banner"], 250)
}
