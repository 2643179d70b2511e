package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"relief-ads/internal/core/domain"
	"relief-ads/internal/core/port"
	"relief-ads/internal/placement"
)

// AdUseCase provides business logic for ad resolution and the attribution
// funnel. It orchestrates the repository, the placement spec table and the
// weighted selector to implement port.AdUseCase.
type AdUseCase struct {
	repo   port.AdRepository
	cache  port.CandidateCache // nil disables caching
	sel    *selector
	logger *slog.Logger

	// now is swapped in tests to pin the eligibility clock.
	now func() time.Time

	// impressionTimeout bounds the detached impression write.
	impressionTimeout time.Duration
	// wg tracks in-flight impression writes so shutdown can drain them.
	wg sync.WaitGroup
}

// NewAdUseCase creates a usecase over the given repository. cache may be
// nil to disable eligibility caching.
func NewAdUseCase(repo port.AdRepository, cache port.CandidateCache, logger *slog.Logger) *AdUseCase {
	return &AdUseCase{
		repo:              repo,
		cache:             cache,
		sel:               newSelector(),
		logger:            logger,
		now:               time.Now,
		impressionTimeout: 3 * time.Second,
	}
}

// ServeAds resolves eligible assignments for the requested placement, draws
// up to the clamped count of distinct winners by weight and mints one click
// token per winner. Impression rows are written off the request path;
// failures there are logged and never block the response.
func (u *AdUseCase) ServeAds(ctx context.Context, req port.ServeRequest) (*port.ServeResponse, error) {
	spec, ok := placement.Lookup(req.Placement)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownPlacement, req.Placement)
	}

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > maxAdsPerRequest {
		count = maxAdsPerRequest
	}

	candidates, err := u.eligibleCandidates(ctx, req.Placement, req.Path)
	if err != nil {
		return nil, err
	}
	eligible := u.filterBySpec(candidates, spec)

	winners := u.sel.pickMany(eligible, count)
	resp := &port.ServeResponse{Ads: make([]port.AdForPlacement, 0, len(winners))}
	for _, w := range winners {
		token := uuid.NewString()
		resp.Ads = append(resp.Ads, port.AdForPlacement{
			ClickID:  token,
			ClickURL: "/api/v1/ad/click/" + token,
			Creative: creativePayload(&w.Creative),
		})
		u.recordImpression(&domain.Impression{
			Token:       token,
			CampaignID:  w.Campaign.ID,
			CreativeID:  w.Creative.ID,
			PlacementID: w.PlacementID,
		})
	}
	return resp, nil
}

// eligibleCandidates consults the cache before the repository. Cache
// content is the raw eligible set, not the drawn winners, so cached serves
// keep fresh tokens and per-request randomness.
func (u *AdUseCase) eligibleCandidates(ctx context.Context, placementName, path string) ([]port.Candidate, error) {
	key := "elig:" + placementName + "|" + path
	if u.cache != nil {
		if cands, ok := u.cache.GetCandidates(ctx, key); ok {
			return cands, nil
		}
	}
	cands, err := u.repo.GetEligibleCandidates(ctx, placementName)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		u.cache.SetCandidates(ctx, key, cands)
	}
	return cands, nil
}

// filterBySpec applies the placement's type and ratio constraints, plus a
// re-check of campaign status and window so a stale cache entry cannot
// serve an expired campaign.
func (u *AdUseCase) filterBySpec(cands []port.Candidate, spec placement.Spec) []port.Candidate {
	now := u.now()
	out := make([]port.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Campaign.Status != domain.CampaignActive || !c.Campaign.InWindow(now) {
			continue
		}
		if !c.Creative.IsEnabled {
			continue
		}
		if !spec.TypeAllowed(c.Creative.Type) || !spec.RatioAllowed(c.Creative.AspectRatio) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// recordImpression writes the impression on a detached context. The serve
// response never waits on it.
func (u *AdUseCase) recordImpression(imp *domain.Impression) {
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.impressionTimeout)
		defer cancel()
		if err := u.repo.CreateImpression(ctx, imp); err != nil {
			u.logger.Error("impression write failed",
				slog.String("token", imp.Token),
				slog.Int64("campaign_id", imp.CampaignID),
				slog.Any("error", err))
		}
	}()
}

// Drain blocks until in-flight impression writes finish. Called on
// shutdown after the HTTP server stops accepting requests.
func (u *AdUseCase) Drain() {
	u.wg.Wait()
}

// RegisterClick records a click for a serve token, charges the campaign's
// cost-per-click and returns the destination URL for the redirect. A
// replayed token charges nothing but still redirects; an exhausted budget
// is logged and the user is redirected anyway, since failing the
// navigation punishes the visitor for the advertiser's ledger.
func (u *AdUseCase) RegisterClick(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", port.ErrTokenNotFound
	}
	imp, err := u.repo.FindImpressionByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if imp == nil {
		return "", port.ErrTokenNotFound
	}
	cr, err := u.repo.GetCreative(ctx, imp.CreativeID)
	if err != nil {
		return "", err
	}
	if cr == nil {
		return "", port.ErrTokenNotFound
	}
	camp, err := u.repo.GetCampaign(ctx, imp.CampaignID)
	if err != nil {
		return "", err
	}
	if camp == nil {
		return "", port.ErrTokenNotFound
	}

	click := &domain.Click{
		Token:        token,
		ImpressionID: &imp.ID,
		CampaignID:   imp.CampaignID,
		CreativeID:   imp.CreativeID,
		PlacementID:  imp.PlacementID,
	}
	if err = u.repo.CreateClickAndDeductBudget(ctx, click, camp.CostPerClickCents); err != nil {
		if errors.Is(err, port.ErrInsufficientBudget) {
			u.logger.Warn("click over budget",
				slog.Int64("campaign_id", camp.ID),
				slog.String("token", token))
			return cr.DestinationURL, nil
		}
		return "", err
	}
	return cr.DestinationURL, nil
}

// RegisterConversion attributes a conversion to a prior click token.
func (u *AdUseCase) RegisterConversion(ctx context.Context, token string) error {
	if token == "" {
		return port.ErrTokenNotFound
	}
	click, err := u.repo.FindClickByToken(ctx, token)
	if err != nil {
		return err
	}
	if click == nil {
		return port.ErrTokenNotFound
	}
	return u.repo.CreateConversion(ctx, &domain.Conversion{
		ClickToken:  token,
		CampaignID:  click.CampaignID,
		CreativeID:  click.CreativeID,
		PlacementID: click.PlacementID,
	})
}

// GetStats returns aggregated funnel counts for campaigns in a period.
func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

func creativePayload(cr *domain.Creative) port.AdCreative {
	return port.AdCreative{
		Name:           cr.Name,
		CreativeType:   string(cr.Type),
		Headline:       cr.Headline,
		BodyText:       cr.BodyText,
		CTAText:        cr.CTAText,
		ImageURL:       cr.ImageURL,
		ImageAlt:       cr.ImageAlt,
		DestinationURL: cr.DestinationURL,
	}
}
