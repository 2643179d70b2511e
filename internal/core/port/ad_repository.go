package port

import (
	"context"
	"errors"
	"time"

	"relief-ads/internal/core/domain"
)

var (
	// ErrTokenNotFound indicates a click or conversion token that never
	// corresponded to a served impression or recorded click.
	ErrTokenNotFound = errors.New("token not found")
	// ErrInsufficientBudget indicates a campaign remainder too small to
	// cover a click charge.
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// Candidate is an eligible (assignment, creative) pair for one placement.
// Weight is copied from the assignment so the selector does not reach back
// into the join row.
type Candidate struct {
	Campaign    domain.Campaign
	Creative    domain.Creative
	PlacementID int64
	Weight      int
}

// StatsReq bounds a stats query. CampaignID narrows the aggregation to one
// campaign when non-nil.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}

// StatsResp aggregates the attribution funnel over a period. SpendCents
// sums click costs.
type StatsResp struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
	SpendCents  int64 `json:"spendCents"`
}

// AdRepository defines the persistence layer for the ad resolver. It is an
// outbound port in hexagonal architecture. Implementations must handle
// budget deductions atomically and treat duplicate click/conversion tokens
// as no-ops.
type AdRepository interface {
	// GetEligibleCandidates returns assignment-creative pairs for an active
	// placement whose campaign is active, inside its date window and not
	// over budget. Type and ratio constraints are the caller's concern.
	GetEligibleCandidates(ctx context.Context, placementName string) ([]Candidate, error)
	// CreateImpression stores an impression event.
	CreateImpression(ctx context.Context, imp *domain.Impression) error
	// CreateClickAndDeductBudget stores a click event and decrements the
	// campaign's remaining budgets by costCents in one transaction. A
	// duplicate token inserts nothing and charges nothing.
	CreateClickAndDeductBudget(ctx context.Context, click *domain.Click, costCents int64) error
	// CreateConversion stores a conversion attributed to a click token. A
	// duplicate token inserts nothing.
	CreateConversion(ctx context.Context, conv *domain.Conversion) error

	// FindImpressionByToken finds an impression by its token, nil when absent.
	FindImpressionByToken(ctx context.Context, token string) (*domain.Impression, error)
	// FindClickByToken finds a click by its token, nil when absent.
	FindClickByToken(ctx context.Context, token string) (*domain.Click, error)
	// GetCreative returns a creative by id, nil when absent.
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)
	// GetCampaign returns a campaign by id, nil when absent.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// GetStats returns aggregated funnel counts for campaigns in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
