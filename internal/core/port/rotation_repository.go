package port

import (
	"context"

	"relief-ads/internal/core/domain"
)

// RotationRepository is the outbound port for the scheduled jobs: the
// featured-clinic rotation and the nightly budget maintenance.
type RotationRepository interface {
	// RotateFeaturedClinics clears the current featured set and promotes
	// the `slots` sponsored clinics least recently featured, all in one
	// transaction. It returns the promoted clinics.
	RotateFeaturedClinics(ctx context.Context, slots int) ([]domain.Clinic, error)
	// ResetDailyBudgets restores remaining_daily_budget_cents to the
	// configured daily budget for every budgeted campaign and returns the
	// number of campaigns touched.
	ResetDailyBudgets(ctx context.Context) (int64, error)
	// PauseExhaustedCampaigns moves active campaigns with a spent total
	// budget to paused and returns the number of campaigns touched.
	PauseExhaustedCampaigns(ctx context.Context) (int64, error)
}
