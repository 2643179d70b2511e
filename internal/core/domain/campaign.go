package domain

import "time"

// Campaign statuses. Transitions are manual (admin) or automatic when the
// total budget is exhausted.
const (
	CampaignActive = "active"
	CampaignPaused = "paused"
	CampaignEnded  = "ended"
)

// Campaign represents an advertiser's booked ad run.
// Budgets are stored in cents; a nil budget means uncapped. The remaining
// counters mirror the budget fields and are nil exactly when the budget is.
type Campaign struct {
	ID                        int64
	AdvertiserName            string
	Status                    string
	StartDate                 *time.Time // nil = no lower bound
	EndDate                   *time.Time // nil = no upper bound
	DailyBudgetCents          *int64
	TotalBudgetCents          *int64
	RemainingDailyBudgetCents *int64
	RemainingTotalBudgetCents *int64
	CostPerClickCents         int64
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// InWindow reports whether the campaign's date window contains t. Open
// bounds always pass.
func (c *Campaign) InWindow(t time.Time) bool {
	if c.StartDate != nil && t.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && t.After(*c.EndDate) {
		return false
	}
	return true
}
