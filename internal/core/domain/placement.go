package domain

import "time"

// Placement is a named ad slot in the directory UI, e.g. "clinic-above-fold".
// Size/type/ratio constraints live in the placement spec table, not here;
// this row only carries what admins toggle at runtime.
type Placement struct {
	ID        int64
	Name      string
	Label     string
	PageType  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment links a campaign to a placement with a selection weight.
// Weight is a positive integer; the probability of an eligible assignment
// winning a draw is its weight over the sum of all eligible weights.
type Assignment struct {
	CampaignID  int64
	PlacementID int64
	Weight      int
	CreatedAt   time.Time
}
