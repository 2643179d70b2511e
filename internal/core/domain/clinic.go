package domain

import "time"

// Clinic is a directory listing. Sponsored clinics take part in the
// featured-strip rotation; FeaturedAt records when a clinic last held the
// strip so the rotation job can favor the least recently featured.
type Clinic struct {
	ID          int64
	Name        string
	Slug        string
	IsSponsored bool
	IsFeatured  bool
	FeaturedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
