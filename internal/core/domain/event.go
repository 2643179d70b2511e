package domain

import "time"

// Impression is a record of an ad being served. Token is the opaque click
// identifier minted at serve time; it joins impressions to later clicks and
// conversions.
type Impression struct {
	ID          int64
	Token       string
	CampaignID  int64
	CreativeID  int64
	PlacementID int64
	CreatedAt   time.Time
}

// Click is a record of a click-through. Token equals the impression token
// that routed the click; it is unique, so a replayed redirect records
// nothing new.
type Click struct {
	ID           int64
	Token        string
	ImpressionID *int64
	CampaignID   int64
	CreativeID   int64
	PlacementID  int64
	CostCents    int64
	CreatedAt    time.Time
}

// Conversion attributes a later goal event back to the click that produced
// it. ClickToken is unique per conversion.
type Conversion struct {
	ID          int64
	ClickToken  string
	CampaignID  int64
	CreativeID  int64
	PlacementID int64
	CreatedAt   time.Time
}
