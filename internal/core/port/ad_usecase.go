package port

import (
	"context"
	"errors"
)

// ErrUnknownPlacement indicates a placement name absent from the placement
// spec table. It is the caller's misconfiguration and maps to HTTP 400.
var ErrUnknownPlacement = errors.New("unknown placement")

// ServeRequest carries the inbound ad query. Path is accepted for future
// path-based targeting and for cache keying; it does not filter today.
// Count outside [1,6] is clamped, zero means 1.
type ServeRequest struct {
	Placement string
	Path      string
	Count     int
}

// AdCreative is the renderable payload of a served ad. Optional fields are
// omitted from JSON when the creative does not carry them.
type AdCreative struct {
	Name           string  `json:"name"`
	CreativeType   string  `json:"creativeType"`
	Headline       *string `json:"headline,omitempty"`
	BodyText       *string `json:"bodyText,omitempty"`
	CTAText        *string `json:"ctaText,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	ImageAlt       *string `json:"imageAlt,omitempty"`
	DestinationURL string  `json:"destinationUrl"`
}

// AdForPlacement is one served ad: the creative plus the minted click
// identifier and the tracked click URL embedding it.
type AdForPlacement struct {
	ClickID  string     `json:"clickId"`
	ClickURL string     `json:"clickUrl"`
	Creative AdCreative `json:"creative"`
}

// ServeResponse is the usecase result for one serve request. Ads holds up
// to the clamped count of distinct winners; empty means no hosted inventory
// and the HTTP layer renders the AdSense fallback descriptor instead.
type ServeResponse struct {
	Ads []AdForPlacement
}

// AdUseCase defines the business operations of the ad resolver. This is the
// primary inbound port; mocks are generated from it for handler tests.
type AdUseCase interface {
	// ServeAds resolves eligible assignments for the placement, draws up to
	// req.Count distinct winners by weight and mints a click token per
	// winner. It returns ErrUnknownPlacement for names missing from the
	// spec table; repository failures propagate so the transport can fail
	// open to the fallback.
	ServeAds(ctx context.Context, req ServeRequest) (*ServeResponse, error)

	// RegisterClick records a click for a serve token, charges the
	// campaign's cost-per-click and returns the destination URL for the
	// redirect. Unknown tokens return ErrTokenNotFound; replays are
	// idempotent and still return the URL.
	RegisterClick(ctx context.Context, token string) (string, error)

	// RegisterConversion attributes a conversion to a prior click token.
	// Unknown tokens return ErrTokenNotFound; replays are idempotent.
	RegisterConversion(ctx context.Context, token string) error

	// GetStats returns aggregated funnel counts for the period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
