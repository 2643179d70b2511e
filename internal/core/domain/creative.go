package domain

import "time"

// CreativeType enumerates the renderable ad formats.
type CreativeType string

const (
	CreativeImageBanner CreativeType = "image_banner"
	CreativeHTML        CreativeType = "html"
	CreativeText        CreativeType = "text"
	CreativeNative      CreativeType = "native"
)

// Creative represents one piece of ad content belonging to a campaign.
// Optional presentation fields are pointers; which ones are set depends on
// the creative type (a text creative has no image, an image banner may have
// no body text). AspectRatio is a "w:h" string such as "1:1" and is nil for
// creatives without a fixed ratio.
type Creative struct {
	ID             int64
	CampaignID     int64
	Name           string
	Type           CreativeType
	Headline       *string
	BodyText       *string
	CTAText        *string
	ImageURL       *string
	ImageAlt       *string
	DestinationURL string
	AspectRatio    *string
	IsEnabled      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
