// Package placement is the single authoritative placement spec table: which
// creative types and aspect ratios each named slot accepts, and which
// AdSense unit backs it when no hosted inventory wins. Every consumer (the
// eligibility filter, the HTTP fallback payload, the seed data) imports this
// package; there is deliberately no second copy of the table.
package placement

import (
	"slices"

	"relief-ads/internal/core/domain"
)

// Spec describes one named slot. A nil AllowedTypes/AllowedRatios slice
// means unrestricted; an empty non-nil slice means "accept nothing", which
// is unusual but valid, so the nil/empty distinction must be preserved.
type Spec struct {
	Label         string
	PageType      string
	AllowedTypes  []domain.CreativeType
	AllowedRatios []string
	AdsenseSlotID string
	AdsenseFormat string
}

var specs = map[string]Spec{
	"clinic-above-fold": {
		Label:         "Clinic profile, above the fold",
		PageType:      "clinic",
		AllowedTypes:  []domain.CreativeType{domain.CreativeImageBanner, domain.CreativeNative},
		AllowedRatios: []string{"1:1"},
		AdsenseSlotID: "9831674205",
		AdsenseFormat: "rectangle",
	},
	"clinic-sidebar": {
		Label:         "Clinic profile sidebar",
		PageType:      "clinic",
		AllowedTypes:  []domain.CreativeType{domain.CreativeImageBanner, domain.CreativeText, domain.CreativeNative},
		AllowedRatios: nil,
		AdsenseSlotID: "4417028396",
		AdsenseFormat: "vertical",
	},
	"directory-inline": {
		Label:         "Directory results, inline",
		PageType:      "directory",
		AllowedTypes:  []domain.CreativeType{domain.CreativeNative},
		AllowedRatios: nil,
		AdsenseSlotID: "7602951348",
		AdsenseFormat: "fluid",
	},
	"blog-footer": {
		Label:         "Blog post footer",
		PageType:      "blog",
		AllowedTypes:  nil,
		AllowedRatios: nil,
		AdsenseSlotID: "2958137460",
		AdsenseFormat: "horizontal",
	},
	"guide-inline": {
		Label:         "Guide body, inline",
		PageType:      "guide",
		AllowedTypes:  []domain.CreativeType{domain.CreativeImageBanner, domain.CreativeHTML, domain.CreativeNative},
		AllowedRatios: []string{"1:1", "4:3", "16:9"},
		AdsenseSlotID: "6149320587",
		AdsenseFormat: "auto",
	},
	"featured-clinic-strip": {
		Label:         "Featured clinics strip",
		PageType:      "home",
		AllowedTypes:  []domain.CreativeType{domain.CreativeNative},
		AllowedRatios: []string{"1:1"},
		AdsenseSlotID: "3785210964",
		AdsenseFormat: "fluid",
	},
}

// Lookup returns the spec for name and whether the name is known.
func Lookup(name string) (Spec, bool) {
	s, ok := specs[name]
	return s, ok
}

// Known reports whether name exists in the spec table.
func Known(name string) bool {
	_, ok := specs[name]
	return ok
}

// Names returns every placement name in the table, for seeding and tests.
func Names() []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TypeAllowed reports whether the spec accepts a creative type. A nil
// restriction accepts everything; an empty one accepts nothing.
func (s Spec) TypeAllowed(t domain.CreativeType) bool {
	if s.AllowedTypes == nil {
		return true
	}
	return slices.Contains(s.AllowedTypes, t)
}

// RatioAllowed reports whether the spec accepts a creative aspect ratio. A
// creative without a fixed ratio only fits unrestricted slots.
func (s Spec) RatioAllowed(ratio *string) bool {
	if s.AllowedRatios == nil {
		return true
	}
	if ratio == nil {
		return false
	}
	return slices.Contains(s.AllowedRatios, *ratio)
}
