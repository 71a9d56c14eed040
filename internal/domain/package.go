// Package domain contains the core data types for the tour insights service.
// This package has no project imports and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Package is a tour listing as stored by the package store.
// Rating and TotalRatings are the cumulative counters kept on the listing
// itself; live review aggregates take precedence over them when present.
type Package struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Destination    string    `json:"destination"`
	Accommodation  string    `json:"accommodation,omitempty"`
	Transportation string    `json:"transportation,omitempty"`
	Activities     string    `json:"activities,omitempty"`
	Description    string    `json:"description,omitempty"`
	Days           int       `json:"days"`
	Nights         int       `json:"nights"`
	Price          float64   `json:"price"`
	DiscountPrice  *float64  `json:"discountPrice,omitempty"` // nil when no discount is set
	OnOffer        bool      `json:"onOffer"`
	Rating         float64   `json:"rating"`
	TotalRatings   int       `json:"totalRatings"`
	Images         []string  `json:"images,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EffectivePrice is the price actually charged: the discount price when one
// is set and non-zero, otherwise the base price.
// A discount price of exactly 0 therefore means "no discount", not "free".
func (p Package) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice != 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

// RatingStats is the live review aggregate for one package.
type RatingStats struct {
	AvgRating float64
	Count     int
	Positive  int // ratings >= 4
	Negative  int // ratings <= 2
}

// DestinationCount is one row of the destination listing.
type DestinationCount struct {
	Destination  string `json:"destination"`
	PackageCount int    `json:"packageCount"`
}
