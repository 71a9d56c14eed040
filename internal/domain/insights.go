package domain

import "github.com/google/uuid"

// PackageTag is a qualitative label attached to an enriched package.
type PackageTag string

const (
	TagBestPrice   PackageTag = "best price"
	TagHighlyRated PackageTag = "highly rated"
	TagPopular     PackageTag = "popular"
)

// EnrichedPackage is a Package joined with its booking count and rating
// aggregate for the duration of one report. It is never persisted.
type EnrichedPackage struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Destination    string       `json:"destination"`
	Accommodation  string       `json:"accommodation,omitempty"`
	Transportation string       `json:"transportation,omitempty"`
	Days           int          `json:"days"`
	Nights         int          `json:"nights"`
	Price          float64      `json:"price"`
	DiscountPrice  *float64     `json:"discountPrice,omitempty"`
	OnOffer        bool         `json:"onOffer"`
	EffectivePrice float64      `json:"effectivePrice"`
	AvgRating      float64      `json:"avgRating"`
	ReviewCount    int          `json:"reviewCount"`
	BookingCount   int          `json:"bookingCount"`
	SentimentScore float64      `json:"sentimentScore"`
	Images         []string     `json:"images"`
	Highlights     []string     `json:"highlights"`
	Tags           []PackageTag `json:"tags"`
}

// HasTag reports whether tag was assigned to the package.
func (e EnrichedPackage) HasTag(tag PackageTag) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PackageRef points at one package from the report summary.
type PackageRef struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	EffectivePrice float64   `json:"effectivePrice"`
	AvgRating      float64   `json:"avgRating"`
	BookingCount   int       `json:"bookingCount"`
}

// InsightsSummary holds the destination-wide headline numbers.
type InsightsSummary struct {
	AveragePrice    float64    `json:"averagePrice"`
	AverageRating   float64    `json:"averageRating"`
	TotalReviews    int        `json:"totalReviews"`
	CheapestPackage PackageRef `json:"cheapestPackage"`
	PremiumPackage  PackageRef `json:"premiumPackage"`
	TopRated        PackageRef `json:"topRated"`
	MostPopular     PackageRef `json:"mostPopular"`
}

// PriceRange is the min/max effective price across a destination.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DurationRange is the min/max day count across a destination.
type DurationRange struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

// Comparison groups the ranges used to compare packages side by side.
type Comparison struct {
	PriceRange       PriceRange    `json:"priceRange"`
	DurationRange    DurationRange `json:"durationRange"`
	TransportOptions []string      `json:"transportOptions"`
}

// HighlightStat is the cross-package frequency of one itinerary highlight.
// Count is the number of packages mentioning it; Coverage is Count as a
// percentage of the destination's packages.
type HighlightStat struct {
	Highlight string  `json:"highlight"`
	Count     int     `json:"count"`
	Coverage  float64 `json:"coverage"`
}

// ItinerarySpotlight singles out one package by its itinerary size.
type ItinerarySpotlight struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	HighlightCount int       `json:"highlightCount"`
	Highlights     []string  `json:"highlights"`
}

// ItineraryInsights summarizes the highlights extracted across a destination.
// MinimalistItinerary is nil when no package yielded any highlight.
type ItineraryInsights struct {
	TopHighlights       []HighlightStat     `json:"topHighlights"`
	AverageStops        float64             `json:"averageStops"`
	RichestItinerary    *ItinerarySpotlight `json:"richestItinerary"`
	MinimalistItinerary *ItinerarySpotlight `json:"minimalistItinerary"`
	UniqueActivities    int                 `json:"uniqueActivities"`
}

// DestinationReport is the comparison view over every package offered for
// one destination. A report always describes at least one package.
type DestinationReport struct {
	Destination       string            `json:"destination"`
	TotalPackages     int               `json:"totalPackages"`
	Summary           InsightsSummary   `json:"summary"`
	Comparison        Comparison        `json:"comparison"`
	Packages          []EnrichedPackage `json:"packages"`
	ItineraryInsights ItineraryInsights `json:"itineraryInsights"`
}
