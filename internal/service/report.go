package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
)

const (
	highlyRatedThreshold = 4.5
	popularThreshold     = 5 // bookings; strictly more than this is popular
	maxImages            = 3
	topHighlightsLimit   = 6
)

// BuildReport derives the destination comparison from already-fetched data.
// It performs no I/O and returns identical output for identical input.
//
// Ties are resolved by the order of packages: cheapest, topRated,
// mostPopular, richest and minimalist pick the first package holding the
// extreme value, premium picks the last one.
//
// Callers must treat an empty packages slice as "not found"; BuildReport
// then returns a report with TotalPackages == 0 and nothing else filled in.
func BuildReport(
	destination string,
	packages []domain.Package,
	bookings map[uuid.UUID]int,
	ratings map[uuid.UUID]domain.RatingStats,
) domain.DestinationReport {
	total := len(packages)
	report := domain.DestinationReport{
		Destination:   destination,
		TotalPackages: total,
		Packages:      []domain.EnrichedPackage{},
	}
	if total == 0 {
		return report
	}

	// Destination-wide ranges come first: "best price" depends on the minimum.
	prices := make([]float64, total)
	days := make([]int, total)
	for i, p := range packages {
		prices[i] = p.EffectivePrice()
		days[i] = p.Days
	}
	minPrice := slices.Min(prices)

	for _, p := range packages {
		stats, live := ratings[p.ID]
		report.Packages = append(report.Packages, enrich(p, bookings[p.ID], stats, live, minPrice))
	}

	report.Comparison = domain.Comparison{
		PriceRange:       domain.PriceRange{Min: minPrice, Max: slices.Max(prices)},
		DurationRange:    domain.DurationRange{MinDays: slices.Min(days), MaxDays: slices.Max(days)},
		TransportOptions: transportOptions(packages),
	}
	report.Summary = summarize(report.Packages)
	report.ItineraryInsights = itineraryInsights(report.Packages)
	return report
}

// enrich joins one package with its aggregates. stats is only consulted when
// live is true, i.e. the package has at least one review on record.
func enrich(p domain.Package, bookingCount int, stats domain.RatingStats, live bool, minPrice float64) domain.EnrichedPackage {
	avgRating, reviewCount := ratingWithFallback(p, stats, live)

	sentiment := 0.0
	if reviewCount > 0 && live {
		sentiment = round(float64(stats.Positive-stats.Negative)/float64(reviewCount), 2)
	}

	e := domain.EnrichedPackage{
		ID:             p.ID,
		Name:           p.Name,
		Destination:    p.Destination,
		Accommodation:  p.Accommodation,
		Transportation: p.Transportation,
		Days:           p.Days,
		Nights:         p.Nights,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		OnOffer:        p.OnOffer,
		EffectivePrice: p.EffectivePrice(),
		AvgRating:      round(avgRating, 2),
		ReviewCount:    reviewCount,
		BookingCount:   bookingCount,
		SentimentScore: sentiment,
		Images:         slices.Clone(p.Images[:min(maxImages, len(p.Images))]),
		Highlights:     ExtractHighlights(p.Activities, p.Description),
		Tags:           []domain.PackageTag{},
	}
	if e.Images == nil {
		e.Images = []string{}
	}

	if e.EffectivePrice <= minPrice {
		e.Tags = append(e.Tags, domain.TagBestPrice)
	}
	if e.AvgRating >= highlyRatedThreshold {
		e.Tags = append(e.Tags, domain.TagHighlyRated)
	}
	if e.BookingCount > popularThreshold {
		e.Tags = append(e.Tags, domain.TagPopular)
	}
	return e
}

// ratingWithFallback resolves the average rating and review count in order
// of precedence: live review aggregate, then the counters stored on the
// package, then zero (the zero value of the stored counters).
func ratingWithFallback(p domain.Package, stats domain.RatingStats, live bool) (avg float64, count int) {
	if live {
		return stats.AvgRating, stats.Count
	}
	return p.Rating, p.TotalRatings
}

// transportOptions lists distinct non-empty transportation values in the
// order they first appear.
func transportOptions(packages []domain.Package) []string {
	out := []string{}
	for _, p := range packages {
		t := strings.TrimSpace(p.Transportation)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func summarize(pkgs []domain.EnrichedPackage) domain.InsightsSummary {
	var (
		priceSum, ratingSum float64
		reviews             int
		cheapest, premium   = pkgs[0], pkgs[0]
		topRated, popular   = pkgs[0], pkgs[0]
	)
	for i, e := range pkgs {
		priceSum += e.EffectivePrice
		ratingSum += e.AvgRating
		reviews += e.ReviewCount
		if i == 0 {
			continue
		}
		if e.EffectivePrice < cheapest.EffectivePrice {
			cheapest = e
		}
		if e.EffectivePrice >= premium.EffectivePrice {
			premium = e
		}
		if e.AvgRating > topRated.AvgRating {
			topRated = e
		}
		if e.BookingCount > popular.BookingCount {
			popular = e
		}
	}

	n := float64(len(pkgs))
	return domain.InsightsSummary{
		AveragePrice:    round(priceSum/n, 2),
		AverageRating:   round(ratingSum/n, 1),
		TotalReviews:    reviews,
		CheapestPackage: packageRef(cheapest),
		PremiumPackage:  packageRef(premium),
		TopRated:        packageRef(topRated),
		MostPopular:     packageRef(popular),
	}
}

func itineraryInsights(pkgs []domain.EnrichedPackage) domain.ItineraryInsights {
	// counts[h] is the number of packages mentioning h; highlights are
	// already unique per package. order keeps first-seen order for ties.
	counts := make(map[string]int)
	var order []string
	stops := 0
	for _, e := range pkgs {
		stops += len(e.Highlights)
		for _, h := range e.Highlights {
			if _, seen := counts[h]; !seen {
				order = append(order, h)
			}
			counts[h]++
		}
	}

	total := float64(len(pkgs))
	stats := make([]domain.HighlightStat, 0, len(order))
	for _, h := range order {
		stats = append(stats, domain.HighlightStat{
			Highlight: h,
			Count:     counts[h],
			Coverage:  round(float64(counts[h])/total*100, 1),
		})
	}
	slices.SortStableFunc(stats, func(a, b domain.HighlightStat) int {
		return cmp.Compare(b.Count, a.Count)
	})

	richest := 0
	minimalist := -1
	for i, e := range pkgs {
		n := len(e.Highlights)
		if n > len(pkgs[richest].Highlights) {
			richest = i
		}
		if n > 0 && (minimalist < 0 || n < len(pkgs[minimalist].Highlights)) {
			minimalist = i
		}
	}

	insights := domain.ItineraryInsights{
		TopHighlights:    stats[:min(topHighlightsLimit, len(stats))],
		AverageStops:     round(float64(stops)/total, 1),
		RichestItinerary: spotlight(pkgs[richest]),
		UniqueActivities: len(order),
	}
	if minimalist >= 0 {
		insights.MinimalistItinerary = spotlight(pkgs[minimalist])
	}
	return insights
}

func packageRef(e domain.EnrichedPackage) domain.PackageRef {
	return domain.PackageRef{
		ID:             e.ID,
		Name:           e.Name,
		EffectivePrice: e.EffectivePrice,
		AvgRating:      e.AvgRating,
		BookingCount:   e.BookingCount,
	}
}

func spotlight(e domain.EnrichedPackage) *domain.ItinerarySpotlight {
	return &domain.ItinerarySpotlight{
		ID:             e.ID,
		Name:           e.Name,
		HighlightCount: len(e.Highlights),
		Highlights:     e.Highlights,
	}
}
