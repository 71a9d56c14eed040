package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of a CSV report.
var csvHeaders = []string{
	"package_id", "name", "effective_price", "price", "discount_price",
	"days", "nights", "transportation", "avg_rating", "review_count",
	"booking_count", "sentiment_score", "tags", "highlights",
}

// GetDestinationInsights handles GET /insights/destinations/{destination}.
// Use ?format=csv to receive the enriched packages as CSV; default is JSON.
func (s *Server) GetDestinationInsights(ctx context.Context, req gen.GetDestinationInsightsRequestObject) (gen.GetDestinationInsightsResponseObject, error) {
	report, err := s.insights.DestinationReport(ctx, req.Destination)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.GetDestinationInsights422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrNotFound):
			msg := fmt.Sprintf("no packages found for destination %q", strings.TrimSpace(req.Destination))
			return gen.GetDestinationInsights404JSONResponse(notFoundBody(msg)), nil
		}
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		return buildCSVResponse(report.Packages), nil
	}
	return gen.GetDestinationInsights200JSONResponse(reportToResponse(report)), nil
}

// buildCSVResponse flattens the enriched packages into one CSV line each.
// Tags and highlights are pipe-separated ("|") to keep every package on a single line.
func buildCSVResponse(pkgs []domain.EnrichedPackage) gen.GetDestinationInsights200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, p := range pkgs {
		//nolint:errcheck
		w.Write(packageToCSVRecord(p))
	}
	w.Flush()

	return gen.GetDestinationInsights200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

func packageToCSVRecord(p domain.EnrichedPackage) []string {
	discount := ""
	if p.DiscountPrice != nil {
		discount = formatFloat(*p.DiscountPrice)
	}
	tags := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = string(t)
	}
	return []string{
		p.ID.String(),
		p.Name,
		formatFloat(p.EffectivePrice),
		formatFloat(p.Price),
		discount,
		strconv.Itoa(p.Days),
		strconv.Itoa(p.Nights),
		p.Transportation,
		formatFloat(p.AvgRating),
		strconv.Itoa(p.ReviewCount),
		strconv.Itoa(p.BookingCount),
		formatFloat(p.SentimentScore),
		strings.Join(tags, "|"),
		strings.Join(p.Highlights, "|"),
	}
}

// formatFloat renders v without exponent and without trailing zeros,
// so 1500000 stays "1500000" rather than "1.5e+06".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// reportToResponse maps the domain report onto the generated response type.
func reportToResponse(r domain.DestinationReport) gen.DestinationReport {
	pkgs := make([]gen.EnrichedPackage, len(r.Packages))
	for i, p := range r.Packages {
		pkgs[i] = enrichedToResponse(p)
	}

	topHighlights := make([]gen.HighlightStat, len(r.ItineraryInsights.TopHighlights))
	for i, h := range r.ItineraryInsights.TopHighlights {
		topHighlights[i] = gen.HighlightStat{Highlight: h.Highlight, Count: h.Count, Coverage: h.Coverage}
	}

	return gen.DestinationReport{
		Destination:   r.Destination,
		TotalPackages: r.TotalPackages,
		Summary: gen.InsightsSummary{
			AveragePrice:    r.Summary.AveragePrice,
			AverageRating:   r.Summary.AverageRating,
			TotalReviews:    r.Summary.TotalReviews,
			CheapestPackage: refToResponse(r.Summary.CheapestPackage),
			PremiumPackage:  refToResponse(r.Summary.PremiumPackage),
			TopRated:        refToResponse(r.Summary.TopRated),
			MostPopular:     refToResponse(r.Summary.MostPopular),
		},
		Comparison: gen.Comparison{
			PriceRange:       gen.PriceRange{Min: r.Comparison.PriceRange.Min, Max: r.Comparison.PriceRange.Max},
			DurationRange:    gen.DurationRange{MinDays: r.Comparison.DurationRange.MinDays, MaxDays: r.Comparison.DurationRange.MaxDays},
			TransportOptions: nonNil(r.Comparison.TransportOptions),
		},
		Packages: pkgs,
		ItineraryInsights: gen.ItineraryInsights{
			TopHighlights:       topHighlights,
			AverageStops:        r.ItineraryInsights.AverageStops,
			RichestItinerary:    spotlightToResponse(r.ItineraryInsights.RichestItinerary),
			MinimalistItinerary: spotlightToResponse(r.ItineraryInsights.MinimalistItinerary),
			UniqueActivities:    r.ItineraryInsights.UniqueActivities,
		},
	}
}

func enrichedToResponse(p domain.EnrichedPackage) gen.EnrichedPackage {
	tags := make([]gen.PackageTag, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = gen.PackageTag(t)
	}
	out := gen.EnrichedPackage{
		Id:             p.ID,
		Name:           p.Name,
		Destination:    p.Destination,
		Days:           p.Days,
		Nights:         p.Nights,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		OnOffer:        p.OnOffer,
		EffectivePrice: p.EffectivePrice,
		AvgRating:      p.AvgRating,
		ReviewCount:    p.ReviewCount,
		BookingCount:   p.BookingCount,
		SentimentScore: p.SentimentScore,
		Images:         nonNil(p.Images),
		Highlights:     nonNil(p.Highlights),
		Tags:           tags,
	}
	if p.Accommodation != "" {
		out.Accommodation = &p.Accommodation
	}
	if p.Transportation != "" {
		out.Transportation = &p.Transportation
	}
	return out
}

func refToResponse(r domain.PackageRef) gen.PackageRef {
	return gen.PackageRef{
		Id:             r.ID,
		Name:           r.Name,
		EffectivePrice: r.EffectivePrice,
		AvgRating:      r.AvgRating,
		BookingCount:   r.BookingCount,
	}
}

func spotlightToResponse(s *domain.ItinerarySpotlight) *gen.ItinerarySpotlight {
	if s == nil {
		return nil
	}
	return &gen.ItinerarySpotlight{
		Id:             s.ID,
		Name:           s.Name,
		HighlightCount: s.HighlightCount,
		Highlights:     nonNil(s.Highlights),
	}
}

// nonNil makes sure empty lists encode as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
