package handler

import (
	"context"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/handler/gen"
)

// ListDestinations handles GET /destinations.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListDestinations(ctx context.Context, req gen.ListDestinationsRequestObject) (gen.ListDestinationsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	destinations, total, err := s.insights.ListDestinations(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.DestinationCount, len(destinations))
	for i, d := range destinations {
		data[i] = gen.DestinationCount{Destination: d.Destination, PackageCount: d.PackageCount}
	}
	return gen.ListDestinations200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      int(total),
			TotalPages: params.TotalPages(total),
		},
	}, nil
}
