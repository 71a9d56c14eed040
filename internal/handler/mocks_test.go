package handler_test

import (
	"context"
	"net/http"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/handler"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/handler/gen"
)

// mockInsightsServicer is a test double for handler.InsightsServicer.
// Set only the method fields your test needs.
type mockInsightsServicer struct {
	destinationReport func(ctx context.Context, destination string) (domain.DestinationReport, error)
	listDestinations  func(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error)
}

func (m *mockInsightsServicer) DestinationReport(ctx context.Context, destination string) (domain.DestinationReport, error) {
	return m.destinationReport(ctx, destination)
}
func (m *mockInsightsServicer) ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
	return m.listDestinations(ctx, p)
}

// compile-time check: mockInsightsServicer must satisfy handler.InsightsServicer.
var _ handler.InsightsServicer = (*mockInsightsServicer)(nil)

// newHTTPHandler wires a Server with the given mock into the generated chi router.
func newHTTPHandler(svc handler.InsightsServicer) http.Handler {
	srv := handler.NewServer(svc)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}
