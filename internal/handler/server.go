// Package handler implements the HTTP handlers for the tour insights API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split by resource (health.go, destinations.go, insights.go) but
// share the same Server struct.
package handler

import (
	"context"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
)

// InsightsServicer defines the read operations the handlers depend on.
// Declared here, in the consumer package, so tests can inject a mock.
type InsightsServicer interface {
	DestinationReport(ctx context.Context, destination string) (domain.DestinationReport, error)
	ListDestinations(ctx context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions.
type Server struct {
	insights InsightsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(insights InsightsServicer) *Server {
	return &Server{insights: insights}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}
