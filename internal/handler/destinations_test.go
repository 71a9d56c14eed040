package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/handler/gen"
)

// ---- GET /destinations -----------------------------------------------------

func TestListDestinations_200_DefaultPagination(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockInsightsServicer{
		listDestinations: func(_ context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
			gotParams = p
			return []domain.DestinationCount{
				{Destination: "Hội An", PackageCount: 4},
				{Destination: "Đà Lạt", PackageCount: 1},
			}, 2, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotParams)

	var resp gen.DestinationList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Hội An", resp.Data[0].Destination)
	assert.Equal(t, 4, resp.Data[0].PackageCount)
	assert.Equal(t, gen.Pagination{Page: 1, Limit: 20, Total: 2, TotalPages: 1}, resp.Pagination)
}

func TestListDestinations_200_PageAndLimitPassedThrough(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockInsightsServicer{
		listDestinations: func(_ context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
			gotParams = p
			return []domain.DestinationCount{}, 11, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations?page=3&limit=5", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 5}, gotParams)

	var resp gen.DestinationList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotNil(t, resp.Data)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestListDestinations_LimitCappedAt100(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockInsightsServicer{
		listDestinations: func(_ context.Context, p domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
			gotParams = p
			return nil, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations?limit=500", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, gotParams.Limit)
}

func TestListDestinations_400_MalformedPage(t *testing.T) {
	svc := &mockInsightsServicer{}

	req := httptest.NewRequest(http.MethodGet, "/destinations?page=abc", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDestinations_500_ServiceError(t *testing.T) {
	svc := &mockInsightsServicer{
		listDestinations: func(_ context.Context, _ domain.PaginationParams) ([]domain.DestinationCount, int64, error) {
			return nil, 0, errors.New("db exploded")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
