package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
	"github.com/bao-nguyen-khac/tour-website-sub000/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler knows what was looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.InsightsService.DestinationReport: validation error: destination is required"
// → "destination is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

// RequestErrorHandler answers malformed parameters (e.g. ?page=abc) that the
// generated router rejects before any handler runs.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, gen.ErrorDetail{Code: "bad_request", Message: err.Error()})
}

// ResponseErrorHandler returns the strict server's response-error hook.
// The underlying error is logged with the request id; the client only ever
// sees a generic internal_error body.
func ResponseErrorHandler(log *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, gen.ErrorDetail{Code: "internal_error", Message: "internal server error"})
	}
}

func writeError(w http.ResponseWriter, status int, detail gen.ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already on the wire
	json.NewEncoder(w).Encode(gen.ErrorResponse{Error: detail})
}
