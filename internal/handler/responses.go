package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lilyapp/lily/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent so an encode
	// failure can only be logged.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgNotEnoughMoneyErr  = "Not enough currency"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgNoItemsError       = "No items are available to pull"
	ErrMsgUpstreamDownError  = "Image service is temporarily unavailable. Please try again later."
	ErrMsgUnknownTaskKindErr = "Unknown task kind"
	ErrMsgUnknownPullModeErr = "Unknown pull mode"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughMoneyErr
	case errors.Is(err, domain.ErrInvalidTaskKind):
		return http.StatusBadRequest, ErrMsgUnknownTaskKindErr
	case errors.Is(err, domain.ErrInvalidPullMode):
		return http.StatusBadRequest, ErrMsgUnknownPullModeErr
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNoItemsAvailable):
		return http.StatusConflict, ErrMsgNoItemsError
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUpstreamDownError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
