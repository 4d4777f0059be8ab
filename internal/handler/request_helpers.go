package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lilyapp/lily/internal/logger"
)

// HeaderUserID carries the authenticated user's ID on every API request
const HeaderUserID = "X-User-ID"

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// it against its struct tags. If it returns an error the HTTP response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetUserID extracts the authenticated user ID from the request headers.
// If the header is absent it writes a 400 response and returns false.
func GetUserID(r *http.Request, w http.ResponseWriter) (string, bool) {
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		logger.FromContext(r.Context()).Warn("Request missing user ID header")
		respondError(w, http.StatusBadRequest, ErrMsgMissingUserID)
		return "", false
	}
	return userID, true
}
