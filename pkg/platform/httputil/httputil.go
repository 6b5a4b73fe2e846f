// Package httputil writes JSON responses and maps coded domain errors to HTTP.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	dErrors "realestate/pkg/domain-errors"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Field            string `json:"field,omitempty"`
}

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:         http.StatusBadRequest,
	dErrors.CodeInvalidInput:       http.StatusBadRequest,
	dErrors.CodeValidation:         http.StatusBadRequest,
	dErrors.CodeInvariantViolation: http.StatusBadRequest,
	dErrors.CodeNotFound:           http.StatusNotFound,
	dErrors.CodeConflict:           http.StatusConflict,
	dErrors.CodeTimeout:            http.StatusGatewayTimeout,
	dErrors.CodeInternal:           http.StatusInternalServerError,
}

// StatusFor returns the HTTP status for err. Uncoded errors are internal,
// except for context deadlines which surface as timeouts.
func StatusFor(err error) int {
	if errors.Is(err, context.DeadlineExceeded) && !isCoded(err) {
		return http.StatusGatewayTimeout
	}
	if status, ok := statusByCode[dErrors.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError writes err as an ErrorResponse. Internal errors never expose
// their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	if errors.Is(err, context.DeadlineExceeded) && !isCoded(err) {
		code = dErrors.CodeTimeout
	}
	status := StatusFor(err)

	resp := ErrorResponse{Error: string(code)}
	if status < http.StatusInternalServerError {
		var de *dErrors.Error
		if errors.As(err, &de) {
			resp.ErrorDescription = de.Message
			resp.Field = de.Field
		}
	}
	WriteJSON(w, status, resp)
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isCoded(err error) bool {
	var de *dErrors.Error
	return errors.As(err, &de)
}
