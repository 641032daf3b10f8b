// Package response renders JSON bodies and the error shape shared by every
// route, including the ones served outside huma (unmatched paths, panics).
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
)

// ErrorBody is the JSON error shape: {code, message, details?}.
// It satisfies huma.StatusError so operations can return it directly.
type ErrorBody struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements error.
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus returns the HTTP status code.
func (e *ErrorBody) GetStatus() int {
	return e.Status
}

// FromError maps err to its response body.
// Domain errors keep their code and message; anything else becomes the
// generic internal error so causes never reach the client.
func FromError(err error) *ErrorBody {
	var body *ErrorBody
	if errors.As(err, &body) {
		return body
	}

	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) && domainErr.Code != domainerrors.CodeInternal {
		return &ErrorBody{
			Status:  domainErr.HTTPStatus(),
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Details: domainErr.Details,
		}
	}

	return Internal()
}

// Internal returns the generic 500 body.
func Internal() *ErrorBody {
	return &ErrorBody{
		Status:  http.StatusInternalServerError,
		Code:    string(domainerrors.CodeInternal),
		Message: domainerrors.InternalMessage,
	}
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// Error writes the error body for err. 5xx causes are logged.
func Error(w http.ResponseWriter, err error, logger *slog.Logger) {
	body := FromError(err)
	if body.Status >= http.StatusInternalServerError && logger != nil {
		logger.Error("Unhandled error", "error", err)
	}
	JSON(w, body.Status, body, logger)
}

// NotFound is an http.HandlerFunc for unmatched routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusNotFound, &ErrorBody{
		Status:  http.StatusNotFound,
		Code:    string(domainerrors.CodeNotFound),
		Message: "Not Found",
	}, nil)
}

// MethodNotAllowed is an http.HandlerFunc for known paths hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, &ErrorBody{
		Status:  http.StatusMethodNotAllowed,
		Code:    "METHOD_NOT_ALLOWED",
		Message: "Method Not Allowed",
	}, nil)
}
