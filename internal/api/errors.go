package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/http/response"
)

// RegisterErrorHandler configures huma to render every error it creates
// (unparseable bodies, bad parameters, WriteErr) in the shared
// {code, message, details} shape.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return response.FromError(domainErr)
			}
		}

		switch {
		case status >= http.StatusInternalServerError:
			return response.Internal()
		case status == http.StatusNotFound:
			return &response.ErrorBody{
				Status:  status,
				Code:    string(domainerrors.CodeNotFound),
				Message: message,
			}
		case status == http.StatusTooManyRequests:
			return &response.ErrorBody{
				Status:  status,
				Code:    string(domainerrors.CodeRateLimited),
				Message: message,
			}
		case status == http.StatusUnprocessableEntity, status == http.StatusBadRequest:
			return &response.ErrorBody{
				Status:  http.StatusBadRequest,
				Code:    string(domainerrors.CodeValidation),
				Message: message,
				Details: errorDetails(errs),
			}
		default:
			return &response.ErrorBody{
				Status:  status,
				Code:    http.StatusText(status),
				Message: message,
			}
		}
	}
}

// errorDetails flattens huma's per-location errors into a string list.
func errorDetails(errs []error) any {
	if len(errs) == 0 {
		return nil
	}
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	return details
}

// apiError converts a service error into its response body, logging the
// cause of anything that renders as a 500.
func (s *Server) apiError(err error) error {
	body := response.FromError(err)
	if body.Status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", slog.Any("error", err))
	}
	return body
}
