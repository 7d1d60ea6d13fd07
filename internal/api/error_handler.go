package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

const loginPath = "/auth/login"

// errorResponse is the canonical error envelope for all API errors. Login
// is set when the caller can recover by authenticating again.
type errorResponse struct {
	Error string `json:"error"`
	Login string `json:"login,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors map to deterministic HTTP codes. All of them are
	// recoverable by the caller; none is fatal to the process.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrMemberExists):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound, errorResponse{Error: "member not found"}
	case errors.Is(err, domain.ErrNoSession):
		// The web equivalent of "redirect to login".
		return http.StatusUnauthorized, errorResponse{Error: err.Error(), Login: loginPath}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
