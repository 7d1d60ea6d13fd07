package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrMissingCredentials, http.StatusBadRequest},
		{domain.ErrMemberExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrMemberNotFound, http.StatusNotFound},
		{domain.ErrNoSession, http.StatusUnauthorized},
		{fmt.Errorf("session check: %w", domain.ErrNoSession), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := resolveError(tc.err, zerolog.Nop(), testContext())
		if code != tc.code {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestResolveError_NoSessionCarriesLoginHint(t *testing.T) {
	code, resp := resolveError(domain.ErrNoSession, zerolog.Nop(), testContext())
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp.Login != loginPath {
		t.Fatalf("expected login hint %q, got %q", loginPath, resp.Login)
	}
}

func TestResolveError_EchoErrorPassedThrough(t *testing.T) {
	code, resp := resolveError(echo.NewHTTPError(http.StatusTeapot, "short and stout"), zerolog.Nop(), testContext())
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
	if resp.Error != "short and stout" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestResolveError_InternalNotLeaked(t *testing.T) {
	_, resp := resolveError(errors.New("password for ann is secret"), zerolog.Nop(), testContext())
	if resp.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Error)
	}
}
