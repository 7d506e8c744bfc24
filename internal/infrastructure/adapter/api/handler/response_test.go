package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingField", domainerr.MissingField("symbol"), http.StatusBadRequest},
		{"InvalidShares", domainerr.NewValidationError("shares", domainerr.ErrInvalidShares), http.StatusBadRequest},
		{"PasswordMismatch", domainerr.ErrPasswordMismatch, http.StatusBadRequest},
		{"InsufficientFunds", domainerr.NewInsufficientFundsError(1, "AAPL", "10.00", "1.00"), http.StatusBadRequest},
		{"UnknownSymbol", fmt.Errorf("%w: ZZZZ", domainerr.ErrUnknownSymbol), http.StatusBadRequest},
		{"InvalidCredentials", domainerr.ErrInvalidCredentials, http.StatusForbidden},
		{"UsernameTaken", domainerr.ErrUsernameTaken, http.StatusBadRequest},
		{"Unauthenticated", domainerr.ErrSessionNotFound, http.StatusUnauthorized},
		{"UserNotFound", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"ConcurrentUpdate", domainerr.ErrConcurrentUpdate, http.StatusConflict},
		{"QuoteUnavailable", domainerr.ErrQuoteUnavailable, http.StatusServiceUnavailable},
		{"ShuttingDown", domainerr.ErrShuttingDown, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		accept   string
		expected bool
	}{
		{"", false},
		{"text/html,application/xhtml+xml", false},
		{"application/json", true},
		{"*/*", false},
	}

	for _, tc := range testCases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.accept != "" {
			c.Request.Header.Set("Accept", tc.accept)
		}

		assert.Equal(t, tc.expected, WantsJSON(c), "Accept=%q", tc.accept)
	}
}
