package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every route is mounted. Handlers answer
// with non-404 codes (400, 401 and so on) for empty requests, which is all
// this existence check needs.
func TestRegisterRoutes(t *testing.T) {
	app, _, _ := setupApp(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/users/signup"},
		{http.MethodGet, "/api/users/verify-email/some-token"},
		{http.MethodPost, "/api/users/request-password-reset"},
		{http.MethodGet, "/api/users/verify-reset-token/some-token"},
		{http.MethodPost, "/api/users/reset-password/some-token"},
		{http.MethodPost, "/api/users/login"},
		{http.MethodGet, "/api/users/online-users"},
		{http.MethodPost, "/api/users/logout"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// Guarded routes must reject anonymous requests outright.
func TestGuardedRoutesRequireAuth(t *testing.T) {
	app, _, _ := setupApp(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/online-users"},
		{http.MethodPost, "/api/users/logout"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}
