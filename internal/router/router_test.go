package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"fitbite/internal/auth"
	"fitbite/internal/model"
)

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name         string
		claims       *auth.Claims
		expectedCode int
	}{
		{
			name:         "admin role passes through",
			claims:       &auth.Claims{UserID: 1, Email: "admin@fitbite.cl", Role: model.RoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "customer role is forbidden",
			claims:       &auth.Claims{UserID: 7, Email: "maria@example.com", Role: model.RoleCustomer},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "missing claims are forbidden",
			claims:       nil,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.claims != nil {
				c.Set("user", &jwt.Token{Claims: tt.claims})
			}

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true
				return c.NoContent(http.StatusOK)
			}

			err := AdminOnly(next)(c)

			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				assert.True(t, nextCalled)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assert.False(t, nextCalled)
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}
		})
	}
}
