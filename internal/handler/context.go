package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"fitbite/internal/auth"
)

// CurrentClaims returns the JWT claims the auth middleware attached to the
// request, or nil outside a secured route.
func CurrentClaims(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUserID returns the authenticated user's id, 0 when absent.
func CurrentUserID(c echo.Context) uint {
	claims := CurrentClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
