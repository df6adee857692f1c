package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin aborts the request with 403 Forbidden unless the
// authenticated caller carries the is_admin claim. It assumes JWTAuth
// has already stored "is_admin" in the context; a missing or mistyped
// value is treated as non-admin.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get("is_admin").(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
