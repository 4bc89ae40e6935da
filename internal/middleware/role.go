package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/model"
)

// RequireRole enforces that the authenticated account carries exactly
// one of the given roles.  Dashboards are gated this way: each role
// sees only its own surface.  Assumes JWTAuth already stored the role
// claim under "role"; anything missing, unknown or not allowed gets a
// 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, _ := c.Get("role").(string)
			role := model.Role(v)
			if !role.Valid() || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
