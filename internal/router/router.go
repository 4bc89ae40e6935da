// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/laqshya/sports-facility-booking/internal/handler"
	"github.com/laqshya/sports-facility-booking/internal/middleware"
	"github.com/laqshya/sports-facility-booking/internal/model"
)

// RegisterRoutes registers routes that need no authentication beyond
// the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the guest-visible catalog and availability
// endpoints.  The slow-changing catalog reads sit behind the Redis
// response cache; availability is always computed fresh.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client, cacheTTL time.Duration) {
	cached := e.Group("/v1", middleware.CacheGET(rdb, cacheTTL))
	cached.GET("/sports", p.GetSports)
	cached.GET("/venues", p.GetVenues)
	cached.GET("/venues/:id/grounds", p.GetVenueGrounds)
	cached.GET("/slots", p.GetSlots)
	cached.GET("/payment-methods", p.GetPaymentMethods)
	cached.GET("/coupons", p.GetCoupons)

	e.GET("/v1/availability", p.GetAvailability)
}

// RegisterAuth registers login plus the session endpoints that require
// a valid access token regardless of role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.POST("/auth/logout", a.Logout)
	auth.GET("/me", a.Me)
	auth.GET("/me/profile-image", a.GetProfileImage)
	auth.PUT("/me/profile-image", a.PutProfileImage)
}

// RegisterUser registers the booking wizard and the user's own booking
// views.  Only the user role may book.
func RegisterUser(e *echo.Echo, w *handler.WizardHandler, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleUser))

	g.POST("/wizard", w.Start)
	g.GET("/wizard", w.Get)
	g.DELETE("/wizard", w.Discard)
	g.PUT("/wizard/sport", w.SelectSport)
	g.PUT("/wizard/venue", w.SelectVenue)
	g.PUT("/wizard/slot", w.SelectSlot)
	g.POST("/wizard/next", w.Next)
	g.POST("/wizard/back", w.Back)
	g.POST("/wizard/confirm", w.Confirm)

	g.GET("/bookings", b.ListMine)
	g.POST("/bookings/:id/cancel", b.Cancel)
	g.GET("/bookings/:id/bill", b.Bill)
}

// RegisterAdmin registers the admin dashboard endpoints.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))

	g.GET("/users", a.ListUsers)
	g.POST("/users", a.AddUser)
	g.DELETE("/users/:id", a.RemoveUser)

	g.GET("/bookings", a.ListBookings)
	g.POST("/bookings", a.AddBooking)
	g.DELETE("/bookings/:id", a.RemoveBooking)

	g.GET("/stats", a.Stats)
}

// RegisterManager registers the manager dashboard endpoints.
func RegisterManager(e *echo.Echo, m *handler.ManagerHandler, jwtSecret string) {
	g := e.Group("/v1/manager", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleManager))

	g.GET("/search", m.Search)

	g.GET("/courts", m.ListCourts)
	g.POST("/courts", m.AddCourt)
	g.POST("/courts/:id/toggle", m.ToggleCourt)

	g.POST("/sports", m.AddSport)
	g.POST("/venues", m.AddVenue)
	g.POST("/venues/:id/grounds", m.AddGround)
	g.POST("/coupons", m.AddCoupon)
	g.POST("/payment-methods", m.AddPaymentMethod)
}
