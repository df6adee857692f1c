// Package router maps HTTP routes to handlers and applies the
// middleware chain for each route group.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/venuedesk/venue-reservation/internal/handler"
	"github.com/venuedesk/venue-reservation/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Reservation *handler.ReservationHandler
	Venue       *handler.VenueHandler
	Export      *handler.ExportHandler
}

// Options carries the cross-cutting middleware the router applies.
// Cache and RateLimit may be nil when Redis is unavailable; the
// corresponding routes then run without them.
type Options struct {
	JWTSecret string
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and uptime monitors probe this endpoint.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI mounts the full API surface. Unauthenticated identity
// operations live under /v1/auth; everything else sits behind JWT
// authentication under /v1, with admin routes additionally guarded by
// RequireAdmin.
func RegisterAPI(e *echo.Echo, h Handlers, opts Options) {
	// Identity endpoints that establish a session.
	auth := e.Group("/v1/auth")
	if opts.RateLimit != nil {
		// Login and registration are the obvious brute-force targets.
		auth.Use(opts.RateLimit)
	}
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Everything below requires a valid access token.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(opts.JWTSecret))

	v1.GET("/me", h.Auth.Me)

	// Reservation lifecycle.
	v1.POST("/reservations", h.Reservation.Create)
	v1.GET("/reservations", h.Reservation.List)
	v1.GET("/reservations/:id", h.Reservation.Get)
	v1.DELETE("/reservations/:id", h.Reservation.Delete)

	// Venue catalogue and projections. Availability is the hot polling
	// path, so the Redis response cache fronts it when available.
	v1.GET("/venues", h.Venue.List)
	if opts.Cache != nil {
		v1.GET("/venues/availability", h.Venue.Availability, opts.Cache)
	} else {
		v1.GET("/venues/availability", h.Venue.Availability)
	}
	v1.GET("/venues/:id/schedule", h.Venue.Schedule)

	// Admin-only operations.
	admin := v1.Group("", middleware.RequireAdmin())
	admin.PUT("/reservations/:id/status", h.Reservation.UpdateStatus)
	admin.PUT("/reservations/:id/attendance", h.Reservation.SetAttendance)
	admin.GET("/reservations/:id/attendance/export", h.Export.Attendance)
}
