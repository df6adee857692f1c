// Package handler implements the HTTP surface of the reservation
// service on top of Echo. Handlers translate between JSON requests and
// the booking engine; all business rules live in internal/booking.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuedesk/venue-reservation/internal/booking"
)

// callerID extracts the authenticated user's ID from the context, as
// stored by the JWTAuth middleware.
func callerID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("missing user_id in context")
}

// callerIsAdmin reads the admin flag stored by JWTAuth. A missing or
// mistyped value means non-admin.
func callerIsAdmin(c echo.Context) bool {
	isAdmin, _ := c.Get("is_admin").(bool)
	return isAdmin
}

// respondBookingError maps booking-engine errors onto HTTP responses.
// Validation failures and bad transitions are 400s, conflicts are 409
// so clients can re-prompt for another slot, and anything unrecognized
// is surfaced as a generic 500 without leaking storage details.
func respondBookingError(c echo.Context, err error) error {
	if ve, ok := booking.AsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "reason": string(ve.Reason)})
	}
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "this time slot is already booked for the selected venue"})
	case errors.Is(err, booking.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, booking.ErrVenueNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
	case errors.Is(err, booking.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, booking.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status transition"})
	}
	c.Logger().Errorf("booking operation failed: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
