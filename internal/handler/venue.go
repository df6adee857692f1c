package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuedesk/venue-reservation/internal/booking"
)

// VenueHandler serves the venue catalogue and the availability
// projection that dashboards poll.
type VenueHandler struct {
	Booking *booking.Service
}

// NewVenueHandler constructs a VenueHandler.
func NewVenueHandler(b *booking.Service) *VenueHandler {
	if b == nil {
		panic("nil booking service passed to NewVenueHandler")
	}
	return &VenueHandler{Booking: b}
}

// List handles GET /v1/venues and returns the seeded venue catalogue.
func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.Booking.Venues(c.Request().Context())
	if err != nil {
		return respondBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}

// Availability handles GET /v1/venues/availability?date=YYYY-MM-DD.
// Without a date it projects today. The response is cacheable: the
// Redis response cache middleware sits in front of this route.
func (h *VenueHandler) Availability(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date: expected YYYY-MM-DD"})
	}

	snap, err := h.Booking.Availability(c.Request().Context(), date)
	if err != nil {
		return respondBookingError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// Schedule handles GET /v1/venues/:id/schedule?date=YYYY-MM-DD and
// returns one venue's live bookings for the day, ordered by start time.
func (h *VenueHandler) Schedule(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date: expected YYYY-MM-DD"})
	}

	venue, reservations, err := h.Booking.Schedule(c.Request().Context(), c.Param("id"), date)
	if err != nil {
		return respondBookingError(c, err)
	}

	slots := make([]booking.ReservationSlot, 0, len(reservations))
	for _, r := range reservations {
		slots = append(slots, booking.ReservationSlot{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Purpose:   r.Purpose,
			Organizer: r.OrganizerName,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":        venue,
		"date":         date,
		"reservations": slots,
	})
}
