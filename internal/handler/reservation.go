package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuedesk/venue-reservation/internal/booking"
	"github.com/venuedesk/venue-reservation/internal/model"
	"github.com/venuedesk/venue-reservation/internal/queue"
	queue_publisher "github.com/venuedesk/venue-reservation/internal/service"
)

// ReservationHandler exposes the reservation lifecycle over HTTP. All
// methods assume JWT authentication has already run; they read the
// caller's identity and admin flag from the request context and pass
// both to the booking service, which enforces authorization.
type ReservationHandler struct {
	Booking *booking.Service

	// Publish emits a confirmed-reservation event. Tests swap in a
	// recorder; a nil value disables publishing entirely.
	Publish func(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// NewReservationHandler constructs a ReservationHandler that publishes
// events to RabbitMQ.
func NewReservationHandler(b *booking.Service) *ReservationHandler {
	if b == nil {
		panic("nil booking service passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Booking: b,
		Publish: queue_publisher.PublishReservationConfirmed,
	}
}

// Create handles POST /v1/reservations. The body is a
// booking.Candidate; validation failures return 400 with the reason,
// slot collisions return 409. On success a reservation.confirmed event
// is published for auto-approved bookings.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var cand booking.Candidate
	if err := c.Bind(&cand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	res, err := h.Booking.Create(c.Request().Context(), cand, uid)
	if err != nil {
		return respondBookingError(c, err)
	}

	if res.Status == model.StatusConfirmed {
		h.publishConfirmed(c, res)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "reservation created successfully",
		"reservation": res,
	})
}

// List handles GET /v1/reservations. Regular users see their own
// bookings; admins see everything.
func (h *ReservationHandler) List(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reservations, err := h.Booking.List(c.Request().Context(), uid, callerIsAdmin(c))
	if err != nil {
		return respondBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": reservations})
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	res, err := h.Booking.Get(c.Request().Context(), c.Param("id"), uid, callerIsAdmin(c))
	if err != nil {
		return respondBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": res})
}

// UpdateStatus handles PUT /v1/reservations/:id/status. Admin-only;
// the transition must be allowed by the lifecycle state machine.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	next := model.ReservationStatus(body.Status)
	if !next.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid status: must be pending, confirmed, cancelled or completed",
		})
	}

	res, err := h.Booking.UpdateStatus(c.Request().Context(), c.Param("id"), next, uid, callerIsAdmin(c))
	if err != nil {
		return respondBookingError(c, err)
	}

	// An admin approval is the moment a pending booking becomes real.
	if next == model.StatusConfirmed {
		h.publishConfirmed(c, res)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "reservation status updated successfully",
		"reservation": res,
	})
}

// SetAttendance handles PUT /v1/reservations/:id/attendance. Admin-only
// wholesale replacement of the attendee list.
func (h *ReservationHandler) SetAttendance(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Attendance []string `json:"attendance"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	res, err := h.Booking.SetAttendance(c.Request().Context(), c.Param("id"), body.Attendance, uid, callerIsAdmin(c))
	if err != nil {
		return respondBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "attendance updated successfully",
		"reservation": res,
	})
}

// Delete handles DELETE /v1/reservations/:id. Owners and admins only;
// the removal is permanent.
func (h *ReservationHandler) Delete(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Booking.Delete(c.Request().Context(), c.Param("id"), uid, callerIsAdmin(c)); err != nil {
		return respondBookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation deleted"})
}

// publishConfirmed emits a reservation.confirmed event. Publishing is
// best-effort: a broker outage must never fail the booking itself.
func (h *ReservationHandler) publishConfirmed(c echo.Context, res *model.Reservation) {
	if h.Publish == nil {
		return
	}
	ev := queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		VenueID:       res.VenueID,
		OwnerID:       res.OwnerID,
		Purpose:       res.Purpose,
		Date:          res.Date,
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		Organizer:     res.OrganizerName,
		Participants:  res.ParticipantCount,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Publish(c.Request().Context(), ev); err != nil {
		c.Logger().Warnf("publish reservation.confirmed failed: %v", err)
	}
}
