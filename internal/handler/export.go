package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venuedesk/venue-reservation/internal/booking"
)

// ExportHandler produces the admin attendance export.
type ExportHandler struct {
	Booking *booking.Service
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(b *booking.Service) *ExportHandler {
	if b == nil {
		panic("nil booking service passed to NewExportHandler")
	}
	return &ExportHandler{Booking: b}
}

// Attendance handles GET /v1/reservations/:id/attendance/export and
// streams the reservation's attendee list as a CSV download. The route
// sits behind RequireAdmin; the booking service is still consulted with
// the caller's identity so authorization stays in one place.
func (h *ExportHandler) Attendance(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	res, err := h.Booking.Get(c.Request().Context(), c.Param("id"), uid, callerIsAdmin(c))
	if err != nil {
		return respondBookingError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"reservation_id", "venue_id", "date", "start_time", "end_time", "attendee"})
	if len(res.Attendance) == 0 {
		_ = w.Write([]string{res.ID, res.VenueID, res.Date, res.StartTime, res.EndTime, ""})
	}
	for _, name := range res.Attendance {
		_ = w.Write([]string{res.ID, res.VenueID, res.Date, res.StartTime, res.EndTime, name})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}

	filename := fmt.Sprintf("attendance-%s-%s.csv", res.Date, res.ID)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
