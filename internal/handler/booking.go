package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	"github.com/laqshya/sports-facility-booking/internal/search"
)

// BookingHandler serves a user's own bookings: listing with the search
// and sort pipeline, cancellation, and the bill with its QR payload.
type BookingHandler struct {
	Ledger *repository.LedgerRepo
}

func NewBookingHandler(ledger *repository.LedgerRepo) *BookingHandler {
	if ledger == nil {
		panic("nil ledger passed to NewBookingHandler")
	}
	return &BookingHandler{Ledger: ledger}
}

// ListMine handles GET /v1/bookings?q=&sort=.  q matches sport, venue
// and ground; sort is date (default), price or sport.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items := h.Ledger.AllByUser(userID)
	items = search.Filter(items, c.QueryParam("q"), search.BookingFields)
	items = search.SortBookings(items, c.QueryParam("sort"))
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}

// Cancel handles POST /v1/bookings/:id/cancel.  Cancelling an unknown
// or foreign id is a silent no-op, so the response is 204 either way.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if b, err := h.Ledger.GetByID(id); err == nil && b.UserID == userID {
		h.Ledger.Cancel(id)
	}
	return c.NoContent(http.StatusNoContent)
}

// billPayload is the compact record serialized into the QR code.
type billPayload struct {
	ID     string `json:"id"`
	Sport  string `json:"sport"`
	Venue  string `json:"venue"`
	Ground string `json:"ground"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// Bill handles GET /v1/bookings/:id/bill.  The response carries the
// booking, the scan payload and the QR image as a PNG data URI.
func (h *BookingHandler) Bill(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	b, err := h.Ledger.GetByID(c.Param("id"))
	if err != nil || b.UserID != userID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	qr, err := bookingQR(b)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "qr generation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"booking": b,
		"payload": billPayload{ID: b.ID, Sport: b.Sport, Venue: b.Venue, Ground: b.Ground, Date: b.Date, Time: b.Time},
		"qr":      qr,
	})
}

// bookingQR encodes the bill payload as a 200px PNG data URI.
func bookingQR(b model.Booking) (string, error) {
	payload, err := json.Marshal(billPayload{
		ID: b.ID, Sport: b.Sport, Venue: b.Venue, Ground: b.Ground, Date: b.Date, Time: b.Time,
	})
	if err != nil {
		return "", err
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 200)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
