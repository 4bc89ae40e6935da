package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/queue"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	queue_publisher "github.com/laqshya/sports-facility-booking/internal/service"
	"github.com/laqshya/sports-facility-booking/internal/wizard"
)

// WizardHandler exposes the booking wizard over HTTP.  The flow mirrors
// the multi-step form: start, select per step, next, back, confirm.
// All routes require an authenticated user; an unauthenticated attempt
// never reaches the state machine.
type WizardHandler struct {
	Wizard *wizard.Service
	Ledger *repository.LedgerRepo
}

func NewWizardHandler(w *wizard.Service, ledger *repository.LedgerRepo) *WizardHandler {
	if w == nil || ledger == nil {
		panic("nil dependency passed to NewWizardHandler")
	}
	return &WizardHandler{Wizard: w, Ledger: ledger}
}

// wizardFail maps state machine errors onto HTTP responses.
func wizardFail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no wizard in progress"})
	case errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrGuard),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrNotCompleted):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, wizard.ErrUnknownSport),
		errors.Is(err, wizard.ErrUnknownVenue),
		errors.Is(err, wizard.ErrUnknownGround),
		errors.Is(err, wizard.ErrBadDate),
		errors.Is(err, wizard.ErrSlotUnavailable):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// Start handles POST /v1/wizard.  The optional ?sport= parameter
// pre-fills the first step, as when the wizard is entered from a
// sport page.
func (h *WizardHandler) Start(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sess, err := h.Wizard.Start(userID, c.QueryParam("sport"))
	if err != nil {
		return wizardFail(c, err)
	}
	return c.JSON(http.StatusCreated, sess)
}

// Get handles GET /v1/wizard, returning the in-flight session.
func (h *WizardHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sess, ok := h.Wizard.Current(userID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no wizard in progress"})
	}
	return c.JSON(http.StatusOK, sess)
}

// Discard handles DELETE /v1/wizard.  Abandoning the flow needs no
// compensation; nothing is committed before confirm.
func (h *WizardHandler) Discard(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Wizard.Discard(userID)
	return c.NoContent(http.StatusNoContent)
}

type selectSportReq struct {
	SportID string `json:"sport_id"`
}

// SelectSport handles PUT /v1/wizard/sport.
func (h *WizardHandler) SelectSport(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body selectSportReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Wizard.SelectSport(userID, body.SportID)
	if err != nil {
		return wizardFail(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

type selectVenueReq struct {
	VenueID string `json:"venue_id"`
	Ground  string `json:"ground"`
}

// SelectVenue handles PUT /v1/wizard/venue.  Sending a different venue
// id resets any previously chosen ground.
func (h *WizardHandler) SelectVenue(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body selectVenueReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Wizard.SelectVenue(userID, body.VenueID, body.Ground)
	if err != nil {
		return wizardFail(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

type selectSlotReq struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SelectSlot handles PUT /v1/wizard/slot.
func (h *WizardHandler) SelectSlot(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body selectSlotReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Wizard.SelectSlot(userID, body.Date, body.Time)
	if err != nil {
		return wizardFail(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// Next handles POST /v1/wizard/next.
func (h *WizardHandler) Next(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sess, err := h.Wizard.Next(userID)
	if err != nil {
		return wizardFail(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// Back handles POST /v1/wizard/back.
func (h *WizardHandler) Back(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sess, err := h.Wizard.Back(userID)
	if err != nil {
		return wizardFail(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// Confirm handles POST /v1/wizard/confirm: the explicit confirmation
// that completes the flow.  The booking lands in the ledger and a
// booking.confirmed event goes to the broker; a broker failure is
// logged by the publisher and otherwise ignored.
func (h *WizardHandler) Confirm(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	b, err := h.Wizard.Confirm(userID)
	if err != nil {
		return wizardFail(c, err)
	}
	b = h.Ledger.Confirm(b)

	_ = queue_publisher.PublishBookingConfirmed(c.Request().Context(), queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		Sport:       b.Sport,
		Venue:       b.Venue,
		Ground:      b.Ground,
		Date:        b.Date,
		Time:        b.Time,
		Duration:    b.Duration,
		Price:       b.Price,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, b)
}
