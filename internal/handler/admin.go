package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/config"
	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	"github.com/laqshya/sports-facility-booking/internal/search"
)

// AdminHandler serves the admin dashboard: managing accounts and the
// full booking ledger, bypassing wizard semantics.
type AdminHandler struct {
	Cfg      config.Config
	Identity *repository.IdentityRepo
	Ledger   *repository.LedgerRepo
	Catalog  *repository.CatalogRepo
}

func NewAdminHandler(cfg config.Config, identity *repository.IdentityRepo, ledger *repository.LedgerRepo, catalog *repository.CatalogRepo) *AdminHandler {
	if identity == nil || ledger == nil || catalog == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Identity: identity, Ledger: ledger, Catalog: catalog}
}

// accountFields are the account fields the universal search matches.
func accountFields(a model.Account) []string {
	return []string{a.Name, a.Email}
}

// ListUsers handles GET /v1/admin/users?q=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	items := search.Filter(h.Identity.All(), c.QueryParam("q"), accountFields)
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}

type addUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddUser handles POST /v1/admin/users.  New accounts always get role
// user and a generated password; the fixed seed list stays the only
// known credential set.
func (h *AdminHandler) AddUser(c echo.Context) error {
	var body addUserReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	acc, err := h.Identity.Add(body.Name, body.Email, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, acc)
}

// RemoveUser handles DELETE /v1/admin/users/:id.  Unknown ids are a
// silent no-op.
func (h *AdminHandler) RemoveUser(c echo.Context) error {
	h.Identity.Remove(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ListBookings handles GET /v1/admin/bookings?q=&sort= over the whole
// ledger.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	items := h.Ledger.All()
	items = search.Filter(items, c.QueryParam("q"), search.BookingFields)
	items = search.SortBookings(items, c.QueryParam("sort"))
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}

type addBookingReq struct {
	UserID string   `json:"user_id"`
	Sport  string   `json:"sport"`
	Venue  string   `json:"venue"`
	Ground string   `json:"ground"`
	Date   string   `json:"date"`
	Time   string   `json:"time"`
	Price  *float64 `json:"price"`
}

// AddBooking handles POST /v1/admin/bookings: a raw insert into the
// ledger.  user_id, sport, ground and date are required.  When no price
// is given it is copied from the catalog sport of the same name.
func (h *AdminHandler) AddBooking(c echo.Context) error {
	var body addBookingReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.UserID) == "" || strings.TrimSpace(body.Sport) == "" ||
		strings.TrimSpace(body.Ground) == "" || strings.TrimSpace(body.Date) == "" {
		return fail(c, repository.ErrValidation)
	}
	price := 0.0
	switch {
	case body.Price != nil:
		if *body.Price < 0 {
			return fail(c, repository.ErrValidation)
		}
		price = *body.Price
	default:
		found := false
		for _, s := range h.Catalog.Sports() {
			if strings.EqualFold(s.Name, body.Sport) {
				price = s.PricePerSlot
				found = true
				break
			}
		}
		if !found {
			return fail(c, repository.ErrValidation)
		}
	}
	slot := body.Time
	if slot == "" {
		slot = "10:00 AM"
	}
	b := h.Ledger.Add(model.Booking{
		Sport:    body.Sport,
		Venue:    body.Venue,
		Ground:   body.Ground,
		Date:     body.Date,
		Time:     slot,
		Duration: 30,
		Price:    price,
		Status:   model.BookingConfirmed,
		UserID:   body.UserID,
	})
	return c.JSON(http.StatusCreated, b)
}

// RemoveBooking handles DELETE /v1/admin/bookings/:id.  Unknown ids are
// a silent no-op.
func (h *AdminHandler) RemoveBooking(c echo.Context) error {
	h.Ledger.Remove(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/admin/stats: the dashboard headline numbers.
func (h *AdminHandler) Stats(c echo.Context) error {
	bookings := h.Ledger.All()
	revenue := 0.0
	for _, b := range bookings {
		revenue += b.Price
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_users":    len(h.Identity.All()),
		"total_bookings": len(bookings),
		"revenue":        revenue,
	})
}
