package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	"github.com/laqshya/sports-facility-booking/internal/search"
)

// ManagerHandler serves the manager dashboard: appending catalog
// entries, toggling courts and the universal search across every
// management collection.
type ManagerHandler struct {
	Catalog  *repository.CatalogRepo
	Identity *repository.IdentityRepo
}

func NewManagerHandler(catalog *repository.CatalogRepo, identity *repository.IdentityRepo) *ManagerHandler {
	if catalog == nil || identity == nil {
		panic("nil repository passed to NewManagerHandler")
	}
	return &ManagerHandler{Catalog: catalog, Identity: identity}
}

func courtFields(ct model.Court) []string {
	return []string{ct.Name, ct.Venue, string(ct.Status)}
}

func couponFields(cp model.Coupon) []string {
	return []string{cp.Code, cp.Description}
}

func venueFields(v model.Venue) []string {
	return []string{v.Name, v.Address, v.Location}
}

func sportFields(s model.Sport) []string {
	return []string{s.Name, s.Description}
}

func paymentMethodFields(m model.PaymentMethod) []string {
	return []string{m.Name}
}

// Search handles GET /v1/manager/search?q=: one query fanned out over
// users, courts, coupons, venues, sports and payment methods.
func (h *ManagerHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	users := search.Filter(h.Identity.All(), q, accountFields)
	courts := search.Filter(h.Catalog.Courts(), q, courtFields)
	coupons := search.Filter(h.Catalog.Coupons(), q, couponFields)
	venues := search.Filter(h.Catalog.Venues(), q, venueFields)
	sports := search.Filter(h.Catalog.Sports(), q, sportFields)
	methods := search.Filter(h.Catalog.PaymentMethods(), q, paymentMethodFields)
	return c.JSON(http.StatusOK, echo.Map{
		"users":           users,
		"courts":          courts,
		"coupons":         coupons,
		"venues":          venues,
		"sports":          sports,
		"payment_methods": methods,
	})
}

// ListCourts handles GET /v1/manager/courts?q=.
func (h *ManagerHandler) ListCourts(c echo.Context) error {
	items := search.Filter(h.Catalog.Courts(), c.QueryParam("q"), courtFields)
	return c.JSON(http.StatusOK, echo.Map{"data": items, "total": len(items)})
}

type addCourtReq struct {
	Name  string `json:"name"`
	Venue string `json:"venue"`
}

// AddCourt handles POST /v1/manager/courts.
func (h *ManagerHandler) AddCourt(c echo.Context) error {
	var body addCourtReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ct, err := h.Catalog.AddCourt(body.Name, body.Venue)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, ct)
}

// ToggleCourt handles POST /v1/manager/courts/:id/toggle, flipping a
// court between active and blocked.
func (h *ManagerHandler) ToggleCourt(c echo.Context) error {
	ct, err := h.Catalog.ToggleCourt(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

type addSportReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       string `json:"price"`
}

// AddSport handles POST /v1/manager/sports.  Price arrives as text from
// the form and must parse as a positive number.
func (h *ManagerHandler) AddSport(c echo.Context) error {
	var body addSportReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s, err := h.Catalog.AddSport(body.Name, body.Description, body.Image, body.Price)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

type addVenueReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Image    string `json:"image"`
}

// AddVenue handles POST /v1/manager/venues.
func (h *ManagerHandler) AddVenue(c echo.Context) error {
	var body addVenueReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	v, err := h.Catalog.AddVenue(body.Name, body.Location, body.Address, body.Image)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

type addGroundReq struct {
	Ground string `json:"ground"`
}

// AddGround handles POST /v1/manager/venues/:id/grounds, appending a
// ground name to an existing venue.
func (h *ManagerHandler) AddGround(c echo.Context) error {
	var body addGroundReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Catalog.AddGroundToVenue(c.Param("id"), body.Ground); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type addCouponReq struct {
	Code        string `json:"code"`
	Discount    string `json:"discount"`
	Description string `json:"description"`
	ExpiryDate  string `json:"expiry_date"`
}

// AddCoupon handles POST /v1/manager/coupons.  Discount arrives as text
// and must parse as a positive number; on failure the collection is
// left untouched.
func (h *ManagerHandler) AddCoupon(c echo.Context) error {
	var body addCouponReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cp, err := h.Catalog.AddCoupon(body.Code, body.Discount, body.Description, body.ExpiryDate)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, cp)
}

type addPaymentMethodReq struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AddPaymentMethod handles POST /v1/manager/payment-methods.
func (h *ManagerHandler) AddPaymentMethod(c echo.Context) error {
	var body addPaymentMethodReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, err := h.Catalog.AddPaymentMethod(body.Name, body.Icon)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}
