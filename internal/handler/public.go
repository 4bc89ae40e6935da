package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/availability"
	"github.com/laqshya/sports-facility-booking/internal/repository"
)

// PublicHandler exposes the catalog and slot availability to guests.
// Everything here is read-only.
type PublicHandler struct {
	Catalog    *repository.CatalogRepo
	Classifier *availability.Classifier
}

func NewPublicHandler(catalog *repository.CatalogRepo, classifier *availability.Classifier) *PublicHandler {
	if catalog == nil || classifier == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Catalog: catalog, Classifier: classifier}
}

// GetSports handles GET /v1/sports.
func (h *PublicHandler) GetSports(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Catalog.Sports()})
}

// GetVenues handles GET /v1/venues.
func (h *PublicHandler) GetVenues(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Catalog.Venues()})
}

// GetVenueGrounds handles GET /v1/venues/:id/grounds.
func (h *PublicHandler) GetVenueGrounds(c echo.Context) error {
	v, err := h.Catalog.VenueByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": v.Grounds})
}

// GetSlots handles GET /v1/slots, the fixed half-hour slot labels.
func (h *PublicHandler) GetSlots(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Catalog.Slots()})
}

// GetPaymentMethods handles GET /v1/payment-methods.
func (h *PublicHandler) GetPaymentMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Catalog.PaymentMethods()})
}

// GetCoupons handles GET /v1/coupons.
func (h *PublicHandler) GetCoupons(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Catalog.Coupons()})
}

// GetAvailability handles GET /v1/availability?venue=&ground=&date=.
// It returns every catalog slot with its computed status for the given
// ground and date.  The venue parameter takes the venue id.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
	venueID := strings.TrimSpace(c.QueryParam("venue"))
	ground := strings.TrimSpace(c.QueryParam("ground"))
	date := strings.TrimSpace(c.QueryParam("date"))
	if venueID == "" || ground == "" || date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue, ground and date are required"})
	}
	v, err := h.Catalog.VenueByID(venueID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":  v.Name,
		"ground": ground,
		"date":   date,
		"slots":  h.Classifier.Day(v.Name, ground, date),
	})
}
