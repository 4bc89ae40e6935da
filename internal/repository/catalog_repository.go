package repository

import (
	"strconv"
	"strings"
	"sync"

	"github.com/laqshya/sports-facility-booking/internal/model"
)

// CatalogRepo serves the static reference data: sports, venues, time
// slots, coupons, payment methods and courts.  Reads return snapshots;
// the only writes are the manager append operations and the court
// status toggle.  Nothing is ever edited or deleted.
type CatalogRepo struct {
	mu             sync.RWMutex
	sports         []model.Sport
	venues         []model.Venue
	coupons        []model.Coupon
	paymentMethods []model.PaymentMethod
	courts         []model.Court
	nextCourtID    int
}

// NewCatalogRepo builds the catalog from the seed fixtures.
func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{
		sports:         defaultSports(),
		venues:         defaultVenues(),
		coupons:        defaultCoupons(),
		paymentMethods: defaultPaymentMethods(),
		courts:         defaultCourts(),
		nextCourtID:    len(defaultCourts()) + 1,
	}
}

// parsePositive parses s as a number and validates it is > 0.
func parsePositive(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n <= 0 {
		return 0, ErrValidation
	}
	return n, nil
}

// ----- reads -----

func (r *CatalogRepo) Sports() []model.Sport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Sport, len(r.sports))
	copy(out, r.sports)
	return out
}

// SportByID looks up a sport offering by id.
func (r *CatalogRepo) SportByID(id string) (model.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sports {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Sport{}, ErrNotFound
}

func (r *CatalogRepo) Venues() []model.Venue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Venue, len(r.venues))
	for i, v := range r.venues {
		grounds := make([]string, len(v.Grounds))
		copy(grounds, v.Grounds)
		v.Grounds = grounds
		out[i] = v
	}
	return out
}

// VenueByID looks up a venue by id.
func (r *CatalogRepo) VenueByID(id string) (model.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.venues {
		if v.ID == id {
			grounds := make([]string, len(v.Grounds))
			copy(grounds, v.Grounds)
			v.Grounds = grounds
			return v, nil
		}
	}
	return model.Venue{}, ErrNotFound
}

// Slots returns the fixed half-hour slot labels in display order.
func (r *CatalogRepo) Slots() []string {
	out := make([]string, len(TimeSlots))
	copy(out, TimeSlots)
	return out
}

// ValidSlot reports whether label is one of the catalog time slots.
func (r *CatalogRepo) ValidSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

func (r *CatalogRepo) Coupons() []model.Coupon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Coupon, len(r.coupons))
	copy(out, r.coupons)
	return out
}

func (r *CatalogRepo) PaymentMethods() []model.PaymentMethod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.PaymentMethod, len(r.paymentMethods))
	copy(out, r.paymentMethods)
	return out
}

func (r *CatalogRepo) Courts() []model.Court {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Court, len(r.courts))
	copy(out, r.courts)
	return out
}

// GroundBlocked reports whether a blocked court entry matches the named
// ground.  Court records are independent of the venue ground lists, so
// the match is by court name only.
func (r *CatalogRepo) GroundBlocked(ground string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courts {
		if c.Name == ground && c.Status == model.CourtBlocked {
			return true
		}
	}
	return false
}

// ----- manager appends -----

// AddSport appends a sport offering.  Name and description must be
// non-empty and price must parse as a positive number.
func (r *CatalogRepo) AddSport(name, description, image, price string) (model.Sport, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return model.Sport{}, ErrValidation
	}
	p, err := parsePositive(price)
	if err != nil {
		return model.Sport{}, err
	}
	s := model.Sport{
		ID:           strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Name:         name,
		Description:  description,
		Image:        image,
		PricePerSlot: p,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sports = append(r.sports, s)
	return s, nil
}

// AddVenue appends a venue with an initially empty ground list.
func (r *CatalogRepo) AddVenue(name, location, address, image string) (model.Venue, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return model.Venue{}, ErrValidation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v := model.Venue{
		ID:       "venue-" + strconv.Itoa(len(r.venues)+1),
		Name:     name,
		Location: location,
		Address:  address,
		Image:    image,
		Grounds:  []string{},
	}
	r.venues = append(r.venues, v)
	return v, nil
}

// AddGroundToVenue appends a ground name to an existing venue.
func (r *CatalogRepo) AddGroundToVenue(venueID, ground string) error {
	ground = strings.TrimSpace(ground)
	if ground == "" {
		return ErrValidation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.venues {
		if r.venues[i].ID == venueID {
			r.venues[i].Grounds = append(r.venues[i].Grounds, ground)
			return nil
		}
	}
	return ErrNotFound
}

// AddCoupon appends a coupon.  Codes are upper-cased; discount must
// parse as a positive number.
func (r *CatalogRepo) AddCoupon(code, discount, description, expiryDate string) (model.Coupon, error) {
	code = strings.TrimSpace(code)
	description = strings.TrimSpace(description)
	expiryDate = strings.TrimSpace(expiryDate)
	if code == "" || description == "" || expiryDate == "" {
		return model.Coupon{}, ErrValidation
	}
	d, err := parsePositive(discount)
	if err != nil {
		return model.Coupon{}, err
	}
	c := model.Coupon{
		Code:        strings.ToUpper(code),
		Discount:    d,
		Description: description,
		ExpiryDate:  expiryDate,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coupons = append(r.coupons, c)
	return c, nil
}

// AddPaymentMethod appends a payment method entry.
func (r *CatalogRepo) AddPaymentMethod(name, icon string) (model.PaymentMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.PaymentMethod{}, ErrValidation
	}
	m := model.PaymentMethod{
		ID:   strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Name: name,
		Icon: icon,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paymentMethods = append(r.paymentMethods, m)
	return m, nil
}

// AddCourt appends a court in active state.
func (r *CatalogRepo) AddCourt(name, venue string) (model.Court, error) {
	name = strings.TrimSpace(name)
	venue = strings.TrimSpace(venue)
	if name == "" || venue == "" {
		return model.Court{}, ErrValidation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := model.Court{
		ID:     strconv.Itoa(r.nextCourtID),
		Name:   name,
		Venue:  venue,
		Status: model.CourtActive,
	}
	r.nextCourtID++
	r.courts = append(r.courts, c)
	return c, nil
}

// ToggleCourt flips a court between active and blocked.
func (r *CatalogRepo) ToggleCourt(id string) (model.Court, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.courts {
		if r.courts[i].ID == id {
			if r.courts[i].Status == model.CourtActive {
				r.courts[i].Status = model.CourtBlocked
			} else {
				r.courts[i].Status = model.CourtActive
			}
			return r.courts[i], nil
		}
	}
	return model.Court{}, ErrNotFound
}
