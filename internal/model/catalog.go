package model

// Sport is a bookable sport offering.  PricePerSlot is the price of a
// single 30-minute slot, copied onto every booking made for the sport.
type Sport struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	PricePerSlot float64 `json:"price_per_slot"`
}

// Venue is a physical facility.  Grounds lists the bookable
// sub-locations in display order; grounds are appended, never removed.
type Venue struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Address  string   `json:"address"`
	Image    string   `json:"image"`
	Grounds  []string `json:"grounds"`
}

// Coupon is a flat-amount discount code.
type Coupon struct {
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"`
	Description string  `json:"description"`
	ExpiryDate  string  `json:"expiry_date"`
}

// PaymentMethod is a display entry on the payment step.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CourtStatus is the administrative state of a court.
type CourtStatus string

const (
	CourtActive  CourtStatus = "active"
	CourtBlocked CourtStatus = "blocked"
)

// Court is an administratively managed playing surface.  Courts are
// toggled between active and blocked by managers; a blocked court makes
// the matching ground unselectable in the wizard.
type Court struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Venue  string      `json:"venue"`
	Status CourtStatus `json:"status"`
}
