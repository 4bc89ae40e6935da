package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.  Transitions are
// one-directional: a cancelled booking never becomes confirmed again.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking records a reserved slot on a ground.  Date is "2006-01-02"
// and Time is one of the catalog slot labels ("10:00 AM" etc.).
// Duration is minutes; every slot booked through the wizard is 30.
//
// ID is assigned once at creation and immutable afterwards.
type Booking struct {
	ID        string        `json:"id"`
	Sport     string        `json:"sport"`
	Venue     string        `json:"venue"`
	Ground    string        `json:"ground"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Duration  int           `json:"duration"`
	Price     float64       `json:"price"`
	Status    BookingStatus `json:"status"`
	UserID    string        `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewBookingID returns a fresh random identifier.  UUIDs replace the
// timestamp-derived ids of the legacy behaviour, which collide under
// rapid successive calls.
func NewBookingID() string {
	return uuid.NewString()
}
