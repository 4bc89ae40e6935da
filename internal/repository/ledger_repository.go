package repository

import (
	"sync"
	"time"

	"github.com/laqshya/sports-facility-booking/internal/model"
)

// LedgerRepo is the in-memory reservation ledger: an ordered collection
// of bookings shared by the wizard and the administrative flows.  Reads
// return snapshots in insertion order; callers filter and sort their
// own views.
//
// No uniqueness constraint is enforced on booking ids.  Ids are UUIDs
// generated at creation, so collisions are not a practical concern.
type LedgerRepo struct {
	mu            sync.RWMutex
	bookings      []model.Booking
	lastConfirmed *model.Booking
}

func NewLedgerRepo() *LedgerRepo { return &LedgerRepo{} }

// Confirm appends b with status confirmed and makes it the last
// confirmed booking.  An empty id is filled in.  The stored booking is
// returned.
func (r *LedgerRepo) Confirm(b model.Booking) model.Booking {
	if b.ID == "" {
		b.ID = model.NewBookingID()
	}
	b.Status = model.BookingConfirmed
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	last := b
	r.lastConfirmed = &last
	return b
}

// Cancel marks the booking with the given id cancelled.  Unknown ids
// are a silent no-op.  The transition is one-directional: there is no
// way back to confirmed.
func (r *LedgerRepo) Cancel(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = model.BookingCancelled
			return
		}
	}
}

// Add appends b as-is, bypassing confirm semantics.  Used by the admin
// flow to record bookings directly.  An empty id is filled in.
func (r *LedgerRepo) Add(b model.Booking) model.Booking {
	if b.ID == "" {
		b.ID = model.NewBookingID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return b
}

// Remove deletes the booking with the given id outright.  Unknown ids
// are a silent no-op.
func (r *LedgerRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return
		}
	}
}

// All returns a snapshot of every booking in insertion order.
func (r *LedgerRepo) All() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// AllByUser returns the bookings belonging to userID in insertion order.
func (r *LedgerRepo) AllByUser(userID string) []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// GetByID returns the booking with the given id.
func (r *LedgerRepo) GetByID(id string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrNotFound
}

// LastConfirmed returns the most recently confirmed booking, if any.
func (r *LedgerRepo) LastConfirmed() (model.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.lastConfirmed == nil {
		return model.Booking{}, false
	}
	return *r.lastConfirmed, true
}

// CountConfirmed returns how many confirmed bookings exist for the
// venue/ground/date triple, and whether one of them occupies the given
// time slot.  The availability classifier derives slot status from
// these two numbers.
func (r *LedgerRepo) CountConfirmed(venue, ground, date, slot string) (total int, slotTaken bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.Status != model.BookingConfirmed {
			continue
		}
		if b.Venue != venue || b.Ground != ground || b.Date != date {
			continue
		}
		total++
		if b.Time == slot {
			slotTaken = true
		}
	}
	return total, slotTaken
}
