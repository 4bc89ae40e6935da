// Package availability derives the status of every displayed time slot.
// Status is a deterministic function of the reservation ledger and the
// court register; the legacy behaviour of re-rolling a random status on
// every render is gone.
package availability

import (
	"github.com/laqshya/sports-facility-booking/internal/repository"
)

// Status classifies a slot for display and selection gating.  Only
// available and hot slots may be selected in the wizard.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusHot         Status = "hot"
	StatusBlocked     Status = "blocked"
	StatusUnavailable Status = "unavailable"
)

// Selectable reports whether a slot with this status can be chosen.
func (s Status) Selectable() bool {
	return s == StatusAvailable || s == StatusHot
}

// hotThreshold is the number of confirmed bookings on a ground/date
// after which remaining slots are flagged hot.
const hotThreshold = 2

// Classifier computes slot statuses from the ledger and the catalog.
type Classifier struct {
	Ledger  *repository.LedgerRepo
	Catalog *repository.CatalogRepo
}

func NewClassifier(ledger *repository.LedgerRepo, catalog *repository.CatalogRepo) *Classifier {
	return &Classifier{Ledger: ledger, Catalog: catalog}
}

// Classify returns the status of one slot on a ground.  Precedence:
// an existing confirmed booking makes the slot unavailable; a blocked
// court makes it blocked; heavy demand on the ground that day makes it
// hot; otherwise it is available.
func (c *Classifier) Classify(venue, ground, date, slot string) Status {
	total, taken := c.Ledger.CountConfirmed(venue, ground, date, slot)
	if taken {
		return StatusUnavailable
	}
	if c.Catalog.GroundBlocked(ground) {
		return StatusBlocked
	}
	if total >= hotThreshold {
		return StatusHot
	}
	return StatusAvailable
}

// SlotStatus pairs a slot label with its computed status.
type SlotStatus struct {
	Time   string `json:"time"`
	Status Status `json:"status"`
}

// Day classifies every catalog slot for the ground and date.
func (c *Classifier) Day(venue, ground, date string) []SlotStatus {
	slots := c.Catalog.Slots()
	out := make([]SlotStatus, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotStatus{Time: s, Status: c.Classify(venue, ground, date, s)})
	}
	return out
}
