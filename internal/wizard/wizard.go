// Package wizard implements the multi-step booking flow: sport →
// venue/ground → date/slot → payment → completed.  Each forward
// transition is guarded; backward transitions always succeed and keep
// every prior selection.  A wizard session lives in memory only and is
// simply discarded when abandoned.
package wizard

import (
	"errors"
	"time"

	"github.com/laqshya/sports-facility-booking/internal/availability"
	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/repository"
)

// Step names the wizard states in order.
type Step string

const (
	StepSport     Step = "sport"
	StepVenue     Step = "venue"
	StepSlot      Step = "slot"
	StepPayment   Step = "payment"
	StepCompleted Step = "completed"
)

// slotDurationMinutes is the fixed length of every bookable slot.
const slotDurationMinutes = 30

var (
	// ErrWrongStep is returned when a selection is made outside the
	// step it belongs to.
	ErrWrongStep = errors.New("selection not valid at this step")
	// ErrGuard is returned by Next when the current step's guard does
	// not hold.
	ErrGuard = errors.New("step requirements not met")
	// ErrAtFirstStep is returned by Back on the initial step.
	ErrAtFirstStep = errors.New("already at first step")
	// ErrUnknownSport, ErrUnknownVenue and ErrUnknownGround reject
	// selections that do not exist in the catalog.
	ErrUnknownSport  = errors.New("unknown sport")
	ErrUnknownVenue  = errors.New("unknown venue")
	ErrUnknownGround = errors.New("ground does not belong to venue")
	// ErrBadDate rejects dates that do not parse as 2006-01-02.
	ErrBadDate = errors.New("invalid date")
	// ErrSlotUnavailable rejects slots whose availability status does
	// not permit selection.
	ErrSlotUnavailable = errors.New("slot not available")
	// ErrNotCompleted is returned by Confirm outside the payment step.
	ErrNotCompleted = errors.New("wizard not at payment step")
)

// Session is one user's in-flight wizard state.
type Session struct {
	UserID  string `json:"user_id"`
	Step    Step   `json:"step"`
	SportID string `json:"sport_id,omitempty"`
	VenueID string `json:"venue_id,omitempty"`
	Ground  string `json:"ground,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// Service drives wizard sessions against the catalog and the
// availability classifier.  Sessions are held per user, one at a time;
// see store.go.
type Service struct {
	catalog    *repository.CatalogRepo
	classifier *availability.Classifier
	sessions   sessionStore
}

func NewService(catalog *repository.CatalogRepo, classifier *availability.Classifier) *Service {
	return &Service{catalog: catalog, classifier: classifier}
}

// Start opens a fresh session for the user, replacing any in-flight
// one.  sportID optionally pre-fills the first step, as when the wizard
// is entered through a sport-specific link; it must name a catalog
// sport.
func (s *Service) Start(userID, sportID string) (Session, error) {
	sess := Session{UserID: userID, Step: StepSport}
	if sportID != "" {
		if _, err := s.catalog.SportByID(sportID); err != nil {
			return Session{}, ErrUnknownSport
		}
		sess.SportID = sportID
	}
	s.sessions.put(sess)
	return sess, nil
}

// SelectSport records the sport choice.  Valid only on the sport step.
func (s *Service) SelectSport(userID, sportID string) (Session, error) {
	return s.update(userID, StepSport, func(sess *Session) error {
		if _, err := s.catalog.SportByID(sportID); err != nil {
			return ErrUnknownSport
		}
		sess.SportID = sportID
		return nil
	})
}

// SelectVenue records the venue and ground choice.  Choosing a venue
// different from the current one drops any previously chosen ground, so
// ground may be empty to select the venue alone.  Valid only on the
// venue step.
func (s *Service) SelectVenue(userID, venueID, ground string) (Session, error) {
	return s.update(userID, StepVenue, func(sess *Session) error {
		v, err := s.catalog.VenueByID(venueID)
		if err != nil {
			return ErrUnknownVenue
		}
		if venueID != sess.VenueID {
			sess.Ground = ""
		}
		sess.VenueID = venueID
		if ground != "" {
			found := false
			for _, g := range v.Grounds {
				if g == ground {
					found = true
					break
				}
			}
			if !found {
				return ErrUnknownGround
			}
			sess.Ground = ground
		}
		return nil
	})
}

// SelectSlot records the date and time choice.  The slot must be a
// catalog slot whose availability status permits selection for the
// session's venue, ground and date.  Valid only on the slot step.
func (s *Service) SelectSlot(userID, date, slot string) (Session, error) {
	return s.update(userID, StepSlot, func(sess *Session) error {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return ErrBadDate
		}
		if !s.catalog.ValidSlot(slot) {
			return ErrSlotUnavailable
		}
		venue, err := s.catalog.VenueByID(sess.VenueID)
		if err != nil {
			return ErrUnknownVenue
		}
		if !s.classifier.Classify(venue.Name, sess.Ground, date, slot).Selectable() {
			return ErrSlotUnavailable
		}
		sess.Date = date
		sess.Time = slot
		return nil
	})
}

// Next advances the session by one step if the current step's guard
// holds, else ErrGuard.
func (s *Service) Next(userID string) (Session, error) {
	sess, ok := s.sessions.get(userID)
	if !ok {
		return Session{}, repository.ErrNotFound
	}
	switch sess.Step {
	case StepSport:
		if sess.SportID == "" {
			return sess, ErrGuard
		}
		sess.Step = StepVenue
	case StepVenue:
		if sess.VenueID == "" || sess.Ground == "" {
			return sess, ErrGuard
		}
		sess.Step = StepSlot
	case StepSlot:
		if sess.Date == "" || sess.Time == "" {
			return sess, ErrGuard
		}
		// Re-check at transition time; the ledger may have moved on
		// since the slot was picked.
		venue, err := s.catalog.VenueByID(sess.VenueID)
		if err != nil {
			return sess, ErrGuard
		}
		if !s.classifier.Classify(venue.Name, sess.Ground, sess.Date, sess.Time).Selectable() {
			return sess, ErrSlotUnavailable
		}
		sess.Step = StepPayment
	default:
		return sess, ErrGuard
	}
	s.sessions.put(sess)
	return sess, nil
}

// Back moves the session to its immediate predecessor, keeping every
// selection made so far.
func (s *Service) Back(userID string) (Session, error) {
	sess, ok := s.sessions.get(userID)
	if !ok {
		return Session{}, repository.ErrNotFound
	}
	switch sess.Step {
	case StepVenue:
		sess.Step = StepSport
	case StepSlot:
		sess.Step = StepVenue
	case StepPayment:
		sess.Step = StepSlot
	default:
		return sess, ErrAtFirstStep
	}
	s.sessions.put(sess)
	return sess, nil
}

// Confirm completes the wizard: it builds the booking from the
// session's selections, marks the session completed and discards it.
// Names are resolved from the catalog; duration is fixed at 30 minutes
// and the price is copied from the selected sport.  The caller appends
// the returned booking to the ledger.
func (s *Service) Confirm(userID string) (model.Booking, error) {
	sess, ok := s.sessions.get(userID)
	if !ok {
		return model.Booking{}, repository.ErrNotFound
	}
	if sess.Step != StepPayment {
		return model.Booking{}, ErrNotCompleted
	}
	sport, err := s.catalog.SportByID(sess.SportID)
	if err != nil {
		return model.Booking{}, ErrUnknownSport
	}
	venue, err := s.catalog.VenueByID(sess.VenueID)
	if err != nil {
		return model.Booking{}, ErrUnknownVenue
	}
	b := model.Booking{
		ID:       model.NewBookingID(),
		Sport:    sport.Name,
		Venue:    venue.Name,
		Ground:   sess.Ground,
		Date:     sess.Date,
		Time:     sess.Time,
		Duration: slotDurationMinutes,
		Price:    sport.PricePerSlot,
		Status:   model.BookingConfirmed,
		UserID:   sess.UserID,
	}
	s.sessions.discard(userID)
	return b, nil
}

// Current returns the user's in-flight session, if any.
func (s *Service) Current(userID string) (Session, bool) {
	return s.sessions.get(userID)
}

// Discard drops the user's session without completing it.  Nothing is
// committed until Confirm, so no compensation is needed.
func (s *Service) Discard(userID string) {
	s.sessions.discard(userID)
}

// update applies fn to the user's session when it is at the given step.
func (s *Service) update(userID string, step Step, fn func(*Session) error) (Session, error) {
	sess, ok := s.sessions.get(userID)
	if !ok {
		return Session{}, repository.ErrNotFound
	}
	if sess.Step != step {
		return sess, ErrWrongStep
	}
	if err := fn(&sess); err != nil {
		return sess, err
	}
	s.sessions.put(sess)
	return sess, nil
}
