package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqshya/sports-facility-booking/internal/availability"
	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/repository"
)

func newService() (*Service, *repository.LedgerRepo, *repository.CatalogRepo) {
	ledger := repository.NewLedgerRepo()
	catalog := repository.NewCatalogRepo()
	return NewService(catalog, availability.NewClassifier(ledger, catalog)), ledger, catalog
}

func TestFullTraversal(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	sess, err := svc.Start(user, "")
	require.NoError(t, err)
	assert.Equal(t, StepSport, sess.Step)

	_, err = svc.SelectSport(user, "badminton")
	require.NoError(t, err)
	sess, err = svc.Next(user)
	require.NoError(t, err)
	assert.Equal(t, StepVenue, sess.Step)

	_, err = svc.SelectVenue(user, "venue-1", "Court A")
	require.NoError(t, err)
	sess, err = svc.Next(user)
	require.NoError(t, err)
	assert.Equal(t, StepSlot, sess.Step)

	_, err = svc.SelectSlot(user, "2025-06-01", "10:00 AM")
	require.NoError(t, err)
	sess, err = svc.Next(user)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, sess.Step)

	b, err := svc.Confirm(user)
	require.NoError(t, err)
	assert.Equal(t, "Badminton", b.Sport)
	assert.Equal(t, "Visakhapatnam Sports Complex", b.Venue)
	assert.Equal(t, "Court A", b.Ground)
	assert.Equal(t, "2025-06-01", b.Date)
	assert.Equal(t, "10:00 AM", b.Time)
	assert.Equal(t, 30, b.Duration)
	assert.Equal(t, 500.0, b.Price)
	assert.Equal(t, model.BookingConfirmed, b.Status)
	assert.Equal(t, user, b.UserID)
	assert.NotEmpty(t, b.ID)

	// The session is discarded on confirmation.
	_, ok := svc.Current(user)
	assert.False(t, ok)
}

func TestForwardGuards(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "")
	require.NoError(t, err)

	// No sport chosen yet.
	_, err = svc.Next(user)
	assert.ErrorIs(t, err, ErrGuard)

	_, err = svc.SelectSport(user, "cricket")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	// Venue without ground does not advance.
	_, err = svc.SelectVenue(user, "venue-2", "")
	require.NoError(t, err)
	_, err = svc.Next(user)
	assert.ErrorIs(t, err, ErrGuard)

	_, err = svc.SelectVenue(user, "venue-2", "Arena 3")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	// Date and time are both required.
	_, err = svc.Next(user)
	assert.ErrorIs(t, err, ErrGuard)

	// Confirm before payment step is rejected.
	_, err = svc.Confirm(user)
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestSelectionValidation(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "")
	require.NoError(t, err)

	_, err = svc.SelectSport(user, "hockey")
	assert.ErrorIs(t, err, ErrUnknownSport)

	// Selections outside their step are rejected.
	_, err = svc.SelectVenue(user, "venue-1", "Court A")
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = svc.SelectSport(user, "tennis")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	_, err = svc.SelectVenue(user, "venue-9", "")
	assert.ErrorIs(t, err, ErrUnknownVenue)
	_, err = svc.SelectVenue(user, "venue-1", "Arena 1")
	assert.ErrorIs(t, err, ErrUnknownGround)

	_, err = svc.SelectVenue(user, "venue-1", "Court B")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	_, err = svc.SelectSlot(user, "June 1st", "10:00 AM")
	assert.ErrorIs(t, err, ErrBadDate)
	_, err = svc.SelectSlot(user, "2025-06-01", "10:15 AM")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestVenueChangeResetsGround(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "badminton")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	_, err = svc.SelectVenue(user, "venue-1", "Court A")
	require.NoError(t, err)

	// Re-selecting a different venue drops the ground.
	sess, err := svc.SelectVenue(user, "venue-2", "")
	require.NoError(t, err)
	assert.Empty(t, sess.Ground)
	_, err = svc.Next(user)
	assert.ErrorIs(t, err, ErrGuard)

	// Same venue again keeps the ground.
	_, err = svc.SelectVenue(user, "venue-2", "Arena 1")
	require.NoError(t, err)
	sess, err = svc.SelectVenue(user, "venue-2", "")
	require.NoError(t, err)
	assert.Equal(t, "Arena 1", sess.Ground)
}

func TestBackPreservesSelections(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "tennis")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)
	_, err = svc.SelectVenue(user, "venue-3", "Hub 2")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	sess, err := svc.Back(user)
	require.NoError(t, err)
	assert.Equal(t, StepVenue, sess.Step)
	assert.Equal(t, "venue-3", sess.VenueID)
	assert.Equal(t, "Hub 2", sess.Ground)
	assert.Equal(t, "tennis", sess.SportID)

	sess, err = svc.Back(user)
	require.NoError(t, err)
	assert.Equal(t, StepSport, sess.Step)

	_, err = svc.Back(user)
	assert.ErrorIs(t, err, ErrAtFirstStep)
}

func TestBookedSlotCannotBeSelected(t *testing.T) {
	svc, ledger, _ := newService()

	// An existing confirmed booking occupies the slot.
	ledger.Confirm(model.Booking{
		Venue: "Visakhapatnam Sports Complex", Ground: "Court A",
		Date: "2025-06-01", Time: "10:00 AM", UserID: "9",
	})

	const user = "1"
	_, err := svc.Start(user, "badminton")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)
	_, err = svc.SelectVenue(user, "venue-1", "Court A")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	_, err = svc.SelectSlot(user, "2025-06-01", "10:00 AM")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// A free slot on the same day is fine.
	_, err = svc.SelectSlot(user, "2025-06-01", "11:00 AM")
	require.NoError(t, err)
}

func TestSlotGuardRecheckedOnNext(t *testing.T) {
	svc, ledger, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "badminton")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)
	_, err = svc.SelectVenue(user, "venue-1", "Court C")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)
	_, err = svc.SelectSlot(user, "2025-06-01", "08:00 AM")
	require.NoError(t, err)

	// The slot is taken between selection and the forward transition.
	ledger.Confirm(model.Booking{
		Venue: "Visakhapatnam Sports Complex", Ground: "Court C",
		Date: "2025-06-01", Time: "08:00 AM", UserID: "9",
	})

	_, err = svc.Next(user)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestStartReplacesSession(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "badminton")
	require.NoError(t, err)
	_, err = svc.Next(user)
	require.NoError(t, err)

	sess, err := svc.Start(user, "")
	require.NoError(t, err)
	assert.Equal(t, StepSport, sess.Step)
	assert.Empty(t, sess.SportID)

	_, err = svc.Start(user, "floorball")
	assert.ErrorIs(t, err, ErrUnknownSport)
}

func TestDiscard(t *testing.T) {
	svc, _, _ := newService()
	const user = "1"

	_, err := svc.Start(user, "")
	require.NoError(t, err)
	svc.Discard(user)

	_, ok := svc.Current(user)
	assert.False(t, ok)
	_, err = svc.Next(user)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
