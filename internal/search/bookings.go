package search

import "github.com/laqshya/sports-facility-booking/internal/model"

// BookingFields are the booking fields the universal search matches
// against.
func BookingFields(b model.Booking) []string {
	return []string{b.Sport, b.Venue, b.Ground}
}

// SortBookings orders bookings by the given key: "price" (descending),
// "sport" (name ascending) or "date" (descending, the default).  Dates
// are ISO formatted, so lexicographic comparison orders them correctly.
func SortBookings(records []model.Booking, key string) []model.Booking {
	switch key {
	case "price":
		return SortBy(records, func(a, b model.Booking) bool { return a.Price > b.Price })
	case "sport":
		return SortBy(records, func(a, b model.Booking) bool { return a.Sport < b.Sport })
	default:
		return SortBy(records, func(a, b model.Booking) bool { return a.Date > b.Date })
	}
}
