package repository

import "github.com/laqshya/sports-facility-booking/internal/model"

// Seed data mirrors the fixture set the facility launched with.  The
// catalog starts from these values and only ever grows through the
// manager append operations.

// TimeSlots lists every bookable half-hour slot of a day in display
// order, 06:00 AM through 09:30 PM.
var TimeSlots = []string{
	"06:00 AM", "06:30 AM", "07:00 AM", "07:30 AM",
	"08:00 AM", "08:30 AM", "09:00 AM", "09:30 AM",
	"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "01:00 PM", "01:30 PM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
	"06:00 PM", "06:30 PM", "07:00 PM", "07:30 PM",
	"08:00 PM", "08:30 PM", "09:00 PM", "09:30 PM",
}

func defaultSports() []model.Sport {
	return []model.Sport{
		{
			ID:           "badminton",
			Name:         "Badminton",
			Description:  "Where passion meets play. Book your court and experience premium indoor badminton facilities with professional coaching.",
			Image:        "/badminton-smash.png",
			PricePerSlot: 500,
		},
		{
			ID:           "cricket",
			Name:         "Cricket",
			Description:  "Unleash your cricket dreams on our world-class pitches. Professional nets and coaching available for all skill levels.",
			Image:        "/cricket-batsman-shot.png",
			PricePerSlot: 800,
		},
		{
			ID:           "tennis",
			Name:         "Tennis",
			Description:  "Serve your way to excellence. Premium tennis courts with professional-grade surfaces for competitive play.",
			Image:        "/tennis-player-serving.jpg",
			PricePerSlot: 600,
		},
	}
}

func defaultVenues() []model.Venue {
	return []model.Venue{
		{
			ID:       "venue-1",
			Name:     "Visakhapatnam Sports Complex",
			Location: "17.6887° N, 83.1774° E",
			Address:  "MVP Colony, Visakhapatnam, Andhra Pradesh",
			Image:    "/modern-sports-complex.jpg",
			Grounds:  []string{"Court A", "Court B", "Court C", "Court D", "Court E", "Court F"},
		},
		{
			ID:       "venue-2",
			Name:     "Rushikonda Indoor Arena",
			Location: "17.7833° N, 83.3833° E",
			Address:  "Rushikonda, Visakhapatnam, Andhra Pradesh",
			Image:    "/indoor-sports-arena.jpg",
			Grounds:  []string{"Arena 1", "Arena 2", "Arena 3", "Arena 4", "Arena 5", "Arena 6"},
		},
		{
			ID:       "venue-3",
			Name:     "Beach Road Sports Hub",
			Location: "17.7231° N, 83.3260° E",
			Address:  "Beach Road, Visakhapatnam, Andhra Pradesh",
			Image:    "/coastal-sports-facility.jpg",
			Grounds:  []string{"Hub 1", "Hub 2", "Hub 3", "Hub 4", "Hub 5", "Hub 6"},
		},
	}
}

func defaultCoupons() []model.Coupon {
	return []model.Coupon{
		{Code: "FIRST50", Discount: 50, Description: "First booking discount", ExpiryDate: "2025-12-31"},
		{Code: "WEEKEND20", Discount: 20, Description: "Weekend special", ExpiryDate: "2025-12-31"},
		{Code: "SPORTS100", Discount: 100, Description: "Sports enthusiast bonus", ExpiryDate: "2025-12-31"},
	}
}

func defaultPaymentMethods() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: "upi", Name: "UPI", Icon: "💳"},
		{ID: "card", Name: "Credit/Debit Card", Icon: "💳"},
		{ID: "netbanking", Name: "Net Banking", Icon: "🏦"},
		{ID: "wallet", Name: "Digital Wallet", Icon: "📱"},
	}
}

func defaultCourts() []model.Court {
	return []model.Court{
		{ID: "1", Name: "Court 1", Venue: "Indoor Arena", Status: model.CourtActive},
		{ID: "2", Name: "Court 2", Venue: "Indoor Arena", Status: model.CourtActive},
		{ID: "3", Name: "Court 3", Venue: "Outdoor Complex", Status: model.CourtActive},
		{ID: "4", Name: "Court 4", Venue: "Outdoor Complex", Status: model.CourtBlocked},
	}
}

// seedAccount is a fixed credential used to seed the identity store.
type seedAccount struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     model.Role
}

func defaultAccounts() []seedAccount {
	return []seedAccount{
		{ID: "1", Email: "user@test.com", Password: "demo123", Name: "Test User", Role: model.RoleUser},
		{ID: "2", Email: "admin@test.com", Password: "demo123", Name: "Admin User", Role: model.RoleAdmin},
		{ID: "3", Email: "manager@test.com", Password: "demo123", Name: "Manager User", Role: model.RoleManager},
	}
}
