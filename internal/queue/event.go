// Package queue defines message payloads exchanged over the message
// broker.
package queue

// BookingConfirmedEvent is published when a slot booking is confirmed.
// It carries enough for downstream consumers to log or notify without
// reading the ledger.
type BookingConfirmedEvent struct {
	BookingID   string  `json:"booking_id"`
	UserID      string  `json:"user_id"`
	Sport       string  `json:"sport"`
	Venue       string  `json:"venue"`
	Ground      string  `json:"ground"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	ConfirmedAt string  `json:"confirmed_at"`
}
