package models

import "time"

const (
	BookingTypeCheckedIn   = "Checked In"
	BookingTypeReservation = "Reservation"
)

// DateOnly is the calendar-date layout used on the wire; time-of-day is discarded.
const DateOnly = "2006-01-02"

// BookingPayload is the request body for creating a booking or reservation.
// It is constructed fresh per submission and never persisted by the gateway.
type BookingPayload struct {
	GuestID       string  `json:"guestId"`
	RoomID        string  `json:"roomId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	PaidAmount    float64 `json:"paidAmount"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`
	BookingType   string  `json:"bookingType"`
}

// Booking is a booking or reservation record as returned by the PMS.
// BookingReference is issued by the server when online payment applies; it
// correlates the created record with its payment session.
type Booking struct {
	ID               string    `json:"id"`
	GuestID          string    `json:"guestId"`
	RoomID           string    `json:"roomId"`
	CheckIn          string    `json:"checkIn"`
	CheckOut         string    `json:"checkOut"`
	PaidAmount       float64   `json:"paidAmount"`
	PaymentMethod    string    `json:"paymentMethod"`
	PaymentStatus    string    `json:"paymentStatus"`
	TotalAmount      float64   `json:"totalAmount"`
	BookingType      string    `json:"bookingType"`
	BookingReference string    `json:"bookingReference,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}
