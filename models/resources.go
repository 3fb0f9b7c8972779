package models

import "time"

// Room is a hotel room record.
type Room struct {
	ID            string   `json:"id"`
	Number        string   `json:"number"`
	Type          string   `json:"type"`
	PricePerNight float64  `json:"pricePerNight"`
	Status        string   `json:"status"`
	Amenities     []string `json:"amenities,omitempty"`
}

// LaundryOrder is a guest laundry order record.
type LaundryOrder struct {
	ID         string    `json:"id"`
	GuestID    string    `json:"guestId"`
	Items      []string  `json:"items"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// EventHall is a bookable event hall record.
type EventHall struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	PricePerDay float64 `json:"pricePerDay"`
	Status      string  `json:"status"`
}
