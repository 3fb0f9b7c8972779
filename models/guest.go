package models

import "time"

// Guest accommodation statuses tracked by the PMS.
const (
	AccommodationCheckedIn = "Checked In"
	AccommodationReserved  = "Reserved"
)

// Guest is a hotel guest record as returned by the PMS.
type Guest struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Accommodation string    `json:"accommodation,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// GuestUpdate is the partial record sent to the guest-update endpoint.
type GuestUpdate struct {
	Accommodation string `json:"accommodation"`
}
