package models

import "time"

// Payment transaction statuses recorded in the audit trail.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSettled   = "settled"
	PaymentStatusAbandoned = "abandoned"
)

// PaymentTransaction is the audit record kept for every payment attempt.
type PaymentTransaction struct {
	ID          string    `bson:"id" json:"id"`
	Reference   string    `bson:"reference" json:"reference"`
	BookingID   string    `bson:"bookingId" json:"bookingId"`
	GuestID     string    `bson:"guestId" json:"guestId"`
	Amount      float64   `bson:"amount" json:"amount"`
	AmountMinor int64     `bson:"amountMinor" json:"amountMinor"`
	Currency    string    `bson:"currency" json:"currency"`
	Method      string    `bson:"method" json:"method"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PendingPaymentSession is the Redis-cached context for an online payment that
// has been launched but not yet settled or abandoned.
type PendingPaymentSession struct {
	Reference   string    `json:"reference"`
	BookingID   string    `json:"bookingId"`
	GuestID     string    `json:"guestId"`
	GuestName   string    `json:"guestName"`
	Email       string    `json:"email"`
	AmountMinor int64     `json:"amountMinor"`
	Currency    string    `json:"currency"`
	OpenedAt    time.Time `json:"openedAt"`
}
