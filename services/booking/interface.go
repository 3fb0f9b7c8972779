package booking

import (
	"context"
	"time"

	"premierlodge/models"
)

// BookingAPI is the slice of the PMS client the orchestrator creates records through.
type BookingAPI interface {
	CreateBooking(ctx context.Context, payload models.BookingPayload) (models.Envelope[models.Booking], error)
	CreateReservation(ctx context.Context, payload models.BookingPayload) (models.Envelope[models.Booking], error)
}

// GuestAPI is the slice of the PMS client used for the best-effort guest sync.
type GuestAPI interface {
	UpdateGuestAccommodation(ctx context.Context, id, accommodation string) (models.Envelope[models.Guest], error)
}

// ReminderScheduler schedules a delayed pending-payment reminder.
type ReminderScheduler interface {
	ScheduleReminder(session models.PendingPaymentSession) error
}

// Form carries the booking form fields as entered at the front desk.
type Form struct {
	RoomID        string
	CheckIn       time.Time
	CheckOut      time.Time
	PaidAmount    float64
	PaymentMethod string
	PaymentStatus string
	TotalAmount   float64
}

// SubmitInput is one submission attempt. OnComplete mirrors the caller's
// modal-close hook: it runs once on the offline path, and on the online path
// it runs before the checkout launch and again when payment settles.
type SubmitInput struct {
	Guest       models.Guest
	Form        Form
	BookingType string
	OnComplete  func()
}

// Service is the booking orchestration entry point.
type Service interface {
	Submit(ctx context.Context, in SubmitInput) error
	ResolvePayment(reference string, settled bool) error
	Submitting() bool
}
