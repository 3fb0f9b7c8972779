package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	transactionsRepo "premierlodge/database/repository/transactions"
	"premierlodge/models"
	"premierlodge/services/events"
	"premierlodge/services/notification"
	"premierlodge/services/payment"
	"premierlodge/utils"

	"go.uber.org/zap"
)

const (
	defaultLaunchDelay = 400 * time.Millisecond
	defaultRepairDelay = 600 * time.Millisecond
)

// DefaultOrchestrator drives one booking submission end to end:
// create the record, best-effort guest sync, then either settle offline or
// launch an online checkout and wait for its outcome.
type DefaultOrchestrator struct {
	API      BookingAPI
	Guests   GuestAPI
	Provider payment.Provider
	Notifier notification.Notifier
	Sessions *SessionRegistry

	// Optional collaborators.
	Audit     transactionsRepo.PaymentTransactionRepository
	Events    *events.Publisher
	Reminders ReminderScheduler

	PublicKey string
	Currency  string

	// Ready blocks until the caller's UI transition has finished. When nil the
	// orchestrator falls back to waiting LaunchDelay, which is a race-prone
	// substitute for a real readiness signal.
	Ready func(ctx context.Context) error

	// RenderRepair is supplied by the presentation layer; the orchestrator
	// only requests that it run, once immediately after launch and once after
	// RepairDelay.
	RenderRepair func()

	LaunchDelay time.Duration
	RepairDelay time.Duration

	logger     *zap.Logger
	submitting atomic.Bool

	repairMu    sync.Mutex
	repairTimer *time.Timer
}

func NewOrchestrator(api BookingAPI, guests GuestAPI, provider payment.Provider, notifier notification.Notifier, sessions *SessionRegistry) *DefaultOrchestrator {
	return &DefaultOrchestrator{
		API:         api,
		Guests:      guests,
		Provider:    provider,
		Notifier:    notifier,
		Sessions:    sessions,
		LaunchDelay: defaultLaunchDelay,
		RepairDelay: defaultRepairDelay,
		logger:      utils.GetLogger(),
	}
}

// Submitting reports whether a submission is in flight or awaiting payment.
func (o *DefaultOrchestrator) Submitting() bool {
	return o.submitting.Load()
}

func (o *DefaultOrchestrator) reset() {
	o.submitting.Store(false)
}

// Submit runs one submission attempt. It returns once the booking is settled
// (offline path) or once the checkout has been launched (online path); the
// payment outcome then arrives through ResolvePayment.
func (o *DefaultOrchestrator) Submit(ctx context.Context, in SubmitInput) error {
	if !o.submitting.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}

	payload := models.BookingPayload{
		GuestID:       in.Guest.ID,
		RoomID:        in.Form.RoomID,
		CheckIn:       in.Form.CheckIn.Format(models.DateOnly),
		CheckOut:      in.Form.CheckOut.Format(models.DateOnly),
		PaidAmount:    in.Form.PaidAmount,
		PaymentMethod: in.Form.PaymentMethod,
		PaymentStatus: in.Form.PaymentStatus,
		TotalAmount:   in.Form.TotalAmount,
		BookingType:   in.BookingType,
	}

	// Step 1: create the booking or reservation record.
	var env models.Envelope[models.Booking]
	var err error
	if in.BookingType == models.BookingTypeCheckedIn {
		env, err = o.API.CreateBooking(ctx, payload)
	} else {
		env, err = o.API.CreateReservation(ctx, payload)
	}
	if err != nil {
		o.Notifier.Error(err.Error())
		o.reset()
		return fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}
	if !env.Success || env.Data == nil {
		msg := env.Message
		if msg == "" {
			msg = "booking creation returned no record"
		}
		o.Notifier.Error(msg)
		o.reset()
		return fmt.Errorf("%w: %s", ErrCreateFailed, msg)
	}
	created := *env.Data

	// Step 2: guest accommodation sync. The booking record is the source of
	// truth; this is best-effort and never rolls back step 1.
	accommodation := models.AccommodationReserved
	if in.BookingType == models.BookingTypeCheckedIn {
		accommodation = models.AccommodationCheckedIn
	}
	go o.syncGuest(in.Guest.ID, accommodation)

	if o.Events != nil {
		o.Events.Publish(events.BookingEvent{
			Name:      events.EventBookingCreated,
			BookingID: created.ID,
			GuestID:   in.Guest.ID,
			Amount:    in.Form.TotalAmount,
		})
	}

	// Step 3: payment branch decision.
	online := !strings.Contains(strings.ToLower(in.Form.PaymentMethod), "cash") && in.Form.PaidAmount > 0
	if !online {
		o.Notifier.Success("Booking recorded successfully")
		if in.OnComplete != nil {
			in.OnComplete()
		}
		o.reset()
		return nil
	}

	// Step 4: online payment.
	return o.launchPayment(ctx, in, created)
}

func (o *DefaultOrchestrator) launchPayment(ctx context.Context, in SubmitInput, created models.Booking) error {
	reference := created.BookingReference
	if reference == "" {
		o.Notifier.Error("Booking was created but no payment reference was issued")
		o.reset()
		return ErrMissingPaymentReference
	}

	// Close the caller's modal before the checkout launches.
	if in.OnComplete != nil {
		in.OnComplete()
	}

	if err := o.awaitReady(ctx); err != nil {
		o.Notifier.Error("Payment launch was interrupted")
		o.reset()
		return err
	}

	if o.Provider == nil {
		o.Notifier.Error("Payment provider is not configured")
		o.reset()
		return ErrProviderUnavailable
	}

	session := payment.Session{
		PublicKey:   o.PublicKey,
		FirstName:   in.Guest.FirstName,
		LastName:    in.Guest.LastName,
		Email:       in.Guest.Email,
		Phone:       in.Guest.Phone,
		AmountMinor: payment.MinorUnits(in.Form.PaidAmount),
		Currency:    o.Currency,
		Reference:   reference,
	}

	pending := models.PendingPaymentSession{
		Reference:   reference,
		BookingID:   created.ID,
		GuestID:     in.Guest.ID,
		GuestName:   strings.TrimSpace(in.Guest.FirstName + " " + in.Guest.LastName),
		Email:       in.Guest.Email,
		AmountMinor: session.AmountMinor,
		Currency:    session.Currency,
		OpenedAt:    time.Now(),
	}

	o.recordTransaction(pending, in.Form)

	checkout, err := o.Provider.NewCheckout(ctx, session)
	if err != nil {
		return o.failLaunch(reference, fmt.Errorf("failed to start checkout: %w", err))
	}
	if init, ok := checkout.(payment.TransactionInitializer); ok {
		if err := init.InitialiseTransaction(ctx); err != nil {
			return o.failLaunch(reference, fmt.Errorf("failed to initialise transaction: %w", err))
		}
	}
	if opener, ok := checkout.(payment.Opener); ok {
		if err := opener.Open(ctx); err != nil {
			return o.failLaunch(reference, fmt.Errorf("failed to open checkout: %w", err))
		}
	}

	o.Sessions.Add(pending,
		func() { o.settlePayment(pending, in.OnComplete) },
		func() { o.abandonPayment(pending) },
	)

	if o.RenderRepair != nil {
		o.RenderRepair()
		o.repairMu.Lock()
		o.repairTimer = time.AfterFunc(o.RepairDelay, o.RenderRepair)
		o.repairMu.Unlock()
	}

	if o.Reminders != nil {
		if err := o.Reminders.ScheduleReminder(pending); err != nil {
			o.logger.Warn("failed to schedule payment reminder",
				zap.String("reference", reference), zap.Error(err))
		}
	}
	return nil
}

// ResolvePayment applies the provider's outcome for a launched checkout.
// Both outcomes leave the already-persisted booking in place.
func (o *DefaultOrchestrator) ResolvePayment(reference string, settled bool) error {
	return o.Sessions.Resolve(reference, settled)
}

func (o *DefaultOrchestrator) syncGuest(guestID, accommodation string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	env, err := o.Guests.UpdateGuestAccommodation(ctx, guestID, accommodation)
	if err != nil {
		o.logger.Warn("guest accommodation sync failed",
			zap.String("guestId", guestID), zap.Error(err))
		return
	}
	if !env.Success {
		o.logger.Warn("guest accommodation sync rejected",
			zap.String("guestId", guestID), zap.String("message", env.Message))
	}
}

func (o *DefaultOrchestrator) awaitReady(ctx context.Context) error {
	if o.Ready != nil {
		return o.Ready(ctx)
	}
	select {
	case <-time.After(o.LaunchDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *DefaultOrchestrator) failLaunch(reference string, err error) error {
	o.Notifier.Error(err.Error())
	o.updateTransaction(reference, models.PaymentStatusAbandoned)
	o.reset()
	return err
}

// stopRepairTimer cancels the delayed repair pass once the payment outcome
// is known; a repair after resolution would redraw a closed checkout.
func (o *DefaultOrchestrator) stopRepairTimer() {
	o.repairMu.Lock()
	if o.repairTimer != nil {
		o.repairTimer.Stop()
		o.repairTimer = nil
	}
	o.repairMu.Unlock()
}

func (o *DefaultOrchestrator) settlePayment(pending models.PendingPaymentSession, onComplete func()) {
	o.stopRepairTimer()
	o.Notifier.Success("Payment completed successfully")
	o.updateTransaction(pending.Reference, models.PaymentStatusSettled)
	if o.Events != nil {
		o.Events.Publish(events.BookingEvent{
			Name:      events.EventPaymentSettled,
			BookingID: pending.BookingID,
			GuestID:   pending.GuestID,
			Reference: pending.Reference,
		})
	}
	if onComplete != nil {
		onComplete()
	}
	o.reset()
}

func (o *DefaultOrchestrator) abandonPayment(pending models.PendingPaymentSession) {
	o.stopRepairTimer()
	o.Notifier.Info("Payment was cancelled; the booking remains recorded")
	o.updateTransaction(pending.Reference, models.PaymentStatusAbandoned)
	if o.Events != nil {
		o.Events.Publish(events.BookingEvent{
			Name:      events.EventPaymentAbandoned,
			BookingID: pending.BookingID,
			GuestID:   pending.GuestID,
			Reference: pending.Reference,
		})
	}
	o.reset()
}

func (o *DefaultOrchestrator) recordTransaction(pending models.PendingPaymentSession, form Form) {
	if o.Audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := o.Audit.Create(ctx, models.PaymentTransaction{
		Reference:   pending.Reference,
		BookingID:   pending.BookingID,
		GuestID:     pending.GuestID,
		Amount:      form.PaidAmount,
		AmountMinor: pending.AmountMinor,
		Currency:    pending.Currency,
		Method:      form.PaymentMethod,
		Status:      models.PaymentStatusPending,
	})
	if err != nil {
		o.logger.Warn("failed to record payment transaction",
			zap.String("reference", pending.Reference), zap.Error(err))
	}
}

func (o *DefaultOrchestrator) updateTransaction(reference, status string) {
	if o.Audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := o.Audit.UpdateStatus(ctx, reference, status); err != nil {
		o.logger.Warn("failed to update payment transaction",
			zap.String("reference", reference), zap.String("status", status), zap.Error(err))
	}
}
