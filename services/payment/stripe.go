package payment

import (
	"context"
	"fmt"
	"strings"

	"premierlodge/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeProvider creates PaymentIntents through stripe-go. The API key is set
// process-wide on the stripe package at startup.
type StripeProvider struct {
	logger *zap.Logger
}

func NewStripeProvider() *StripeProvider {
	return &StripeProvider{logger: utils.GetLogger()}
}

func (p *StripeProvider) Name() string { return "stripe" }

func (p *StripeProvider) NewCheckout(ctx context.Context, s Session) (Checkout, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &stripeCheckout{provider: p, session: s}, nil
}

// stripeCheckout implements only the initialise half of the handshake; there
// is no hosted page to open, the client confirms the intent directly.
type stripeCheckout struct {
	provider *StripeProvider
	session  Session

	intentID     string
	clientSecret string
}

func (c *stripeCheckout) Reference() string { return c.session.Reference }

func (c *stripeCheckout) InitialiseTransaction(ctx context.Context) error {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(c.session.AmountMinor),
		Currency:     stripe.String(strings.ToLower(c.session.Currency)),
		ReceiptEmail: stripe.String(c.session.Email),
	}
	params.Context = ctx
	params.AddMetadata("reference", c.session.Reference)
	params.AddMetadata("customer_name", c.session.FirstName+" "+c.session.LastName)

	intent, err := paymentintent.New(params)
	if err != nil {
		return fmt.Errorf("failed to create payment intent: %w", err)
	}

	c.intentID = intent.ID
	c.clientSecret = intent.ClientSecret
	c.provider.logger.Info("stripe payment intent created",
		zap.String("reference", c.session.Reference),
		zap.String("intent", intent.ID))
	return nil
}
