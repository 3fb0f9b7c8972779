package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"premierlodge/services/notification"
	"premierlodge/utils"

	"go.uber.org/zap"
)

// PaystackProvider drives Paystack's hosted checkout over its REST API.
type PaystackProvider struct {
	BaseURL   string
	SecretKey string
	Notifier  notification.Notifier

	httpc  *http.Client
	logger *zap.Logger
}

func NewPaystackProvider(baseURL, secretKey string, notifier notification.Notifier) *PaystackProvider {
	return &PaystackProvider{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		Notifier:  notifier,
		httpc:     &http.Client{Timeout: 15 * time.Second},
		logger:    utils.GetLogger(),
	}
}

func (p *PaystackProvider) Name() string { return "paystack" }

func (p *PaystackProvider) NewCheckout(ctx context.Context, s Session) (Checkout, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &paystackCheckout{provider: p, session: s}, nil
}

type paystackCheckout struct {
	provider *PaystackProvider
	session  Session

	accessCode       string
	authorizationURL string
}

func (c *paystackCheckout) Reference() string { return c.session.Reference }

type paystackInitRequest struct {
	Email     string            `json:"email"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Reference string            `json:"reference"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// InitialiseTransaction registers the transaction with Paystack and records
// the access code for the checkout page.
func (c *paystackCheckout) InitialiseTransaction(ctx context.Context) error {
	payload := paystackInitRequest{
		Email:     c.session.Email,
		Amount:    c.session.AmountMinor,
		Currency:  c.session.Currency,
		Reference: c.session.Reference,
		Metadata: map[string]string{
			"customer_name": c.session.FirstName + " " + c.session.LastName,
			"phone":         c.session.Phone,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize paystack request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.provider.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build paystack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.provider.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.provider.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("paystack initialize failed: %w", err)
	}
	defer resp.Body.Close()

	var initResp paystackInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&initResp); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}
	if !initResp.Status {
		return fmt.Errorf("paystack rejected transaction: %s", initResp.Message)
	}

	c.accessCode = initResp.Data.AccessCode
	c.authorizationURL = initResp.Data.AuthorizationURL
	c.provider.logger.Info("paystack transaction initialised",
		zap.String("reference", c.session.Reference),
		zap.Int64("amountMinor", c.session.AmountMinor))
	return nil
}

// Open hands the hosted checkout URL to the front desk through the notifier.
func (c *paystackCheckout) Open(ctx context.Context) error {
	if c.authorizationURL == "" {
		return fmt.Errorf("checkout %s has not been initialised", c.session.Reference)
	}
	if c.provider.Notifier != nil {
		c.provider.Notifier.Info(fmt.Sprintf("Complete payment for %s at %s", c.session.Reference, c.authorizationURL))
	}
	return nil
}
