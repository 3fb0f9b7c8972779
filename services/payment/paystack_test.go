package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() Session {
	return Session{
		PublicKey:   "pk_test",
		FirstName:   "Ada",
		LastName:    "Okafor",
		Email:       "ada@example.com",
		Phone:       "+2348000000000",
		AmountMinor: 50000,
		Currency:    "NGN",
		Reference:   "TXN123",
	}
}

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole", amount: 500, want: 50000},
		{name: "two_decimals", amount: 19.99, want: 1999},
		{name: "single_decimal", amount: 120.5, want: 12050},
		{name: "smallest", amount: 0.01, want: 1},
		{name: "zero", amount: 0, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MinorUnits(tt.amount))
		})
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()

	s := validSession()
	assert.NoError(t, s.Validate())

	noRef := validSession()
	noRef.Reference = ""
	assert.ErrorIs(t, noRef.Validate(), ErrMissingReference)

	noAmount := validSession()
	noAmount.AmountMinor = 0
	assert.ErrorIs(t, noAmount.Validate(), ErrInvalidAmount)
}

func TestPaystackCheckoutHandshake(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req struct {
			Email     string `json:"email"`
			Amount    int64  `json:"amount"`
			Currency  string `json:"currency"`
			Reference string `json:"reference"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)
		assert.Equal(t, int64(50000), req.Amount)
		assert.Equal(t, "NGN", req.Currency)
		assert.Equal(t, "TXN123", req.Reference)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"TXN123"}}`))
	}))
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	p := NewPaystackProvider(srv.URL, "sk_test", notifier)
	assert.Equal(t, "paystack", p.Name())

	checkout, err := p.NewCheckout(context.Background(), validSession())
	require.NoError(t, err)
	assert.Equal(t, "TXN123", checkout.Reference())

	init, ok := checkout.(TransactionInitializer)
	require.True(t, ok)
	require.NoError(t, init.InitialiseTransaction(context.Background()))

	opener, ok := checkout.(Opener)
	require.True(t, ok)
	require.NoError(t, opener.Open(context.Background()))
	require.Len(t, notifier.infos, 1)
	assert.Contains(t, notifier.infos[0], "https://checkout.paystack.com/abc")
}

func TestPaystackOpenBeforeInitialiseFails(t *testing.T) {
	t.Parallel()

	p := NewPaystackProvider("http://127.0.0.1:1", "sk_test", nil)
	checkout, err := p.NewCheckout(context.Background(), validSession())
	require.NoError(t, err)

	opener, ok := checkout.(Opener)
	require.True(t, ok)
	assert.Error(t, opener.Open(context.Background()))
}

func TestPaystackRejectedTransaction(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	t.Cleanup(srv.Close)

	p := NewPaystackProvider(srv.URL, "sk_bad", nil)
	checkout, err := p.NewCheckout(context.Background(), validSession())
	require.NoError(t, err)

	init := checkout.(TransactionInitializer)
	err = init.InitialiseTransaction(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestNewCheckoutRejectsInvalidSession(t *testing.T) {
	t.Parallel()

	p := NewPaystackProvider("http://127.0.0.1:1", "sk_test", nil)
	s := validSession()
	s.Reference = ""
	_, err := p.NewCheckout(context.Background(), s)
	assert.ErrorIs(t, err, ErrMissingReference)
}

type recordingNotifier struct {
	infos []string
}

func (n *recordingNotifier) Success(message string) {}
func (n *recordingNotifier) Error(message string)   {}
func (n *recordingNotifier) Info(message string) {
	n.infos = append(n.infos, message)
}
