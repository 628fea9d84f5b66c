package flutterwave

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder-api/internal/domain/billing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("sk_test_secret", "https://app.example.com/payment/callback")
	c.baseURL = srv.URL
	return c
}

func TestCreatePayment(t *testing.T) {
	var captured paymentRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "success",
			"message": "Hosted Link",
			"data":    map[string]string{"link": "https://checkout.flutterwave.com/pay/abc123"},
		})
	})

	res, err := c.CreatePayment(context.Background(), billing.CreateRequest{
		Amount:        5,
		Currency:      "USD",
		Kind:          billing.KindMonthly,
		CustomerEmail: "ada@example.com",
		CustomerName:  "Ada Lovelace",
		CustomerPhone: "+256700123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.flutterwave.com/pay/abc123", res.PaymentLink)
	assert.True(t, strings.HasPrefix(res.ProviderRef, "RB-"))
	assert.Equal(t, res.ProviderRef, captured.TxRef)
	assert.Equal(t, 5.0, captured.Amount)
	assert.Equal(t, "USD", captured.Currency)
	assert.Equal(t, "mobilemoney,card,ussd", captured.PaymentOptions)
	assert.Equal(t, "ada@example.com", captured.Customer.Email)
	assert.Equal(t, "Monthly Subscription", captured.Customizations.Description)
}

func TestCreatePaymentOneTimeDescription(t *testing.T) {
	var captured paymentRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]string{"link": "https://checkout.flutterwave.com/pay/x"},
		})
	})

	_, err := c.CreatePayment(context.Background(), billing.CreateRequest{
		Amount: 2, Currency: "USD", Kind: billing.KindOneTime,
		CustomerEmail: "ada@example.com", CustomerName: "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "24-Hour Access Pass", captured.Customizations.Description)
}

func TestCreatePaymentErrorEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "invalid currency",
		})
	})

	_, err := c.CreatePayment(context.Background(), billing.CreateRequest{
		Amount: 5, Currency: "ZZZ", Kind: billing.KindMonthly,
		CustomerEmail: "ada@example.com", CustomerName: "Ada Lovelace",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, billing.ErrProviderUnavailable))
	assert.Contains(t, err.Error(), "invalid currency")
}

func TestVerifyPayment(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     billing.Status
	}{
		{"successful maps to completed", "successful", billing.StatusCompleted},
		{"failed maps to failed", "failed", billing.StatusFailed},
		{"pending stays pending", "pending", billing.StatusPending},
		{"unknown stays pending", "processing", billing.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transactions/verify_by_reference", r.URL.Path)
				assert.Equal(t, "RB-ref-1", r.URL.Query().Get("tx_ref"))
				json.NewEncoder(w).Encode(map[string]interface{}{
					"status": "success",
					"data":   map[string]interface{}{"status": tt.provider, "tx_ref": "RB-ref-1"},
				})
			})

			got, err := c.VerifyPayment(context.Background(), "RB-ref-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyPaymentNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.VerifyPayment(context.Background(), "RB-missing")
	assert.True(t, errors.Is(err, billing.ErrPaymentNotFound))
}

func TestVerifyPaymentServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := c.VerifyPayment(context.Background(), "RB-ref-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, billing.ErrProviderUnavailable))
	assert.Contains(t, err.Error(), "502")
}

func TestChargeMobileMoney(t *testing.T) {
	var captured mobileMoneyRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "mobile_money_uganda", r.URL.Query().Get("type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "success",
			"message": "Charge initiated",
		})
	})

	res, err := c.ChargeMobileMoney(context.Background(), billing.MobileMoneyRequest{
		Amount:        5000,
		Currency:      "UGX",
		CustomerEmail: "ada@example.com",
		CustomerName:  "Ada Lovelace",
		PhoneNumber:   "+256700123456",
	})
	require.NoError(t, err)

	assert.Equal(t, captured.TxRef, res.Reference)
	assert.Equal(t, "UGX", captured.Currency)
	assert.Equal(t, "+256700123456", captured.PhoneNumber)
	assert.Equal(t, "Ada Lovelace", captured.Fullname)
}

func TestChargeMobileMoneyDeclined(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "charge declined",
		})
	})

	_, err := c.ChargeMobileMoney(context.Background(), billing.MobileMoneyRequest{
		Amount: 5000, Currency: "UGX",
		CustomerEmail: "ada@example.com", CustomerName: "Ada Lovelace",
		PhoneNumber: "+256700123456",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, billing.ErrProviderUnavailable))
}
