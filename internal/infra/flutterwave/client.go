package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"resume-builder-api/internal/domain/billing"
)

const (
	defaultBaseURL = "https://api.flutterwave.com/v3"
	requestTimeout = 30 * time.Second
)

// Client calls the Flutterwave v3 REST API: hosted checkout links,
// transaction verification by reference, and mobile money charges.
type Client struct {
	secretKey   string
	baseURL     string
	redirectURL string
	httpClient  *http.Client
}

func NewClient(secretKey, redirectURL string) *Client {
	return &Client{
		secretKey:   secretKey,
		baseURL:     defaultBaseURL,
		redirectURL: redirectURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

type customerPayload struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phonenumber,omitempty"`
}

type customizationsPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type paymentRequest struct {
	TxRef          string                `json:"tx_ref"`
	Amount         float64               `json:"amount"`
	Currency       string                `json:"currency"`
	PaymentOptions string                `json:"payment_options"`
	RedirectURL    string                `json:"redirect_url"`
	Customer       customerPayload       `json:"customer"`
	Customizations customizationsPayload `json:"customizations"`
}

type paymentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string  `json:"status"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"data"`
}

type mobileMoneyRequest struct {
	TxRef       string  `json:"tx_ref"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Fullname    string  `json:"fullname"`
}

type mobileMoneyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newTxRef() string {
	return "RB-" + uuid.NewString()
}

// CreatePayment opens a hosted checkout session. The returned
// ProviderRef is the tx_ref used to verify the transaction later.
func (c *Client) CreatePayment(ctx context.Context, req billing.CreateRequest) (billing.CreateResult, error) {
	ref := newTxRef()

	description := "Monthly Subscription"
	if req.Kind == billing.KindOneTime {
		description = "24-Hour Access Pass"
	}

	payload := paymentRequest{
		TxRef:          ref,
		Amount:         req.Amount,
		Currency:       req.Currency,
		PaymentOptions: "mobilemoney,card,ussd",
		RedirectURL:    c.redirectURL,
		Customer: customerPayload{
			Email:       req.CustomerEmail,
			Name:        req.CustomerName,
			PhoneNumber: req.CustomerPhone,
		},
		Customizations: customizationsPayload{
			Title:       "Resume Builder",
			Description: description,
		},
	}

	var resp paymentResponse
	if err := c.doJSON(ctx, http.MethodPost, "/payments", payload, &resp); err != nil {
		return billing.CreateResult{}, err
	}
	if resp.Status != "success" || resp.Data.Link == "" {
		return billing.CreateResult{}, fmt.Errorf("%w: %s", billing.ErrProviderUnavailable, resp.Message)
	}

	return billing.CreateResult{
		ProviderRef: ref,
		PaymentLink: resp.Data.Link,
	}, nil
}

// VerifyPayment polls the transaction behind a tx_ref and maps the
// provider status onto the local enum. Read-only on the provider side.
func (c *Client) VerifyPayment(ctx context.Context, providerRef string) (billing.Status, error) {
	path := "/transactions/verify_by_reference?tx_ref=" + url.QueryEscape(providerRef)

	var resp verifyResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	if resp.Status != "success" {
		return "", fmt.Errorf("%w: %s", billing.ErrProviderUnavailable, resp.Message)
	}

	return normalizeTransactionStatus(resp.Data.Status), nil
}

// ChargeMobileMoney initiates an Airtel Money STK push through the
// Ugandan mobile money rail. The customer approves on their phone; the
// charge is then polled through VerifyPayment.
func (c *Client) ChargeMobileMoney(ctx context.Context, req billing.MobileMoneyRequest) (billing.MobileMoneyResult, error) {
	ref := newTxRef()

	payload := mobileMoneyRequest{
		TxRef:       ref,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.CustomerEmail,
		PhoneNumber: req.PhoneNumber,
		Fullname:    req.CustomerName,
	}

	var resp mobileMoneyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/charges?type=mobile_money_uganda", payload, &resp); err != nil {
		return billing.MobileMoneyResult{}, err
	}
	if resp.Status != "success" {
		return billing.MobileMoneyResult{}, fmt.Errorf("%w: %s", billing.ErrProviderUnavailable, resp.Message)
	}

	return billing.MobileMoneyResult{Reference: ref}, nil
}

// normalizeTransactionStatus maps Flutterwave transaction states onto
// the local payment status enum.
func normalizeTransactionStatus(s string) billing.Status {
	switch s {
	case "successful":
		return billing.StatusCompleted
	case "failed":
		return billing.StatusFailed
	default:
		return billing.StatusPending
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", billing.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", billing.ErrProviderUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return billing.ErrPaymentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", billing.ErrProviderUnavailable, resp.StatusCode, truncate(respBody, 200))
	}

	return json.Unmarshal(respBody, out)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
