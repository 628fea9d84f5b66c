package billing

import "context"

// CreateRequest is the generic "create payment" input handed to a
// provider adapter.
type CreateRequest struct {
	Amount   float64
	Currency string
	Kind     Kind

	CustomerEmail string
	CustomerName  string
	CustomerPhone string
}

// CreateResult normalizes what the caller needs to complete the payment
// on the client side. Stripe fills ClientSecret, hosted-checkout
// providers fill PaymentLink.
type CreateResult struct {
	ProviderRef  string
	ClientSecret string
	PaymentLink  string
}

// Adapter translates generic payment requests into provider-specific
// calls and maps provider statuses back onto the local Status enum.
// VerifyPayment must be idempotent: polling a settled payment returns
// the same status every time with no provider-side effects.
type Adapter interface {
	CreatePayment(ctx context.Context, req CreateRequest) (CreateResult, error)
	VerifyPayment(ctx context.Context, providerRef string) (Status, error)
}

// MobileMoneyRequest is the input for an STK push charge (Airtel Money
// via Flutterwave mobile money).
type MobileMoneyRequest struct {
	Amount        float64
	Currency      string
	CustomerEmail string
	CustomerName  string
	PhoneNumber   string
}

type MobileMoneyResult struct {
	Reference string
}

// MobileMoneyCharger initiates a push-to-phone charge. The resulting
// reference is later polled through VerifyPayment.
type MobileMoneyCharger interface {
	ChargeMobileMoney(ctx context.Context, req MobileMoneyRequest) (MobileMoneyResult, error)
}
