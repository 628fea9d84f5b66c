package stripe

import (
	"context"
	"fmt"
	"math"
	"strings"

	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/customer"
	"github.com/stripe/stripe-go/v75/paymentintent"

	"resume-builder-api/internal/domain/billing"
)

// Adapter implements billing.Adapter on top of the Stripe payment intent
// API. Construct once at startup; the SDK keys itself globally.
type Adapter struct{}

func New(secretKey string) *Adapter {
	stripego.Key = secretKey
	return &Adapter{}
}

// CreatePayment ensures a Stripe customer for the email, then opens a
// payment intent. The returned client secret completes the payment on
// the frontend.
func (a *Adapter) CreatePayment(ctx context.Context, req billing.CreateRequest) (billing.CreateResult, error) {
	cus, err := a.ensureCustomer(req.CustomerEmail)
	if err != nil {
		return billing.CreateResult{}, fmt.Errorf("%w: %v", billing.ErrProviderUnavailable, err)
	}

	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripego.String(strings.ToLower(req.Currency)),
		Customer: stripego.String(cus.ID),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.AddMetadata("type", string(req.Kind))

	pi, err := paymentintent.New(params)
	if err != nil {
		return billing.CreateResult{}, fmt.Errorf("%w: %v", billing.ErrProviderUnavailable, err)
	}

	return billing.CreateResult{
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// VerifyPayment retrieves the payment intent and maps its status onto
// the local enum. Retrieval has no provider-side effects, so repeated
// calls are safe.
func (a *Adapter) VerifyPayment(ctx context.Context, providerRef string) (billing.Status, error) {
	pi, err := paymentintent.Get(providerRef, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", billing.ErrProviderUnavailable, err)
	}
	return normalizeIntentStatus(pi.Status), nil
}

func (a *Adapter) ensureCustomer(email string) (*stripego.Customer, error) {
	listParams := &stripego.CustomerListParams{Email: stripego.String(email)}
	listParams.Limit = stripego.Int64(1)

	it := customer.List(listParams)
	if it.Next() {
		return it.Customer(), nil
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return customer.New(&stripego.CustomerParams{
		Email: stripego.String(email),
	})
}
