package stripe

import (
	stripego "github.com/stripe/stripe-go/v75"

	"resume-builder-api/internal/domain/billing"
)

// normalizeIntentStatus folds Stripe's payment intent states onto the
// local payment status enum. Anything still in flight stays pending.
func normalizeIntentStatus(s stripego.PaymentIntentStatus) billing.Status {
	switch s {
	case stripego.PaymentIntentStatusSucceeded:
		return billing.StatusCompleted
	case stripego.PaymentIntentStatusCanceled:
		return billing.StatusFailed
	case stripego.PaymentIntentStatusProcessing,
		stripego.PaymentIntentStatusRequiresAction,
		stripego.PaymentIntentStatusRequiresCapture,
		stripego.PaymentIntentStatusRequiresConfirmation,
		stripego.PaymentIntentStatusRequiresPaymentMethod:
		return billing.StatusPending
	default:
		return billing.StatusPending
	}
}
