package billing

import "time"

// Provider identifies the external payment service a payment was created
// with. It is set once at creation and never inferred from transaction-id
// formatting.
type Provider string

const (
	ProviderStripe      Provider = "stripe"
	ProviderFlutterwave Provider = "flutterwave"
)

// Kind is the purchased entitlement: a 24-hour pass or a 30-day plan.
type Kind string

const (
	KindOneTime Kind = "one-time"
	KindMonthly Kind = "monthly"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// CanTransitionTo enforces the payment lifecycle:
// pending -> completed, pending -> failed, completed -> refunded.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusCompleted || next == StatusFailed
	case StatusCompleted:
		return next == StatusRefunded
	default:
		return false
	}
}

// Payment is one payment attempt. Records are never deleted; a record is
// the durable link between the create call and the later confirm/verify
// call.
type Payment struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	UserID uint `gorm:"index:idx_payments_user_created" json:"userId"`

	Type     Kind     `gorm:"type:varchar(16);not null" json:"type"`
	Amount   float64  `gorm:"not null" json:"amount"`
	Currency string   `gorm:"type:varchar(3);not null" json:"currency"`
	Status   Status   `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	Provider Provider `gorm:"type:varchar(16);not null" json:"paymentMethod"`

	// TransactionID is generated internally at creation and immutable.
	TransactionID string `gorm:"not null;uniqueIndex:idx_payments_transaction_id" json:"transactionId"`
	// ProviderRef is the provider-side id (Stripe payment intent id or
	// Flutterwave tx_ref), set at creation and never changed.
	ProviderRef string `gorm:"index:idx_payments_provider_ref" json:"providerRef"`

	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_payments_user_created" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExpiryFor computes the subscription window granted by a completed
// payment: 24 hours for a one-time pass, 30 days for monthly, both from
// the moment of confirmation.
func ExpiryFor(kind Kind, now time.Time) time.Time {
	if kind == KindOneTime {
		return now.Add(24 * time.Hour)
	}
	return now.Add(30 * 24 * time.Hour)
}

// ParseKind validates a client-supplied plan kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindOneTime:
		return KindOneTime, true
	case KindMonthly:
		return KindMonthly, true
	}
	return "", false
}
