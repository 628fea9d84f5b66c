package users

import (
	"math"
	"time"
)

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// Subscription kinds
const (
	SubTypeNone    = "none"
	SubTypeOneTime = "one-time"
	SubTypeMonthly = "monthly"
)

// Subscription statuses
const (
	SubStatusActive    = "active"
	SubStatusExpired   = "expired"
	SubStatusCancelled = "cancelled"
)

// Subscription is the user's entitlement window. "Active" is always
// derived from the expiry at read time, never trusted from the stored
// status alone.
type Subscription struct {
	Type          string     `gorm:"column:subscription_type;type:varchar(16);not null;default:'none'" json:"type"`
	Status        string     `gorm:"column:subscription_status;type:varchar(16);not null;default:'expired'" json:"status"`
	ExpiresAt     *time.Time `gorm:"column:subscription_expires_at" json:"expiresAt,omitempty"`
	Provider      string     `gorm:"column:subscription_provider;type:varchar(16)" json:"paymentMethod,omitempty"`
	TransactionID string     `gorm:"column:subscription_transaction_id" json:"transactionId,omitempty"`
}

// IsActive reports whether the subscription entitles the user at the
// given instant. The expiry must lie strictly in the future: an active
// status whose window ends at or before now counts as inactive. Expiry
// is never swept in the background.
func (s Subscription) IsActive(now time.Time) bool {
	if s.Status != SubStatusActive {
		return false
	}
	if s.Type == SubTypeOneTime || s.Type == SubTypeMonthly {
		if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
			return false
		}
	}
	return true
}

// DaysRemaining returns the whole days left on the window, rounded up,
// never negative.
func (s Subscription) DaysRemaining(now time.Time) int {
	if s.ExpiresAt == nil {
		return 0
	}
	diff := s.ExpiresAt.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `json:"-"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'email'" json:"provider"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Avatar       string  `json:"avatar,omitempty"`
	Role         string  `json:"role"`

	Subscription Subscription `gorm:"embedded" json:"subscription"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) HasActiveSubscription() bool {
	return u.Subscription.IsActive(time.Now())
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
