package users

import (
	"testing"
	"time"
)

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-1 * time.Second)
	future := now.Add(1 * time.Hour)

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{
			name: "active monthly with future expiry",
			sub:  Subscription{Type: SubTypeMonthly, Status: SubStatusActive, ExpiresAt: &future},
			want: true,
		},
		{
			name: "active with expiry one second in the past",
			sub:  Subscription{Type: SubTypeMonthly, Status: SubStatusActive, ExpiresAt: &past},
			want: false,
		},
		{
			name: "active with expiry exactly now",
			sub:  Subscription{Type: SubTypeMonthly, Status: SubStatusActive, ExpiresAt: &now},
			want: false,
		},
		{
			name: "expired status with future expiry",
			sub:  Subscription{Type: SubTypeMonthly, Status: SubStatusExpired, ExpiresAt: &future},
			want: false,
		},
		{
			name: "cancelled status",
			sub:  Subscription{Type: SubTypeOneTime, Status: SubStatusCancelled, ExpiresAt: &future},
			want: false,
		},
		{
			name: "active one-time with future expiry",
			sub:  Subscription{Type: SubTypeOneTime, Status: SubStatusActive, ExpiresAt: &future},
			want: true,
		},
		{
			name: "active one-time without expiry",
			sub:  Subscription{Type: SubTypeOneTime, Status: SubStatusActive},
			want: true,
		},
		{
			name: "fresh user default",
			sub:  Subscription{Type: SubTypeNone, Status: SubStatusExpired},
			want: false,
		},
	}

	for _, tt := range tests {
		if got := tt.sub.IsActive(now); got != tt.want {
			t.Fatalf("%s: IsActive = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSubscriptionDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	noExpiry := Subscription{}
	if got := noExpiry.DaysRemaining(now); got != 0 {
		t.Fatalf("DaysRemaining without expiry = %d, want 0", got)
	}

	past := now.Add(-48 * time.Hour)
	expired := Subscription{ExpiresAt: &past}
	if got := expired.DaysRemaining(now); got != 0 {
		t.Fatalf("DaysRemaining after expiry = %d, want 0", got)
	}

	in12h := now.Add(12 * time.Hour)
	partial := Subscription{ExpiresAt: &in12h}
	if got := partial.DaysRemaining(now); got != 1 {
		t.Fatalf("DaysRemaining 12h out = %d, want 1 (rounded up)", got)
	}

	in30d := now.Add(30 * 24 * time.Hour)
	full := Subscription{ExpiresAt: &in30d}
	if got := full.DaysRemaining(now); got != 30 {
		t.Fatalf("DaysRemaining 30d out = %d, want 30", got)
	}
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	if got := u.FullName(); got != "Ada Lovelace" {
		t.Fatalf("FullName = %q", got)
	}

	u = User{FirstName: "Ada"}
	if got := u.FullName(); got != "Ada" {
		t.Fatalf("FullName without lastname = %q", got)
	}

	u = User{LastName: "Lovelace"}
	if got := u.FullName(); got != "Lovelace" {
		t.Fatalf("FullName without firstname = %q", got)
	}
}
