package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resume-builder-api/internal/domain/users"
)

type stubAdapter struct {
	createResult CreateResult
	createErr    error
	status       Status
	verifyErr    error
}

func (a *stubAdapter) CreatePayment(ctx context.Context, req CreateRequest) (CreateResult, error) {
	return a.createResult, a.createErr
}

func (a *stubAdapter) VerifyPayment(ctx context.Context, providerRef string) (Status, error) {
	return a.status, a.verifyErr
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&users.User{}, &Payment{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestConfirmStripePaymentAppliesSubscriptionOnce(t *testing.T) {
	db := openTestDB(t)
	stripe := &stubAdapter{
		createResult: CreateResult{ProviderRef: "pi_test_1", ClientSecret: "secret"},
		status:       StatusCompleted,
	}
	svc := NewService(db, stripe, nil, nil)

	user := users.User{Email: "ada@example.com", FirstName: "Ada", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}

	created, err := svc.CreateStripePayment(context.Background(), user, 5, "usd", KindMonthly)
	if err != nil {
		t.Fatal(err)
	}

	confirmed, err := svc.ConfirmStripePayment(context.Background(), "pi_test_1")
	if err != nil {
		t.Fatal(err)
	}
	if !confirmed {
		t.Fatal("first confirm should succeed")
	}

	var got users.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !got.Subscription.IsActive(time.Now()) {
		t.Fatal("subscription should be active after confirmation")
	}
	if got.Subscription.Type != users.SubTypeMonthly {
		t.Fatalf("subscription type = %q, want monthly", got.Subscription.Type)
	}
	if got.Subscription.TransactionID != created.TransactionID {
		t.Fatalf("subscription transaction id = %q, want %q", got.Subscription.TransactionID, created.TransactionID)
	}
	firstExpiry := *got.Subscription.ExpiresAt

	// A second confirm of the same intent must report success without
	// extending the window again.
	confirmed, err = svc.ConfirmStripePayment(context.Background(), "pi_test_1")
	if err != nil {
		t.Fatal(err)
	}
	if !confirmed {
		t.Fatal("repeated confirm should still report success")
	}

	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !got.Subscription.ExpiresAt.Equal(firstExpiry) {
		t.Fatalf("repeated confirm moved expiry from %v to %v", firstExpiry, *got.Subscription.ExpiresAt)
	}
}

func TestConfirmStripePaymentKeepsPaymentPendingWhenUserMissing(t *testing.T) {
	db := openTestDB(t)
	stripe := &stubAdapter{status: StatusCompleted}
	svc := NewService(db, stripe, nil, nil)

	payment := Payment{
		UserID:        999,
		Type:          KindOneTime,
		Amount:        2,
		Currency:      "USD",
		Status:        StatusPending,
		Provider:      ProviderStripe,
		TransactionID: "tx-orphan",
		ProviderRef:   "pi_orphan",
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.ConfirmStripePayment(context.Background(), "pi_orphan")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}

	// The flip must have rolled back with the failed subscription write,
	// so a later confirm can still settle the payment.
	var got Payment
	if err := db.First(&got, payment.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusPending {
		t.Fatalf("payment status = %q after failed settlement, want pending", got.Status)
	}

	user := users.User{ID: 999, Email: "late@example.com", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}

	confirmed, err := svc.ConfirmStripePayment(context.Background(), "pi_orphan")
	if err != nil {
		t.Fatal(err)
	}
	if !confirmed {
		t.Fatal("confirm after recovery should succeed")
	}

	if err := db.First(&user, 999).Error; err != nil {
		t.Fatal(err)
	}
	if !user.Subscription.IsActive(time.Now()) {
		t.Fatal("subscription should be active after recovered confirmation")
	}
}

func TestConfirmStripePaymentFailedProviderStatus(t *testing.T) {
	db := openTestDB(t)
	stripe := &stubAdapter{status: StatusFailed}
	svc := NewService(db, stripe, nil, nil)

	user := users.User{Email: "ada@example.com", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}

	payment := Payment{
		UserID:        user.ID,
		Type:          KindMonthly,
		Amount:        5,
		Currency:      "USD",
		Status:        StatusPending,
		Provider:      ProviderStripe,
		TransactionID: "tx-failed",
		ProviderRef:   "pi_failed",
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatal(err)
	}

	confirmed, err := svc.ConfirmStripePayment(context.Background(), "pi_failed")
	if err != nil {
		t.Fatal(err)
	}
	if confirmed {
		t.Fatal("failed provider status must not confirm")
	}

	var got Payment
	if err := db.First(&got, payment.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusFailed {
		t.Fatalf("payment status = %q, want failed", got.Status)
	}

	var gotUser users.User
	if err := db.First(&gotUser, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotUser.Subscription.IsActive(time.Now()) {
		t.Fatal("failed payment must not grant a subscription")
	}
}

func TestConfirmStripePaymentUnknownIntent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, &stubAdapter{status: StatusCompleted}, nil, nil)

	_, err := svc.ConfirmStripePayment(context.Background(), "pi_unknown")
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("err = %v, want ErrPaymentNotFound", err)
	}
}
