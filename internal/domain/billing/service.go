package billing

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"resume-builder-api/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns payment records and the subscription updater. Provider
// adapters are injected once at startup; the service never talks to a
// provider API directly.
type Service struct {
	db          *gorm.DB
	stripe      Adapter
	flutterwave Adapter
	mobileMoney MobileMoneyCharger
}

func NewService(db *gorm.DB, stripe Adapter, flutterwave Adapter, mobileMoney MobileMoneyCharger) *Service {
	return &Service{
		db:          db,
		stripe:      stripe,
		flutterwave: flutterwave,
		mobileMoney: mobileMoney,
	}
}

type IntentResult struct {
	TransactionID   string `json:"transactionId"`
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

type LinkResult struct {
	TransactionID  string `json:"transactionId"`
	FlutterwaveRef string `json:"flutterwaveRef"`
	PaymentLink    string `json:"paymentLink"`
}

type STKResult struct {
	TransactionID string `json:"transactionId"`
	Reference     string `json:"reference"`
}

func newTransactionID() string {
	return uuid.NewString()
}

// CreateStripePayment creates a payment intent and persists exactly one
// pending payment record linked to it.
func (s *Service) CreateStripePayment(ctx context.Context, user users.User, amount float64, currency string, kind Kind) (IntentResult, error) {
	if amount <= 0 {
		return IntentResult{}, ErrInvalidRequest
	}

	res, err := s.stripe.CreatePayment(ctx, CreateRequest{
		Amount:        amount,
		Currency:      currency,
		Kind:          kind,
		CustomerEmail: user.Email,
		CustomerName:  user.FullName(),
	})
	if err != nil {
		return IntentResult{}, err
	}

	payment := Payment{
		UserID:        user.ID,
		Type:          kind,
		Amount:        amount,
		Currency:      strings.ToUpper(currency),
		Status:        StatusPending,
		Provider:      ProviderStripe,
		TransactionID: newTransactionID(),
		ProviderRef:   res.ProviderRef,
		CustomerEmail: user.Email,
		CustomerName:  user.FullName(),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return IntentResult{}, err
	}

	return IntentResult{
		TransactionID:   payment.TransactionID,
		PaymentIntentID: res.ProviderRef,
		ClientSecret:    res.ClientSecret,
	}, nil
}

// ConfirmStripePayment polls the payment intent and, on success, flips
// the record to completed and extends the subscription. Safe to call
// repeatedly: the flip happens at most once per transaction.
func (s *Service) ConfirmStripePayment(ctx context.Context, paymentIntentID string) (bool, error) {
	var payment Payment
	err := s.db.Where("provider = ? AND provider_ref = ?", ProviderStripe, paymentIntentID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrPaymentNotFound
	}
	if err != nil {
		return false, err
	}

	observed, err := s.stripe.VerifyPayment(ctx, paymentIntentID)
	if err != nil {
		return false, err
	}
	return s.settle(&payment, observed)
}

// CreateFlutterwavePayment creates a hosted checkout link and persists a
// pending payment record.
func (s *Service) CreateFlutterwavePayment(ctx context.Context, user users.User, amount float64, currency string, kind Kind, customerName, phoneNumber string) (LinkResult, error) {
	if amount <= 0 {
		return LinkResult{}, ErrInvalidRequest
	}

	res, err := s.flutterwave.CreatePayment(ctx, CreateRequest{
		Amount:        amount,
		Currency:      currency,
		Kind:          kind,
		CustomerEmail: user.Email,
		CustomerName:  customerName,
		CustomerPhone: phoneNumber,
	})
	if err != nil {
		return LinkResult{}, err
	}

	payment := Payment{
		UserID:        user.ID,
		Type:          kind,
		Amount:        amount,
		Currency:      strings.ToUpper(currency),
		Status:        StatusPending,
		Provider:      ProviderFlutterwave,
		TransactionID: newTransactionID(),
		ProviderRef:   res.ProviderRef,
		CustomerEmail: user.Email,
		CustomerName:  customerName,
		CustomerPhone: phoneNumber,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return LinkResult{}, err
	}

	return LinkResult{
		TransactionID:  payment.TransactionID,
		FlutterwaveRef: res.ProviderRef,
		PaymentLink:    res.PaymentLink,
	}, nil
}

// VerifyFlutterwavePayment re-queries the provider for the payment
// behind an internal transaction id.
func (s *Service) VerifyFlutterwavePayment(ctx context.Context, transactionID string) (bool, error) {
	var payment Payment
	err := s.db.Where("transaction_id = ?", transactionID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrPaymentNotFound
	}
	if err != nil {
		return false, err
	}

	observed, err := s.flutterwave.VerifyPayment(ctx, payment.ProviderRef)
	if err != nil {
		return false, err
	}
	return s.settle(&payment, observed)
}

// InitiateAirtelSTK pushes a mobile-money charge to the customer's phone
// through Flutterwave. Airtel passes are always one-time UGX charges.
func (s *Service) InitiateAirtelSTK(ctx context.Context, user users.User, amount float64, phoneNumber, customerName string) (STKResult, error) {
	if amount <= 0 {
		return STKResult{}, ErrInvalidRequest
	}

	res, err := s.mobileMoney.ChargeMobileMoney(ctx, MobileMoneyRequest{
		Amount:        amount,
		Currency:      "UGX",
		CustomerEmail: user.Email,
		CustomerName:  customerName,
		PhoneNumber:   phoneNumber,
	})
	if err != nil {
		return STKResult{}, err
	}

	payment := Payment{
		UserID:        user.ID,
		Type:          KindOneTime,
		Amount:        amount,
		Currency:      "UGX",
		Status:        StatusPending,
		Provider:      ProviderFlutterwave,
		TransactionID: newTransactionID(),
		ProviderRef:   res.Reference,
		CustomerEmail: user.Email,
		CustomerName:  customerName,
		CustomerPhone: phoneNumber,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return STKResult{}, err
	}

	return STKResult{
		TransactionID: payment.TransactionID,
		Reference:     res.Reference,
	}, nil
}

// settle applies the provider-observed status to the local record.
// Completion uses a conditional update so two racing verify calls flip
// the record (and extend the subscription) at most once. The flip and
// the subscription write share one transaction: if the subscription
// cannot be written, the payment stays pending and a later verify
// retries the whole step.
func (s *Service) settle(payment *Payment, observed Status) (bool, error) {
	switch observed {
	case StatusCompleted:
		flipped := false
		err := s.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&Payment{}).
				Where("id = ? AND status = ?", payment.ID, StatusPending).
				Update("status", StatusCompleted)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			flipped = true
			return s.applySubscription(tx, payment)
		})
		if err != nil {
			return false, err
		}
		if !flipped {
			// Already settled by an earlier verify. Report the stored
			// outcome without re-applying any side effect.
			var current Payment
			if err := s.db.First(&current, payment.ID).Error; err != nil {
				return false, err
			}
			return current.Status == StatusCompleted, nil
		}
		return true, nil

	case StatusFailed:
		res := s.db.Model(&Payment{}).
			Where("id = ? AND status = ?", payment.ID, StatusPending).
			Update("status", StatusFailed)
		return false, res.Error

	default:
		return false, nil
	}
}

// applySubscription overwrites the user's subscription window with one
// computed from now, inside the caller's settlement transaction.
// Idempotent per transaction id: a window already granted by this
// transaction is never extended again.
func (s *Service) applySubscription(tx *gorm.DB, payment *Payment) error {
	var user users.User
	err := tx.First(&user, payment.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if user.Subscription.TransactionID == payment.TransactionID {
		return nil
	}

	expiresAt := ExpiryFor(payment.Type, time.Now())
	return tx.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"subscription_type":           string(payment.Type),
			"subscription_status":         users.SubStatusActive,
			"subscription_expires_at":     expiresAt,
			"subscription_provider":       string(payment.Provider),
			"subscription_transaction_id": payment.TransactionID,
		}).Error
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// History returns the user's payment records, newest first.
func (s *Service) History(userID uint, page, limit int) ([]Payment, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var payments []Payment
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, Pagination{}, err
	}

	var total int64
	if err := s.db.Model(&Payment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	return payments, Pagination{
		Current: page,
		Pages:   int(math.Ceil(float64(total) / float64(limit))),
		Total:   total,
	}, nil
}
