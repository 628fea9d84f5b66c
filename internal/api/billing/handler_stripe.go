package billing

import (
	"errors"
	"net/http"

	"resume-builder-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// POST /payments/stripe/create-intent
func (h *Handler) CreateStripeIntent(c *gin.Context) {
	var body struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Type     string  `json:"type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if body.Amount < minCardAmount {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Amount must be a number and at least $0.50"})
		return
	}
	if !validCurrency(body.Currency) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Currency must be a valid 3-letter currency code"})
		return
	}
	kind, ok := billing.ParseKind(body.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Type must be either one-time or monthly"})
		return
	}

	user, ok := mustUser(c)
	if !ok {
		return
	}

	result, err := h.svc.CreateStripePayment(c.Request.Context(), user, body.Amount, body.Currency, kind)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment request"})
			return
		}
		providerFailure(c, "create intent", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// POST /payments/stripe/confirm
func (h *Handler) ConfirmStripePayment(c *gin.Context) {
	var body struct {
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment intent ID is required"})
		return
	}

	if _, ok := mustUser(c); !ok {
		return
	}

	confirmed, err := h.svc.ConfirmStripePayment(c.Request.Context(), body.PaymentIntentID)
	if err != nil {
		if errors.Is(err, billing.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
			return
		}
		providerFailure(c, "confirm", err)
		return
	}

	if !confirmed {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment confirmation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment confirmed successfully"})
}
