package billing

import (
	"errors"
	"net/http"

	"resume-builder-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// POST /payments/flutterwave/create
func (h *Handler) CreateFlutterwavePayment(c *gin.Context) {
	var body struct {
		Amount       float64 `json:"amount"`
		Currency     string  `json:"currency"`
		Type         string  `json:"type"`
		CustomerName string  `json:"customerName"`
		PhoneNumber  string  `json:"phoneNumber"`
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
	if !validCustomerName(body.CustomerName) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer name must be between 2 and 100 characters"})
		return
	}
	if body.PhoneNumber != "" && !validPhone(body.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number must be a valid format"})
		return
	}

	user, ok := mustUser(c)
	if !ok {
		return
	}

	result, err := h.svc.CreateFlutterwavePayment(c.Request.Context(), user, body.Amount, body.Currency, kind, body.CustomerName, body.PhoneNumber)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment request"})
			return
		}
		providerFailure(c, "create", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// POST /payments/flutterwave/verify
func (h *Handler) VerifyFlutterwavePayment(c *gin.Context) {
	var body struct {
		TransactionID string `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Transaction ID is required"})
		return
	}

	if _, ok := mustUser(c); !ok {
		return
	}

	verified, err := h.svc.VerifyFlutterwavePayment(c.Request.Context(), body.TransactionID)
	if err != nil {
		if errors.Is(err, billing.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
			return
		}
		providerFailure(c, "verify", err)
		return
	}

	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified successfully"})
}
