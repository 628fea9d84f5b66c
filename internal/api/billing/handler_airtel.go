package billing

import (
	"errors"
	"net/http"

	"resume-builder-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// POST /payments/airtel-money/stk
func (h *Handler) InitiateAirtelSTK(c *gin.Context) {
	var body struct {
		Amount       float64 `json:"amount"`
		PhoneNumber  string  `json:"phoneNumber"`
		CustomerName string  `json:"customerName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if body.Amount < minMobileMoneyAmount {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Amount must be a number and at least 1"})
		return
	}
	if !validPhone(body.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number is required and must be valid"})
		return
	}
	if !validCustomerName(body.CustomerName) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer name must be between 2 and 100 characters"})
		return
	}

	user, ok := mustUser(c)
	if !ok {
		return
	}

	result, err := h.svc.InitiateAirtelSTK(c.Request.Context(), user, body.Amount, body.PhoneNumber, body.CustomerName)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment request"})
			return
		}
		providerFailure(c, "airtel stk", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "STK push initiated. Please check your phone and enter your PIN.",
		"data":    result,
	})
}
