package billing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /payments/history?page&limit
func (h *Handler) GetPaymentHistory(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	payments, pagination, err := h.svc.History(user.ID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch payment history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"payments":   payments,
			"pagination": pagination,
		},
	})
}
