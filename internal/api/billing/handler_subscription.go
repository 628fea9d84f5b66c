package billing

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /payments/subscription-status
func (h *Handler) GetSubscriptionStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"hasActiveSubscription": user.Subscription.IsActive(now),
			"subscription":          user.Subscription,
			"daysRemaining":         user.Subscription.DaysRemaining(now),
		},
	})
}
