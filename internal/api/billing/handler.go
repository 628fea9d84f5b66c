package billing

import (
	"log"
	"net/http"

	"resume-builder-api/database"
	"resume-builder-api/internal/domain/billing"
	"resume-builder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Handler owns the payment endpoints. The billing service (and through
// it the provider adapters) is injected once at startup.
type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func mustUser(c *gin.Context) (users.User, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return users.User{}, false
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
		return users.User{}, false
	}
	return user, true
}

// providerFailure logs the provider error and returns a generic message
// so provider internals never leak to clients.
func providerFailure(c *gin.Context, action string, err error) {
	log.Printf("payment %s error: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Failed to process payment",
	})
}
