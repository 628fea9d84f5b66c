package middleware

import (
	"net/http"

	"resume-builder-api/database"
	"resume-builder-api/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates premium routes. Activity is derived at
// request time from the stored expiry, so a lapsed window blocks access
// even if no event ever flipped the status field.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		var user users.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not found",
			})
			return
		}

		if !user.HasActiveSubscription() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Active subscription required",
				"code":    "SUBSCRIPTION_REQUIRED",
			})
			return
		}

		c.Next()
	}
}
