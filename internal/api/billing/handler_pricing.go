package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type pricingPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

var pricingPlans = []pricingPlan{
	{
		ID:          "one-time",
		Name:        "24-Hour Access Pass",
		Description: "Perfect for immediate needs",
		Price:       2,
		Currency:    "USD",
		Duration:    "24 hours",
		Features: []string{
			"Unlimited resume building",
			"PDF download",
			"Email sharing",
			"Basic templates",
			"AI content suggestions",
		},
	},
	{
		ID:          "monthly",
		Name:        "Monthly Plan",
		Description: "Best value for job seekers",
		Price:       5,
		Currency:    "USD",
		Duration:    "1 month",
		Features: []string{
			"Everything in 24-hour pass",
			"Unlimited downloads",
			"Priority AI suggestions",
			"Advanced templates",
			"Email support",
			"ATS optimization",
		},
		Popular: true,
	},
}

// GET /payments/pricing
func (h *Handler) GetPricingPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"plans": pricingPlans},
	})
}
