package routes

import (
	aiapi "resume-builder-api/internal/api/ai"
	authapi "resume-builder-api/internal/api/auth"
	billingapi "resume-builder-api/internal/api/billing"
	resumesapi "resume-builder-api/internal/api/resumes"
	"resume-builder-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, payments *billingapi.Handler, aiHandler *aiapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/payments/pricing", payments.GetPricingPlans)
	r.GET("/templates/resume", resumesapi.ListTemplates)

	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/auth/profile", authapi.GetProfile)
	auth.PUT("/auth/profile", authapi.UpdateProfile)
	auth.PUT("/auth/change-password", authapi.ChangePassword)
	auth.GET("/auth/verify", authapi.VerifyToken)
	auth.POST("/auth/link-google", authapi.LinkGoogle)
	auth.DELETE("/auth/unlink-google", authapi.UnlinkGoogle)

	auth.POST("/payments/stripe/create-intent", payments.CreateStripeIntent)
	auth.POST("/payments/stripe/confirm", payments.ConfirmStripePayment)
	auth.POST("/payments/flutterwave/create", payments.CreateFlutterwavePayment)
	auth.POST("/payments/flutterwave/verify", payments.VerifyFlutterwavePayment)
	auth.POST("/payments/airtel-money/stk", payments.InitiateAirtelSTK)
	auth.GET("/payments/history", payments.GetPaymentHistory)
	auth.GET("/payments/subscription-status", payments.GetSubscriptionStatus)

	auth.GET("/resumes", resumesapi.ListResumes)
	auth.POST("/resumes", resumesapi.CreateResume)
	auth.GET("/resumes/:id", resumesapi.GetResume)
	auth.PUT("/resumes/:id", resumesapi.UpdateResume)
	auth.DELETE("/resumes/:id", resumesapi.DeleteResume)
	auth.POST("/resumes/:id/duplicate", resumesapi.DuplicateResume)

	// AI features are part of the paid plans
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.POST("/ai/bullet-points", aiHandler.GenerateBulletPoints)
	subscribed.POST("/ai/improve-text", aiHandler.ImproveText)
	subscribed.POST("/ai/generate-summary", aiHandler.GenerateSummary)
	subscribed.POST("/ai/suggest-skills", aiHandler.SuggestSkills)
	subscribed.POST("/ai/optimize-ats", aiHandler.OptimizeForATS)
	subscribed.GET("/ai/usage", aiHandler.GetUsageStats)
}
