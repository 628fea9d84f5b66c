package main

import (
	"time"

	"resume-builder-api/config"
	"resume-builder-api/database"
	aisvc "resume-builder-api/internal/ai"
	aiapi "resume-builder-api/internal/api/ai"
	billingapi "resume-builder-api/internal/api/billing"
	routes "resume-builder-api/internal/app/http"
	"resume-builder-api/internal/domain/billing"
	"resume-builder-api/internal/infra/flutterwave"
	"resume-builder-api/internal/infra/openai"
	stripeinfra "resume-builder-api/internal/infra/stripe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	// One instance of each external client per process, injected into
	// the handlers that need them.
	stripeAdapter := stripeinfra.New(config.STRIPE_SECRET_KEY)
	flutterwaveClient := flutterwave.NewClient(config.FLUTTERWAVE_SECRET_KEY, config.FRONTEND_URL+"/payment/callback")
	openaiClient := openai.NewClient(config.OPENAI_API_KEY)

	paymentService := billing.NewService(database.DB, stripeAdapter, flutterwaveClient, flutterwaveClient)
	aiService := aisvc.NewService(openaiClient)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, billingapi.NewHandler(paymentService), aiapi.NewHandler(aiService))

	r.Run(":" + config.PORT)
}
