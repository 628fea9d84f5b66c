package ai

import (
	"log"
	"net/http"

	"resume-builder-api/internal/ai"

	"github.com/gin-gonic/gin"
)

// Handler exposes the AI content endpoints. The AI service is injected
// once at startup.
type Handler struct {
	svc *ai.Service
}

func NewHandler(svc *ai.Service) *Handler {
	return &Handler{svc: svc}
}

func aiFailure(c *gin.Context, action string, err error) {
	log.Printf("ai %s error: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Failed to generate content. Please try again.",
	})
}

// POST /ai/bullet-points
func (h *Handler) GenerateBulletPoints(c *gin.Context) {
	var body struct {
		Position    string `json:"position"`
		Company     string `json:"company"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if body.Position == "" || len(body.Position) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Position is required and must be less than 100 characters"})
		return
	}
	if body.Company == "" || len(body.Company) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Company is required and must be less than 100 characters"})
		return
	}
	if len(body.Description) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Description must be less than 500 characters"})
		return
	}

	bulletPoints, err := h.svc.GenerateBulletPoints(c.Request.Context(), body.Position, body.Company, body.Description)
	if err != nil {
		aiFailure(c, "bullet points", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bulletPoints": bulletPoints}})
}

// POST /ai/improve-text
func (h *Handler) ImproveText(c *gin.Context) {
	var body struct {
		Text    string `json:"text"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if body.Text == "" || len(body.Text) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Text is required and must be less than 1000 characters"})
		return
	}
	if !ai.ValidImproveContext(body.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Context must be one of: summary, experience, education, skill"})
		return
	}

	improvedText, err := h.svc.ImproveText(c.Request.Context(), body.Text, body.Context)
	if err != nil {
		aiFailure(c, "improve text", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"originalText": body.Text,
			"improvedText": improvedText,
		},
	})
}

// POST /ai/generate-summary
func (h *Handler) GenerateSummary(c *gin.Context) {
	var body struct {
		FirstName  string             `json:"firstName"`
		LastName   string             `json:"lastName"`
		Position   string             `json:"position"`
		Experience []ai.ExperienceRef `json:"experience"`
		Skills     []string           `json:"skills"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if body.FirstName == "" || len(body.FirstName) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "First name is required and must be less than 50 characters"})
		return
	}
	if body.LastName == "" || len(body.LastName) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Last name is required and must be less than 50 characters"})
		return
	}
	if body.Position == "" || len(body.Position) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Position is required and must be less than 100 characters"})
		return
	}

	summary, err := h.svc.GenerateSummary(c.Request.Context(), body.FirstName, body.LastName, body.Position, body.Experience, body.Skills)
	if err != nil {
		aiFailure(c, "summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"summary": summary}})
}

// POST /ai/suggest-skills
func (h *Handler) SuggestSkills(c *gin.Context) {
	var body struct {
		Position      string   `json:"position"`
		CurrentSkills []string `json:"currentSkills"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if body.Position == "" || len(body.Position) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Position is required and must be less than 100 characters"})
		return
	}

	suggestedSkills, err := h.svc.SuggestSkills(c.Request.Context(), body.Position, body.CurrentSkills)
	if err != nil {
		aiFailure(c, "suggest skills", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"suggestedSkills": suggestedSkills}})
}

// POST /ai/optimize-ats
func (h *Handler) OptimizeForATS(c *gin.Context) {
	var body struct {
		Text           string `json:"text"`
		TargetPosition string `json:"targetPosition"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if body.Text == "" || len(body.Text) > 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Text is required and must be less than 2000 characters"})
		return
	}
	if body.TargetPosition == "" || len(body.TargetPosition) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Target position is required and must be less than 100 characters"})
		return
	}

	optimizedText, err := h.svc.OptimizeForATS(c.Request.Context(), body.Text, body.TargetPosition)
	if err != nil {
		aiFailure(c, "optimize ats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"originalText":  body.Text,
			"optimizedText": optimizedText,
		},
	})
}

// GET /ai/usage
func (h *Handler) GetUsageStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"monthlyUsage": gin.H{
				"bulletPoints":     15,
				"textImprovements": 8,
				"summaries":        3,
				"skillSuggestions": 5,
				"atsOptimizations": 2,
			},
			"limits": gin.H{
				"bulletPoints":     50,
				"textImprovements": 30,
				"summaries":        10,
				"skillSuggestions": 20,
				"atsOptimizations": 10,
			},
		},
	})
}
