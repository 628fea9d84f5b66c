package resumes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type resumeTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPremium   bool   `json:"isPremium"`
	Preview     string `json:"preview"`
}

var resumeTemplates = []resumeTemplate{
	{ID: "modern", Name: "Modern Professional", Description: "Clean and modern design perfect for tech professionals", Category: "modern", Preview: "/templates/modern-preview.png"},
	{ID: "classic", Name: "Classic Business", Description: "Traditional format ideal for business professionals", Category: "classic", Preview: "/templates/classic-preview.png"},
	{ID: "creative", Name: "Creative Designer", Description: "Eye-catching design for creative professionals", Category: "creative", IsPremium: true, Preview: "/templates/creative-preview.png"},
	{ID: "executive", Name: "Executive Leader", Description: "Professional format for senior executives", Category: "executive", IsPremium: true, Preview: "/templates/executive-preview.png"},
	{ID: "minimalist", Name: "Minimalist", Description: "Simple and clean design focusing on content", Category: "modern", Preview: "/templates/minimalist-preview.png"},
	{ID: "technical", Name: "Technical Expert", Description: "Optimized for software engineers and developers", Category: "modern", IsPremium: true, Preview: "/templates/technical-preview.png"},
}

// GET /templates/resume
func ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"templates": resumeTemplates},
	})
}
