package resumes

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"resume-builder-api/database"
	"resume-builder-api/internal/domain/resumes"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// resumePayload is the writable shape bound from create/update bodies.
type resumePayload struct {
	Title          string                    `json:"title"`
	Template       string                    `json:"template"`
	PersonalInfo   resumes.PersonalInfo      `json:"personalInfo"`
	Summary        string                    `json:"summary"`
	Experience     resumes.ExperienceList    `json:"experience"`
	Education      resumes.EducationList     `json:"education"`
	Skills         resumes.SkillList         `json:"skills"`
	Projects       resumes.ProjectList       `json:"projects"`
	Certifications resumes.CertificationList `json:"certifications"`
	Languages      resumes.LanguageList      `json:"languages"`
	CustomSections resumes.CustomSectionList `json:"customSections"`
	IsPublic       bool                      `json:"isPublic"`
}

func (p *resumePayload) validate() string {
	if p.Title == "" || len(p.Title) > 100 {
		return "Title is required and must be less than 100 characters"
	}
	if p.Template == "" {
		p.Template = "modern"
	}
	if p.PersonalInfo.FirstName == "" || p.PersonalInfo.LastName == "" {
		return "Personal info must include first and last name"
	}
	return ""
}

// GET /resumes?page&limit
func ListResumes(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var list []resumes.Resume
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load resumes"})
		return
	}

	var total int64
	if err := database.DB.Model(&resumes.Resume{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load resumes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"resumes": list,
			"pagination": gin.H{
				"current": page,
				"pages":   int(math.Ceil(float64(total) / float64(limit))),
				"total":   total,
			},
		},
	})
}

// GET /resumes/:id
func GetResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var resume resumes.Resume
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&resume).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"resume": resume}})
}

// POST /resumes
func CreateResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var payload resumePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	resume := resumes.Resume{
		UserID:         userID,
		Title:          payload.Title,
		Template:       payload.Template,
		PersonalInfo:   payload.PersonalInfo,
		Summary:        payload.Summary,
		Experience:     payload.Experience,
		Education:      payload.Education,
		Skills:         payload.Skills,
		Projects:       payload.Projects,
		Certifications: payload.Certifications,
		Languages:      payload.Languages,
		CustomSections: payload.CustomSections,
		IsPublic:       payload.IsPublic,
	}

	if err := database.DB.Create(&resume).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create resume"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Resume created successfully",
		"data":    gin.H{"resume": resume},
	})
}

// PUT /resumes/:id
func UpdateResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var resume resumes.Resume
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&resume).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resume not found"})
		return
	}

	var payload resumePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	resume.Title = payload.Title
	resume.Template = payload.Template
	resume.PersonalInfo = payload.PersonalInfo
	resume.Summary = payload.Summary
	resume.Experience = payload.Experience
	resume.Education = payload.Education
	resume.Skills = payload.Skills
	resume.Projects = payload.Projects
	resume.Certifications = payload.Certifications
	resume.Languages = payload.Languages
	resume.CustomSections = payload.CustomSections
	resume.IsPublic = payload.IsPublic

	if err := database.DB.Save(&resume).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Resume updated successfully",
		"data":    gin.H{"resume": resume},
	})
}

// DELETE /resumes/:id
func DeleteResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&resumes.Resume{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete resume"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resume deleted successfully"})
}

// POST /resumes/:id/duplicate
func DuplicateResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var original resumes.Resume
	if err := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&original).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resume not found"})
		return
	}

	duplicate := original
	duplicate.ID = 0
	duplicate.Title = original.Title + " (Copy)"
	duplicate.CreatedAt = time.Time{}
	duplicate.UpdatedAt = time.Time{}

	if err := database.DB.Create(&duplicate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to duplicate resume"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Resume duplicated successfully",
		"data":    gin.H{"resume": duplicate},
	})
}
