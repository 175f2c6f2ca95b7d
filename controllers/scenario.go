package controllers

import (
	"log"
	"net/http"
	"time"

	"content-portal-api/config"
	"content-portal-api/models"
	"content-portal-api/services"
	"content-portal-api/utils"

	"github.com/gin-gonic/gin"
)

type ScenarioRequest struct {
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	LinkedinProfile        string `json:"linkedin_profile"`
	LearningResourceLink   string `json:"learning_resource_link"`
	ResourceType           string `json:"resource_type"`
	ChallengeDescription   string `json:"challenge_description"`
	AISolutionNarrative    string `json:"ai_solution_narrative"`
	FictionalCharacterName string `json:"fictional_character_name"`
}

// CreateScenario accepts a fictional AI-use scenario submission. All fields
// except the character name are required.
func CreateScenario(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := map[string]string{
		"first_name":             utils.SanitizeInput(req.FirstName),
		"last_name":              utils.SanitizeInput(req.LastName),
		"linkedin_profile":       utils.SanitizeInput(req.LinkedinProfile),
		"learning_resource_link": utils.SanitizeInput(req.LearningResourceLink),
		"resource_type":          utils.SanitizeInput(req.ResourceType),
		"challenge_description":  utils.SanitizeInput(req.ChallengeDescription),
		"ai_solution_narrative":  utils.SanitizeInput(req.AISolutionNarrative),
	}

	if missing := services.ScenarioSchema.MissingFields(values); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Missing required fields",
			"missing_fields": missing,
		})
		return
	}

	if !utils.ValidateLinkedinURL(values["linkedin_profile"]) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "linkedin_profile must be a LinkedIn URL"})
		return
	}

	scenario := models.ScenarioSubmission{
		FirstName:            values["first_name"],
		LastName:             values["last_name"],
		LinkedinProfile:      values["linkedin_profile"],
		LearningResourceLink: values["learning_resource_link"],
		ResourceType:         values["resource_type"],
		ChallengeDescription: values["challenge_description"],
		AISolutionNarrative:  values["ai_solution_narrative"],
	}
	if name := utils.SanitizeInput(req.FictionalCharacterName); name != "" {
		scenario.FictionalCharacterName = &name
	}

	services.PrepareScenario(&scenario, services.NewRecordID("scenario"), userID.(int), time.Now())

	if err := config.DB.Create(&scenario).Error; err != nil {
		log.Printf("failed to create scenario %s: %v", scenario.ScenarioID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Scenario submitted successfully",
		"scenario": scenario,
	})
}

// GetScenarios returns the caller's scenarios newest first; admins see all.
func GetScenarios(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	query := config.DB.Model(&models.ScenarioSubmission{})
	if roleID.(int) != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var scenarios []models.ScenarioSubmission
	if err := query.Order("created_at DESC").Find(&scenarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scenarios"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"scenarios": scenarios,
		"total":     len(scenarios),
	})
}
