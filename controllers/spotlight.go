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

type SpotlightRequest struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	LinkedinProfile      string `json:"linkedin_profile"`
	LinkedinPostLink     string `json:"linkedin_post_link"`
	ConsentWebsite       bool   `json:"consent_website"`
	ConsentLinkedinGroup bool   `json:"consent_linkedin_group"`
	ConsentYoutube       bool   `json:"consent_youtube"`
	ConsentInstagram     bool   `json:"consent_instagram"`
	ConsentFacebook      bool   `json:"consent_facebook"`
}

// CreateSpotlight accepts a spotlight consent submission. Besides the text
// fields, at least one distribution channel must be authorized.
func CreateSpotlight(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SpotlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := map[string]string{
		"first_name":         utils.SanitizeInput(req.FirstName),
		"last_name":          utils.SanitizeInput(req.LastName),
		"linkedin_profile":   utils.SanitizeInput(req.LinkedinProfile),
		"linkedin_post_link": utils.SanitizeInput(req.LinkedinPostLink),
	}

	if missing := services.SpotlightSchema.MissingFields(values); len(missing) > 0 {
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
	if !utils.ValidateLinkedinURL(values["linkedin_post_link"]) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "linkedin_post_link must be a LinkedIn URL"})
		return
	}

	spotlight := models.SpotlightSubmission{
		FirstName:            values["first_name"],
		LastName:             values["last_name"],
		LinkedinProfile:      values["linkedin_profile"],
		LinkedinPostLink:     values["linkedin_post_link"],
		ConsentWebsite:       req.ConsentWebsite,
		ConsentLinkedinGroup: req.ConsentLinkedinGroup,
		ConsentYoutube:       req.ConsentYoutube,
		ConsentInstagram:     req.ConsentInstagram,
		ConsentFacebook:      req.ConsentFacebook,
	}

	if !spotlight.HasAnyConsent() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one distribution channel must be selected"})
		return
	}

	services.PrepareSpotlight(&spotlight, services.NewRecordID("spotlight"), userID.(int), time.Now())

	if err := config.DB.Create(&spotlight).Error; err != nil {
		log.Printf("failed to create spotlight %s: %v", spotlight.SpotlightID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Spotlight consent submitted successfully",
		"spotlight": spotlight,
	})
}

// GetSpotlights returns the caller's spotlights newest first; admins see all.
func GetSpotlights(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	query := config.DB.Model(&models.SpotlightSubmission{})
	if roleID.(int) != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var spotlights []models.SpotlightSubmission
	if err := query.Order("created_at DESC").Find(&spotlights).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch spotlights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"spotlights": spotlights,
		"total":      len(spotlights),
	})
}
