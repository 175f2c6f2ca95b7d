package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"content-portal-api/config"
	"content-portal-api/models"
	"content-portal-api/services"
	"content-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// CreateEpisode accepts a multipart podcast submission: profile fields, the
// captured recording (required) and an optional photo. Files are uploaded
// before the record row is written; an upload failure aborts the whole
// submission so no partial record exists.
func CreateEpisode(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	values := map[string]string{
		"first_name":             utils.SanitizeInput(c.PostForm("first_name")),
		"last_name":              utils.SanitizeInput(c.PostForm("last_name")),
		"linkedin_profile":       utils.SanitizeInput(c.PostForm("linkedin_profile")),
		"learning_resource_link": utils.SanitizeInput(c.PostForm("learning_resource_link")),
		"resource_type":          utils.SanitizeInput(c.PostForm("resource_type")),
	}

	audioFile, err := c.FormFile("audio")
	if err == nil && audioFile != nil {
		values["audio"] = audioFile.Filename
	}

	if missing := services.PodcastSchema.MissingFields(values); len(missing) > 0 {
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

	recordID := services.NewRecordID("episode")
	store := services.NewLocalStorageFromEnv()

	audio, err := saveUpload(store, audioFile, "podcast/"+recordID, allowedAudioExts, maxAudioUploadSize, userID.(int), recordID)
	if err != nil {
		respondUploadError(c, "recording", err)
		return
	}

	episode := models.PodcastEpisode{
		FirstName:            values["first_name"],
		LastName:             values["last_name"],
		LinkedinProfile:      values["linkedin_profile"],
		LearningResourceLink: values["learning_resource_link"],
		ResourceType:         values["resource_type"],
		AudioURL:             audio.PublicURL,
	}

	if photoFile, err := c.FormFile("photo"); err == nil && photoFile != nil {
		photo, err := saveUpload(store, photoFile, "podcast/"+recordID, allowedPhotoExts, maxFileUploadSize, userID.(int), recordID)
		if err != nil {
			respondUploadError(c, "photo", err)
			return
		}
		episode.PhotoURL = &photo.PublicURL
	}

	if questionID := utils.SanitizeInput(c.PostForm("question_id")); questionID != "" {
		episode.QuestionID = &questionID
	}

	services.PrepareEpisode(&episode, recordID, userID.(int), time.Now())

	if err := config.DB.Create(&episode).Error; err != nil {
		// Uploaded blobs are orphaned at this point; see the reconciliation
		// note in DESIGN.md.
		log.Printf("failed to create podcast episode %s: %v", recordID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Episode submitted successfully",
		"episode": episode,
	})
}

// GetEpisodes returns the caller's episodes newest first; admins see all.
func GetEpisodes(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	query := config.DB.Model(&models.PodcastEpisode{})
	if roleID.(int) != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var episodes []models.PodcastEpisode
	if err := query.Order("created_at DESC").Find(&episodes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch episodes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"episodes": episodes,
		"total":    len(episodes),
	})
}

// respondUploadError surfaces an upload failure without leaking storage
// internals. Client mistakes (type/size) answer 400, everything else 500.
func respondUploadError(c *gin.Context, label string, err error) {
	if errors.Is(err, errInvalidUpload) {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.TrimPrefix(err.Error(), errInvalidUpload.Error()+": ")})
		return
	}
	log.Printf("failed to store %s upload: %v", label, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + label})
}
