package controllers

import (
	"net/http"
	"time"

	"content-portal-api/config"
	"content-portal-api/models"
	"content-portal-api/services"
	"content-portal-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetActiveQuestion returns the prompt submitters answer when recording,
// together with the recording time cap the client enforces.
func GetActiveQuestion(c *gin.Context) {
	var question models.PodcastQuestion
	if err := config.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		First(&question).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active podcast question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}

// GetQuestions lists the full prompt bank (admin).
func GetQuestions(c *gin.Context) {
	var questions []models.PodcastQuestion
	if err := config.DB.Order("created_at DESC").Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": questions,
		"total":     len(questions),
	})
}

// CreateQuestion adds a prompt to the bank (admin). New questions start
// inactive; activation is a separate step.
func CreateQuestion(c *gin.Context) {
	var req struct {
		QuestionText     string  `json:"question_text" binding:"required"`
		AudioURL         *string `json:"audio_url"`
		MaxRecordingTime int     `json:"max_recording_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxTime := req.MaxRecordingTime
	if maxTime <= 0 {
		maxTime = models.DefaultMaxRecordingTime
	}

	question := models.PodcastQuestion{
		QuestionID:       services.NewRecordID("question"),
		QuestionText:     utils.SanitizeInput(req.QuestionText),
		AudioURL:         req.AudioURL,
		MaxRecordingTime: maxTime,
		IsActive:         false,
		CreatedAt:        time.Now(),
	}

	if err := config.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Question created successfully",
		"question": question,
	})
}

// ActivateQuestion makes one prompt active and deactivates all others, so
// exactly one question is live at a time.
func ActivateQuestion(c *gin.Context) {
	questionID := c.Param("id")

	var question models.PodcastQuestion
	if err := config.DB.Where("question_id = ?", questionID).First(&question).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PodcastQuestion{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.PodcastQuestion{}).
			Where("question_id = ?", questionID).
			Update("is_active", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question activated successfully",
	})
}
