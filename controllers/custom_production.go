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

// CreateProduction accepts a multipart custom production request: project
// fields plus any number of reference files under the "files" form key. File
// URLs are JSON-encoded into the record's files_uploaded column.
func CreateProduction(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	values := map[string]string{
		"first_name":          utils.SanitizeInput(c.PostForm("first_name")),
		"last_name":           utils.SanitizeInput(c.PostForm("last_name")),
		"video_type":          utils.SanitizeInput(c.PostForm("video_type")),
		"project_description": utils.SanitizeInput(c.PostForm("project_description")),
		"budget_range":        utils.SanitizeInput(c.PostForm("budget_range")),
	}

	if missing := services.CustomSchema.MissingFields(values); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Missing required fields",
			"missing_fields": missing,
		})
		return
	}

	recordID := services.NewRecordID("custom")
	store := services.NewLocalStorageFromEnv()

	// Upload every reference file before writing the record; one failure
	// aborts the submission.
	fileURLs := []string{}
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, file := range form.File["files"] {
			stored, err := saveUpload(store, file, "productions/"+recordID, allowedReferenceExts, maxFileUploadSize, userID.(int), recordID)
			if err != nil {
				respondUploadError(c, "reference file", err)
				return
			}
			fileURLs = append(fileURLs, stored.PublicURL)
		}
	}

	production := models.CustomProductionRequest{
		FirstName:          values["first_name"],
		LastName:           values["last_name"],
		VideoType:          values["video_type"],
		ProjectDescription: values["project_description"],
		BudgetRange:        values["budget_range"],
	}

	setOptional := func(target **string, key string) {
		if v := utils.SanitizeInput(c.PostForm(key)); v != "" {
			*target = &v
		}
	}
	setOptional(&production.LinkedinProfile, "linkedin_profile")
	setOptional(&production.TargetAudience, "target_audience")
	setOptional(&production.DurationPreference, "duration_preference")
	setOptional(&production.StylePreference, "style_preference")
	setOptional(&production.TimelinePreference, "timeline_preference")
	setOptional(&production.ClientNotes, "client_notes")

	if err := production.SetFileURLs(fileURLs); err != nil {
		log.Printf("failed to encode file urls for production %s: %v", recordID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	services.PrepareProduction(&production, recordID, userID.(int), time.Now())

	if err := config.DB.Create(&production).Error; err != nil {
		// Uploaded blobs are orphaned at this point; see the reconciliation
		// note in DESIGN.md.
		log.Printf("failed to create production request %s: %v", recordID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Production request submitted successfully",
		"production": production,
	})
}

// GetProductions returns the caller's production requests newest first;
// admins see all.
func GetProductions(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	query := config.DB.Model(&models.CustomProductionRequest{})
	if roleID.(int) != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var productions []models.CustomProductionRequest
	if err := query.Order("created_at DESC").Find(&productions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch production requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"productions": productions,
		"total":       len(productions),
	})
}

// UpdateClientNotes lets the owner attach or replace notes on their own
// production request.
func UpdateClientNotes(c *gin.Context) {
	productionID := c.Param("id")
	userID, _ := c.Get("userID")

	var req struct {
		ClientNotes string `json:"client_notes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client notes are required"})
		return
	}

	var production models.CustomProductionRequest
	if err := config.DB.
		Where("production_id = ? AND user_id = ?", productionID, userID).
		First(&production).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Production request not found"})
		return
	}

	notes := utils.SanitizeInput(req.ClientNotes)
	updates := map[string]interface{}{
		"client_notes": notes,
		"updated_at":   time.Now(),
	}
	if err := config.DB.Model(&production).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notes updated successfully",
	})
}

// UpdateProductionStatus advances a production through its lifecycle
// (submitted → in_review → in_production → draft_ready → approved →
// completed). The lifecycle is forward-only; draft/final URLs and admin
// notes may be set alongside the move.
func UpdateProductionStatus(c *gin.Context) {
	productionID := c.Param("id")

	var req struct {
		Status     string  `json:"status" binding:"required"`
		DraftURL   *string `json:"draft_url"`
		FinalURL   *string `json:"final_url"`
		AdminNotes *string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidProductionStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid production status"})
		return
	}

	var production models.CustomProductionRequest
	if err := config.DB.Where("production_id = ?", productionID).First(&production).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Production request not found"})
		return
	}

	if !models.ProductionStatusAdvances(production.Status, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status can only move forward in the production lifecycle"})
		return
	}

	updates := map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}
	if req.DraftURL != nil {
		updates["draft_url"] = *req.DraftURL
	}
	if req.FinalURL != nil {
		updates["final_url"] = *req.FinalURL
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = utils.SanitizeInput(*req.AdminNotes)
	}

	if err := config.DB.Model(&production).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update production status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Production status updated successfully",
	})
}

// UpdatePaymentStatus sets the payment tracking field on a production
// request. Orthogonal to the review status; no gateway calls happen here.
func UpdatePaymentStatus(c *gin.Context) {
	productionID := c.Param("id")

	var req struct {
		PaymentStatus string `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
		return
	}

	var production models.CustomProductionRequest
	if err := config.DB.Where("production_id = ?", productionID).First(&production).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Production request not found"})
		return
	}

	updates := map[string]interface{}{
		"payment_status": req.PaymentStatus,
		"updated_at":     time.Now(),
	}
	if err := config.DB.Model(&production).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment status updated successfully",
	})
}
