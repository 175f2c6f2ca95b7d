package controllers

import (
	"errors"
	"log"
	"net/http"

	"content-portal-api/config"
	"content-portal-api/services"
	"content-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// GetReviewContent loads the review dashboard: all four collections fetched
// concurrently, newest first. A single failed collection is reported in the
// errors map while the rest of the payload stays usable.
func GetReviewContent(c *gin.Context) {
	svc := services.NewReviewService(config.DB)
	dashboard := svc.LoadDashboard(c.Request.Context())

	total := len(dashboard.Episodes) + len(dashboard.Scenarios) +
		len(dashboard.Spotlights) + len(dashboard.Productions)
	log.Printf("review dashboard loaded %s", utils.Plural(total, "record"))

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"dashboard": dashboard,
	})
}

// ApproveContent approves one record, addressed by content-type tag and id.
func ApproveContent(c *gin.Context) {
	contentType := c.Param("type")
	recordID := c.Param("id")

	svc := services.NewReviewService(config.DB)
	record, err := svc.Approve(contentType, recordID)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	services.NotifyReviewDecision(config.DB, record, "")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": record.Kind.Label + " approved successfully",
		"id":      record.ID,
		"status":  record.Status,
		"badge":   utils.StatusBadgeLabel(record.Status),
	})
}

// RequestEditContent moves one record into its editing state with reviewer
// notes attached. Notes are mandatory.
func RequestEditContent(c *gin.Context) {
	contentType := c.Param("type")
	recordID := c.Param("id")

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	svc := services.NewReviewService(config.DB)
	record, err := svc.RequestEdit(contentType, recordID, req.Notes)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	services.NotifyReviewDecision(config.DB, record, req.Notes)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Edit request sent for " + record.Kind.Label,
		"id":      record.ID,
		"status":  record.Status,
		"badge":   utils.StatusBadgeLabel(record.Status),
	})
}

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownContentType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content type"})
	case errors.Is(err, services.ErrEmptyNotes):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Edit notes must not be empty"})
	case errors.Is(err, services.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	default:
		log.Printf("review transition failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
	}
}
