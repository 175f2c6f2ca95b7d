package services

import (
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"content-portal-api/config"
	"content-portal-api/models"
	"content-portal-api/utils"

	"gorm.io/gorm"
)

// NotifyReviewDecision records an in-app notification for the record owner
// and sends a best-effort email. Delivery failures are logged, never surfaced
// to the reviewer; the review transition has already been committed.
func NotifyReviewDecision(db *gorm.DB, record ReviewedRecord, notes string) {
	title, message, notifType := decisionText(record, notes)

	contentType := record.Kind.Tag
	recordID := record.ID
	notification := models.Notification{
		UserID:          record.UserID,
		Title:           title,
		Message:         message,
		Type:            notifType,
		RelatedRecordID: &recordID,
		ContentType:     &contentType,
		IsRead:          false,
		CreateAt:        time.Now(),
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("failed to store review notification for %s %s: %v", record.Kind.Tag, record.ID, err)
	}

	var owner models.User
	if err := db.Select("user_id", "user_fname", "user_lname", "email").
		Where("user_id = ? AND delete_at IS NULL", record.UserID).
		First(&owner).Error; err != nil {
		log.Printf("review notification: owner %d not found: %v", record.UserID, err)
		return
	}
	// Legacy accounts can carry blank or malformed addresses; skip the mail
	// rather than bounce at the relay.
	if !utils.ValidateEmail(strings.TrimSpace(owner.Email)) {
		return
	}

	sendMailSafe([]string{owner.Email}, title, buildReviewEmailHTML(title, owner.FullName(), message))
}

func decisionText(record ReviewedRecord, notes string) (title, message, notifType string) {
	switch record.Status {
	case models.StatusApproved:
		title = fmt.Sprintf("%s approved", record.Kind.Label)
		message = fmt.Sprintf("Your %s submission has been approved.", strings.ToLower(record.Kind.Label))
		notifType = "success"
	default:
		title = fmt.Sprintf("%s needs changes", record.Kind.Label)
		message = fmt.Sprintf("A reviewer requested changes to your %s submission.", strings.ToLower(record.Kind.Label))
		if trimmed := strings.TrimSpace(notes); trimmed != "" {
			message += "\n\nReviewer notes:\n" + trimmed
		}
		notifType = "warning"
	}
	return title, message, notifType
}

func buildReviewEmailHTML(subject, recipientName, message string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "Creator"
	}

	escapedSubject := template.HTMLEscapeString(subject)
	escapedGreeting := template.HTMLEscapeString(fmt.Sprintf("Dear %s,", name))
	escapedMessage := template.HTMLEscapeString(strings.TrimSpace(message))
	escapedMessage = strings.ReplaceAll(strings.ReplaceAll(escapedMessage, "\r\n", "\n"), "\r", "\n")
	escapedMessage = strings.ReplaceAll(escapedMessage, "\n", "<br />")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body style="margin:0;padding:0;background-color:#f9fafb;font-family:'Segoe UI',Tahoma,Arial,sans-serif;">
<div style="max-width:640px;margin:0 auto;padding:24px 20px;">
  <div style="background-color:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px 24px 28px 24px;">
    <p style="margin:0 0 16px 0;font-size:16px;line-height:1.7;color:#111827;">%s</p>
    <p style="margin:0 0 0 0;font-size:16px;line-height:1.7;color:#111827;word-break:break-word;">%s</p>
  </div>
</div>
</body>
</html>`, escapedSubject, escapedGreeting, escapedMessage)
}

func sendMailSafe(to []string, subject, html string) {
	if err := config.SendMail(to, subject, html); err != nil {
		log.Printf("notification email send failed (subject=%q to=%v): %v", subject, to, err)
	}
}
