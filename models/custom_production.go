package models

import (
	"encoding/json"
	"strings"
	"time"
)

// CustomProductionRequest is a paid bespoke video request. It carries the
// longest status lifecycle of the four content types plus an independent
// payment status; only the status fields are tracked here, gateway logic
// lives elsewhere.
type CustomProductionRequest struct {
	ProductionID          string    `gorm:"primaryKey;column:production_id" json:"production_id"`
	UserID                int       `gorm:"column:user_id" json:"user_id"`
	FirstName             string    `gorm:"column:first_name" json:"first_name"`
	LastName              string    `gorm:"column:last_name" json:"last_name"`
	LinkedinProfile       *string   `gorm:"column:linkedin_profile" json:"linkedin_profile,omitempty"`
	VideoType             string    `gorm:"column:video_type" json:"video_type"`
	ProjectDescription    string    `gorm:"column:project_description" json:"project_description"`
	TargetAudience        *string   `gorm:"column:target_audience" json:"target_audience,omitempty"`
	DurationPreference    *string   `gorm:"column:duration_preference" json:"duration_preference,omitempty"`
	StylePreference       *string   `gorm:"column:style_preference" json:"style_preference,omitempty"`
	BudgetRange           string    `gorm:"column:budget_range" json:"budget_range"`
	TimelinePreference    *string   `gorm:"column:timeline_preference" json:"timeline_preference,omitempty"`
	FilesUploaded         *string   `gorm:"column:files_uploaded" json:"files_uploaded,omitempty"`
	Status                string    `gorm:"column:status" json:"status"`
	PaymentStatus         string    `gorm:"column:payment_status" json:"payment_status"`
	PaymentAmount         *float64  `gorm:"column:payment_amount" json:"payment_amount,omitempty"`
	StripePaymentIntentID *string   `gorm:"column:stripe_payment_intent_id" json:"stripe_payment_intent_id,omitempty"`
	DraftURL              *string   `gorm:"column:draft_url" json:"draft_url,omitempty"`
	FinalURL              *string   `gorm:"column:final_url" json:"final_url,omitempty"`
	AdminNotes            *string   `gorm:"column:admin_notes" json:"admin_notes,omitempty"`
	ClientNotes           *string   `gorm:"column:client_notes" json:"client_notes,omitempty"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CustomProductionRequest) TableName() string {
	return "custom_production_requests"
}

// IsAwaitingReview reports whether the request still sits in its initial state.
func (p *CustomProductionRequest) IsAwaitingReview() bool {
	return p.Status == StatusSubmitted
}

// FileURLs decodes the JSON-encoded files_uploaded column. Absent, empty or
// malformed values decode to an empty slice rather than an error; legacy rows
// hold arbitrary text and must not break the dashboard.
func (p *CustomProductionRequest) FileURLs() []string {
	if p.FilesUploaded == nil {
		return []string{}
	}
	trimmed := strings.TrimSpace(*p.FilesUploaded)
	if trimmed == "" {
		return []string{}
	}

	var urls []string
	if err := json.Unmarshal([]byte(trimmed), &urls); err != nil {
		return []string{}
	}

	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if s := strings.TrimSpace(u); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

// SetFileURLs stores the uploaded file URLs as a JSON array. An empty list
// clears the column.
func (p *CustomProductionRequest) SetFileURLs(urls []string) error {
	if len(urls) == 0 {
		p.FilesUploaded = nil
		return nil
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	value := string(encoded)
	p.FilesUploaded = &value
	return nil
}
