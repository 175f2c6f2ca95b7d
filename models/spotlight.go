package models

import "time"

// SpotlightSubmission is a consent record: the submitter authorizes turning
// one of their LinkedIn posts into a promotional clip on selected channels.
type SpotlightSubmission struct {
	SpotlightID          string    `gorm:"primaryKey;column:spotlight_id" json:"spotlight_id"`
	UserID               int       `gorm:"column:user_id" json:"user_id"`
	FirstName            string    `gorm:"column:first_name" json:"first_name"`
	LastName             string    `gorm:"column:last_name" json:"last_name"`
	LinkedinProfile      string    `gorm:"column:linkedin_profile" json:"linkedin_profile"`
	LinkedinPostLink     string    `gorm:"column:linkedin_post_link" json:"linkedin_post_link"`
	ConsentWebsite       bool      `gorm:"column:consent_website" json:"consent_website"`
	ConsentLinkedinGroup bool      `gorm:"column:consent_linkedin_group" json:"consent_linkedin_group"`
	ConsentYoutube       bool      `gorm:"column:consent_youtube" json:"consent_youtube"`
	ConsentInstagram     bool      `gorm:"column:consent_instagram" json:"consent_instagram"`
	ConsentFacebook      bool      `gorm:"column:consent_facebook" json:"consent_facebook"`
	Status               string    `gorm:"column:status" json:"status"`
	EditNotes            *string   `gorm:"column:edit_notes" json:"edit_notes,omitempty"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SpotlightSubmission) TableName() string {
	return "spotlight_submissions"
}

// HasAnyConsent reports whether at least one distribution channel was
// authorized. A spotlight without consent cannot be submitted.
func (s *SpotlightSubmission) HasAnyConsent() bool {
	return s.ConsentWebsite || s.ConsentLinkedinGroup || s.ConsentYoutube ||
		s.ConsentInstagram || s.ConsentFacebook
}

func (s *SpotlightSubmission) IsPending() bool {
	return s.Status == StatusPending
}
