package models

import "time"

// PodcastEpisode is a recorded answer to the active podcast question,
// submitted for review together with the submitter's profile links.
type PodcastEpisode struct {
	EpisodeID            string    `gorm:"primaryKey;column:episode_id" json:"episode_id"`
	UserID               int       `gorm:"column:user_id" json:"user_id"`
	FirstName            string    `gorm:"column:first_name" json:"first_name"`
	LastName             string    `gorm:"column:last_name" json:"last_name"`
	LinkedinProfile      string    `gorm:"column:linkedin_profile" json:"linkedin_profile"`
	LearningResourceLink string    `gorm:"column:learning_resource_link" json:"learning_resource_link"`
	ResourceType         string    `gorm:"column:resource_type" json:"resource_type"`
	AudioURL             string    `gorm:"column:audio_url" json:"audio_url"`
	PhotoURL             *string   `gorm:"column:photo_url" json:"photo_url,omitempty"`
	QuestionID           *string   `gorm:"column:question_id" json:"question_id,omitempty"`
	Status               string    `gorm:"column:status" json:"status"`
	EditNotes            *string   `gorm:"column:edit_notes" json:"edit_notes,omitempty"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PodcastEpisode) TableName() string {
	return "podcast_episodes"
}

// IsPending reports whether the episode still awaits a review decision.
func (e *PodcastEpisode) IsPending() bool {
	return e.Status == StatusPending
}
