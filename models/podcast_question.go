package models

import "time"

// DefaultMaxRecordingTime caps browser recordings when a question does not
// specify its own limit, in seconds.
const DefaultMaxRecordingTime = 120

// PodcastQuestion is an admin-managed prompt submitters answer when recording
// an episode. Exactly one question is active at a time.
type PodcastQuestion struct {
	QuestionID       string    `gorm:"primaryKey;column:question_id" json:"question_id"`
	QuestionText     string    `gorm:"column:question_text" json:"question_text"`
	AudioURL         *string   `gorm:"column:audio_url" json:"audio_url,omitempty"`
	MaxRecordingTime int       `gorm:"column:max_recording_time" json:"max_recording_time"`
	IsActive         bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PodcastQuestion) TableName() string {
	return "podcast_questions"
}
