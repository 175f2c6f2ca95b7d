package models

import "time"

// ScenarioSubmission is a fictional AI-use story: a workplace challenge and
// the narrative of how an AI tool solved it.
type ScenarioSubmission struct {
	ScenarioID             string    `gorm:"primaryKey;column:scenario_id" json:"scenario_id"`
	UserID                 int       `gorm:"column:user_id" json:"user_id"`
	FirstName              string    `gorm:"column:first_name" json:"first_name"`
	LastName               string    `gorm:"column:last_name" json:"last_name"`
	LinkedinProfile        string    `gorm:"column:linkedin_profile" json:"linkedin_profile"`
	LearningResourceLink   string    `gorm:"column:learning_resource_link" json:"learning_resource_link"`
	ResourceType           string    `gorm:"column:resource_type" json:"resource_type"`
	ChallengeDescription   string    `gorm:"column:challenge_description" json:"challenge_description"`
	AISolutionNarrative    string    `gorm:"column:ai_solution_narrative" json:"ai_solution_narrative"`
	FictionalCharacterName *string   `gorm:"column:fictional_character_name" json:"fictional_character_name,omitempty"`
	Status                 string    `gorm:"column:status" json:"status"`
	EditNotes              *string   `gorm:"column:edit_notes" json:"edit_notes,omitempty"`
	CreatedAt              time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ScenarioSubmission) TableName() string {
	return "scenario_submissions"
}

func (s *ScenarioSubmission) IsPending() bool {
	return s.Status == StatusPending
}
