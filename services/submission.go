package services

import (
	"fmt"
	"time"

	"content-portal-api/models"

	"github.com/google/uuid"
)

// NewRecordID builds a collision-safe record identifier:
// <prefix>_<unix-millis>_<uuid fragment>. The id is generated before any file
// upload so blob paths can be namespaced by it.
func NewRecordID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// PrepareEpisode stamps a new podcast episode with its identity, owner and
// initial review state. CreatedAt and UpdatedAt are set to the same instant.
func PrepareEpisode(e *models.PodcastEpisode, id string, userID int, now time.Time) {
	e.EpisodeID = id
	e.UserID = userID
	e.Status = models.StatusPending
	e.CreatedAt = now
	e.UpdatedAt = now
}

// PrepareScenario stamps a new scenario submission.
func PrepareScenario(s *models.ScenarioSubmission, id string, userID int, now time.Time) {
	s.ScenarioID = id
	s.UserID = userID
	s.Status = models.StatusPending
	s.CreatedAt = now
	s.UpdatedAt = now
}

// PrepareSpotlight stamps a new spotlight submission.
func PrepareSpotlight(s *models.SpotlightSubmission, id string, userID int, now time.Time) {
	s.SpotlightID = id
	s.UserID = userID
	s.Status = models.StatusPending
	s.CreatedAt = now
	s.UpdatedAt = now
}

// PrepareProduction stamps a new custom production request. Unlike the other
// three types its lifecycle starts at "submitted", and the payment status
// starts tracking at "pending".
func PrepareProduction(p *models.CustomProductionRequest, id string, userID int, now time.Time) {
	p.ProductionID = id
	p.UserID = userID
	p.Status = models.StatusSubmitted
	p.PaymentStatus = models.PaymentPending
	p.CreatedAt = now
	p.UpdatedAt = now
}
