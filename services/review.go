package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"content-portal-api/models"

	"gorm.io/gorm"
)

var (
	ErrUnknownContentType = errors.New("unknown content type")
	ErrEmptyNotes         = errors.New("edit notes must not be empty")
	ErrRecordNotFound     = errors.New("record not found")
)

// ContentKind maps a content-type tag to the collection it lives in and the
// columns its review transitions touch. The request-edit transition writes
// edit_notes and moves to needs_editing for the three simple types; custom
// productions use admin_notes and move to in_review instead.
type ContentKind struct {
	Tag           string
	Table         string
	IDColumn      string
	NotesColumn   string
	PendingStatus string
	EditingStatus string
	Label         string
}

var contentKinds = map[string]ContentKind{
	TypePodcast: {
		Tag:           TypePodcast,
		Table:         models.PodcastEpisode{}.TableName(),
		IDColumn:      "episode_id",
		NotesColumn:   "edit_notes",
		PendingStatus: models.StatusPending,
		EditingStatus: models.StatusNeedsEditing,
		Label:         "Podcast Episode",
	},
	TypeScenario: {
		Tag:           TypeScenario,
		Table:         models.ScenarioSubmission{}.TableName(),
		IDColumn:      "scenario_id",
		NotesColumn:   "edit_notes",
		PendingStatus: models.StatusPending,
		EditingStatus: models.StatusNeedsEditing,
		Label:         "Scenario",
	},
	TypeSpotlight: {
		Tag:           TypeSpotlight,
		Table:         models.SpotlightSubmission{}.TableName(),
		IDColumn:      "spotlight_id",
		NotesColumn:   "edit_notes",
		PendingStatus: models.StatusPending,
		EditingStatus: models.StatusNeedsEditing,
		Label:         "Spotlight",
	},
	TypeCustom: {
		Tag:           TypeCustom,
		Table:         models.CustomProductionRequest{}.TableName(),
		IDColumn:      "production_id",
		NotesColumn:   "admin_notes",
		PendingStatus: models.StatusSubmitted,
		EditingStatus: models.StatusInReview,
		Label:         "Custom Production",
	},
}

// KindFor resolves a content-type tag.
func KindFor(tag string) (ContentKind, bool) {
	kind, ok := contentKinds[strings.ToLower(strings.TrimSpace(tag))]
	return kind, ok
}

// ReviewService implements the dashboard operations: concurrent load of the
// four collections and the two per-record transitions.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Dashboard is the review dashboard payload: the four collections newest
// first plus a per-collection error map so a partial load stays usable.
type Dashboard struct {
	Episodes    []models.PodcastEpisode          `json:"episodes"`
	Scenarios   []models.ScenarioSubmission      `json:"scenarios"`
	Spotlights  []models.SpotlightSubmission     `json:"spotlights"`
	Productions []models.CustomProductionRequest `json:"productions"`
	Errors      map[string]string                `json:"errors,omitempty"`
}

// Episodes returns all podcast episodes newest first.
func (s *ReviewService) Episodes() ([]models.PodcastEpisode, error) {
	var records []models.PodcastEpisode
	err := s.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// Scenarios returns all scenario submissions newest first.
func (s *ReviewService) Scenarios() ([]models.ScenarioSubmission, error) {
	var records []models.ScenarioSubmission
	err := s.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// Spotlights returns all spotlight submissions newest first.
func (s *ReviewService) Spotlights() ([]models.SpotlightSubmission, error) {
	var records []models.SpotlightSubmission
	err := s.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// Productions returns all custom production requests newest first.
func (s *ReviewService) Productions() ([]models.CustomProductionRequest, error) {
	var records []models.CustomProductionRequest
	err := s.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

// LoadDashboard fetches the four collections concurrently and joins the
// results. A failed fetch leaves its list empty and records the error under
// the content-type tag; the other collections remain usable.
func (s *ReviewService) LoadDashboard(ctx context.Context) *Dashboard {
	dashboard := &Dashboard{
		Episodes:    []models.PodcastEpisode{},
		Scenarios:   []models.ScenarioSubmission{},
		Spotlights:  []models.SpotlightSubmission{},
		Productions: []models.CustomProductionRequest{},
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs = make(map[string]string)
	)

	fail := func(tag string, err error) {
		mu.Lock()
		errs[tag] = err.Error()
		mu.Unlock()
	}

	db := s.db.WithContext(ctx)

	wg.Add(4)
	go func() {
		defer wg.Done()
		var records []models.PodcastEpisode
		if err := db.Session(&gorm.Session{}).Order("created_at DESC").Find(&records).Error; err != nil {
			fail(TypePodcast, err)
			return
		}
		dashboard.Episodes = records
	}()
	go func() {
		defer wg.Done()
		var records []models.ScenarioSubmission
		if err := db.Session(&gorm.Session{}).Order("created_at DESC").Find(&records).Error; err != nil {
			fail(TypeScenario, err)
			return
		}
		dashboard.Scenarios = records
	}()
	go func() {
		defer wg.Done()
		var records []models.SpotlightSubmission
		if err := db.Session(&gorm.Session{}).Order("created_at DESC").Find(&records).Error; err != nil {
			fail(TypeSpotlight, err)
			return
		}
		dashboard.Spotlights = records
	}()
	go func() {
		defer wg.Done()
		var records []models.CustomProductionRequest
		if err := db.Session(&gorm.Session{}).Order("created_at DESC").Find(&records).Error; err != nil {
			fail(TypeCustom, err)
			return
		}
		dashboard.Productions = records
	}()
	wg.Wait()

	if len(errs) > 0 {
		dashboard.Errors = errs
	}
	return dashboard
}

// ReviewedRecord is the record identity a transition acted on, for
// notifications and responses.
type ReviewedRecord struct {
	Kind   ContentKind
	ID     string
	UserID int
	Status string
}

// Approve sets the record's status to approved. The transition is idempotent:
// approving an already approved record rewrites the same status. The backend
// is not assumed to reject illegal transitions.
func (s *ReviewService) Approve(tag, id string) (ReviewedRecord, error) {
	kind, ok := KindFor(tag)
	if !ok {
		return ReviewedRecord{}, ErrUnknownContentType
	}

	owner, err := s.lookupOwner(kind, id)
	if err != nil {
		return ReviewedRecord{}, err
	}

	updates := map[string]interface{}{
		"status":     models.StatusApproved,
		"updated_at": time.Now(),
	}
	if err := s.db.Table(kind.Table).Where(kind.IDColumn+" = ?", id).Updates(updates).Error; err != nil {
		return ReviewedRecord{}, err
	}

	return ReviewedRecord{Kind: kind, ID: id, UserID: owner, Status: models.StatusApproved}, nil
}

// RequestEdit moves the record into its editing state and stores the notes in
// the kind's notes column, overwriting any previous notes. Blank notes are
// rejected before any database work.
func (s *ReviewService) RequestEdit(tag, id, notes string) (ReviewedRecord, error) {
	kind, ok := KindFor(tag)
	if !ok {
		return ReviewedRecord{}, ErrUnknownContentType
	}

	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return ReviewedRecord{}, ErrEmptyNotes
	}

	owner, err := s.lookupOwner(kind, id)
	if err != nil {
		return ReviewedRecord{}, err
	}

	updates := map[string]interface{}{
		"status":     kind.EditingStatus,
		"updated_at": time.Now(),
	}
	updates[kind.NotesColumn] = trimmed

	if err := s.db.Table(kind.Table).Where(kind.IDColumn+" = ?", id).Updates(updates).Error; err != nil {
		return ReviewedRecord{}, err
	}

	return ReviewedRecord{Kind: kind, ID: id, UserID: owner, Status: kind.EditingStatus}, nil
}

// lookupOwner confirms the record exists and returns its owning user id.
func (s *ReviewService) lookupOwner(kind ContentKind, id string) (int, error) {
	var row struct {
		UserID int
	}
	err := s.db.Table(kind.Table).
		Select("user_id").
		Where(kind.IDColumn+" = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrRecordNotFound
	}
	if err != nil {
		return 0, err
	}
	return row.UserID, nil
}
