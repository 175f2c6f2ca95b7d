package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"content-portal-api/models"
	"content-portal-api/utils"
)

func TestApproveUpdatesStatusAndReturnsOwner(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `?user_id`? FROM `podcast_episodes` WHERE episode_id = \\?"),
			columns: []string{"user_id"},
			rows:    [][]driver.Value{{int64(7)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `podcast_episodes` SET .*`status`=\\?.*WHERE episode_id = \\?"),
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	record, err := svc.Approve("podcast", "episode_1700000000000_abcd1234")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if record.Status != models.StatusApproved {
		t.Fatalf("expected status %q, got %q", models.StatusApproved, record.Status)
	}
	if record.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", record.UserID)
	}
	if record.Kind.Tag != TypePodcast {
		t.Fatalf("unexpected kind: %+v", record.Kind)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveIsIdempotent(t *testing.T) {
	ownerQuery := regexp.MustCompile("SELECT `?user_id`? FROM `scenario_submissions` WHERE scenario_id = \\?")
	updateExec := regexp.MustCompile("UPDATE `scenario_submissions` SET .*`status`=\\?.*WHERE scenario_id = \\?")

	steps := []*queryStep{
		{kind: kindQuery, pattern: ownerQuery, columns: []string{"user_id"}, rows: [][]driver.Value{{int64(3)}}},
		{kind: kindExec, pattern: updateExec, result: scriptedResult{rowsAffected: 1}},
		{kind: kindQuery, pattern: ownerQuery, columns: []string{"user_id"}, rows: [][]driver.Value{{int64(3)}}},
		{kind: kindExec, pattern: updateExec, result: scriptedResult{rowsAffected: 1}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	for i := 0; i < 2; i++ {
		record, err := svc.Approve("scenario", "scenario_1700000000000_abcd1234")
		if err != nil {
			t.Fatalf("Approve call %d returned error: %v", i+1, err)
		}
		if record.Status != models.StatusApproved {
			t.Fatalf("Approve call %d: expected status %q, got %q", i+1, models.StatusApproved, record.Status)
		}
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveUnknownContentType(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewReviewService(db)

	if _, err := svc.Approve("newsletter", "x"); !errors.Is(err, ErrUnknownContentType) {
		t.Fatalf("expected ErrUnknownContentType, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected database work: %v", err)
	}
}

func TestApproveMissingRecord(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `?user_id`? FROM `spotlight_submissions` WHERE spotlight_id = \\?"),
			columns: []string{"user_id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	if _, err := svc.Approve("spotlight", "spotlight_missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRequestEditRejectsBlankNotesBeforeAnyQuery(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewReviewService(db)

	if _, err := svc.RequestEdit("podcast", "episode_1", "   "); !errors.Is(err, ErrEmptyNotes) {
		t.Fatalf("expected ErrEmptyNotes, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected database work: %v", err)
	}
}

func TestRequestEditStoresTrimmedNotes(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `?user_id`? FROM `podcast_episodes` WHERE episode_id = \\?"),
			columns: []string{"user_id"},
			rows:    [][]driver.Value{{int64(5)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `podcast_episodes` SET `edit_notes`=\\?,`status`=\\?"),
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	record, err := svc.RequestEdit("podcast", "episode_1", "  tighten the intro  ")
	if err != nil {
		t.Fatalf("RequestEdit returned error: %v", err)
	}
	if record.Status != models.StatusNeedsEditing {
		t.Fatalf("expected status %q, got %q", models.StatusNeedsEditing, record.Status)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRequestEditCustomProductionUsesAdminNotes(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `?user_id`? FROM `custom_production_requests` WHERE production_id = \\?"),
			columns: []string{"user_id"},
			rows:    [][]driver.Value{{int64(9)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `custom_production_requests` SET `admin_notes`=\\?,`status`=\\?"),
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	record, err := svc.RequestEdit("custom", "production_1", "need a tighter brief")
	if err != nil {
		t.Fatalf("RequestEdit returned error: %v", err)
	}
	if record.Status != models.StatusInReview {
		t.Fatalf("expected status %q, got %q", models.StatusInReview, record.Status)
	}
	if record.Kind.NotesColumn != "admin_notes" {
		t.Fatalf("expected admin_notes column, got %q", record.Kind.NotesColumn)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEpisodesReturnsNewestFirstRows(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `podcast_episodes` ORDER BY created_at DESC"),
			columns: []string{"episode_id", "user_id", "first_name", "status"},
			rows: [][]driver.Value{
				{"episode_b", int64(2), "Maya", models.StatusPending},
				{"episode_a", int64(1), "Liam", models.StatusApproved},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	episodes, err := svc.Episodes()
	if err != nil {
		t.Fatalf("Episodes returned error: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(episodes))
	}
	if episodes[0].EpisodeID != "episode_b" || episodes[1].EpisodeID != "episode_a" {
		t.Fatalf("unexpected order: %q then %q", episodes[0].EpisodeID, episodes[1].EpisodeID)
	}
	if !episodes[0].IsPending() {
		t.Fatalf("expected first episode to be pending, got %q", episodes[0].Status)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoadDashboardEmptyCollections(t *testing.T) {
	// The four collection queries run concurrently, so each step matches any
	// of the four tables and returns no rows.
	anyCollection := regexp.MustCompile("SELECT \\* FROM `[a-z_]+` ORDER BY created_at DESC")
	steps := []*queryStep{
		{kind: kindQuery, pattern: anyCollection, columns: []string{"status"}, rows: [][]driver.Value{}},
		{kind: kindQuery, pattern: anyCollection, columns: []string{"status"}, rows: [][]driver.Value{}},
		{kind: kindQuery, pattern: anyCollection, columns: []string{"status"}, rows: [][]driver.Value{}},
		{kind: kindQuery, pattern: anyCollection, columns: []string{"status"}, rows: [][]driver.Value{}},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	dashboard := svc.LoadDashboard(context.Background())
	if dashboard.Errors != nil {
		t.Fatalf("expected no errors, got %v", dashboard.Errors)
	}
	if dashboard.Episodes == nil || dashboard.Scenarios == nil || dashboard.Spotlights == nil || dashboard.Productions == nil {
		t.Fatalf("expected empty slices, got nils: %+v", dashboard)
	}
	if len(dashboard.Episodes)+len(dashboard.Scenarios)+len(dashboard.Spotlights)+len(dashboard.Productions) != 0 {
		t.Fatalf("expected empty dashboard, got %+v", dashboard)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoadDashboardRecordsPerCollectionErrors(t *testing.T) {
	anyCollection := regexp.MustCompile("SELECT \\* FROM `[a-z_]+` ORDER BY created_at DESC")
	dbDown := errors.New("connection refused")
	steps := []*queryStep{
		{kind: kindQuery, pattern: anyCollection, err: dbDown},
		{kind: kindQuery, pattern: anyCollection, err: dbDown},
		{kind: kindQuery, pattern: anyCollection, err: dbDown},
		{kind: kindQuery, pattern: anyCollection, err: dbDown},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewReviewService(db)

	dashboard := svc.LoadDashboard(context.Background())
	if len(dashboard.Errors) != 4 {
		t.Fatalf("expected 4 collection errors, got %v", dashboard.Errors)
	}
	for _, tag := range []string{TypePodcast, TypeScenario, TypeSpotlight, TypeCustom} {
		if dashboard.Errors[tag] == "" {
			t.Fatalf("missing error for %q: %v", tag, dashboard.Errors)
		}
	}
	if len(dashboard.Episodes) != 0 || len(dashboard.Productions) != 0 {
		t.Fatalf("expected empty lists on failure, got %+v", dashboard)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScenarioSubmitThenApproveFlow(t *testing.T) {
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `scenario_submissions`"),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `scenario_submissions` ORDER BY created_at DESC"),
			columns: []string{"scenario_id", "user_id", "status"},
			rows:    [][]driver.Value{{"scenario_1756108800000_abcd1234", int64(4), models.StatusPending}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `?user_id`? FROM `scenario_submissions` WHERE scenario_id = \\?"),
			columns: []string{"user_id"},
			rows:    [][]driver.Value{{int64(4)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `scenario_submissions` SET .*`status`=\\?"),
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	scenario := models.ScenarioSubmission{
		FirstName:            "Maya",
		LastName:             "Tan",
		LinkedinProfile:      "https://www.linkedin.com/in/maya",
		LearningResourceLink: "https://example.com/course",
		ResourceType:         "course",
		ChallengeDescription: "Quarterly reports took days",
		AISolutionNarrative:  "An assistant drafted them in minutes",
	}
	PrepareScenario(&scenario, "scenario_1756108800000_abcd1234", 4, now)
	if err := db.Create(&scenario).Error; err != nil {
		t.Fatalf("failed to insert scenario: %v", err)
	}

	svc := NewReviewService(db)

	listed, err := svc.Scenarios()
	if err != nil {
		t.Fatalf("Scenarios returned error: %v", err)
	}
	if len(listed) != 1 || !listed[0].IsPending() {
		t.Fatalf("expected one pending scenario, got %+v", listed)
	}

	record, err := svc.Approve("scenario", listed[0].ScenarioID)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if record.Status != models.StatusApproved {
		t.Fatalf("expected approved status, got %q", record.Status)
	}
	if badge := utils.StatusBadgeLabel(record.Status); badge != "Approved" {
		t.Fatalf("expected Approved badge, got %q", badge)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestKindForNormalizesTag(t *testing.T) {
	kind, ok := KindFor("  Custom ")
	if !ok {
		t.Fatal("expected custom kind to resolve")
	}
	if kind.Table != (models.CustomProductionRequest{}).TableName() {
		t.Fatalf("unexpected table %q", kind.Table)
	}

	if _, ok := KindFor("unknown"); ok {
		t.Fatal("expected unknown tag to miss")
	}
}
