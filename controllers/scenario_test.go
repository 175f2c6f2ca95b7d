package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, userID int, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		c.Set("userID", userID)
	}

	handler(c)
	return w
}

func validScenarioRequest() ScenarioRequest {
	return ScenarioRequest{
		FirstName:            "Maya",
		LastName:             "Tan",
		LinkedinProfile:      "https://www.linkedin.com/in/maya",
		LearningResourceLink: "https://example.com/course",
		ResourceType:         "course",
		ChallengeDescription: "Quarterly reports took days",
		AISolutionNarrative:  "An assistant drafted them in minutes",
	}
}

func TestCreateScenarioRejectsNonLinkedinProfile(t *testing.T) {
	req := validScenarioRequest()
	req.LinkedinProfile = "https://example.com/in/maya"

	w := postJSON(t, CreateScenario, 4, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateScenarioRejectsMissingFields(t *testing.T) {
	req := validScenarioRequest()
	req.ChallengeDescription = ""

	w := postJSON(t, CreateScenario, 4, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		MissingFields []string `json:"missing_fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.MissingFields) != 1 || resp.MissingFields[0] != "challenge_description" {
		t.Fatalf("expected missing challenge_description, got %v", resp.MissingFields)
	}
}

func TestCreateScenarioRequiresAuthContext(t *testing.T) {
	w := postJSON(t, CreateScenario, 0, validScenarioRequest())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCreateSpotlightRejectsNonLinkedinPostLink(t *testing.T) {
	req := SpotlightRequest{
		FirstName:        "Maya",
		LastName:         "Tan",
		LinkedinProfile:  "https://www.linkedin.com/in/maya",
		LinkedinPostLink: "https://twitter.com/maya/status/1",
		ConsentWebsite:   true,
	}

	w := postJSON(t, CreateSpotlight, 4, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
