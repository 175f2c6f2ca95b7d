package services

import "strings"

// Content type tags used for review dispatch and schema lookup.
const (
	TypePodcast   = "podcast"
	TypeScenario  = "scenario"
	TypeSpotlight = "spotlight"
	TypeCustom    = "custom"
)

// ContentSchema lists the required fields of one submission form. The submit
// action is rejected while any required field is empty; optional fields are
// not tracked here.
type ContentSchema struct {
	Type     string
	Required []string
}

var (
	// PodcastSchema includes the pseudo-field "audio": a podcast episode
	// cannot be submitted without a captured recording.
	PodcastSchema = ContentSchema{
		Type: TypePodcast,
		Required: []string{
			"first_name",
			"last_name",
			"linkedin_profile",
			"learning_resource_link",
			"resource_type",
			"audio",
		},
	}

	ScenarioSchema = ContentSchema{
		Type: TypeScenario,
		Required: []string{
			"first_name",
			"last_name",
			"linkedin_profile",
			"learning_resource_link",
			"resource_type",
			"challenge_description",
			"ai_solution_narrative",
		},
	}

	// SpotlightSchema covers the text fields only; the consent gate
	// (at least one channel authorized) is checked separately.
	SpotlightSchema = ContentSchema{
		Type: TypeSpotlight,
		Required: []string{
			"first_name",
			"last_name",
			"linkedin_profile",
			"linkedin_post_link",
		},
	}

	CustomSchema = ContentSchema{
		Type: TypeCustom,
		Required: []string{
			"first_name",
			"last_name",
			"video_type",
			"project_description",
			"budget_range",
		},
	}
)

// MissingFields returns the required field names that are empty or absent in
// values, in schema order.
func (s ContentSchema) MissingFields(values map[string]string) []string {
	missing := make([]string, 0)
	for _, name := range s.Required {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// CanSubmit reports whether every required field is filled.
func (s ContentSchema) CanSubmit(values map[string]string) bool {
	return len(s.MissingFields(values)) == 0
}
