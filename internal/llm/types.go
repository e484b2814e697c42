package llm

// Summary is the structured educational summary of a transcript.
type Summary struct {
	MainPoints          []string `json:"main_points"`
	KeyConcepts         []string `json:"key_concepts"`
	Prerequisites       []string `json:"prerequisites"`
	Applications        []string `json:"applications"`
	DetailedExplanation string   `json:"detailed_explanation"`
	FollowUpTopics      []string `json:"follow_up_topics"`
}

// Question is a multiple-choice quiz question.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// CorrectAnswer is the zero-based index into Options.
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	// Difficulty is one of Beginner, Intermediate or Advanced.
	Difficulty string `json:"difficulty"`
	// Type is the cognitive level: conceptual, application, analysis or synthesis.
	Type string `json:"type"`
}

// EducationalContent is the generated summary and quiz for a transcript.
type EducationalContent struct {
	Summary   Summary    `json:"summary"`
	Questions []Question `json:"questions"`
}

// GenerationParams holds parameters for chat completion requests.
type GenerationParams struct {
	// MaxTokens specifies the maximum number of tokens to generate.
	// If 0, no limit is applied.
	MaxTokens int

	// Temperature controls the randomness of the output.
	Temperature float32

	// JSON requests a JSON object response.
	JSON bool
}
