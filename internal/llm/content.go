package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse is returned when the model's reply is not the expected JSON document.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrEmptyResponse is returned when the model returns no content.
	ErrEmptyResponse = errors.New("empty model response")
)

// ParseEducationalContent decodes and validates a summary-and-questions reply.
// A surrounding Markdown code fence is tolerated.
func ParseEducationalContent(raw string) (EducationalContent, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return EducationalContent{}, ErrEmptyResponse
	}

	var envelope struct {
		Summary   *Summary    `json:"summary"`
		Questions *[]Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return EducationalContent{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Summary == nil {
		return EducationalContent{}, fmt.Errorf("%w: missing summary", ErrMalformedResponse)
	}
	if envelope.Questions == nil {
		return EducationalContent{}, fmt.Errorf("%w: missing questions", ErrMalformedResponse)
	}

	for i, q := range *envelope.Questions {
		if err := validateQuestion(q); err != nil {
			return EducationalContent{}, fmt.Errorf("%w: question %d: %v", ErrMalformedResponse, i, err)
		}
	}

	return EducationalContent{
		Summary:   *envelope.Summary,
		Questions: *envelope.Questions,
	}, nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("expected at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct_answer %d out of range", q.CorrectAnswer)
	}
	return nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the language tag line, e.g. ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
