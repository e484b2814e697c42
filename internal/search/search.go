// Package search implements keyword search over a video transcript.
//
// A transcript is split into sentences on the literal '.' character. Every
// sentence containing the query (case-insensitively) becomes a match whose
// text is the sentence together with its immediate neighbours. Matches are
// ranked by how often the query occurs in the matched sentence alone.
package search

import (
	"sort"
	"strings"
)

// MaxResults is the number of matches returned by Search.
const MaxResults = 5

const (
	sentenceDelimiter = "."
	contextJoiner     = ". "
)

// Match is a single search hit.
type Match struct {
	// Text is the matched sentence plus its previous and next sentence, trimmed.
	Text string `json:"text"`
	// RelevanceScore counts the query occurrences in the matched sentence only.
	RelevanceScore int `json:"relevance_score"`
}

// Result is the ranked, truncated list of matches.
type Result struct {
	Results []Match `json:"results"`
	// TotalMatches counts every match found before truncation.
	TotalMatches int `json:"total_matches"`
}

// SplitSentences splits a transcript on every period. Empty segments are kept,
// so a transcript ending in "." yields a trailing empty sentence.
func SplitSentences(transcript string) []string {
	return strings.Split(transcript, sentenceDelimiter)
}

// Search returns up to MaxResults matches for query in transcript.
// An empty query is contained in every sentence and therefore matches all of them.
func Search(transcript, query string) Result {
	return search(transcript, query, MaxResults)
}

func search(transcript, query string, limit int) Result {
	sentences := SplitSentences(transcript)
	needle := strings.ToLower(query)

	matches := make([]Match, 0)
	for i, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		if !strings.Contains(lowered, needle) {
			continue
		}

		start := max(0, i-1)
		end := min(len(sentences), i+2)
		matches = append(matches, Match{
			Text:           strings.TrimSpace(strings.Join(sentences[start:end], contextJoiner)),
			RelevanceScore: strings.Count(lowered, needle),
		})
	}

	// Ties keep sentence order.
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].RelevanceScore > matches[b].RelevanceScore
	})

	total := len(matches)
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return Result{
		Results:      matches,
		TotalMatches: total,
	}
}

// Engine runs searches with a fixed result limit.
type Engine struct {
	limit int
}

// NewEngine creates an Engine returning at most limit matches per search.
// A non-positive limit falls back to MaxResults.
func NewEngine(limit int) *Engine {
	if limit <= 0 {
		limit = MaxResults
	}
	return &Engine{limit: limit}
}

// Search returns the ranked matches for query in transcript.
func (e *Engine) Search(transcript, query string) Result {
	return search(transcript, query, e.limit)
}
