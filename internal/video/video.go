// Package video extracts YouTube video identifiers from user-supplied references.
package video

import (
	"errors"
	"regexp"
)

// ErrInvalidID is returned when a reference is neither a recognised URL nor a bare video ID.
var ErrInvalidID = errors.New("invalid YouTube URL or video ID")

// idLength is the length of a bare YouTube video ID.
const idLength = 11

var (
	urlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
		regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
	}
	bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractID returns the video ID referenced by ref.
// URL patterns are tried in order; the first capture wins. A string of exactly
// eleven ID characters is accepted as an ID on its own.
func ExtractID(ref string) (string, error) {
	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(ref); m != nil {
			return m[1], nil
		}
	}

	if len(ref) == idLength && bareIDPattern.MatchString(ref) {
		return ref, nil
	}

	return "", ErrInvalidID
}

// WatchURL returns the canonical watch page URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
