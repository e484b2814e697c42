// Package transcript retrieves the spoken-content transcript of a YouTube video.
package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"transcript-tutor/internal/contextutil"
)

// ErrUnavailable is returned when a video has no usable captions.
var ErrUnavailable = errors.New("transcript unavailable")

const captionTracksKey = `"captionTracks":`

// Fetcher retrieves transcripts by video ID.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// Options configures a YouTubeFetcher.
type Options struct {
	// BaseURL is the YouTube origin, e.g. "https://www.youtube.com".
	BaseURL string
	// Languages lists preferred caption language codes in priority order.
	Languages []string
	// Timeout bounds a whole fetch (watch page plus caption track).
	Timeout time.Duration
	// Limiter paces outbound requests. Nil disables pacing.
	Limiter *rate.Limiter
	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client
}

// YouTubeFetcher reads caption tracks from the YouTube watch page.
type YouTubeFetcher struct {
	baseURL   string
	languages []string
	timeout   time.Duration
	limiter   *rate.Limiter
	client    *http.Client
}

// NewYouTubeFetcher creates a YouTubeFetcher.
func NewYouTubeFetcher(opts Options) *YouTubeFetcher {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://www.youtube.com"
	}
	languages := opts.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTubeFetcher{
		baseURL:   baseURL,
		languages: languages,
		timeout:   opts.Timeout,
		limiter:   opts.Limiter,
		client:    client,
	}
}

// captionTrack is one entry of the player response's captionTracks array.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// timedText is the XML document served for a caption track.
type timedText struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch returns the cleaned transcript for videoID.
func (f *YouTubeFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	watchURL := fmt.Sprintf("%s/watch?v=%s", f.baseURL, url.QueryEscape(videoID))
	page, err := f.get(ctx, watchURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch watch page: %w", err)
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return "", err
	}

	track := selectTrack(tracks, f.languages)
	logger.DebugContext(ctx, "caption track selected",
		"video_id", videoID,
		"language", track.LanguageCode,
		"kind", track.Kind,
		"available_tracks", len(tracks),
	)

	trackURL, err := f.resolve(track.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid caption track URL: %w", err)
	}

	raw, err := f.get(ctx, trackURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch caption track: %w", err)
	}

	segments, err := parseTimedText(raw)
	if err != nil {
		return "", err
	}

	text := Join(segments)
	if text == "" {
		return "", ErrUnavailable
	}

	logger.InfoContext(ctx, "transcript fetched", "video_id", videoID, "segments", len(segments), "length", len(text))
	return text, nil
}

// resolve makes a caption track URL absolute against the fetcher's base URL.
func (f *YouTubeFetcher) resolve(ref string) (string, error) {
	base, err := url.Parse(f.baseURL)
	if err != nil {
		return "", err
	}
	u, err := base.Parse(ref)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (f *YouTubeFetcher) get(ctx context.Context, target string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Language", strings.Join(f.languages, ",")+";q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

// parseCaptionTracks decodes the captionTracks array embedded in a watch page.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	idx := bytes.Index(page, []byte(captionTracksKey))
	if idx < 0 {
		return nil, ErrUnavailable
	}

	var tracks []captionTrack
	dec := json.NewDecoder(bytes.NewReader(page[idx+len(captionTracksKey):]))
	if err := dec.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("failed to decode caption tracks: %w", err)
	}

	usable := tracks[:0]
	for _, t := range tracks {
		if t.BaseURL != "" {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return nil, ErrUnavailable
	}
	return usable, nil
}

// selectTrack prefers a manual track in a preferred language, then an
// auto-generated one, then whatever comes first.
func selectTrack(tracks []captionTrack, languages []string) captionTrack {
	for _, wantASR := range []bool{false, true} {
		for _, lang := range languages {
			for _, t := range tracks {
				if (t.Kind == "asr") == wantASR && matchesLanguage(t.LanguageCode, lang) {
					return t
				}
			}
		}
	}
	return tracks[0]
}

func matchesLanguage(code, want string) bool {
	code = strings.ToLower(code)
	want = strings.ToLower(want)
	return code == want || strings.HasPrefix(code, want+"-")
}

// parseTimedText extracts the unescaped text of every caption segment.
func parseTimedText(raw []byte) ([]string, error) {
	var doc timedText
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode caption track: %w", err)
	}

	segments := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// Caption bodies are HTML-escaped a second time inside the XML.
		text := html.UnescapeString(t.Body)
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, text)
	}
	return segments, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
