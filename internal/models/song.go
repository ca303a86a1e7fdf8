package models

import (
	"encoding/json"
	"strings"
)

// Song represents one catalog entry. The catalog file is hand-maintained, so
// every field except title/url may be absent; defaults are applied at
// projection time, not at decode time.
type Song struct {
	Title      string   `json:"title"`
	Artist     string   `json:"artist,omitempty"`
	URL        string   `json:"url"`
	Difficulty string   `json:"difficulty,omitempty"`
	Thumbnail  string   `json:"thumbnail,omitempty"`
	Categories []string `json:"categories,omitempty"`

	// Sheets holds the sheet-music payload verbatim. The API never inspects
	// individual sheet entries, only counts and re-emits them.
	Sheets []json.RawMessage `json:"sheets,omitempty"`
}

// ID derives the song identifier from its URL: the segment after the last
// slash. An empty URL yields an empty ID.
func (s *Song) ID() string {
	if s.URL == "" {
		return ""
	}
	parts := strings.Split(s.URL, "/")
	return parts[len(parts)-1]
}

// SimplifiedSong is the reduced projection used by the default listing
// endpoint. It excludes the sheet-music payload and fills in display
// defaults for missing fields.
type SimplifiedSong struct {
	Title      string   `json:"title"`
	Artist     string   `json:"artist"`
	URL        string   `json:"url"`
	Difficulty string   `json:"difficulty"`
	Thumbnail  string   `json:"thumbnail"`
	ID         string   `json:"id"`
	Categories []string `json:"categories"`
}

// Simplified projects the song into its listing form, defaulting artist to
// "Unknown" and difficulty to "Normal".
func (s *Song) Simplified() SimplifiedSong {
	artist := s.Artist
	if artist == "" {
		artist = "Unknown"
	}
	difficulty := s.Difficulty
	if difficulty == "" {
		difficulty = "Normal"
	}
	categories := s.Categories
	if categories == nil {
		categories = []string{}
	}
	return SimplifiedSong{
		Title:      s.Title,
		Artist:     artist,
		URL:        s.URL,
		Difficulty: difficulty,
		Thumbnail:  s.Thumbnail,
		ID:         s.ID(),
		Categories: categories,
	}
}
