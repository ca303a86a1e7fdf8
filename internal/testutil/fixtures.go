package testutil

import (
	"encoding/json"

	"pianosheets/internal/models"
)

// CatalogFixture returns a small catalog covering the field shapes the
// handlers care about: missing artist/difficulty, overlapping categories,
// and a sheet payload.
func CatalogFixture() []models.Song {
	return []models.Song{
		{
			Title:      "Clair de Lune",
			Artist:     "Debussy",
			URL:        "https://sheets.example/songs/clair-de-lune",
			Difficulty: "Hard",
			Thumbnail:  "https://sheets.example/thumbs/cdl.png",
			Categories: []string{"Classical", "Calm"},
			Sheets:     []json.RawMessage{json.RawMessage(`{"page":1}`), json.RawMessage(`{"page":2}`)},
		},
		{
			Title:      "Gymnopedie No 1",
			Artist:     "Satie",
			URL:        "https://sheets.example/songs/gymnopedie-1",
			Categories: []string{"classical"},
		},
		{
			Title: "Merry Go Round of Life",
			URL:   "https://sheets.example/songs/merry-go-round",
		},
	}
}

// CatalogFixtureJSON returns the fixture catalog as the JSON text the store
// would serve.
func CatalogFixtureJSON() string {
	data, err := json.Marshal(CatalogFixture())
	if err != nil {
		panic(err)
	}
	return string(data)
}

// FavoritesFixtureJS returns a favorites file in the loose module format the
// tolerant parser has to handle.
const FavoritesFixtureJS = `// Auto-generated favorites list
// Multi-user support - each user has their own favorites
// Updated: 2026-01-15 10:30:00 UTC

export const favorites = {
  'alice': ['clair-de-lune', 'gymnopedie-1'],
  "bob": ["merry-go-round"], // bob only has one
};
`
