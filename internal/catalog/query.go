package catalog

import (
	"math/rand"
	"sort"
	"strings"

	"pianosheets/internal/models"
)

// Simplify projects every song into its listing form, preserving catalog
// order.
func Simplify(songs []models.Song) []models.SimplifiedSong {
	simplified := make([]models.SimplifiedSong, len(songs))
	for i := range songs {
		simplified[i] = songs[i].Simplified()
	}
	return simplified
}

// FindByID returns the first song whose URL contains id or ends with "/"+id.
func FindByID(songs []models.Song, id string) (*models.Song, bool) {
	for i := range songs {
		url := songs[i].URL
		if strings.Contains(url, id) || strings.HasSuffix(url, "/"+id) {
			return &songs[i], true
		}
	}
	return nil, false
}

// Search returns every song whose title or artist contains the query,
// case-insensitively, in catalog order.
func Search(songs []models.Song, query string) []models.Song {
	query = strings.ToLower(query)
	results := []models.Song{}
	for _, song := range songs {
		title := strings.ToLower(song.Title)
		artist := strings.ToLower(song.Artist)
		if strings.Contains(title, query) || strings.Contains(artist, query) {
			results = append(results, song)
		}
	}
	return results
}

// Categories returns the distinct categories across all songs, sorted.
func Categories(songs []models.Song) []string {
	seen := make(map[string]struct{})
	for _, song := range songs {
		for _, cat := range song.Categories {
			seen[cat] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for cat := range seen {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

// FilterByCategory returns the songs carrying the named category,
// case-insensitively, in catalog order.
func FilterByCategory(songs []models.Song, name string) []models.Song {
	name = strings.ToLower(name)
	filtered := []models.Song{}
	for _, song := range songs {
		for _, cat := range song.Categories {
			if strings.ToLower(cat) == name {
				filtered = append(filtered, song)
				break
			}
		}
	}
	return filtered
}

// Random picks one song uniformly at random. It reports false on an empty
// catalog.
func Random(songs []models.Song) (*models.Song, bool) {
	if len(songs) == 0 {
		return nil, false
	}
	return &songs[rand.Intn(len(songs))], true
}

// Summary holds the catalog-side aggregates for the stats endpoint.
type Summary struct {
	TotalSongs      int
	TotalArtists    int
	TotalCategories int
	TotalSheets     int
	Difficulties    map[string]int
}

// Summarize aggregates the catalog. Distinct artists exclude the literal
// "Unknown Artist" placeholder; a missing difficulty is bucketed as
// "Unknown" here, unlike the "Normal" default used by the listing
// projection (both defaults kept as-is from their original call sites).
func Summarize(songs []models.Song) Summary {
	artists := make(map[string]struct{})
	categories := make(map[string]struct{})
	difficulties := make(map[string]int)
	totalSheets := 0

	for _, song := range songs {
		artist := song.Artist
		if artist == "" {
			artist = "Unknown"
		}
		if artist != "Unknown Artist" {
			artists[artist] = struct{}{}
		}

		difficulty := song.Difficulty
		if difficulty == "" {
			difficulty = "Unknown"
		}
		difficulties[difficulty]++

		for _, cat := range song.Categories {
			categories[cat] = struct{}{}
		}

		totalSheets += len(song.Sheets)
	}

	return Summary{
		TotalSongs:      len(songs),
		TotalArtists:    len(artists),
		TotalCategories: len(categories),
		TotalSheets:     totalSheets,
		Difficulties:    difficulties,
	}
}
