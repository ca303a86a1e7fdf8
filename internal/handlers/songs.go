package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pianosheets/internal/catalog"
)

// SongHandler serves the read-only catalog endpoints. Every request loads
// the catalog fresh from the store; there is no cross-request state.
type SongHandler struct {
	catalog *catalog.Service
}

// NewSongHandler creates a new song handler.
func NewSongHandler(catalogService *catalog.Service) *SongHandler {
	return &SongHandler{catalog: catalogService}
}

// ListSongs handles GET /api/songs - the simplified catalog listing.
func (h *SongHandler) ListSongs(c *gin.Context) {
	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	simplified := catalog.Simplify(songs)
	c.JSON(http.StatusOK, gin.H{
		"count": len(simplified),
		"songs": simplified,
	})
}

// ListSongsFull handles GET /api/songs/full - complete records including
// sheet music.
func (h *SongHandler) ListSongsFull(c *gin.Context) {
	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(songs),
		"songs": songs,
	})
}

// GetSong handles GET /api/song/*id. The ID is a wildcard because derived
// IDs may themselves contain slashes. An empty segment is not a valid route,
// not a lookup that matches everything.
func (h *SongHandler) GetSong(c *gin.Context) {
	songID := strings.TrimPrefix(c.Param("id"), "/")
	if songID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
		return
	}

	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	song, ok := catalog.FindByID(songs, songID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
		return
	}
	c.JSON(http.StatusOK, song)
}

// SearchSongs handles GET /api/search?q=query - case-insensitive substring
// match on title or artist, returning full records.
func (h *SongHandler) SearchSongs(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Query parameter "q" is required`})
		return
	}

	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := catalog.Search(songs, query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// ListCategories handles GET /api/categories.
func (h *SongHandler) ListCategories(c *gin.Context) {
	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	categories := catalog.Categories(songs)
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	})
}

// SongsByCategory handles GET /api/category/*name. An empty name is not a
// valid route.
func (h *SongHandler) SongsByCategory(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
		return
	}

	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := catalog.FilterByCategory(songs, name)
	c.JSON(http.StatusOK, gin.H{
		"category": name,
		"count":    len(filtered),
		"songs":    filtered,
	})
}

// RandomSong handles GET /api/random - one uniformly random full record.
func (h *SongHandler) RandomSong(c *gin.Context) {
	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	song, ok := catalog.Random(songs)
	if !ok {
		slog.Debug("random pick on empty catalog")
		c.JSON(http.StatusNotFound, gin.H{"error": "No songs available"})
		return
	}
	c.JSON(http.StatusOK, song)
}
