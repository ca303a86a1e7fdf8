package handlers

import (
	"errors"
	"net/http"
	"slices"
	"sort"

	"github.com/gin-gonic/gin"
	"pianosheets/internal/favorites"
	"pianosheets/internal/githubstore"
)

// FavoritesHandler serves the favorites read and mutation endpoints.
type FavoritesHandler struct {
	favorites *favorites.Service
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(favoritesService *favorites.Service) *FavoritesHandler {
	return &FavoritesHandler{favorites: favoritesService}
}

// favoriteRequest is the POST body for the add/remove endpoints.
type favoriteRequest struct {
	SongID string `json:"song_id"`
}

// songIDParam extracts song_id from the query string (GET) or the JSON
// body (POST).
func songIDParam(c *gin.Context) string {
	if c.Request.Method == http.MethodGet {
		return c.Query("song_id")
	}
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.SongID
}

// GetFavorites handles GET /api/favorites/:user_id. Read failures degrade to
// an empty list; only a missing store configuration is surfaced.
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	userID := c.Param("user_id")

	favs, err := h.favorites.LoadUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, githubstore.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		favs = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":   userID,
		"count":     len(favs),
		"favorites": favs,
	})
}

// AddFavorite handles GET/POST /api/favorites/:user_id/add. Adding an ID
// already present is a no-op reported as such with 200.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	userID := c.Param("user_id")

	songID := songIDParam(c)
	if songID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "song_id is required"})
		return
	}

	favs, err := h.favorites.LoadUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if slices.Contains(favs, songID) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Already in favorites",
			"user_id":   userID,
			"favorites": favs,
		})
		return
	}

	favs = append(favs, songID)
	if err := h.favorites.SaveUser(c.Request.Context(), userID, favs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Added to favorites",
		"user_id":   userID,
		"count":     len(favs),
		"favorites": favs,
	})
}

// RemoveFavorite handles GET/POST /api/favorites/:user_id/remove. Removing
// an absent ID is a no-op reported as such with 200.
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	userID := c.Param("user_id")

	songID := songIDParam(c)
	if songID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "song_id is required"})
		return
	}

	favs, err := h.favorites.LoadUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	index := slices.Index(favs, songID)
	if index < 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Not in favorites",
			"user_id":   userID,
			"favorites": favs,
		})
		return
	}

	favs = slices.Delete(favs, index, index+1)
	if err := h.favorites.SaveUser(c.Request.Context(), userID, favs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Removed from favorites",
		"user_id":   userID,
		"count":     len(favs),
		"favorites": favs,
	})
}

// UserCount handles GET /api/users/count. A user exists exactly when it has
// a key in the favorites mapping.
func (h *FavoritesHandler) UserCount(c *gin.Context) {
	all, err := h.favorites.LoadAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	users := all.UserIDs()
	sort.Strings(users)
	c.JSON(http.StatusOK, gin.H{
		"total_users": len(users),
		"users":       users,
	})
}
