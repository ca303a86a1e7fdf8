package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pianosheets/internal/catalog"
	"pianosheets/internal/config"
	"pianosheets/internal/favorites"
)

// MetaHandler serves the service metadata and statistics endpoints.
type MetaHandler struct {
	cfg       *config.Config
	catalog   *catalog.Service
	favorites *favorites.Service
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(cfg *config.Config, catalogService *catalog.Service, favoritesService *favorites.Service) *MetaHandler {
	return &MetaHandler{cfg: cfg, catalog: catalogService, favorites: favoritesService}
}

// Index handles GET / - service metadata and the endpoint catalog.
func (h *MetaHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "online",
		"name":        "Matcha Piano Sheets API",
		"version":     "2.2.0",
		"description": "Multi-user API for Matcha Piano Player - GET/POST Support",
		"source":      "https://github.com/" + h.cfg.GithubRepo,
		"endpoints": gin.H{
			"GET /":                                    "API information",
			"GET /api/songs":                           "Get all songs (simplified)",
			"GET /api/songs/full":                      "Get all songs with sheet music",
			"GET /api/song/<id>":                       "Get specific song by ID",
			"GET /api/search?q=query":                  "Search songs by title or artist",
			"GET /api/categories":                      "Get all available categories",
			"GET /api/category/<name>":                 "Get songs by category",
			"GET /api/stats":                           "Get database statistics",
			"GET /api/random":                          "Get a random song",
			"GET /api/favorites/<user_id>":             "Get user favorites",
			"GET/POST /api/favorites/<user_id>/add":    "Add song to favorites (GET: ?song_id=X)",
			"GET/POST /api/favorites/<user_id>/remove": "Remove song from favorites (GET: ?song_id=X)",
			"GET /api/users/count":                     "Get total user count",
		},
	})
}

// Stats handles GET /api/stats. Catalog load failures are fatal; a favorites
// read failure only zeroes the user-side aggregates.
func (h *MetaHandler) Stats(c *gin.Context) {
	songs, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	allFavorites, _ := h.favorites.LoadAll(c.Request.Context())

	summary := catalog.Summarize(songs)
	c.JSON(http.StatusOK, gin.H{
		"total_songs":      summary.TotalSongs,
		"total_artists":    summary.TotalArtists,
		"total_categories": summary.TotalCategories,
		"total_sheets":     summary.TotalSheets,
		"total_users":      len(allFavorites),
		"total_favorites":  allFavorites.TotalEntries(),
		"difficulties":     summary.Difficulties,
		"database_file":    h.cfg.CatalogPath,
		"repository":       h.cfg.GithubRepo,
	})
}
