package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"pianosheets/internal/catalog"
	"pianosheets/internal/config"
	"pianosheets/internal/favorites"
)

// NewRouter builds the gin engine with every API route registered.
func NewRouter(cfg *config.Config, catalogService *catalog.Service, favoritesService *favorites.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), corsMiddleware(), recoveryMiddleware())

	songHandler := NewSongHandler(catalogService)
	favoritesHandler := NewFavoritesHandler(favoritesService)
	metaHandler := NewMetaHandler(cfg, catalogService, favoritesService)

	router.GET("/", metaHandler.Index)

	api := router.Group("/api")
	{
		api.GET("/songs", songHandler.ListSongs)
		api.GET("/songs/full", songHandler.ListSongsFull)
		api.GET("/song/*id", songHandler.GetSong)
		api.GET("/search", songHandler.SearchSongs)
		api.GET("/categories", songHandler.ListCategories)
		api.GET("/category/*name", songHandler.SongsByCategory)
		api.GET("/random", songHandler.RandomSong)
		api.GET("/stats", metaHandler.Stats)

		api.GET("/favorites/:user_id", favoritesHandler.GetFavorites)
		api.GET("/favorites/:user_id/add", favoritesHandler.AddFavorite)
		api.POST("/favorites/:user_id/add", favoritesHandler.AddFavorite)
		api.GET("/favorites/:user_id/remove", favoritesHandler.RemoveFavorite)
		api.POST("/favorites/:user_id/remove", favoritesHandler.RemoveFavorite)

		api.GET("/users/count", favoritesHandler.UserCount)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return router
}

// corsMiddleware allows any origin; the API is consumed directly from
// browser-based players.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// recoveryMiddleware converts panics into the API's generic 500 body.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("handler panicked", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
