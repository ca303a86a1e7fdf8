package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"pianosheets/internal/catalog"
	"pianosheets/internal/config"
	"pianosheets/internal/favorites"
	"pianosheets/internal/githubstore"
	"pianosheets/internal/handlers"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logging
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.GithubToken == "" {
		slog.Warn("GITHUB_TOKEN not set; store-backed endpoints will report the store as unconfigured")
	}

	// Construct the store client once; it is read-only after this point.
	store := githubstore.NewClient(cfg.GithubToken, cfg.GithubRepo, cfg.GithubBranch)
	catalogService := catalog.NewService(store, cfg.CatalogPath)
	favoritesService := favorites.NewService(store, cfg.FavoritesPath)

	router := handlers.NewRouter(cfg, catalogService, favoritesService)

	slog.Info("Starting piano sheets API server",
		"port", cfg.Port,
		"repository", cfg.GithubRepo,
		"branch", cfg.GithubBranch,
		"debug", cfg.Debug,
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
