package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"pianosheets/internal/catalog"
	"pianosheets/internal/config"
	"pianosheets/internal/favorites"
	"pianosheets/internal/githubstore"
	"pianosheets/internal/handlers"
	"pianosheets/internal/testutil"
)

const (
	catalogPath   = "sheets/piano_sheets.json"
	favoritesPath = "users/data.js"
)

func testConfig() *config.Config {
	return &config.Config{
		GithubRepo:    "owner/sheets-db",
		GithubBranch:  "main",
		CatalogPath:   catalogPath,
		FavoritesPath: favoritesPath,
		Port:          "5000",
	}
}

// newTestHelper wires the full router against the given store.
func newTestHelper(t *testing.T, store githubstore.Store) *testutil.HTTPTestHelper {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	router := handlers.NewRouter(cfg,
		catalog.NewService(store, cfg.CatalogPath),
		favorites.NewService(store, cfg.FavoritesPath),
	)

	helper := testutil.NewHTTPTestHelper(t)
	helper.SetRouter(router)
	return helper
}

// seededStore returns a fake store holding the fixture catalog and
// favorites files.
func seededStore() *testutil.FakeStore {
	store := testutil.NewFakeStore()
	store.Put(catalogPath, testutil.CatalogFixtureJSON())
	store.Put(favoritesPath, testutil.FavoritesFixtureJS)
	return store
}
