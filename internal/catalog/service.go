// Package catalog loads the song catalog from the content store and provides
// the in-memory query layer over it. The catalog is external, read-only data
// refreshed out-of-band; it is fetched fresh on every request.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"pianosheets/internal/githubstore"
	"pianosheets/internal/models"
)

// Service is the catalog accessor.
type Service struct {
	store githubstore.Store
	path  string
}

// NewService creates a catalog accessor reading the file at path in the
// given store.
func NewService(store githubstore.Store, path string) *Service {
	return &Service{store: store, path: path}
}

// Load fetches and decodes the full catalog. Unlike the favorites file the
// catalog is well-formed JSON, so decoding is strict; any failure returns a
// nil slice, never a partial catalog.
func (s *Service) Load(ctx context.Context) ([]models.Song, error) {
	file, err := s.store.GetFile(ctx, s.path)
	if err != nil {
		slog.Error("failed to fetch catalog", "path", s.path, "error", err)
		return nil, err
	}

	var songs []models.Song
	if err := json.Unmarshal([]byte(file.Content), &songs); err != nil {
		slog.Error("failed to decode catalog", "path", s.path, "error", err)
		return nil, &githubstore.StoreError{Op: "decode", Path: s.path, Message: "catalog is not valid JSON", Err: err}
	}

	slog.Debug("catalog loaded", "path", s.path, "songs", len(songs))
	return songs, nil
}
