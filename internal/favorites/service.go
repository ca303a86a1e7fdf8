package favorites

import (
	"context"
	"fmt"
	"time"

	"pianosheets/internal/githubstore"
	"pianosheets/internal/models"
)

// Service is the favorites accessor. Every call fetches fresh state from the
// store; nothing is cached between requests.
type Service struct {
	store githubstore.Store
	path  string
}

// NewService creates a favorites accessor reading and writing the file at
// path in the given store.
func NewService(store githubstore.Store, path string) *Service {
	return &Service{store: store, path: path}
}

// LoadAll fetches and parses the full favorites mapping.
func (s *Service) LoadAll(ctx context.Context) (models.Favorites, error) {
	file, err := s.store.GetFile(ctx, s.path)
	if err != nil {
		return nil, err
	}
	return Parse(file.Content), nil
}

// LoadUser returns one user's favorites. A user with no entry gets an empty
// list; absence is not an error.
func (s *Service) LoadUser(ctx context.Context, userID string) ([]string, error) {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return []string{}, err
	}
	favs, ok := all[userID]
	if !ok {
		return []string{}, nil
	}
	return favs, nil
}

// SaveUser replaces one user's list and commits the whole mapping back to
// the store. The write is read-modify-write: the commit carries the version
// token from this call's own reload, so a concurrent writer that lands in
// between surfaces as githubstore.ErrWriteConflict. There is no retry.
func (s *Service) SaveUser(ctx context.Context, userID string, songIDs []string) error {
	if !s.store.Configured() {
		return githubstore.ErrNotConfigured
	}

	file, err := s.store.GetFile(ctx, s.path)
	if err != nil {
		return err
	}

	all := Parse(file.Content)
	all[userID] = songIDs

	content := Serialize(all, time.Now())
	message := fmt.Sprintf("Update favorites for user %s", userID)
	return s.store.UpdateFile(ctx, s.path, message, content, file.SHA)
}
