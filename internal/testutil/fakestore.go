package testutil

import (
	"context"
	"fmt"
	"sync"

	"pianosheets/internal/githubstore"
)

// FakeStore is an in-memory githubstore.Store with real version-token
// semantics: every update bumps the file's SHA and a write carrying a stale
// SHA fails with ErrWriteConflict, like the hosted store.
type FakeStore struct {
	mu       sync.Mutex
	files    map[string]githubstore.File
	revision int
}

var _ githubstore.Store = (*FakeStore)(nil)

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{files: make(map[string]githubstore.File)}
}

// Put seeds a file without version checking.
func (s *FakeStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revision++
	s.files[path] = githubstore.File{
		Path:    path,
		Content: content,
		SHA:     fmt.Sprintf("rev-%d", s.revision),
	}
}

// Content returns the current content of a file, empty if absent.
func (s *FakeStore) Content(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files[path].Content
}

func (s *FakeStore) Configured() bool {
	return true
}

func (s *FakeStore) GetFile(_ context.Context, path string) (*githubstore.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, ok := s.files[path]
	if !ok {
		return nil, &githubstore.StoreError{Op: "get", Path: path, Err: githubstore.ErrFileNotFound}
	}
	return &file, nil
}

func (s *FakeStore) UpdateFile(_ context.Context, path, _, content, sha string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.files[path]
	if ok && current.SHA != sha {
		return &githubstore.StoreError{Op: "update", Path: path, Err: githubstore.ErrWriteConflict}
	}
	s.revision++
	s.files[path] = githubstore.File{
		Path:    path,
		Content: content,
		SHA:     fmt.Sprintf("rev-%d", s.revision),
	}
	return nil
}
