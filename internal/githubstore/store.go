// Package githubstore reads and writes repository files through the GitHub
// contents API. The catalog and favorites accessors treat it as their only
// persistence layer.
package githubstore

import (
	"context"
	"errors"
)

// File is a repository file snapshot. SHA is the version token for the blob
// as read; UpdateFile requires it and rejects the write if it has gone stale.
type File struct {
	Path    string
	Content string
	SHA     string
}

// Store defines the operations the accessors consume.
type Store interface {
	// Configured reports whether the store has credentials to talk to GitHub.
	Configured() bool

	// GetFile fetches a file at the configured branch. Large files that the
	// contents API will not inline are retrieved through a secondary fetch.
	GetFile(ctx context.Context, path string) (*File, error)

	// UpdateFile replaces a file's content in a single commit. sha must be
	// the version token from the read this write is based on.
	UpdateFile(ctx context.Context, path, message, content, sha string) error
}

var (
	// ErrNotConfigured is returned when no GITHUB_TOKEN was provided.
	ErrNotConfigured = errors.New("GitHub not configured - check GITHUB_TOKEN environment variable")

	// ErrWriteConflict is returned when the version token passed to
	// UpdateFile no longer matches the file's current revision.
	ErrWriteConflict = errors.New("file changed upstream since last read")

	// ErrFileNotFound is returned when the requested path does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// StoreError represents a failed store operation.
type StoreError struct {
	Op      string
	Path    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	msg := "github " + e.Op + " failed for " + e.Path
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += " - " + e.Err.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
