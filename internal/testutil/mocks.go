package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	"pianosheets/internal/githubstore"
)

// MockStore is a testify mock for the githubstore.Store interface.
type MockStore struct {
	mock.Mock
}

var _ githubstore.Store = (*MockStore)(nil)

func (m *MockStore) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStore) GetFile(ctx context.Context, path string) (*githubstore.File, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*githubstore.File), args.Error(1)
}

func (m *MockStore) UpdateFile(ctx context.Context, path, message, content, sha string) error {
	args := m.Called(ctx, path, message, content, sha)
	return args.Error(0)
}
