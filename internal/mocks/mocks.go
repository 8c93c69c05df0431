// File: internal/mocks/mocks.go
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/store"
)

// -- Repository Mock --

// MockRepository mocks store.Repository.
type MockRepository struct {
	mock.Mock
}

var _ store.Repository = (*MockRepository)(nil)

func (m *MockRepository) SaveRun(ctx context.Context, run store.Run) (store.Run, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(store.Run), args.Error(1)
}

func (m *MockRepository) LoadRun(ctx context.Context, id uuid.UUID) (store.Run, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.Run), args.Error(1)
}

func (m *MockRepository) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	args := m.Called(ctx, limit)
	var runs []store.RunSummary
	if v := args.Get(0); v != nil {
		runs = v.([]store.RunSummary)
	}
	return runs, args.Error(1)
}

// -- Store Provider Mock --

// MockStoreProvider hands out a repository without touching a database.
type MockStoreProvider struct {
	mock.Mock
}

// Create returns the configured repository. A nil repository is returned as
// a nil interface so callers can check it.
func (m *MockStoreProvider) Create(ctx context.Context, cfg config.Interface) (store.Repository, func(), error) {
	args := m.Called(ctx, cfg)
	var repo store.Repository
	if v := args.Get(0); v != nil {
		repo = v.(store.Repository)
	}
	var cleanup func()
	if v := args.Get(1); v != nil {
		cleanup = v.(func())
	}
	return repo, cleanup, args.Error(2)
}
