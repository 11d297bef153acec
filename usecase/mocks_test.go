package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eventstream/domain/model"
)

// Mock implementations

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, cols map[string]interface{}, updatedBy string) error {
	args := m.Called(ctx, id, cols, updatedBy)
	return args.Error(0)
}

func (m *MockUserRepository) Deactivate(ctx context.Context, id, updatedBy string) error {
	args := m.Called(ctx, id, updatedBy)
	return args.Error(0)
}

func (m *MockUserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event model.Event, videoID *string) error {
	args := m.Called(ctx, event, videoID)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (model.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, id string, patch model.EventPatch, updatedBy string) error {
	args := m.Called(ctx, id, patch, updatedBy)
	return args.Error(0)
}

func (m *MockEventRepository) Cancel(ctx context.Context, id, updatedBy string) error {
	args := m.Called(ctx, id, updatedBy)
	return args.Error(0)
}

type MockVideoViewRepository struct {
	mock.Mock
}

func (m *MockVideoViewRepository) Record(ctx context.Context, view model.VideoView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockVideoViewRepository) WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WatchHistoryEntry), args.Error(1)
}

type MockStatisticsRepository struct {
	mock.Mock
}

func (m *MockStatisticsRepository) UserStats(ctx context.Context) (model.UserStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.UserStats), args.Error(1)
}

func (m *MockStatisticsRepository) EventStats(ctx context.Context) (model.EventStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.EventStats), args.Error(1)
}

func (m *MockStatisticsRepository) ViewStats(ctx context.Context) (model.ViewStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.ViewStats), args.Error(1)
}
