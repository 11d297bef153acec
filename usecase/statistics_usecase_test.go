package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/usecase"
)

func TestStatisticsUsecase_Dashboard(t *testing.T) {
	repo := new(MockStatisticsRepository)
	repo.On("UserStats", mock.Anything).Return(model.UserStats{TotalActiveUsers: 8, NewUsersLast30D: 2}, nil)
	repo.On("EventStats", mock.Anything).Return(model.EventStats{TotalActiveEvents: 4}, nil)
	repo.On("ViewStats", mock.Anything).Return(model.ViewStats{TotalViews: 250, UniqueViewers: 40}, nil)

	// A nil cache is a valid always-missing cache.
	uc := usecase.NewStatisticsUsecase(repo, nil)

	stats, err := uc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(8), stats.Users.TotalActiveUsers)
	assert.Equal(t, int64(4), stats.Events.TotalActiveEvents)
	assert.Equal(t, int64(250), stats.Views.TotalViews)
	repo.AssertExpectations(t)
}

func TestStatisticsUsecase_ViewStats_RepoFailure(t *testing.T) {
	repo := new(MockStatisticsRepository)
	repo.On("ViewStats", mock.Anything).Return(model.ViewStats{}, errors.New("connection reset"))

	uc := usecase.NewStatisticsUsecase(repo, nil)

	_, err := uc.ViewStats(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "VIEW_STATS_ERROR", apperr.CodeOf(err))
}
