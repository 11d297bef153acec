package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/usecase"
)

func TestPlaybackUsecase_StartPlayback(t *testing.T) {
	repo := new(MockVideoViewRepository)
	repo.On("Record", mock.Anything, mock.MatchedBy(func(v model.VideoView) bool {
		return v.VideoID == "v-1" &&
			v.UserID == "u-1" &&
			v.Status == model.ViewValid &&
			v.ID != "" &&
			!v.ViewedAt.IsZero()
	})).Return(nil)

	result, err := usecase.NewPlaybackUsecase(repo).StartPlayback(context.Background(), "v-1", "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "v-1", result.VideoID)
	assert.NotEmpty(t, result.VideoViewID)
	repo.AssertNumberOfCalls(t, "Record", 1)
}

func TestPlaybackUsecase_StartPlayback_VideoMissing(t *testing.T) {
	repo := new(MockVideoViewRepository)
	repo.On("Record", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

	_, err := usecase.NewPlaybackUsecase(repo).StartPlayback(context.Background(), "v-missing", "u-1")
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	assert.Equal(t, "VIDEO_NOT_FOUND", apperr.CodeOf(err))
}

func TestPlaybackUsecase_StartPlayback_EmptyVideoID(t *testing.T) {
	repo := new(MockVideoViewRepository)

	_, err := usecase.NewPlaybackUsecase(repo).StartPlayback(context.Background(), "", "u-1")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	repo.AssertNotCalled(t, "Record")
}

func TestPlaybackUsecase_WatchHistory(t *testing.T) {
	viewedAt := time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC)
	repo := new(MockVideoViewRepository)
	repo.On("WatchHistory", mock.Anything, "u-1").Return([]model.WatchHistoryEntry{
		{ViewedAt: viewedAt, Video: model.EventVideo{ID: "v-1", Title: "Opening Night"}},
	}, nil)

	entries, err := usecase.NewPlaybackUsecase(repo).WatchHistory(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Opening Night", entries[0].Video.Title)
}
