package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
	"eventstream/infrastructure/metrics"
)

type IPlaybackUsecase interface {
	// StartPlayback records one view for videoID on behalf of userID. The
	// view row either commits in full or not at all; no counter drifts from
	// the ledger because counts are always derived from the rows.
	StartPlayback(ctx context.Context, videoID, userID string) (model.PlaybackResult, error)
	WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error)
}

type playbackUsecase struct {
	viewRepo repository.IVideoView
}

func NewPlaybackUsecase(viewRepo repository.IVideoView) IPlaybackUsecase {
	return &playbackUsecase{viewRepo: viewRepo}
}

func (u *playbackUsecase) StartPlayback(ctx context.Context, videoID, userID string) (model.PlaybackResult, error) {
	if videoID == "" {
		return model.PlaybackResult{}, apperr.Validation("Video id is a required field.")
	}

	view := model.VideoView{
		ID:       uuid.NewString(),
		VideoID:  videoID,
		UserID:   userID,
		ViewedAt: time.Now().UTC(),
		Status:   model.DefaultVideoViewStatus(),
	}
	if err := u.viewRepo.Record(ctx, view); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PlaybackResult{}, apperr.NotFound("Video not found.").WithCode("VIDEO_NOT_FOUND")
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"video_id": videoID,
			"user_id":  userID,
			"error":    err,
		}).Error("record playback failed")
		return model.PlaybackResult{}, apperr.Playback(err)
	}

	metrics.VideoViewsRecorded.Inc()
	return model.PlaybackResult{VideoViewID: view.ID, VideoID: view.VideoID}, nil
}

func (u *playbackUsecase) WatchHistory(ctx context.Context, userID string) ([]model.WatchHistoryEntry, error) {
	entries, err := u.viewRepo.WatchHistory(ctx, userID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("watch history failed")
		return nil, apperr.Store(err)
	}
	return entries, nil
}
