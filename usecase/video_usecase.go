package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
)

type IVideoUsecase interface {
	Create(ctx context.Context, req model.ReqCreateVideo, adminID string) (string, error)
	GetByID(ctx context.Context, id string) (model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	Update(ctx context.Context, id string, patch model.VideoPatch, adminID string) error
	Delete(ctx context.Context, id, adminID string) error
}

type videoUsecase struct {
	videoRepo repository.IVideo
}

func NewVideoUsecase(videoRepo repository.IVideo) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo}
}

func (u *videoUsecase) Create(ctx context.Context, req model.ReqCreateVideo, adminID string) (string, error) {
	if req.Title == "" {
		return "", apperr.Validation("Video title is a required field.")
	}
	if req.FilePath == "" {
		return "", apperr.Validation("Video file path is a required field.")
	}
	if req.Duration < 0 {
		return "", apperr.Validation("Video duration cannot be negative.")
	}

	video := model.Video{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		FilePath:      req.FilePath,
		ThumbnailPath: req.ThumbnailPath,
		Duration:      req.Duration,
		EventID:       req.EventID,
		Status:        model.DefaultVideoStatus(),
		CreatedBy:     adminID,
		UpdatedBy:     adminID,
	}
	if err := u.videoRepo.Create(ctx, video); err != nil {
		logger.GetLogger().WithField("error", err).Error("create video failed")
		return "", apperr.Store(err)
	}
	return video.ID, nil
}

func (u *videoUsecase) GetByID(ctx context.Context, id string) (model.Video, error) {
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Video{}, apperr.NotFound("Video not found.")
		}
		logger.GetLogger().WithField("error", err).Error("get video failed")
		return model.Video{}, apperr.Store(err)
	}
	return video, nil
}

func (u *videoUsecase) List(ctx context.Context) ([]model.Video, error) {
	videos, err := u.videoRepo.List(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("list videos failed")
		return nil, apperr.Store(err)
	}
	return videos, nil
}

func (u *videoUsecase) Update(ctx context.Context, id string, patch model.VideoPatch, adminID string) error {
	if patch.Empty() {
		return apperr.Validation("No valid fields to update.")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return apperr.Validation("Unknown video status.")
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return apperr.Validation("Video duration cannot be negative.")
	}

	if err := u.videoRepo.Update(ctx, id, patch, adminID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperr.NotFound("Video not found.")
		case errors.Is(err, repository.ErrImmutable):
			return apperr.Immutable("Video is archived and can no longer be modified.")
		}
		logger.GetLogger().WithField("error", err).Error("update video failed")
		return apperr.Store(err)
	}
	return nil
}

func (u *videoUsecase) Delete(ctx context.Context, id, adminID string) error {
	if err := u.videoRepo.Archive(ctx, id, adminID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Video not found.")
		}
		logger.GetLogger().WithField("error", err).Error("archive video failed")
		return apperr.Store(err)
	}
	return nil
}
