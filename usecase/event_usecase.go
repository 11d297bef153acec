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

type IEventUsecase interface {
	Create(ctx context.Context, req model.ReqCreateEvent, adminID string) (string, error)
	GetByID(ctx context.Context, id string) (model.Event, error)
	// List serves both the admin catalog and the viewer event listing:
	// non-cancelled events with their nested video.
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id string, patch model.EventPatch, adminID string) error
	Delete(ctx context.Context, id, adminID string) error
}

type eventUsecase struct {
	eventRepo repository.IEvent
}

func NewEventUsecase(eventRepo repository.IEvent) IEventUsecase {
	return &eventUsecase{eventRepo: eventRepo}
}

func (u *eventUsecase) Create(ctx context.Context, req model.ReqCreateEvent, adminID string) (string, error) {
	if req.Name == "" {
		return "", apperr.Validation("Event name is a required field.")
	}
	if req.StartDate.IsZero() {
		return "", apperr.Validation("Event start date is a required field.")
	}

	event := model.Event{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      model.DefaultEventStatus(),
		CreatedBy:   adminID,
		UpdatedBy:   adminID,
	}
	if err := u.eventRepo.Create(ctx, event, req.VideoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.NotFound("Linked video not found.")
		}
		logger.GetLogger().WithField("error", err).Error("create event failed")
		return "", apperr.Store(err)
	}
	return event.ID, nil
}

func (u *eventUsecase) GetByID(ctx context.Context, id string) (model.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Event{}, apperr.NotFound("Event not found.")
		}
		logger.GetLogger().WithField("error", err).Error("get event failed")
		return model.Event{}, apperr.Store(err)
	}
	return event, nil
}

func (u *eventUsecase) List(ctx context.Context) ([]model.Event, error) {
	events, err := u.eventRepo.List(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("list events failed")
		return nil, apperr.Store(err)
	}
	return events, nil
}

func (u *eventUsecase) Update(ctx context.Context, id string, patch model.EventPatch, adminID string) error {
	if patch.Empty() {
		return apperr.Validation("No valid fields to update.")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return apperr.Validation("Unknown event status.")
	}

	if err := u.eventRepo.Update(ctx, id, patch, adminID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperr.NotFound("Event not found.")
		case errors.Is(err, repository.ErrImmutable):
			return apperr.Immutable("Event is cancelled and can no longer be modified.")
		}
		logger.GetLogger().WithField("error", err).Error("update event failed")
		return apperr.Store(err)
	}
	return nil
}

func (u *eventUsecase) Delete(ctx context.Context, id, adminID string) error {
	if err := u.eventRepo.Cancel(ctx, id, adminID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Event not found.")
		}
		logger.GetLogger().WithField("error", err).Error("cancel event failed")
		return apperr.Store(err)
	}
	return nil
}
