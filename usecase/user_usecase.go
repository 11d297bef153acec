package usecase

import (
	"context"
	"errors"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
	"eventstream/infrastructure/security"
)

// IUserUsecase is the self-service side of account management.
type IUserUsecase interface {
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req model.ReqUpdateProfile) error
	Deactivate(ctx context.Context, userID string) error
}

type userUsecase struct {
	userRepo repository.IUser
	hasher   *security.PasswordHasher
}

func NewUserUsecase(userRepo repository.IUser, hasher *security.PasswordHasher) IUserUsecase {
	return &userUsecase{userRepo: userRepo, hasher: hasher}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Profile{}, apperr.NotFound("User not found.")
		}
		logger.GetLogger().WithField("error", err).Error("profile lookup failed")
		return model.Profile{}, apperr.Store(err)
	}
	// An inactive account is indistinguishable from an absent one here.
	if user.Status == model.UserInactive {
		return model.Profile{}, apperr.NotFound("User not found.")
	}
	return model.Profile{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, req model.ReqUpdateProfile) error {
	if req.Empty() {
		return apperr.Validation("No valid fields to update.")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found.")
		}
		logger.GetLogger().WithField("error", err).Error("profile update lookup failed")
		return apperr.Store(err)
	}
	if user.Status != model.UserActive {
		return apperr.Validation("Account is not active.").WithCode("INACTIVE_ACCOUNT")
	}

	cols := map[string]interface{}{}
	if req.Username != nil {
		cols["username"] = *req.Username
	}
	if req.Password != nil {
		hash, err := u.hasher.Hash(*req.Password)
		if err != nil {
			return apperr.Store(err)
		}
		cols["password_hash"] = hash
	}

	if err := u.userRepo.Update(ctx, userID, cols, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperr.NotFound("User not found or no changes made.")
		case errors.Is(err, repository.ErrDuplicate):
			return apperr.Conflict("Username is already taken.")
		}
		logger.GetLogger().WithField("error", err).Error("profile update failed")
		return apperr.Store(err)
	}
	return nil
}

func (u *userUsecase) Deactivate(ctx context.Context, userID string) error {
	if err := u.userRepo.Deactivate(ctx, userID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Account not found or already inactive.")
		}
		logger.GetLogger().WithField("error", err).Error("account deactivation failed")
		return apperr.Store(err)
	}
	return nil
}
