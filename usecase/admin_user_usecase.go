package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"eventstream/domain/apperr"
	"eventstream/domain/model"
	"eventstream/domain/repository"
	"eventstream/infrastructure/logger"
	"eventstream/infrastructure/security"
)

// IAdminUserUsecase is administrative account management. The role is
// selectable here, which is how admin accounts come into existence.
type IAdminUserUsecase interface {
	Create(ctx context.Context, req model.ReqAdminCreateUser, adminID string) (string, error)
	Update(ctx context.Context, userID string, req model.ReqAdminUpdateUser, adminID string) error
	Delete(ctx context.Context, userID, adminID string) error
	List(ctx context.Context) ([]model.User, error)
}

type adminUserUsecase struct {
	userRepo repository.IUser
	hasher   *security.PasswordHasher
}

func NewAdminUserUsecase(userRepo repository.IUser, hasher *security.PasswordHasher) IAdminUserUsecase {
	return &adminUserUsecase{userRepo: userRepo, hasher: hasher}
}

func (u *adminUserUsecase) Create(ctx context.Context, req model.ReqAdminCreateUser, adminID string) (string, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", apperr.Validation("Username, email and password are required fields.")
	}
	role := req.Role
	if role == "" {
		role = model.DefaultUserRole()
	}
	if !role.Valid() {
		return "", apperr.Validation("Unknown role.")
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return "", apperr.Store(err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       model.UserActive,
		CreatedBy:    adminID,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", apperr.Conflict("An account with that email or username already exists.")
		}
		logger.GetLogger().WithField("error", err).Error("admin create user failed")
		return "", apperr.Store(err)
	}
	return user.ID, nil
}

func (u *adminUserUsecase) Update(ctx context.Context, userID string, req model.ReqAdminUpdateUser, adminID string) error {
	if req.Empty() {
		return apperr.Validation("No valid fields to update.")
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
	if req.Role != nil {
		if !req.Role.Valid() {
			return apperr.Validation("Unknown role.")
		}
		cols["role"] = string(*req.Role)
	}

	if err := u.userRepo.Update(ctx, userID, cols, adminID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperr.NotFound("User not found or no changes made.")
		case errors.Is(err, repository.ErrDuplicate):
			return apperr.Conflict("Username is already taken.")
		}
		logger.GetLogger().WithField("error", err).Error("admin update user failed")
		return apperr.Store(err)
	}
	return nil
}

func (u *adminUserUsecase) Delete(ctx context.Context, userID, adminID string) error {
	if err := u.userRepo.Deactivate(ctx, userID, adminID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found or already inactive.")
		}
		logger.GetLogger().WithField("error", err).Error("admin delete user failed")
		return apperr.Store(err)
	}
	return nil
}

func (u *adminUserUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.ListActive(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("list users failed")
		return nil, apperr.Store(err)
	}
	return users, nil
}
