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

type IAuthUsecase interface {
	// Register creates a viewer account and returns its id.
	Register(ctx context.Context, req model.ReqRegister) (string, error)
	// Login verifies credentials and returns a fresh session token.
	Login(ctx context.Context, req model.ReqLogin) (string, error)
}

type authUsecase struct {
	userRepo repository.IUser
	hasher   *security.PasswordHasher
	tokens   *security.TokenService
}

func NewAuthUsecase(userRepo repository.IUser, hasher *security.PasswordHasher, tokens *security.TokenService) IAuthUsecase {
	return &authUsecase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, req model.ReqRegister) (string, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", apperr.Validation("Username, email and password are required fields.")
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return "", apperr.Store(err)
	}

	id := uuid.NewString()
	user := model.User{
		ID:           id,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.DefaultUserRole(),
		Status:       model.DefaultUserStatus(),
		CreatedBy:    id,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", apperr.Conflict("An account with that email or username already exists.")
		}
		logger.GetLogger().WithField("error", err).Error("register account failed")
		return "", apperr.Store(err)
	}
	return id, nil
}

func (u *authUsecase) Login(ctx context.Context, req model.ReqLogin) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", apperr.Validation("Email and password are required fields.")
	}

	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.NotFound("User not found.")
		}
		logger.GetLogger().WithField("error", err).Error("login lookup failed")
		return "", apperr.Store(err)
	}
	if !u.hasher.Verify(req.Password, user.PasswordHash) {
		return "", apperr.Unauthorized("Invalid password.")
	}
	if user.Status != model.UserActive {
		return "", apperr.Unauthorized("Account is not active.")
	}

	token, err := u.tokens.Issue(model.IdentityClaim{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Status:   user.Status,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("token issue failed")
		return "", apperr.Store(err)
	}
	return token, nil
}
