package service

import (
	"context"

	"github.com/taskman-backend/auth-service/internal/auth/domain"
	"github.com/taskman-backend/auth-service/internal/auth/dto"
	autherror "github.com/taskman-backend/auth-service/internal/errors"
	"go.uber.org/zap"
)

type UserService struct {
	repo   domain.UserRepository
	hasher PasswordHasher
	logger *zap.Logger
}

func NewUserService(repo domain.UserRepository, hasher PasswordHasher, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return &dto.UserOutput{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role.String(),
	}, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID int64, input dto.ChangePasswordInput) error {
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if !s.hasher.Verify(input.OldPassword, user.PasswordHash) {
		s.logger.Warn("password change rejected: old password mismatch", zap.Int64("user_id", userID))
		return autherror.ErrIncorrectPassword
	}

	if s.hasher.Verify(input.NewPassword, user.PasswordHash) {
		return autherror.ErrSamePassword
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, newHash); err != nil {
		return err
	}

	s.logger.Info("password changed", zap.Int64("user_id", userID))

	return nil
}
