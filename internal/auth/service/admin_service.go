package service

import (
	"context"

	"github.com/taskman-backend/auth-service/internal/auth/domain"
	"github.com/taskman-backend/auth-service/internal/auth/dto"
	autherror "github.com/taskman-backend/auth-service/internal/errors"
	"go.uber.org/zap"
)

// AdminService holds the operations restricted to administrators.
type AdminService struct {
	repo   domain.UserRepository
	logger *zap.Logger
}

func NewAdminService(repo domain.UserRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AdminService) ChangeUserRole(ctx context.Context, userID int64, input dto.UpdateRoleInput) error {
	newRole, err := domain.ParseRole(input.Role)
	if err != nil {
		return err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if err := s.repo.UpdateRole(ctx, userID, newRole); err != nil {
		return err
	}

	s.logger.Info("user role changed",
		zap.Int64("user_id", userID),
		zap.String("old_role", user.Role.String()),
		zap.String("new_role", newRole.String()))

	return nil
}
