package service

import (
	"context"
	"unicode"

	"github.com/taskman-backend/auth-service/internal/auth/domain"
	"github.com/taskman-backend/auth-service/internal/auth/dto"
	autherror "github.com/taskman-backend/auth-service/internal/errors"
	"go.uber.org/zap"
)

type AuthService struct {
	repo   domain.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *zap.Logger
}

func NewAuthService(repo domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (*dto.TokenResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("signup rejected: email already in use", zap.String("email", input.Email))
		return nil, autherror.ErrEmailAlreadyInUse
	}

	role, err := domain.ParseRole(input.UserRole)
	if err != nil {
		return nil, err
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	// The store's uniqueness constraint is the final arbiter: a concurrent
	// signup that slips past the exists check surfaces here as the same error.
	saved, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup completed",
		zap.Int64("user_id", saved.ID),
		zap.String("email", saved.Email),
		zap.String("role", saved.Role.String()))

	token, err := s.tokens.Generate(saved.ID, saved.Email, saved.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{BearerToken: token}, nil
}

func (s *AuthService) Signin(ctx context.Context, input dto.SigninInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password must be indistinguishable to the
	// caller so that signin cannot be used to enumerate accounts.
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.logger.Warn("signin rejected", zap.String("email", input.Email))
		return nil, autherror.ErrInvalidCredentials
	}

	s.logger.Info("signin completed",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{BearerToken: token}, nil
}

// validatePassword enforces the backend's password rule: at least 8
// characters with one digit and one uppercase letter.
func validatePassword(password string) error {
	if len(password) < 8 {
		return autherror.ErrWeakPassword
	}

	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if !hasDigit || !hasUpper {
		return autherror.ErrWeakPassword
	}

	return nil
}
