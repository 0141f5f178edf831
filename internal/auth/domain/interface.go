package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/taskman-backend/auth-service/internal/auth/domain UserRepository

type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	UpdateRole(ctx context.Context, id int64, role Role) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
