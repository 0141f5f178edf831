package domain

import (
	"strings"
	"time"

	autherror "github.com/taskman-backend/auth-service/internal/errors"
)

// Role is the access level stored with a user and embedded in issued tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole canonicalizes a role string. Matching is case-insensitive and an
// unrecognized value is an error, never silently defaulted.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", autherror.ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
