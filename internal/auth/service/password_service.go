package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/taskman-backend/auth-service/internal/auth/service PasswordHasher

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// PasswordService hashes credentials with bcrypt. The salt lives inside the
// digest, so hashing the same input twice yields different digests.
type PasswordService struct {
	cost int
}

func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

func (p *PasswordService) Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is a
// mismatch, not an error; bcrypt's comparison is constant-time.
func (p *PasswordService) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
