package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/taskman-backend/auth-service/internal/auth/service TokenIssuer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskman-backend/auth-service/internal/auth/domain"
	autherror "github.com/taskman-backend/auth-service/internal/errors"
)

type TokenIssuer interface {
	Generate(userID int64, email string, role domain.Role) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
	GetTokenExpiry() time.Duration
}

// TokenService issues and verifies self-contained HS256 bearer tokens. There
// is no server-side revocation list: a token stays valid until its embedded
// expiry, which is the accepted trade-off for stateless verification.
type TokenService struct {
	TokenSecret string
	TokenExpiry time.Duration
}

type TokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		TokenSecret: secret,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(userID int64, email string, role domain.Role) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", autherror.ErrTokenSigning, err)
	}

	return token, nil
}

// Verify parses and validates a bearer token and returns the claims exactly as
// they were encoded. Expired tokens and tampered or malformed tokens fail with
// distinct sentinel errors.
func (ts *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.TokenSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrInvalidToken
	}

	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) GetTokenExpiry() time.Duration {
	return ts.TokenExpiry
}
