package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/taskman-backend/auth-service/internal/auth/domain"
	"github.com/taskman-backend/auth-service/internal/auth/service"
	autherror "github.com/taskman-backend/auth-service/internal/errors"
	"go.uber.org/zap"
)

// claimsLocalKey is where the verification middleware parks the identity
// claims for the rest of the request. Request-scoped only; nothing outlives
// the fiber context.
const claimsLocalKey = "identityClaims"

const bearerPrefix = "Bearer "

type Middleware struct {
	tokens service.TokenIssuer
	logger *zap.Logger
}

func NewMiddleware(tokens service.TokenIssuer, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// RequireAuth verifies the bearer token and attaches the decoded claims to
// the request. Every downstream consumer (the admin gate, the audit wrapper,
// handlers) reads the claims from here rather than re-parsing the token.
func (m *Middleware) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrInvalidToken.Error(),
		})
	}

	claims, err := m.tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		status := fiber.StatusUnauthorized
		if !errors.Is(err, autherror.ErrInvalidToken) && !errors.Is(err, autherror.ErrTokenExpired) {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	c.Locals(claimsLocalKey, claims)

	return c.Next()
}

// RequireAdmin is the role gate for privileged routes. Absent claims mean the
// verification middleware was not wired in front of this route; that is a
// server defect, not a client failure.
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		m.logger.Error("admin gate reached without identity claims",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": autherror.ErrMissingClaims.Error(),
		})
	}

	if claims.Role != domain.RoleAdmin.String() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": autherror.ErrForbidden.Error(),
		})
	}

	m.logger.Info("admin request authorized",
		zap.String("method", c.Method()),
		zap.String("url", c.OriginalURL()),
		zap.Int64("user_id", claims.UserID))

	return c.Next()
}

// ClaimsFromCtx returns the identity claims attached by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (*service.TokenClaims, bool) {
	claims, ok := c.Locals(claimsLocalKey).(*service.TokenClaims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
