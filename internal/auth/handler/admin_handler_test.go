package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskman-backend/auth-service/internal/auth/domain"
	"github.com/taskman-backend/auth-service/internal/auth/dto"
	"github.com/taskman-backend/auth-service/internal/auth/handler"
	"github.com/taskman-backend/auth-service/internal/auth/service"
	"github.com/taskman-backend/auth-service/internal/mocks"
	"go.uber.org/zap"
)

// newAdminApp wires the full privileged chain the way routes.go does:
// verification, role gate, audit wrapping, handler.
func newAdminApp(t *testing.T) (*fiber.App, *mocks.MockUserRepository, *service.TokenService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("test-secret", 60)
	adminService := service.NewAdminService(mockRepo, zap.NewNop())
	adminHandler := handler.NewAdminHandler(adminService)
	mw := handler.NewMiddleware(tokenService, zap.NewNop())
	audit := handler.NewAuditLogger(zap.NewNop())

	app := fiber.New()
	adminGroup := app.Group("/api/v1/admin", mw.RequireAuth, mw.RequireAdmin)
	adminGroup.Patch("/users/:id/role", audit.Wrap(adminHandler.UpdateUserRole))

	return app, mockRepo, tokenService
}

func TestAdminHandler_UpdateUserRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockRepo, tokenService := newAdminApp(t)

		mockRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&domain.User{
			ID:   9,
			Role: domain.RoleUser,
		}, nil)
		mockRepo.EXPECT().UpdateRole(gomock.Any(), int64(9), domain.RoleAdmin).Return(nil)

		token, err := tokenService.Generate(1, "admin@b.com", domain.RoleAdmin)
		require.NoError(t, err)

		body, _ := json.Marshal(dto.UpdateRoleInput{Role: "ADMIN"})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/users/9/role", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("rejected without token", func(t *testing.T) {
		app, _, _ := newAdminApp(t)

		body, _ := json.Marshal(dto.UpdateRoleInput{Role: "ADMIN"})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/users/9/role", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejected for non-admin", func(t *testing.T) {
		app, _, tokenService := newAdminApp(t)

		token, err := tokenService.Generate(2, "user@b.com", domain.RoleUser)
		require.NoError(t, err)

		body, _ := json.Marshal(dto.UpdateRoleInput{Role: "ADMIN"})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/users/9/role", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("invalid role value", func(t *testing.T) {
		app, _, tokenService := newAdminApp(t)

		token, err := tokenService.Generate(1, "admin@b.com", domain.RoleAdmin)
		require.NoError(t, err)

		body, _ := json.Marshal(dto.UpdateRoleInput{Role: "OVERLORD"})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/users/9/role", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown user", func(t *testing.T) {
		app, mockRepo, tokenService := newAdminApp(t)

		mockRepo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		token, err := tokenService.Generate(1, "admin@b.com", domain.RoleAdmin)
		require.NoError(t, err)

		body, _ := json.Marshal(dto.UpdateRoleInput{Role: "ADMIN"})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/users/404/role", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid user id", func(t *testing.T) {
		app, _, tokenService := newAdminApp(t)

		token, err := tokenService.Generate(1, "admin@b.com", domain.RoleAdmin)
		require.NoError(t, err)

		body, _ := json.Marshal(dto.UpdateRoleInput{Role: "ADMIN"})
		req := httptest.NewRequest("PATCH", "/api/v1/admin/users/abc/role", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
