package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskman-backend/auth-service/internal/auth/dto"
	"github.com/taskman-backend/auth-service/internal/auth/service"
	autherror "github.com/taskman-backend/auth-service/internal/errors"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	user, err := h.userService.GetUser(c.Context(), int64(userID))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// ChangePassword updates the authenticated user's own password. The target
// user comes from the verified claims, never from the request body.
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": autherror.ErrMissingClaims.Error(),
		})
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.userService.ChangePassword(c.Context(), claims.UserID, input); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
