package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, user *UserHandler, admin *AdminHandler, mw *Middleware, audit *AuditLogger) {
	app.Post("/api/v1/auth/signup", auth.Signup)
	app.Post("/api/v1/auth/signin", auth.Signin)

	users := app.Group("/api/v1/users", mw.RequireAuth)
	users.Get("/:id", user.GetUser)
	users.Put("/password", user.ChangePassword)

	// Admin-only endpoints: token verification, role gate, then audit
	// wrapping around each privileged handler.
	adminGroup := app.Group("/api/v1/admin", mw.RequireAuth, mw.RequireAdmin)
	adminGroup.Patch("/users/:id/role", audit.Wrap(admin.UpdateUserRole))
}
