package authRoutes

import (
	controllers "aims/controllers/auth"
	"aims/middleware"
	validators "aims/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication and account routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/change-password", middleware.JWTMiddleware, validators.ChangePassword(), controllers.ChangePassword)

	// Staff accounts are created by admins only
	authGroup.Post("/users", middleware.JWTMiddleware, middleware.RequireRoles("ADMIN"), validators.Signup(), controllers.CreateStaffUser)
}
