package attainmentRoutes

import (
	controllers "aims/controllers/attainment"
	"aims/middleware"
	validators "aims/validators/outcome"

	"github.com/gofiber/fiber/v2"
)

// SetupAttainmentRoutes sets up attainment computation and reporting routes
func SetupAttainmentRoutes(app *fiber.App) {
	attainmentGroup := app.Group("/attainment", middleware.JWTMiddleware)

	attainmentGroup.Post("/co", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), validators.AttainmentKey(), controllers.ComputeCOAttainment)
	attainmentGroup.Post("/po", middleware.RequireRoles("ADMIN", "HOD"), validators.AttainmentKey(), controllers.ComputePOAttainment)

	attainmentGroup.Get("/distribution/bloom", controllers.GetBloomDistribution)
	attainmentGroup.Get("/distribution/difficulty", controllers.GetDifficultyDistribution)
	attainmentGroup.Get("/mastery/bloom", controllers.GetBloomMastery)
	attainmentGroup.Get("/mastery/difficulty", controllers.GetDifficultyMastery)

	attainmentGroup.Post("/recompute/:class_id/:semester_id", middleware.RequireRoles("ADMIN", "HOD"), controllers.RecomputeClassAttainment)
	attainmentGroup.Get("/report/:class_id/:semester_id", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), controllers.GetAttainmentReport)
}
