package outcomeRoutes

import (
	controllers "aims/controllers/outcome"
	"aims/middleware"
	validators "aims/validators/outcome"

	"github.com/gofiber/fiber/v2"
)

// SetupOutcomeRoutes sets up course outcome, program outcome and mapping routes
func SetupOutcomeRoutes(app *fiber.App) {
	outcomeGroup := app.Group("/outcomes", middleware.JWTMiddleware)

	outcomeGroup.Post("/course", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), validators.CreateCourseOutcome(), controllers.CreateCourseOutcome)
	outcomeGroup.Get("/course", controllers.GetCourseOutcomes)
	outcomeGroup.Delete("/course/:id", middleware.RequireRoles("ADMIN", "HOD"), controllers.DeleteCourseOutcome)

	outcomeGroup.Post("/program", middleware.RequireRoles("ADMIN", "HOD"), validators.CreateProgramOutcome(), controllers.CreateProgramOutcome)
	outcomeGroup.Get("/program", controllers.GetProgramOutcomes)

	outcomeGroup.Post("/mappings", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), validators.SaveMapping(), controllers.SaveMapping)
	outcomeGroup.Get("/mappings", controllers.GetMappings)
	outcomeGroup.Get("/mappings/suggest/:department_id", middleware.RequireRoles("ADMIN", "HOD"), controllers.SuggestMappings)
}
