package academicRoutes

import (
	controllers "aims/controllers/academics"
	"aims/middleware"
	validators "aims/validators/academics"

	"github.com/gofiber/fiber/v2"
)

// SetupAcademicRoutes sets up department, semester, class and subject routes
func SetupAcademicRoutes(app *fiber.App) {
	academicGroup := app.Group("/academics", middleware.JWTMiddleware)

	academicGroup.Post("/departments", middleware.RequireRoles("ADMIN"), validators.CreateDepartment(), controllers.CreateDepartment)
	academicGroup.Get("/departments", controllers.GetDepartments)
	academicGroup.Patch("/departments/:id", middleware.RequireRoles("ADMIN"), controllers.UpdateDepartment)
	academicGroup.Delete("/departments/:id", middleware.RequireRoles("ADMIN"), controllers.DeleteDepartment)

	academicGroup.Post("/semesters", middleware.RequireRoles("ADMIN", "HOD"), controllers.CreateSemester)
	academicGroup.Get("/semesters", controllers.GetSemesters)

	academicGroup.Post("/classes", middleware.RequireRoles("ADMIN", "HOD"), validators.CreateClass(), controllers.CreateClass)
	academicGroup.Get("/classes", controllers.GetClasses)
	academicGroup.Get("/classes/:id/students", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), controllers.GetClassStudents)
	academicGroup.Delete("/classes/:id", middleware.RequireRoles("ADMIN", "HOD"), controllers.DeleteClass)

	academicGroup.Post("/subjects", middleware.RequireRoles("ADMIN", "HOD"), validators.CreateSubject(), controllers.CreateSubject)
	academicGroup.Get("/subjects", controllers.GetSubjects)
	academicGroup.Patch("/subjects/:id", middleware.RequireRoles("ADMIN", "HOD"), controllers.UpdateSubject)
	academicGroup.Delete("/subjects/:id", middleware.RequireRoles("ADMIN", "HOD"), controllers.DeleteSubject)
}
