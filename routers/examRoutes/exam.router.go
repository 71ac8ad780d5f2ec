package examRoutes

import (
	controllers "aims/controllers/exam"
	"aims/middleware"
	validators "aims/validators/exam"

	"github.com/gofiber/fiber/v2"
)

// SetupExamRoutes sets up exam, section, question, attempt and result routes
func SetupExamRoutes(app *fiber.App) {
	examGroup := app.Group("/exams", middleware.JWTMiddleware)

	examGroup.Post("/", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), validators.CreateExam(), controllers.CreateExam)
	examGroup.Get("/", controllers.GetExams)
	examGroup.Get("/:id", controllers.GetExamDetail)
	examGroup.Delete("/:id", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), controllers.DeleteExam)

	examGroup.Post("/:exam_id/sections", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), controllers.CreateSection)
	examGroup.Post("/sections/questions", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), validators.CreateQuestion(), controllers.CreateQuestion)
	examGroup.Patch("/questions/:id", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), controllers.UpdateQuestion)

	examGroup.Post("/attempts", validators.SubmitAttempt(), controllers.SubmitAttempt)
	examGroup.Post("/marks", middleware.RequireRoles("ADMIN", "HOD", "TEACHER"), validators.SubmitAttempt(), controllers.EnterMark)

	examGroup.Get("/:exam_id/sections/:section_id/students/:student_id/smart-marks", controllers.GetSmartMarks)
	examGroup.Get("/:exam_id/students/:student_id/result", controllers.GetExamResult)
}
