package academicValidator

import (
	"aims/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateDepartment validates a department creation payload
func CreateDepartment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
			Code string `json:"code"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if code := strings.TrimSpace(reqData.Code); code == "" {
			errors["code"] = "Code is required!"
		} else if len(code) > 10 {
			errors["code"] = "Code must be at most 10 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDepartment", reqData)
		return c.Next()
	}
}

// CreateClass validates a class creation payload
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			DepartmentID uint   `json:"department_id"`
			SemesterID   uint   `json:"semester_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.DepartmentID == 0 {
			errors["department_id"] = "Department is required!"
		}
		if reqData.SemesterID == 0 {
			errors["semester_id"] = "Semester is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// CreateSubject validates a subject creation payload
func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Code         string `json:"code"`
			DepartmentID uint   `json:"department_id"`
			SemesterID   uint   `json:"semester_id"`
			Credits      int    `json:"credits"`
			TeacherID    *uint  `json:"teacher_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}
		if reqData.DepartmentID == 0 {
			errors["department_id"] = "Department is required!"
		}
		if reqData.SemesterID == 0 {
			errors["semester_id"] = "Semester is required!"
		}
		if reqData.Credits < 0 || reqData.Credits > 10 {
			errors["credits"] = "Credits must be between 0 and 10!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}
