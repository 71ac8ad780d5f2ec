package outcomeValidator

import (
	"aims/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseOutcome validates a CO creation payload
func CreateCourseOutcome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SubjectID   uint   `json:"subject_id"`
			Code        string `json:"code"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SubjectID == 0 {
			errors["subject_id"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOutcome", reqData)
		return c.Next()
	}
}

// CreateProgramOutcome validates a PO creation payload
func CreateProgramOutcome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DepartmentID uint   `json:"department_id"`
			Code         string `json:"code"`
			Description  string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DepartmentID == 0 {
			errors["department_id"] = "Department is required!"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOutcome", reqData)
		return c.Next()
	}
}

// SaveMapping validates a CO to PO mapping payload
func SaveMapping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			COID            uint `json:"co_id"`
			POID            uint `json:"po_id"`
			MappingStrength int  `json:"mapping_strength"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.COID == 0 {
			errors["co_id"] = "Course outcome is required!"
		}
		if reqData.POID == 0 {
			errors["po_id"] = "Program outcome is required!"
		}
		if reqData.MappingStrength < 1 || reqData.MappingStrength > 3 {
			errors["mapping_strength"] = "Mapping strength must be 1, 2 or 3!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMapping", reqData)
		return c.Next()
	}
}

// AttainmentKey validates a CO/PO attainment computation payload
func AttainmentKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OutcomeID  uint `json:"outcome_id"`
			SemesterID uint `json:"semester_id"`
			ClassID    uint `json:"class_id"`
			ScopeID    uint `json:"scope_id"` // subject for CO, department for PO
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OutcomeID == 0 {
			errors["outcome_id"] = "Outcome is required!"
		}
		if reqData.SemesterID == 0 {
			errors["semester_id"] = "Semester is required!"
		}
		if reqData.ClassID == 0 {
			errors["class_id"] = "Class is required!"
		}
		if reqData.ScopeID == 0 {
			errors["scope_id"] = "Scope is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttainmentKey", reqData)
		return c.Next()
	}
}
