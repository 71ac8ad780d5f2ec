package examValidator

import (
	"aims/middleware"
	"aims/models"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator.ValidationErrors into the response map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			errors[strings.ToLower(ve.Field())] = "Failed validation rule: " + ve.Tag()
		}
	} else {
		errors["payload"] = "Invalid payload!"
	}
	return errors
}

type examRequest struct {
	Title      string    `json:"title" validate:"required,min=3"`
	ExamType   string    `json:"exam_type" validate:"omitempty,oneof=CIE SEE ASSIGNMENT QUIZ"`
	SubjectID  uint      `json:"subject_id" validate:"required"`
	ClassID    uint      `json:"class_id" validate:"required"`
	SemesterID uint      `json:"semester_id" validate:"required"`
	ExamDate   time.Time `json:"exam_date"`
	TotalMarks float64   `json:"total_marks" validate:"gte=0"`
}

// CreateExam validates an exam creation payload
func CreateExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(examRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		examType := reqData.ExamType
		if examType == "" {
			examType = "CIE"
		}
		c.Locals("validatedExam", &models.Exam{
			Title:      reqData.Title,
			ExamType:   examType,
			SubjectID:  reqData.SubjectID,
			ClassID:    reqData.ClassID,
			SemesterID: reqData.SemesterID,
			ExamDate:   reqData.ExamDate,
			TotalMarks: reqData.TotalMarks,
		})
		return c.Next()
	}
}

type questionRequest struct {
	SectionID       uint     `json:"section_id" validate:"required"`
	QuestionNumber  string   `json:"question_number" validate:"required"`
	Text            string   `json:"text"`
	Marks           float64  `json:"marks" validate:"required,gt=0"`
	IsOptional      bool     `json:"is_optional"`
	COID            *uint    `json:"co_id"`
	COWeight        *float64 `json:"co_weight" validate:"omitempty,gt=0,lte=1"`
	BloomLevel      string   `json:"bloom_level" validate:"omitempty,oneof=remember understand apply analyze evaluate create unknown"`
	DifficultyLevel string   `json:"difficulty_level" validate:"omitempty,oneof=easy medium hard unknown"`
}

// CreateQuestion validates a question creation payload
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(questionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		question := &models.Question{
			SectionID:       reqData.SectionID,
			QuestionNumber:  reqData.QuestionNumber,
			Text:            reqData.Text,
			Marks:           reqData.Marks,
			IsOptional:      reqData.IsOptional,
			COID:            reqData.COID,
			COWeight:        1.0,
			BloomLevel:      models.BloomUnknown,
			DifficultyLevel: models.DifficultyUnknown,
		}
		if reqData.COWeight != nil {
			question.COWeight = *reqData.COWeight
		}
		if reqData.BloomLevel != "" {
			question.BloomLevel = reqData.BloomLevel
		}
		if reqData.DifficultyLevel != "" {
			question.DifficultyLevel = reqData.DifficultyLevel
		}

		c.Locals("validatedQuestion", question)
		return c.Next()
	}
}

// SubmitAttempt validates an attempt submission payload
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID    uint    `json:"question_id"`
			StudentID     uint    `json:"student_id"`
			MarksObtained float64 `json:"marks_obtained"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuestionID == 0 {
			errors["question_id"] = "Question is required!"
		}
		if reqData.MarksObtained < 0 {
			errors["marks_obtained"] = "Marks obtained cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}
