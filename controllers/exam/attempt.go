package controllers

import (
	"aims/attainment"
	"aims/database"
	"aims/middleware"
	"aims/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitAttempt records a graded attempt on a question for a student and
// re-evaluates the best attempt for that (student, question). The mark row
// mirrors whatever attempt wins.
func SubmitAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttempt").(*struct {
		QuestionID    uint    `json:"question_id"`
		StudentID     uint    `json:"student_id"`
		MarksObtained float64 `json:"marks_obtained"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Students submit for themselves; staff submit on a student's behalf
	role, _ := c.Locals("userRole").(string)
	studentID := reqData.StudentID
	if role == "STUDENT" {
		studentID = userID
	}
	if studentID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "student_id is required!", nil)
	}

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", reqData.QuestionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.MarksObtained < 0 || reqData.MarksObtained > question.Marks {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Marks obtained must be between 0 and the question's max marks!", nil)
	}

	var attemptCount int64
	db.Model(&models.Attempt{}).
		Where("student_id = ? AND question_id = ? AND is_deleted = ?", studentID, reqData.QuestionID, false).
		Count(&attemptCount)

	attempt := models.Attempt{
		StudentID:     studentID,
		QuestionID:    reqData.QuestionID,
		AttemptNumber: int(attemptCount) + 1,
		MarksObtained: reqData.MarksObtained,
		MaxMarks:      question.Marks,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	best, err := attainment.ReflagBest(db, studentID, reqData.QuestionID)
	if err != nil {
		log.Printf("Error reflagging best attempt for student %d question %d: %v", studentID, reqData.QuestionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update best attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt recorded!", fiber.Map{
		"attempt":      attempt,
		"best_attempt": best,
	})
}

// EnterMark lets a teacher enter a score for a student directly (theory
// papers graded on paper). It runs through the same attempt pipeline so the
// best-attempt invariant holds.
func EnterMark(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttempt").(*struct {
		QuestionID    uint    `json:"question_id"`
		StudentID     uint    `json:"student_id"`
		MarksObtained float64 `json:"marks_obtained"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.StudentID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "student_id is required!", nil)
	}

	db := database.Database.Db

	var student models.User
	if err := db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.StudentID, "STUDENT", false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", reqData.QuestionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}
	if reqData.MarksObtained < 0 || reqData.MarksObtained > question.Marks {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Marks obtained must be between 0 and the question's max marks!", nil)
	}

	var attemptCount int64
	db.Model(&models.Attempt{}).
		Where("student_id = ? AND question_id = ? AND is_deleted = ?", reqData.StudentID, reqData.QuestionID, false).
		Count(&attemptCount)

	attempt := models.Attempt{
		StudentID:     reqData.StudentID,
		QuestionID:    reqData.QuestionID,
		AttemptNumber: int(attemptCount) + 1,
		MarksObtained: reqData.MarksObtained,
		MaxMarks:      question.Marks,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record mark!", nil)
	}

	best, err := attainment.ReflagBest(db, reqData.StudentID, reqData.QuestionID)
	if err != nil {
		log.Printf("Error reflagging best attempt for student %d question %d: %v", reqData.StudentID, reqData.QuestionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update best attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mark recorded!", fiber.Map{
		"best_attempt": best,
	})
}

// GetSmartMarks computes the smart-marks result for one section of an exam
func GetSmartMarks(c *fiber.Ctx) error {
	examID, err1 := c.ParamsInt("exam_id")
	sectionID, err2 := c.ParamsInt("section_id")
	studentID, err3 := c.ParamsInt("student_id")
	if err1 != nil || err2 != nil || err3 != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid path parameters!", nil)
	}

	// Students may only view their own result
	role, _ := c.Locals("userRole").(string)
	if role == "STUDENT" {
		userID, _ := c.Locals("userId").(uint)
		if userID != uint(studentID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own result!", nil)
		}
	}

	calculator := attainment.NewCalculator(attainment.NewGormStore(database.Database.Db))
	result, err := calculator.SmartMarks(uint(examID), uint(studentID), uint(sectionID))
	if err != nil {
		if errors.Is(err, attainment.ErrSectionNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
		}
		log.Printf("Error computing smart marks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute smart marks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Smart marks computed!", result)
}

// GetExamResult sums the smart-marks results over every section of an exam
// for one student
func GetExamResult(c *fiber.Ctx) error {
	examID, err1 := c.ParamsInt("exam_id")
	studentID, err2 := c.ParamsInt("student_id")
	if err1 != nil || err2 != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid path parameters!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if role == "STUDENT" {
		userID, _ := c.Locals("userId").(uint)
		if userID != uint(studentID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view your own result!", nil)
		}
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", examID, false).First(&models.Exam{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var sections []models.Section
	db.Where("exam_id = ? AND is_deleted = ?", examID, false).Order("order_index asc").Find(&sections)

	calculator := attainment.NewCalculator(attainment.NewGormStore(db))

	var total, maxPossible float64
	results := make([]attainment.SmartMarksResult, 0, len(sections))
	for _, section := range sections {
		result, err := calculator.SmartMarks(uint(examID), uint(studentID), section.ID)
		if err != nil {
			log.Printf("Error computing smart marks for section %d: %v", section.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute exam result!", nil)
		}
		total += result.TotalMarks
		maxPossible += result.MaxPossible
		results = append(results, result)
	}

	percentage := attainment.Round2(attainment.ClampPercent(attainment.SafeDivide(total, maxPossible, 0) * 100))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam result computed!", fiber.Map{
		"exam_id":      examID,
		"student_id":   studentID,
		"sections":     results,
		"total_marks":  total,
		"max_possible": maxPossible,
		"percentage":   percentage,
	})
}
