package controllers

import (
	"aims/database"
	"aims/middleware"
	"aims/models"

	"github.com/gofiber/fiber/v2"
)

// CreateExam creates an exam for a subject and class
func CreateExam(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExam").(*models.Exam)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.SubjectID, false).First(&models.Subject{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ClassID, false).First(&models.Class{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	exam := models.Exam{
		Title:      reqData.Title,
		ExamType:   reqData.ExamType,
		SubjectID:  reqData.SubjectID,
		ClassID:    reqData.ClassID,
		SemesterID: reqData.SemesterID,
		ExamDate:   reqData.ExamDate,
		TotalMarks: reqData.TotalMarks,
	}
	if err := db.Create(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam created!", exam)
}

// GetExams lists exams filtered by class/subject/semester
func GetExams(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if classID := c.QueryInt("class_id", 0); classID > 0 {
		db = db.Where("class_id = ?", classID)
	}
	if subjectID := c.QueryInt("subject_id", 0); subjectID > 0 {
		db = db.Where("subject_id = ?", subjectID)
	}
	if semesterID := c.QueryInt("semester_id", 0); semesterID > 0 {
		db = db.Where("semester_id = ?", semesterID)
	}

	var exams []models.Exam
	if err := db.Order("exam_date desc").Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched!", exams)
}

// GetExamDetail returns an exam with its sections and questions
func GetExamDetail(c *fiber.Ctx) error {
	examID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	db := database.Database.Db

	var exam models.Exam
	if err := db.Where("id = ? AND is_deleted = ?", examID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var sections []models.Section
	db.Where("exam_id = ? AND is_deleted = ?", examID, false).Order("order_index asc").Find(&sections)

	sectionIDs := make([]uint, len(sections))
	for i, s := range sections {
		sectionIDs[i] = s.ID
	}

	var questions []models.Question
	if len(sectionIDs) > 0 {
		db.Where("section_id IN ? AND is_deleted = ?", sectionIDs, false).Order("id asc").Find(&questions)
	}

	questionsBySection := make(map[uint][]models.Question, len(sections))
	for _, q := range questions {
		questionsBySection[q.SectionID] = append(questionsBySection[q.SectionID], q)
	}

	type sectionDetail struct {
		models.Section
		Questions []models.Question `json:"questions"`
	}
	details := make([]sectionDetail, len(sections))
	for i, s := range sections {
		details[i] = sectionDetail{Section: s, Questions: questionsBySection[s.ID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam fetched!", fiber.Map{
		"exam":     exam,
		"sections": details,
	})
}

// CreateSection adds a section to an exam
func CreateSection(c *fiber.Ctx) error {
	examID, err := c.ParamsInt("exam_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	reqData := new(struct {
		Name               string `json:"name"`
		QuestionsToAttempt *int   `json:"questions_to_attempt"`
		OrderIndex         int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.QuestionsToAttempt != nil && *reqData.QuestionsToAttempt < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "questions_to_attempt cannot be negative!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", examID, false).First(&models.Exam{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	section := models.Section{
		ExamID:             uint(examID),
		Name:               reqData.Name,
		QuestionsToAttempt: reqData.QuestionsToAttempt,
		OrderIndex:         reqData.OrderIndex,
	}
	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created!", section)
}

// CreateQuestion adds a question to a section
func CreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*models.Question)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.SectionID, false).First(&models.Section{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}
	if reqData.COID != nil {
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.COID, false).First(&models.CourseOutcome{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course outcome not found!", nil)
		}
	}

	question := models.Question{
		SectionID:       reqData.SectionID,
		QuestionNumber:  reqData.QuestionNumber,
		Text:            reqData.Text,
		Marks:           reqData.Marks,
		IsOptional:      reqData.IsOptional,
		COID:            reqData.COID,
		COWeight:        reqData.COWeight,
		BloomLevel:      reqData.BloomLevel,
		DifficultyLevel: reqData.DifficultyLevel,
	}
	if question.COWeight <= 0 || question.COWeight > 1 {
		question.COWeight = 1.0
	}
	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created!", question)
}

// UpdateQuestion updates tagging and scoring fields of a question
func UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id!", nil)
	}

	reqData := new(struct {
		Marks           *float64 `json:"marks"`
		IsOptional      *bool    `json:"is_optional"`
		COID            *uint    `json:"co_id"`
		COWeight        *float64 `json:"co_weight"`
		BloomLevel      string   `json:"bloom_level"`
		DifficultyLevel string   `json:"difficulty_level"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var question models.Question
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if reqData.Marks != nil && *reqData.Marks > 0 {
		question.Marks = *reqData.Marks
	}
	if reqData.IsOptional != nil {
		question.IsOptional = *reqData.IsOptional
	}
	if reqData.COID != nil {
		question.COID = reqData.COID
	}
	if reqData.COWeight != nil && *reqData.COWeight > 0 && *reqData.COWeight <= 1 {
		question.COWeight = *reqData.COWeight
	}
	if reqData.BloomLevel != "" {
		question.BloomLevel = reqData.BloomLevel
	}
	if reqData.DifficultyLevel != "" {
		question.DifficultyLevel = reqData.DifficultyLevel
	}

	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated!", question)
}

// DeleteExam soft-deletes an exam with its sections and questions
func DeleteExam(c *fiber.Ctx) error {
	examID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid exam id!", nil)
	}

	db := database.Database.Db

	var exam models.Exam
	if err := db.Where("id = ? AND is_deleted = ?", examID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	exam.IsDeleted = true
	if err := db.Save(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exam!", nil)
	}

	var sectionIDs []uint
	db.Model(&models.Section{}).Where("exam_id = ?", exam.ID).Pluck("id", &sectionIDs)
	db.Model(&models.Section{}).Where("exam_id = ?", exam.ID).Update("is_deleted", true)
	if len(sectionIDs) > 0 {
		db.Model(&models.Question{}).Where("section_id IN ?", sectionIDs).Update("is_deleted", true)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam deleted!", nil)
}
