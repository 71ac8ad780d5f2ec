package controllers

import (
	"aims/database"
	"aims/middleware"
	"aims/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSubject creates a subject under a department and semester
func CreateSubject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubject").(*struct {
		Name         string `json:"name"`
		Code         string `json:"code"`
		DepartmentID uint   `json:"department_id"`
		SemesterID   uint   `json:"semester_id"`
		Credits      int    `json:"credits"`
		TeacherID    *uint  `json:"teacher_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&models.Subject{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Subject code already exists!", nil)
	}
	if err := db.Where("id = ? AND is_deleted = ?", reqData.DepartmentID, false).First(&models.Department{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	subject := models.Subject{
		Name:         reqData.Name,
		Code:         reqData.Code,
		DepartmentID: reqData.DepartmentID,
		SemesterID:   reqData.SemesterID,
		Credits:      reqData.Credits,
		TeacherID:    reqData.TeacherID,
	}
	if err := db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created!", subject)
}

// GetSubjects lists subjects filtered by department/semester
func GetSubjects(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if departmentID := c.QueryInt("department_id", 0); departmentID > 0 {
		db = db.Where("department_id = ?", departmentID)
	}
	if semesterID := c.QueryInt("semester_id", 0); semesterID > 0 {
		db = db.Where("semester_id = ?", semesterID)
	}

	var subjects []models.Subject
	if err := db.Order("code asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched!", subjects)
}

// UpdateSubject updates editable subject fields
func UpdateSubject(c *fiber.Ctx) error {
	subjectID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	reqData := new(struct {
		Name      string `json:"name"`
		Credits   *int   `json:"credits"`
		TeacherID *uint  `json:"teacher_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("id = ? AND is_deleted = ?", subjectID, false).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	if reqData.Name != "" {
		subject.Name = reqData.Name
	}
	if reqData.Credits != nil {
		subject.Credits = *reqData.Credits
	}
	if reqData.TeacherID != nil {
		subject.TeacherID = reqData.TeacherID
	}

	if err := db.Save(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject updated!", subject)
}

// DeleteSubject soft-deletes a subject
func DeleteSubject(c *fiber.Ctx) error {
	subjectID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject id!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("id = ? AND is_deleted = ?", subjectID, false).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	subject.IsDeleted = true
	if err := db.Save(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject deleted!", nil)
}
