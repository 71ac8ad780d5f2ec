package controllers

import (
	"aims/database"
	"aims/middleware"
	"aims/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSemester creates a new semester
func CreateSemester(c *fiber.Ctx) error {
	reqData := new(struct {
		Number       int    `json:"number"`
		AcademicYear string `json:"academic_year"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Number < 1 || reqData.Number > 8 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Semester number must be between 1 and 8!", nil)
	}

	semester := models.Semester{
		Number:       reqData.Number,
		AcademicYear: reqData.AcademicYear,
		IsActive:     true,
	}
	if err := database.Database.Db.Create(&semester).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create semester!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Semester created!", semester)
}

// GetSemesters lists semesters, newest first
func GetSemesters(c *fiber.Ctx) error {
	var semesters []models.Semester
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&semesters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch semesters!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Semesters fetched!", semesters)
}

// CreateClass creates a class under a department and semester
func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*struct {
		Name         string `json:"name"`
		DepartmentID uint   `json:"department_id"`
		SemesterID   uint   `json:"semester_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.DepartmentID, false).First(&models.Department{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}
	if err := db.Where("id = ? AND is_deleted = ?", reqData.SemesterID, false).First(&models.Semester{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Semester not found!", nil)
	}

	class := models.Class{
		Name:         reqData.Name,
		DepartmentID: reqData.DepartmentID,
		SemesterID:   reqData.SemesterID,
	}
	if err := db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created!", class)
}

// GetClasses lists classes, optionally filtered by department
func GetClasses(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if departmentID := c.QueryInt("department_id", 0); departmentID > 0 {
		db = db.Where("department_id = ?", departmentID)
	}
	if semesterID := c.QueryInt("semester_id", 0); semesterID > 0 {
		db = db.Where("semester_id = ?", semesterID)
	}

	var classes []models.Class
	if err := db.Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched!", classes)
}

// GetClassStudents lists students enrolled in a class
func GetClassStudents(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&models.Class{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var students []models.User
	if err := db.Select("id", "name", "email", "roll_number").
		Where("class_id = ? AND role = ? AND is_deleted = ?", classID, "STUDENT", false).
		Order("roll_number asc").
		Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched!", students)
}

// DeleteClass soft-deletes a class
func DeleteClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	class.IsDeleted = true
	if err := db.Save(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted!", nil)
}
