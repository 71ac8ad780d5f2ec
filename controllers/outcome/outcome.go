package controllers

import (
	"aims/attainment"
	"aims/database"
	"aims/middleware"
	"aims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourseOutcome creates a CO for a subject
func CreateCourseOutcome(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOutcome").(*struct {
		SubjectID   uint   `json:"subject_id"`
		Code        string `json:"code"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.SubjectID, false).First(&models.Subject{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	co := models.CourseOutcome{
		SubjectID:   reqData.SubjectID,
		Code:        reqData.Code,
		Description: reqData.Description,
	}
	if err := db.Create(&co).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course outcome!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course outcome created!", co)
}

// GetCourseOutcomes lists COs for a subject
func GetCourseOutcomes(c *fiber.Ctx) error {
	subjectID := c.QueryInt("subject_id", 0)
	if subjectID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "subject_id is required!", nil)
	}

	var cos []models.CourseOutcome
	if err := database.Database.Db.
		Where("subject_id = ? AND is_deleted = ?", subjectID, false).
		Order("code asc").
		Find(&cos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course outcomes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course outcomes fetched!", cos)
}

// DeleteCourseOutcome soft-deletes a CO and its mappings
func DeleteCourseOutcome(c *fiber.Ctx) error {
	coID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid outcome id!", nil)
	}

	db := database.Database.Db

	var co models.CourseOutcome
	if err := db.Where("id = ? AND is_deleted = ?", coID, false).First(&co).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course outcome not found!", nil)
	}

	co.IsDeleted = true
	if err := db.Save(&co).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course outcome!", nil)
	}
	db.Model(&models.COPOMapping{}).Where("co_id = ?", co.ID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course outcome deleted!", nil)
}

// CreateProgramOutcome creates a PO for a department
func CreateProgramOutcome(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOutcome").(*struct {
		DepartmentID uint   `json:"department_id"`
		Code         string `json:"code"`
		Description  string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.DepartmentID, false).First(&models.Department{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	po := models.ProgramOutcome{
		DepartmentID: reqData.DepartmentID,
		Code:         reqData.Code,
		Description:  reqData.Description,
	}
	if err := db.Create(&po).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create program outcome!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Program outcome created!", po)
}

// GetProgramOutcomes lists POs for a department
func GetProgramOutcomes(c *fiber.Ctx) error {
	departmentID := c.QueryInt("department_id", 0)
	if departmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "department_id is required!", nil)
	}

	var pos []models.ProgramOutcome
	if err := database.Database.Db.
		Where("department_id = ? AND is_deleted = ?", departmentID, false).
		Order("code asc").
		Find(&pos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch program outcomes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program outcomes fetched!", pos)
}

// SaveMapping creates or updates the CO to PO mapping. One mapping per
// (co, po) pair; saving again replaces the strength.
func SaveMapping(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMapping").(*struct {
		COID            uint `json:"co_id"`
		POID            uint `json:"po_id"`
		MappingStrength int  `json:"mapping_strength"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.COID, false).First(&models.CourseOutcome{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course outcome not found!", nil)
	}
	if err := db.Where("id = ? AND is_deleted = ?", reqData.POID, false).First(&models.ProgramOutcome{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program outcome not found!", nil)
	}

	var mapping models.COPOMapping
	err := db.Where("co_id = ? AND po_id = ?", reqData.COID, reqData.POID).First(&mapping).Error
	if err == gorm.ErrRecordNotFound {
		mapping = models.COPOMapping{
			COID:            reqData.COID,
			POID:            reqData.POID,
			MappingStrength: reqData.MappingStrength,
		}
		if err := db.Create(&mapping).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create mapping!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mapping created!", mapping)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mapping!", nil)
	}

	mapping.MappingStrength = reqData.MappingStrength
	mapping.IsDeleted = false
	if err := db.Save(&mapping).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update mapping!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mapping updated!", mapping)
}

// GetMappings lists mappings filtered by CO or PO
func GetMappings(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if coID := c.QueryInt("co_id", 0); coID > 0 {
		db = db.Where("co_id = ?", coID)
	}
	if poID := c.QueryInt("po_id", 0); poID > 0 {
		db = db.Where("po_id = ?", poID)
	}

	var mappings []models.COPOMapping
	if err := db.Order("id asc").Find(&mappings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mappings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mappings fetched!", mappings)
}

// SuggestMappings returns keyword-similarity mapping suggestions for a
// department. Best-effort; staff review before saving.
func SuggestMappings(c *fiber.Ctx) error {
	departmentID, err := c.ParamsInt("department_id")
	if err != nil || departmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department id!", nil)
	}

	calculator := attainment.NewCalculator(attainment.NewGormStore(database.Database.Db))
	recommendations, err := calculator.SuggestMappings(uint(departmentID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute suggestions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions computed!", recommendations)
}
