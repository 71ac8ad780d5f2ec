package controllers

import (
	"aims/database"
	"aims/middleware"
	"aims/models"

	"github.com/gofiber/fiber/v2"
)

// CreateDepartment creates a new department (admin only)
func CreateDepartment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDepartment").(*struct {
		Name string `json:"name"`
		Code string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&models.Department{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Department code already exists!", nil)
	}

	department := models.Department{
		Name: reqData.Name,
		Code: reqData.Code,
	}
	if err := db.Create(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create department!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Department created!", department)
}

// GetDepartments lists departments with pagination
func GetDepartments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Department{}).Where("is_deleted = ?", false).Count(&total)

	var departments []models.Department
	if err := db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&departments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch departments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Departments fetched!", fiber.Map{
		"departments": departments,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

// UpdateDepartment updates name/code/HOD of a department
func UpdateDepartment(c *fiber.Ctx) error {
	departmentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department id!", nil)
	}

	reqData := new(struct {
		Name  string `json:"name"`
		Code  string `json:"code"`
		HodID *uint  `json:"hod_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var department models.Department
	if err := db.Where("id = ? AND is_deleted = ?", departmentID, false).First(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	if reqData.Name != "" {
		department.Name = reqData.Name
	}
	if reqData.Code != "" {
		department.Code = reqData.Code
	}
	if reqData.HodID != nil {
		department.HodID = reqData.HodID
	}

	if err := db.Save(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update department!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Department updated!", department)
}

// DeleteDepartment soft-deletes a department
func DeleteDepartment(c *fiber.Ctx) error {
	departmentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid department id!", nil)
	}

	db := database.Database.Db

	var department models.Department
	if err := db.Where("id = ? AND is_deleted = ?", departmentID, false).First(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	department.IsDeleted = true
	if err := db.Save(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete department!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Department deleted!", nil)
}
