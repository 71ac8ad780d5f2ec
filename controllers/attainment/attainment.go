package controllers

import (
	att "aims/attainment"
	"aims/database"
	"aims/middleware"
	"aims/models"
	"aims/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newCalculator() *att.Calculator {
	return att.NewCalculator(att.NewGormStore(database.Database.Db))
}

// ComputeCOAttainment computes and caches attainment for one course outcome
func ComputeCOAttainment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttainmentKey").(*struct {
		OutcomeID  uint `json:"outcome_id"`
		SemesterID uint `json:"semester_id"`
		ClassID    uint `json:"class_id"`
		ScopeID    uint `json:"scope_id"` // subject for CO, department for PO
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result, err := newCalculator().COAttainment(reqData.OutcomeID, reqData.SemesterID, reqData.ClassID, reqData.ScopeID)
	if err != nil {
		if errors.Is(err, att.ErrCONotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course outcome not found!", nil)
		}
		log.Printf("Error computing CO attainment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute CO attainment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "CO attainment computed!", result)
}

// ComputePOAttainment computes and caches attainment for one program outcome
func ComputePOAttainment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttainmentKey").(*struct {
		OutcomeID  uint `json:"outcome_id"`
		SemesterID uint `json:"semester_id"`
		ClassID    uint `json:"class_id"`
		ScopeID    uint `json:"scope_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result, err := newCalculator().POAttainment(reqData.OutcomeID, reqData.SemesterID, reqData.ClassID, reqData.ScopeID)
	if err != nil {
		if errors.Is(err, att.ErrPONotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program outcome not found!", nil)
		}
		log.Printf("Error computing PO attainment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute PO attainment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "PO attainment computed!", result)
}

func questionFilterFromQuery(c *fiber.Ctx) att.QuestionFilter {
	f := att.QuestionFilter{}
	if v := c.QueryInt("subject_id", 0); v > 0 {
		id := uint(v)
		f.SubjectID = &id
	}
	if v := c.QueryInt("class_id", 0); v > 0 {
		id := uint(v)
		f.ClassID = &id
	}
	if v := c.QueryInt("semester_id", 0); v > 0 {
		id := uint(v)
		f.SemesterID = &id
	}
	return f
}

// GetBloomDistribution counts questions per Bloom's level
func GetBloomDistribution(c *fiber.Ctx) error {
	distribution, err := newCalculator().BloomDistribution(questionFilterFromQuery(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute distribution!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bloom distribution computed!", distribution)
}

// GetDifficultyDistribution counts questions per difficulty level
func GetDifficultyDistribution(c *fiber.Ctx) error {
	distribution, err := newCalculator().DifficultyDistribution(questionFilterFromQuery(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute distribution!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Difficulty distribution computed!", distribution)
}

// GetBloomMastery computes attainment percentage per Bloom's level
func GetBloomMastery(c *fiber.Ctx) error {
	mastery, err := newCalculator().BloomMastery(questionFilterFromQuery(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute mastery!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bloom mastery computed!", mastery)
}

// GetDifficultyMastery computes attainment percentage per difficulty level
func GetDifficultyMastery(c *fiber.Ctx) error {
	mastery, err := newCalculator().DifficultyMastery(questionFilterFromQuery(c))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute mastery!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Difficulty mastery computed!", mastery)
}

// RecomputeClassAttainment refreshes every cached CO/PO attainment record for
// a class. The notifications fire after the computation commits, never from
// inside the engine.
func RecomputeClassAttainment(c *fiber.Ctx) error {
	classID, err1 := c.ParamsInt("class_id")
	semesterID, err2 := c.ParamsInt("semester_id")
	if err1 != nil || err2 != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid path parameters!", nil)
	}

	items, err := newCalculator().RecomputeClass(uint(classID), uint(semesterID))
	if err != nil {
		if errors.Is(err, att.ErrClassNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error recomputing class %d attainment: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to recompute attainment!", nil)
	}

	// Post-commit notifications, fire and forget
	go utils.NotifyRecomputeWebhook(uint(classID), uint(semesterID), items)

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attainment recomputed!", fiber.Map{
		"items":  items,
		"total":  len(items),
		"failed": failed,
	})
}

// GetAttainmentReport returns the cached CO and PO attainment snapshots for
// a class and semester with a report reference number
func GetAttainmentReport(c *fiber.Ctx) error {
	classID, err1 := c.ParamsInt("class_id")
	semesterID, err2 := c.ParamsInt("semester_id")
	if err1 != nil || err2 != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid path parameters!", nil)
	}

	db := database.Database.Db

	var coRecords []models.COAttainment
	if err := db.Where("class_id = ? AND semester_id = ?", classID, semesterID).
		Order("co_id asc").Find(&coRecords).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch CO records!", nil)
	}

	var poRecords []models.POAttainment
	if err := db.Where("class_id = ? AND semester_id = ?", classID, semesterID).
		Order("po_id asc").Find(&poRecords).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch PO records!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attainment report fetched!", fiber.Map{
		"reference":     uuid.NewString(),
		"class_id":      classID,
		"semester_id":   semesterID,
		"co_attainment": coRecords,
		"po_attainment": poRecords,
	})
}
