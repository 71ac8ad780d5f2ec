package utils

import (
	"aims/attainment"
	"aims/config"
	"aims/database"
	"aims/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ATTAINMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// recomputeActiveClasses refreshes the attainment cache for every class in
// an active semester. Same synchronous path the API exposes; the cron entry
// only decides when it runs.
func recomputeActiveClasses() {
	db := database.Database.Db
	calculator := attainment.NewCalculator(attainment.NewGormStore(db))

	var classes []models.Class
	if err := db.Joins("JOIN semesters ON semesters.id = classes.semester_id").
		Where("classes.is_deleted = ? AND semesters.is_active = ? AND semesters.is_deleted = ?", false, true, false).
		Find(&classes).Error; err != nil {
		logScheduler("Error fetching active classes: " + err.Error())
		return
	}

	for _, class := range classes {
		items, err := calculator.RecomputeClass(class.ID, class.SemesterID)
		if err != nil {
			logScheduler(fmt.Sprintf("Class %d recompute failed: %v", class.ID, err))
			continue
		}

		failed := 0
		for _, item := range items {
			if item.Error != "" {
				failed++
			}
		}
		logScheduler(fmt.Sprintf("Class %d: %d outcomes recomputed, %d failed", class.ID, len(items), failed))

		if err := SendRecomputeSummary(class.ID, class.SemesterID, len(items), failed); err != nil {
			logScheduler("Summary email failed: " + err.Error())
		}
		NotifyRecomputeWebhook(class.ID, class.SemesterID, items)
	}
}

// StartAttainmentScheduler schedules the nightly attainment recompute
func StartAttainmentScheduler() *cron.Cron {
	c := cron.New()

	spec := config.AppConfig.RecomputeCron
	if _, err := c.AddFunc(spec, recomputeActiveClasses); err != nil {
		log.Fatalf("Invalid RECOMPUTE_CRON %q: %v", spec, err)
	}

	c.Start()
	logScheduler("Started with schedule " + spec)
	return c
}
