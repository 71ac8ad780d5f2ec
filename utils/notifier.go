package utils

import (
	"aims/attainment"
	"aims/config"
	"log"

	"github.com/go-resty/resty/v2"
)

// NotifyRecomputeWebhook posts a recompute run report to the configured
// webhook. A no-op when RECOMPUTE_WEBHOOK_URL is unset; delivery failures
// are logged, never surfaced to the caller.
func NotifyRecomputeWebhook(classID, semesterID uint, items []attainment.RecomputeItem) {
	url := config.AppConfig.RecomputeWebhook
	if url == "" {
		return
	}

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":       "attainment.recomputed",
			"class_id":    classID,
			"semester_id": semesterID,
			"total":       len(items),
			"failed":      failed,
			"items":       items,
		}).
		Post(url)
	if err != nil {
		log.Printf("Recompute webhook delivery failed: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Recompute webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}
}
