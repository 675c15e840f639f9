package utils

import (
	"log"

	"schoolhub/database"
	"schoolhub/models"

	"github.com/robfig/cron/v3"
)

// StartSeatAuditScheduler runs a nightly read-only scan over class rows.
// The finalizer writes the seat count the client observed, so concurrent
// enrollments against one class can leave the stored count behind the
// payment trail. The audit reports the drift; it never rewrites rows.
func StartSeatAuditScheduler() *cron.Cron {
	c := cron.New()

	// Every day at 02:00 server time
	if _, err := c.AddFunc("0 2 * * *", AuditSeatCounts); err != nil {
		log.Printf("Failed to schedule seat audit: %v", err)
	}

	c.Start()
	log.Println("Seat audit scheduler started.")
	return c
}

// AuditSeatCounts logs classes whose seat accounting looks wrong
func AuditSeatCounts() {
	db := database.Database.Db

	var negative []models.Class
	if err := db.Where("available_seats < 0").Find(&negative).Error; err != nil {
		log.Printf("Seat audit failed: %v", err)
		return
	}
	for _, class := range negative {
		log.Printf("Seat audit: class %d (%s) has negative available seats: %d",
			class.ID, class.ClassName, class.AvailableSeats)
	}

	var classes []models.Class
	if err := db.Where("enrolled > 0").Find(&classes).Error; err != nil {
		log.Printf("Seat audit failed: %v", err)
		return
	}
	for _, class := range classes {
		var paid int64
		if err := db.Model(&models.Payment{}).Where("class_id = ?", class.ID).Count(&paid).Error; err != nil {
			log.Printf("Seat audit failed for class %d: %v", class.ID, err)
			continue
		}
		if paid != int64(class.Enrolled) {
			log.Printf("Seat audit: class %d (%s) has %d payments but enrolled count %d",
				class.ID, class.ClassName, paid, class.Enrolled)
		}
	}
}
