package cron

import (
	"log"
	"sync"
	"time"

	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/database"
	"bluehawks_backend/pkg/email"

	"github.com/robfig/cron/v3"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitDailyDigestCron mails the operator a submission summary every
// evening. A missed or failed digest is only logged; the next run
// covers it.
func InitDailyDigestCron(adminEmail string) {
	c := cron.New()

	_, err := c.AddFunc("0 19 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Daily digest already sent today, skipping...")
			return
		}

		sendDailyDigest(adminEmail)
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize daily digest cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Daily digest cron initialized successfully")
}

func sendDailyDigest(adminEmail string) {
	if email.GlobalEmailService == nil {
		return
	}

	db := database.GetDB()
	startOfDay := time.Now().Truncate(24 * time.Hour)

	var contactCount int64
	if err := db.Model(&model.ContactSubmission{}).
		Where("is_processed = ?", false).
		Count(&contactCount).Error; err != nil {
		log.Printf("Error counting unprocessed submissions: %v", err)
		return
	}

	var bookingCount int64
	if err := db.Model(&model.AirportBooking{}).
		Where("submitted_at >= ?", startOfDay).
		Count(&bookingCount).Error; err != nil {
		log.Printf("Error counting bookings: %v", err)
		return
	}

	if contactCount == 0 && bookingCount == 0 {
		log.Printf("No submissions for today's digest, skipping")
		return
	}

	err := email.GlobalEmailService.SendDailyDigest(adminEmail, email.DailyDigestData{
		ContactCount: contactCount,
		BookingCount: bookingCount,
		Date:         time.Now(),
	})
	if err != nil {
		log.Printf("Error sending daily digest to %s: %v", adminEmail, err)
	} else {
		log.Printf("Daily digest sent to %s", adminEmail)
	}
}
