package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactSubmission is a contact-form lead. The public pipeline only
// ever inserts these; IsProcessed and Notes are the operator's fields.
type ContactSubmission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Email       string    `json:"email" gorm:"size:100;not null"`
	Phone       string    `json:"phone" gorm:"size:20"`
	City        string    `json:"city" gorm:"size:50"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	IPAddress   string    `json:"-" gorm:"size:45;index"`
	UserAgent   string    `json:"-" gorm:"size:255"`
	IsProcessed bool      `json:"is_processed" gorm:"default:false"`
	Notes       string    `json:"notes" gorm:"type:text"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}

// CountRecentFromIP counts submissions from ip inside the trailing
// window. Callers pass their own tx so the count and the following
// insert share one transaction.
func CountRecentFromIP(db *gorm.DB, ip string, window time.Duration) (int64, error) {
	var count int64
	err := db.Model(&ContactSubmission{}).
		Where("ip_address = ? AND submitted_at > ?", ip, time.Now().Add(-window)).
		Count(&count).Error
	return count, err
}
