package model

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Service is an operator-curated catalog entry. The public API only
// sees active services, listed in creation order.
type Service struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:200;not null"`
	Slug             string    `json:"slug" gorm:"size:200;uniqueIndex;not null"`
	Description      string    `json:"description" gorm:"type:text"`
	ShortDescription string    `json:"short_description" gorm:"size:300"`
	Image            string    `json:"image" gorm:"size:200"` // static image path
	Icon             string    `json:"icon" gorm:"size:50"`   // FontAwesome icon name
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate derives the slug from the name when none was given. A
// numeric suffix keeps repeated names clear of the unique index.
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.Slug == "" {
		base := slug.Make(s.Name)
		candidate := base

		for i := 2; ; i++ {
			var count int64
			tx.Model(&Service{}).Where("slug = ?", candidate).Count(&count)
			if count == 0 {
				break
			}
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		s.Slug = candidate
	}
	return nil
}
