package model

import "time"

// Operator is a trusted internal account for the admin API. Operators
// are created out of band (seed or SQL), never via the public surface.
type Operator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:100;not null"` // bcrypt hash
	Name      string    `json:"name" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
}
