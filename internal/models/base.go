package models

import "time"

// BaseModel is gorm.Model without DeletedAt: deletion is physical, never
// soft.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
