package models

import "time"

// Order is the sole join entity linking a User, a Client, and a Job.
// All three foreign keys are immutable after creation.
type Order struct {
	BaseModel

	Description string    `gorm:"not null"`
	Rate        string    `gorm:"not null"`
	Location    string    `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	DueDate     time.Time `gorm:"not null"`
	Status      string    `gorm:"not null;default:pending"` // Stored lowercase
	UserID      uint      `gorm:"not null;index"`
	ClientID    uint      `gorm:"not null;index"`
	JobID       uint      `gorm:"not null;index"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Client Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
	Job    Job    `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
