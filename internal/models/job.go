package models

// Job is a shared catalog entity, not owned by any user.
type Job struct {
	BaseModel

	Title       string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Description string `gorm:"not null"`
	Duration    string `gorm:"not null"` // Free-text range, e.g. "2-3 weeks"

	// Relationships
	Orders []Order `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
