package models

type Client struct {
	BaseModel

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Company string
	Address string
	Notes   string `gorm:"not null"`
	UserID  uint   `gorm:"not null;index"` // Owning user, immutable after creation

	// Relationships
	User   User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Orders []Order `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}
