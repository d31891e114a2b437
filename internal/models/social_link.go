package models

import (
	"time"
)

type SocialLink struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       uint64    `gorm:"index;not null" json:"user_id"`
	Platform     string    `gorm:"type:varchar(50);not null" json:"platform"`
	URL          string    `gorm:"type:varchar(500);not null" json:"url"`
	DisplayText  string    `gorm:"type:varchar(100)" json:"display_text"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
