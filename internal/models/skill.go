package models

import (
	"time"
)

type Skill struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	UserID            uint64    `gorm:"index;not null" json:"user_id"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	Category          string    `gorm:"type:varchar(100);not null" json:"category"`
	ProficiencyLevel  int       `gorm:"not null" json:"proficiency_level"`
	YearsOfExperience *int      `json:"years_of_experience"`
	IsFeatured        bool      `gorm:"not null;default:false" json:"is_featured"`
	Description       string    `gorm:"type:text" json:"description"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
