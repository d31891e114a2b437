package models

import (
	"time"
)

type Project struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	UserID          uint64    `gorm:"index;not null" json:"user_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	LongDescription string    `gorm:"type:text" json:"long_description"`
	Tags            []string  `gorm:"serializer:json" json:"tags"`
	GithubURL       string    `gorm:"type:varchar(500)" json:"github_url"`
	DemoURL         string    `gorm:"type:varchar(500)" json:"demo_url"`
	ImageURL        string    `gorm:"type:varchar(500)" json:"image_url"`
	IsFeatured      bool      `gorm:"not null;default:false" json:"is_featured"`
	DisplayOrder    int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
