package models

import (
	"time"
)

type BlogPost struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	UserID      uint64     `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	CoverImage  string     `gorm:"type:varchar(500)" json:"cover_image"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	ReadingTime int        `gorm:"not null;default:1" json:"reading_time"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Author profile for public display joins
	Author *Profile `gorm:"foreignKey:UserID;references:UserID" json:"author,omitempty"`
}
