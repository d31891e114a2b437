package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Profile     Profile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Projects    []Project    `gorm:"foreignKey:UserID" json:"-"`
	Skills      []Skill      `gorm:"foreignKey:UserID" json:"-"`
	BlogPosts   []BlogPost   `gorm:"foreignKey:UserID" json:"-"`
	SocialLinks []SocialLink `gorm:"foreignKey:UserID" json:"-"`
}
