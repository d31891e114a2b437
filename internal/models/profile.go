package models

import (
	"time"
)

// Profile is the public face of an account. Username is copied from the
// account at signup and never changes afterwards, since it addresses the
// public page.
type Profile struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	Username    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	DisplayName string    `gorm:"type:varchar(100)" json:"display_name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	AvatarURL   string    `gorm:"type:varchar(500)" json:"avatar_url"`
	IsPublic    bool      `gorm:"not null;default:true" json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
