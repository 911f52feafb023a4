package models

import (
	"time"

	"gorm.io/gorm"
)

// Stable is the profile page of a fighter. A fighter owns at most one stable.
type Stable struct {
	ID          uint           `gorm:"primaryKey" json:"stableId" example:"1"`
	CreatedAt   time.Time      `json:"createdAt" example:"2024-06-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updatedAt" example:"2024-06-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"userId" example:"2"`
	Name        string         `gorm:"not null" json:"name" example:"Blue Corner Stable"`
	Owner       string         `gorm:"not null" json:"owner"`
	Region      string         `json:"region"`
	Province    string         `json:"province"`
	City        string         `json:"city"`
	Barangay    string         `json:"barangay"`
	Street      string         `json:"street"`
	MapPin      *string        `json:"mapPin"`
	Email       string         `gorm:"not null" json:"email"`
	Description string         `gorm:"type:text" json:"description"`
	BannerURL   string         `json:"bannerUrl"`
	AvatarURL   string         `json:"avatarUrl"`
}

type StableAttributes struct {
	Name        string  `json:"name" binding:"required" example:"Blue Corner Stable"`
	Region      string  `json:"region"`
	Province    string  `json:"province"`
	City        string  `json:"city"`
	Barangay    string  `json:"barangay"`
	Street      string  `json:"street"`
	MapPin      *string `json:"mapPin"`
	Description string  `json:"description"`
	BannerURL   string  `json:"bannerUrl"`
	AvatarURL   string  `json:"avatarUrl"`
}
