package models

import (
	"time"

	"gorm.io/gorm"
)

// Farm is the profile page of a breeder. A breeder owns at most one farm.
type Farm struct {
	ID          uint           `gorm:"primaryKey" json:"farmId" example:"1"`
	CreatedAt   time.Time      `json:"createdAt" example:"2024-06-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updatedAt" example:"2024-06-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"userId" example:"1"`
	User        *User          `gorm:"foreignKey:UserID" json:"-"`
	Name        string         `gorm:"not null" json:"name" example:"Dela Cruz Gamefarm"`
	Owner       string         `json:"owner" example:"Juan Dela Cruz"`
	Region      string         `json:"region" example:"Region IV-A"`
	Province    string         `json:"province" example:"Batangas"`
	City        string         `json:"city" example:"Lipa"`
	Barangay    string         `json:"barangay" example:"Sabang"`
	Street      string         `json:"street" example:"Purok 3"`
	MapPin      *string        `json:"mapPin" example:"13.94,121.16"`
	Email       string         `json:"email" example:"farm@example.com"`
	Description string         `gorm:"type:text" json:"description"`
	BannerURL   string         `json:"bannerUrl"`
	AvatarURL   string         `json:"avatarUrl"`
}

// FarmAttributes carries the writable farm fields for create and update.
// Nil pointers leave the stored value untouched on update.
type FarmAttributes struct {
	Name        *string `json:"name" example:"Dela Cruz Gamefarm"`
	Owner       *string `json:"owner"`
	Region      *string `json:"region"`
	Province    *string `json:"province"`
	City        *string `json:"city"`
	Barangay    *string `json:"barangay"`
	Street      *string `json:"street"`
	MapPin      *string `json:"mapPin"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
	BannerURL   *string `json:"bannerUrl"`
	AvatarURL   *string `json:"avatarUrl"`
}

// Apply merges the non-nil attributes into f.
func (a FarmAttributes) Apply(f *Farm) {
	setString(&f.Name, a.Name)
	setString(&f.Owner, a.Owner)
	setString(&f.Region, a.Region)
	setString(&f.Province, a.Province)
	setString(&f.City, a.City)
	setString(&f.Barangay, a.Barangay)
	setString(&f.Street, a.Street)
	if a.MapPin != nil {
		f.MapPin = a.MapPin
	}
	setString(&f.Email, a.Email)
	setString(&f.Description, a.Description)
	setString(&f.BannerURL, a.BannerURL)
	setString(&f.AvatarURL, a.AvatarURL)
}

// PublicFarm pairs a farm with its owner for the unauthenticated farm pages.
type PublicFarm struct {
	Farm    Farm        `json:"farm"`
	Breeder UserSummary `json:"breeder"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
