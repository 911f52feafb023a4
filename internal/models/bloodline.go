package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Bloodline is a named strain kept by one farm.
type Bloodline struct {
	ID                uint                        `gorm:"primaryKey" json:"bloodlineId" example:"1"`
	CreatedAt         time.Time                   `json:"createdAt" example:"2024-06-01T00:00:00Z"`
	UpdatedAt         time.Time                   `json:"updatedAt" example:"2024-06-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt              `gorm:"index" json:"-" swaggerignore:"true"`
	FarmID            uint                        `gorm:"not null;index" json:"farmId" example:"1"`
	Name              string                      `gorm:"not null" json:"name" example:"Boston Roundhead"`
	Origin            *string                     `json:"origin" example:"USA"`
	YearAcquired      *int                        `json:"yearAcquired" example:"2019"`
	ModelImagesMale   datatypes.JSONSlice[string] `json:"modelImagesMale" swaggertype:"array,string"`
	ModelImagesFemale datatypes.JSONSlice[string] `json:"modelImagesFemale" swaggertype:"array,string"`
}

type BloodlineAttributes struct {
	Name              *string  `json:"name" example:"Boston Roundhead"`
	Origin            *string  `json:"origin"`
	YearAcquired      *int     `json:"yearAcquired"`
	ModelImagesMale   []string `json:"modelImagesMale"`
	ModelImagesFemale []string `json:"modelImagesFemale"`
}

// Apply merges the supplied attributes into b. FarmID is never touched.
func (a BloodlineAttributes) Apply(b *Bloodline) {
	setString(&b.Name, a.Name)
	if a.Origin != nil {
		b.Origin = a.Origin
	}
	if a.YearAcquired != nil {
		b.YearAcquired = a.YearAcquired
	}
	if a.ModelImagesMale != nil {
		b.ModelImagesMale = datatypes.NewJSONSlice(a.ModelImagesMale)
	}
	if a.ModelImagesFemale != nil {
		b.ModelImagesFemale = datatypes.NewJSONSlice(a.ModelImagesFemale)
	}
}

// BloodlineOption is the id/name pair used by dropdowns.
type BloodlineOption struct {
	ID   uint   `json:"bloodlineId"`
	Name string `json:"name"`
}
