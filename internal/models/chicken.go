package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderRooster Gender = "rooster"
	GenderHen     Gender = "hen"
)

func (g Gender) Valid() bool {
	return g == GenderRooster || g == GenderHen
}

type BreederType string

const (
	BreederTypeBreeder BreederType = "breeder"
	BreederTypeFighter BreederType = "fighter"
)

func (t BreederType) Valid() bool {
	return t == BreederTypeBreeder || t == BreederTypeFighter
}

const (
	DefaultChickenStatus = "alive"
	UnknownBloodline     = "Unknown"
	NoBandNumber         = "n/a"
	AutoWingbandPrefix   = "Palahian_"
	HatchDateLayout      = "2006-01-02"
)

// Chicken is a single animal record. FatherID and MotherID reference other
// chicken rows by id only; parents are never embedded.
type Chicken struct {
	ID          uint                        `gorm:"primaryKey" json:"chickenId" example:"1"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt" example:"2024-06-01T00:00:00Z"`
	UpdatedAt   time.Time                   `json:"updatedAt" example:"2024-06-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt              `gorm:"index" json:"-" swaggerignore:"true"`
	BreederID   uint                        `gorm:"not null;index" json:"breederId" example:"1"`
	FarmID      *uint                       `gorm:"index" json:"farmId" example:"1"`
	BloodlineID *uint                       `gorm:"index" json:"bloodlineId" example:"1"`
	Name        *string                     `json:"name" example:"Red Baron"`
	Sire        *string                     `json:"sire"`
	Dam         *string                     `json:"dam"`
	LegbandNo   *string                     `gorm:"index" json:"legbandNo" example:"L-1001"`
	WingbandNo  *string                     `gorm:"index" json:"wingbandNo" example:"W1"`
	Bloodline   string                      `gorm:"default:Unknown" json:"bloodline" example:"Boston Roundhead"`
	Gender      Gender                      `gorm:"type:varchar(10);not null" json:"gender" example:"rooster"`
	Status      string                      `gorm:"default:alive" json:"status" example:"alive"`
	HatchDate   *datatypes.Date             `json:"hatchDate" swaggertype:"string"`
	BreederType *BreederType                `gorm:"type:varchar(10)" json:"breederType" example:"breeder"`
	IsBreeder   bool                        `gorm:"default:false" json:"isBreeder"`
	ForSale     bool                        `gorm:"default:false;index" json:"forSale"`
	Price       *float64                    `json:"price" example:"15000"`
	Description *string                     `gorm:"type:text" json:"description"`
	FightRecord *string                     `json:"fightRecord"`
	Pictures    datatypes.JSONSlice[string] `json:"pictures" swaggertype:"array,string"`
	FightVideos datatypes.JSONSlice[string] `json:"fightVideos" swaggertype:"array,string"`
	FatherID    *uint                       `gorm:"index" json:"fatherId"`
	MotherID    *uint                       `gorm:"index" json:"motherId"`
}

// ChickenAttributes is the writable surface of a chicken. It doubles as the
// create payload and the partial update patch: nil fields are left alone.
type ChickenAttributes struct {
	Name        *string      `json:"name"`
	Sire        *string      `json:"sire"`
	Dam         *string      `json:"dam"`
	LegbandNo   *string      `json:"legbandNo"`
	WingbandNo  *string      `json:"wingbandNo"`
	Bloodline   *string      `json:"bloodline"`
	BloodlineID *uint        `json:"bloodlineId"`
	Gender      *Gender      `json:"gender"`
	Status      *string      `json:"status"`
	HatchDate   *string      `json:"hatchDate" example:"2024-01-15"`
	BreederType *BreederType `json:"breederType"`
	IsBreeder   *bool        `json:"isBreeder"`
	ForSale     *bool        `json:"forSale"`
	Price       *float64     `json:"price"`
	Description *string      `json:"description"`
	FightRecord *string      `json:"fightRecord"`
	Pictures    []string     `json:"pictures"`
	FightVideos []string     `json:"fightVideos"`
	FatherID    *uint        `json:"fatherId"`
	MotherID    *uint        `json:"motherId"`
}

// ParentSummary is the subset of a parent chicken shown on a single chicken.
type ParentSummary struct {
	ID        uint    `json:"chickenId"`
	Name      *string `json:"name"`
	Bloodline string  `json:"bloodline"`
	Gender    Gender  `json:"gender"`
}

// BandSummary is the subset of a parent chicken shown in breeder listings.
type BandSummary struct {
	ID         uint    `json:"chickenId"`
	LegbandNo  *string `json:"legbandNo"`
	WingbandNo *string `json:"wingbandNo"`
	Bloodline  string  `json:"bloodline"`
}

type FarmRef struct {
	ID   uint   `json:"farmId"`
	Name string `json:"name"`
}

type BloodlineRef struct {
	ID   uint   `json:"bloodlineId"`
	Name string `json:"name"`
}

// ChickenDetail is a chicken with its parent summaries.
type ChickenDetail struct {
	Chicken
	BloodlineRef *BloodlineRef  `json:"bloodlineRef"`
	Father       *ParentSummary `json:"father"`
	Mother       *ParentSummary `json:"mother"`
}

// ChickenListing is a chicken as shown in a breeder's listing.
type ChickenListing struct {
	Chicken
	Farm         *FarmRef      `json:"farm"`
	BloodlineRef *BloodlineRef `json:"bloodlineRef"`
	Father       *BandSummary  `json:"father"`
	Mother       *BandSummary  `json:"mother"`
}
