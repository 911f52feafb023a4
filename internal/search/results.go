package search

import "palahian/internal/models"

type ChickenResult struct {
	ChickenID   uint                `json:"chickenId"`
	Name        *string             `json:"name"`
	Bloodline   string              `json:"bloodline"`
	Gender      models.Gender       `json:"gender"`
	BreederType *models.BreederType `json:"breederType"`
	ForSale     bool                `json:"forSale"`
	Price       *float64            `json:"price"`
	Pictures    []string            `json:"pictures"`
	BreederID   uint                `json:"breederId"`
	BreederName *string             `json:"breederName"`
	FarmName    *string             `json:"farmName"`
}

type SellerResult struct {
	UserID      uint        `json:"userId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	FarmName    *string     `json:"farmName,omitempty"`
	StableName  *string     `json:"stableName,omitempty"`
	StoreName   *string     `json:"storeName,omitempty"`
	Location    *string     `json:"location,omitempty"`
	Description *string     `json:"description,omitempty"`
	BannerURL   *string     `json:"bannerUrl,omitempty"`
}

// Result is the two-collection search envelope. Both slices are always non-nil
// so they serialize as [] rather than null.
type Result struct {
	Chickens []ChickenResult `json:"chickens"`
	Sellers  []SellerResult  `json:"sellers"`
}

func EmptyResult() Result {
	return Result{Chickens: []ChickenResult{}, Sellers: []SellerResult{}}
}
