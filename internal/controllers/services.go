package controllers

import (
	"context"
	"encoding/json"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/search"
	"palahian/internal/services"
)

type AccountService interface {
	Signup(in services.SignupInput) (*services.SignupResult, error)
	VerifyEmail(token string) error
	Login(in services.LoginInput) (*services.Session, error)
	Me(identity auth.Identity) (*models.UserSummary, error)
	Refresh(identity auth.Identity) (*services.Session, error)
}

type OwnershipService interface {
	CreateFarm(identity auth.Identity, attrs models.FarmAttributes) (*models.Farm, error)
	GetFarm(identity auth.Identity) (*models.Farm, error)
	UpdateFarm(identity auth.Identity, attrs models.FarmAttributes) (*models.Farm, error)
	GetPublicFarm(breederID uint) (*models.PublicFarm, error)
	ListPublicFarms() ([]models.PublicFarm, error)
	GetStable(identity auth.Identity) (*models.Stable, error)
	CreateStable(identity auth.Identity, attrs models.StableAttributes) (*models.Stable, error)
	ListBloodlines(identity auth.Identity) ([]models.Bloodline, error)
	ListBloodlineOptions(identity auth.Identity) ([]models.BloodlineOption, error)
	CreateBloodline(identity auth.Identity, attrs models.BloodlineAttributes) (*models.Bloodline, error)
	UpdateBloodline(identity auth.Identity, id uint, attrs models.BloodlineAttributes) (*models.Bloodline, error)
	DeleteBloodline(identity auth.Identity, id uint) error
}

type ChickenService interface {
	Create(identity auth.Identity, attrs models.ChickenAttributes) (*models.Chicken, error)
	Get(id uint) (*models.ChickenDetail, error)
	Update(identity auth.Identity, id uint, attrs models.ChickenAttributes) (*models.ChickenDetail, error)
	ListForBreeder(identity auth.Identity) ([]models.ChickenListing, error)
	ListPublicForBreeder(breederID uint) ([]models.ChickenListing, error)
}

type SearchService interface {
	Search(filter search.Filter) (search.Result, error)
}

type Geocoder interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}
