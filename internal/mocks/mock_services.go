package mocks

import (
	"context"
	"encoding/json"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/search"
	"palahian/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Signup(in services.SignupInput) (*services.SignupResult, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SignupResult), args.Error(1)
}

func (m *MockAccountService) VerifyEmail(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockAccountService) Login(in services.LoginInput) (*services.Session, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Session), args.Error(1)
}

func (m *MockAccountService) Me(identity auth.Identity) (*models.UserSummary, error) {
	args := m.Called(identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSummary), args.Error(1)
}

func (m *MockAccountService) Refresh(identity auth.Identity) (*services.Session, error) {
	args := m.Called(identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Session), args.Error(1)
}

type MockOwnershipService struct {
	mock.Mock
}

func (m *MockOwnershipService) CreateFarm(identity auth.Identity, attrs models.FarmAttributes) (*models.Farm, error) {
	args := m.Called(identity, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Farm), args.Error(1)
}

func (m *MockOwnershipService) GetFarm(identity auth.Identity) (*models.Farm, error) {
	args := m.Called(identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Farm), args.Error(1)
}

func (m *MockOwnershipService) UpdateFarm(identity auth.Identity, attrs models.FarmAttributes) (*models.Farm, error) {
	args := m.Called(identity, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Farm), args.Error(1)
}

func (m *MockOwnershipService) GetPublicFarm(breederID uint) (*models.PublicFarm, error) {
	args := m.Called(breederID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicFarm), args.Error(1)
}

func (m *MockOwnershipService) ListPublicFarms() ([]models.PublicFarm, error) {
	args := m.Called()
	return args.Get(0).([]models.PublicFarm), args.Error(1)
}

func (m *MockOwnershipService) GetStable(identity auth.Identity) (*models.Stable, error) {
	args := m.Called(identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stable), args.Error(1)
}

func (m *MockOwnershipService) CreateStable(identity auth.Identity, attrs models.StableAttributes) (*models.Stable, error) {
	args := m.Called(identity, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stable), args.Error(1)
}

func (m *MockOwnershipService) ListBloodlines(identity auth.Identity) ([]models.Bloodline, error) {
	args := m.Called(identity)
	return args.Get(0).([]models.Bloodline), args.Error(1)
}

func (m *MockOwnershipService) ListBloodlineOptions(identity auth.Identity) ([]models.BloodlineOption, error) {
	args := m.Called(identity)
	return args.Get(0).([]models.BloodlineOption), args.Error(1)
}

func (m *MockOwnershipService) CreateBloodline(identity auth.Identity, attrs models.BloodlineAttributes) (*models.Bloodline, error) {
	args := m.Called(identity, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bloodline), args.Error(1)
}

func (m *MockOwnershipService) UpdateBloodline(identity auth.Identity, id uint, attrs models.BloodlineAttributes) (*models.Bloodline, error) {
	args := m.Called(identity, id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bloodline), args.Error(1)
}

func (m *MockOwnershipService) DeleteBloodline(identity auth.Identity, id uint) error {
	args := m.Called(identity, id)
	return args.Error(0)
}

type MockChickenService struct {
	mock.Mock
}

func (m *MockChickenService) Create(identity auth.Identity, attrs models.ChickenAttributes) (*models.Chicken, error) {
	args := m.Called(identity, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chicken), args.Error(1)
}

func (m *MockChickenService) Get(id uint) (*models.ChickenDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChickenDetail), args.Error(1)
}

func (m *MockChickenService) Update(identity auth.Identity, id uint, attrs models.ChickenAttributes) (*models.ChickenDetail, error) {
	args := m.Called(identity, id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChickenDetail), args.Error(1)
}

func (m *MockChickenService) ListForBreeder(identity auth.Identity) ([]models.ChickenListing, error) {
	args := m.Called(identity)
	return args.Get(0).([]models.ChickenListing), args.Error(1)
}

func (m *MockChickenService) ListPublicForBreeder(breederID uint) ([]models.ChickenListing, error) {
	args := m.Called(breederID)
	return args.Get(0).([]models.ChickenListing), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(filter search.Filter) (search.Result, error) {
	args := m.Called(filter)
	return args.Get(0).(search.Result), args.Error(1)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
