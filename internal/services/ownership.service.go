package services

import (
	"errors"
	"fmt"
	"strings"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OwnershipService enforces the user -> farm/stable -> bloodline hierarchy.
type OwnershipService struct {
	users      repository.UserRepository
	farms      repository.FarmRepository
	stables    repository.StableRepository
	bloodlines repository.BloodlineRepository
}

func NewOwnershipService(
	users repository.UserRepository,
	farms repository.FarmRepository,
	stables repository.StableRepository,
	bloodlines repository.BloodlineRepository,
) *OwnershipService {
	return &OwnershipService{users: users, farms: farms, stables: stables, bloodlines: bloodlines}
}

func requireRole(identity auth.Identity, roles ...models.Role) error {
	if !identity.Role.In(roles...) {
		return fmt.Errorf("%w: role %s may not perform this action", ErrForbidden, identity.Role)
	}
	return nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// breederFarm returns the caller's farm, requiring the breeder role.
func (s *OwnershipService) breederFarm(identity auth.Identity) (*models.Farm, error) {
	if err := requireRole(identity, models.RoleBreeder); err != nil {
		return nil, err
	}
	farm, err := s.farms.GetByUserID(identity.UserID)
	if err != nil {
		return nil, lookupErr(err, "farm")
	}
	return farm, nil
}

// CreateFarm creates the caller's single farm. An existing farm is never modified.
func (s *OwnershipService) CreateFarm(identity auth.Identity, attrs models.FarmAttributes) (*models.Farm, error) {
	if err := requireRole(identity, models.RoleBreeder); err != nil {
		return nil, err
	}

	if _, err := s.farms.GetByUserID(identity.UserID); err == nil {
		return nil, fmt.Errorf("%w: farm already exists", ErrConflict)
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check farm: %w", err)
	}

	if blank(attrs.Name) {
		return nil, fmt.Errorf("%w: farm name is required", ErrValidation)
	}

	farm := &models.Farm{UserID: identity.UserID}
	attrs.Apply(farm)
	if err := s.farms.Create(farm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: farm already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}
	return farm, nil
}

func (s *OwnershipService) GetFarm(identity auth.Identity) (*models.Farm, error) {
	return s.breederFarm(identity)
}

func (s *OwnershipService) UpdateFarm(identity auth.Identity, attrs models.FarmAttributes) (*models.Farm, error) {
	farm, err := s.breederFarm(identity)
	if err != nil {
		return nil, err
	}
	if attrs.Name != nil && blank(attrs.Name) {
		return nil, fmt.Errorf("%w: farm name cannot be empty", ErrValidation)
	}

	attrs.Apply(farm)
	if err := s.farms.Update(farm); err != nil {
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}
	return farm, nil
}

// GetPublicFarm is the unauthenticated farm page of breederID.
func (s *OwnershipService) GetPublicFarm(breederID uint) (*models.PublicFarm, error) {
	user, err := s.users.GetByID(breederID)
	if err != nil {
		return nil, lookupErr(err, "breeder")
	}
	farm, err := s.farms.GetByUserID(user.ID)
	if err != nil {
		return nil, lookupErr(err, "farm")
	}
	return &models.PublicFarm{Farm: *farm, Breeder: user.Summary()}, nil
}

func (s *OwnershipService) ListPublicFarms() ([]models.PublicFarm, error) {
	farms, err := s.farms.ListPublic(models.SellerRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return farms, nil
}

// GetStable returns the caller's stable, or nil when the fighter has not set one up yet.
func (s *OwnershipService) GetStable(identity auth.Identity) (*models.Stable, error) {
	if err := requireRole(identity, models.RoleFighter); err != nil {
		return nil, err
	}
	stable, err := s.stables.GetByUserID(identity.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load stable: %w", err)
	}
	return stable, nil
}

func (s *OwnershipService) CreateStable(identity auth.Identity, attrs models.StableAttributes) (*models.Stable, error) {
	if err := requireRole(identity, models.RoleFighter); err != nil {
		return nil, err
	}
	if strings.TrimSpace(attrs.Name) == "" {
		return nil, fmt.Errorf("%w: stable name is required", ErrValidation)
	}

	if _, err := s.stables.GetByUserID(identity.UserID); err == nil {
		return nil, fmt.Errorf("%w: stable already exists", ErrConflict)
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check stable: %w", err)
	}

	user, err := s.users.GetByID(identity.UserID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}

	stable := &models.Stable{
		UserID:      user.ID,
		Name:        attrs.Name,
		Owner:       user.Name,
		Region:      attrs.Region,
		Province:    attrs.Province,
		City:        attrs.City,
		Barangay:    attrs.Barangay,
		Street:      attrs.Street,
		MapPin:      attrs.MapPin,
		Email:       user.Email,
		Description: attrs.Description,
		BannerURL:   attrs.BannerURL,
		AvatarURL:   attrs.AvatarURL,
	}
	if err := s.stables.Create(stable); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: stable already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create stable: %w", err)
	}
	return stable, nil
}

func (s *OwnershipService) ListBloodlines(identity auth.Identity) ([]models.Bloodline, error) {
	farm, err := s.breederFarm(identity)
	if err != nil {
		return nil, err
	}
	bloodlines, err := s.bloodlines.ListByFarm(farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bloodlines: %w", err)
	}
	return bloodlines, nil
}

// ListBloodlineOptions backs the bloodline dropdown. Callers without a farm get an empty list.
func (s *OwnershipService) ListBloodlineOptions(identity auth.Identity) ([]models.BloodlineOption, error) {
	farm, err := s.farms.GetByUserID(identity.UserID)
	if err != nil {
		if isNotFound(err) {
			return []models.BloodlineOption{}, nil
		}
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}

	options, err := s.bloodlines.ListOptions(farm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bloodlines: %w", err)
	}
	if options == nil {
		options = []models.BloodlineOption{}
	}
	return options, nil
}

func (s *OwnershipService) CreateBloodline(identity auth.Identity, attrs models.BloodlineAttributes) (*models.Bloodline, error) {
	farm, err := s.breederFarm(identity)
	if err != nil {
		return nil, err
	}
	if blank(attrs.Name) {
		return nil, fmt.Errorf("%w: bloodline name is required", ErrValidation)
	}

	bloodline := &models.Bloodline{
		FarmID:            farm.ID,
		ModelImagesMale:   datatypes.NewJSONSlice([]string{}),
		ModelImagesFemale: datatypes.NewJSONSlice([]string{}),
	}
	attrs.Apply(bloodline)
	if err := s.bloodlines.Create(bloodline); err != nil {
		return nil, fmt.Errorf("failed to create bloodline: %w", err)
	}
	return bloodline, nil
}

// UpdateBloodline patches a bloodline of the caller's farm. Bloodlines of
// other farms are reported as not found.
func (s *OwnershipService) UpdateBloodline(identity auth.Identity, id uint, attrs models.BloodlineAttributes) (*models.Bloodline, error) {
	farm, err := s.breederFarm(identity)
	if err != nil {
		return nil, err
	}
	if attrs.Name != nil && blank(attrs.Name) {
		return nil, fmt.Errorf("%w: bloodline name cannot be empty", ErrValidation)
	}

	bloodline, err := s.bloodlines.GetForFarm(id, farm.ID)
	if err != nil {
		return nil, lookupErr(err, "bloodline")
	}

	attrs.Apply(bloodline)
	if err := s.bloodlines.Update(bloodline); err != nil {
		return nil, fmt.Errorf("failed to update bloodline: %w", err)
	}
	return bloodline, nil
}

func (s *OwnershipService) DeleteBloodline(identity auth.Identity, id uint) error {
	farm, err := s.breederFarm(identity)
	if err != nil {
		return err
	}
	bloodline, err := s.bloodlines.GetForFarm(id, farm.ID)
	if err != nil {
		return lookupErr(err, "bloodline")
	}
	if err := s.bloodlines.Delete(bloodline); err != nil {
		return fmt.Errorf("failed to delete bloodline: %w", err)
	}
	return nil
}
