package services

import (
	"fmt"
	"strings"
	"time"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/repository"

	"gorm.io/datatypes"
)

// maxPedigreeWalk bounds the ancestor walk used for cycle detection.
const maxPedigreeWalk = 1024

const msgCannotList = "Insufficient permissions. You need to be a breeder, seller, or fighter to add chickens."

type ChickenService struct {
	chickens   repository.ChickenRepository
	farms      repository.FarmRepository
	bloodlines repository.BloodlineRepository
}

func NewChickenService(
	chickens repository.ChickenRepository,
	farms repository.FarmRepository,
	bloodlines repository.BloodlineRepository,
) *ChickenService {
	return &ChickenService{chickens: chickens, farms: farms, bloodlines: bloodlines}
}

// Create records a chicken for the caller's farm. When neither band number is
// given the wingband is auto-assigned; when only one is given the other
// becomes "n/a".
func (s *ChickenService) Create(identity auth.Identity, attrs models.ChickenAttributes) (*models.Chicken, error) {
	if !identity.Role.In(models.SellerRoles...) {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, msgCannotList)
	}
	if attrs.Gender == nil {
		return nil, fmt.Errorf("%w: gender is required", ErrValidation)
	}

	farm, err := s.farms.GetByUserID(identity.UserID)
	if err != nil {
		return nil, lookupErr(err, "farm")
	}

	chicken := &models.Chicken{
		BreederID:   identity.UserID,
		FarmID:      &farm.ID,
		Bloodline:   models.UnknownBloodline,
		Status:      models.DefaultChickenStatus,
		Pictures:    datatypes.NewJSONSlice([]string{}),
		FightVideos: datatypes.NewJSONSlice([]string{}),
	}
	if err := applyAttributes(chicken, attrs); err != nil {
		return nil, err
	}

	if attrs.BloodlineID != nil && *attrs.BloodlineID != 0 {
		bloodline, err := s.bloodlines.GetForFarm(*attrs.BloodlineID, farm.ID)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: bloodline %d does not belong to your farm", ErrValidation, *attrs.BloodlineID)
			}
			return nil, fmt.Errorf("failed to load bloodline: %w", err)
		}
		chicken.BloodlineID = &bloodline.ID
		if blank(attrs.Bloodline) {
			chicken.Bloodline = bloodline.Name
		}
	}

	if err := s.setParents(chicken, attrs); err != nil {
		return nil, err
	}

	autoWingband := false
	switch {
	case chicken.LegbandNo == nil && chicken.WingbandNo == nil:
		autoWingband = true
	case chicken.WingbandNo == nil:
		chicken.WingbandNo = ptr(models.NoBandNumber)
	case chicken.LegbandNo == nil:
		chicken.LegbandNo = ptr(models.NoBandNumber)
	}

	if err := s.chickens.Create(chicken, autoWingband); err != nil {
		return nil, fmt.Errorf("failed to create chicken: %w", err)
	}
	return chicken, nil
}

func (s *ChickenService) Get(id uint) (*models.ChickenDetail, error) {
	detail, err := s.chickens.GetDetail(id)
	if err != nil {
		return nil, lookupErr(err, "chicken")
	}
	return detail, nil
}

// Update merges the non-nil fields of attrs into a chicken owned by the caller.
// A zero fatherId, motherId or bloodlineId clears the reference.
func (s *ChickenService) Update(identity auth.Identity, id uint, attrs models.ChickenAttributes) (*models.ChickenDetail, error) {
	chicken, err := s.chickens.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "chicken")
	}
	if chicken.BreederID != identity.UserID {
		return nil, fmt.Errorf("%w: chicken %d belongs to another breeder", ErrForbidden, id)
	}

	if attrs.Bloodline != nil && blank(attrs.Bloodline) {
		attrs.Bloodline = ptr(models.UnknownBloodline)
	}
	if attrs.Gender != nil && *attrs.Gender != chicken.Gender {
		offspring, err := s.chickens.CountOffspring(chicken.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count offspring: %w", err)
		}
		if offspring > 0 {
			return nil, fmt.Errorf("%w: chicken %d is a parent of %d chickens; its gender cannot change", ErrValidation, id, offspring)
		}
	}
	if err := applyAttributes(chicken, attrs); err != nil {
		return nil, err
	}

	// At least one real band number must survive the patch.
	if !hasBand(chicken.LegbandNo) && !hasBand(chicken.WingbandNo) {
		return nil, fmt.Errorf("%w: a legband or wingband number is required", ErrValidation)
	}
	if chicken.LegbandNo == nil {
		chicken.LegbandNo = ptr(models.NoBandNumber)
	}
	if chicken.WingbandNo == nil {
		chicken.WingbandNo = ptr(models.NoBandNumber)
	}

	if attrs.BloodlineID != nil {
		if err := s.setBloodline(chicken, *attrs.BloodlineID); err != nil {
			return nil, err
		}
	}

	if err := s.setParents(chicken, attrs); err != nil {
		return nil, err
	}

	if err := s.chickens.Update(chicken); err != nil {
		return nil, fmt.Errorf("failed to update chicken: %w", err)
	}
	return s.Get(chicken.ID)
}

func (s *ChickenService) ListForBreeder(identity auth.Identity) ([]models.ChickenListing, error) {
	return s.ListPublicForBreeder(identity.UserID)
}

func (s *ChickenService) ListPublicForBreeder(breederID uint) ([]models.ChickenListing, error) {
	listings, err := s.chickens.ListByBreeder(breederID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chickens: %w", err)
	}
	if listings == nil {
		listings = []models.ChickenListing{}
	}
	return listings, nil
}

func (s *ChickenService) setBloodline(chicken *models.Chicken, bloodlineID uint) error {
	if bloodlineID == 0 {
		chicken.BloodlineID = nil
		return nil
	}
	if chicken.FarmID == nil {
		return fmt.Errorf("%w: chicken has no farm to take bloodlines from", ErrValidation)
	}
	bloodline, err := s.bloodlines.GetForFarm(bloodlineID, *chicken.FarmID)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: bloodline %d does not belong to this farm", ErrValidation, bloodlineID)
		}
		return fmt.Errorf("failed to load bloodline: %w", err)
	}
	chicken.BloodlineID = &bloodline.ID
	return nil
}

func (s *ChickenService) setParents(chicken *models.Chicken, attrs models.ChickenAttributes) error {
	if attrs.FatherID != nil {
		id, err := s.checkParent(chicken.ID, *attrs.FatherID, models.GenderRooster, "father")
		if err != nil {
			return err
		}
		chicken.FatherID = id
	}
	if attrs.MotherID != nil {
		id, err := s.checkParent(chicken.ID, *attrs.MotherID, models.GenderHen, "mother")
		if err != nil {
			return err
		}
		chicken.MotherID = id
	}
	return nil
}

// checkParent validates parentID as the father or mother of the chicken with
// id self (zero for a chicken not yet stored). It returns nil for parentID 0.
func (s *ChickenService) checkParent(self, parentID uint, want models.Gender, role string) (*uint, error) {
	if parentID == 0 {
		return nil, nil
	}
	if self != 0 && parentID == self {
		return nil, fmt.Errorf("%w: a chicken cannot be its own %s", ErrValidation, role)
	}

	parent, err := s.chickens.GetByID(parentID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s %d does not exist", ErrValidation, role, parentID)
		}
		return nil, fmt.Errorf("failed to load %s: %w", role, err)
	}
	if parent.Gender != want {
		return nil, fmt.Errorf("%w: %s must be a %s", ErrValidation, role, want)
	}

	if self != 0 {
		cyclic, err := s.hasAncestor(parent, self)
		if err != nil {
			return nil, err
		}
		if cyclic {
			return nil, fmt.Errorf("%w: %s %d is a descendant of chicken %d", ErrValidation, role, parentID, self)
		}
	}
	return &parent.ID, nil
}

// hasAncestor walks the pedigree above start looking for target.
func (s *ChickenService) hasAncestor(start *models.Chicken, target uint) (bool, error) {
	visited := map[uint]bool{start.ID: true}
	queue := parentIDs(start)

	for len(queue) > 0 && len(visited) < maxPedigreeWalk {
		id := queue[0]
		queue = queue[1:]
		if id == target {
			return true, nil
		}
		if visited[id] {
			continue
		}
		visited[id] = true

		ancestor, err := s.chickens.GetByID(id)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return false, fmt.Errorf("failed to walk pedigree: %w", err)
		}
		queue = append(queue, parentIDs(ancestor)...)
	}
	if len(queue) > 0 {
		return false, fmt.Errorf("%w: pedigree too deep to verify", ErrValidation)
	}
	return false, nil
}

func hasBand(band *string) bool {
	return band != nil && *band != models.NoBandNumber
}

func parentIDs(c *models.Chicken) []uint {
	var ids []uint
	if c.FatherID != nil {
		ids = append(ids, *c.FatherID)
	}
	if c.MotherID != nil {
		ids = append(ids, *c.MotherID)
	}
	return ids
}

// applyAttributes copies the scalar fields of a into c. References
// (bloodline, parents) are resolved by the caller.
func applyAttributes(c *models.Chicken, a models.ChickenAttributes) error {
	if a.Gender != nil {
		if !a.Gender.Valid() {
			return fmt.Errorf("%w: gender must be rooster or hen", ErrValidation)
		}
		c.Gender = *a.Gender
	}

	if a.BreederType != nil {
		switch {
		case *a.BreederType == "":
			c.BreederType = nil
		case !a.BreederType.Valid():
			return fmt.Errorf("%w: breederType must be breeder or fighter", ErrValidation)
		default:
			bt := *a.BreederType
			c.BreederType = &bt
		}
	}

	if a.HatchDate != nil {
		raw := strings.TrimSpace(*a.HatchDate)
		if raw == "" {
			c.HatchDate = nil
		} else {
			t, err := time.Parse(models.HatchDateLayout, raw)
			if err != nil {
				return fmt.Errorf("%w: hatchDate must be YYYY-MM-DD", ErrValidation)
			}
			d := datatypes.Date(t)
			c.HatchDate = &d
		}
	}

	if a.Price != nil {
		if *a.Price < 0 {
			return fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		price := *a.Price
		c.Price = &price
	}

	setOptional(&c.Name, a.Name)
	setOptional(&c.Sire, a.Sire)
	setOptional(&c.Dam, a.Dam)
	setOptional(&c.LegbandNo, a.LegbandNo)
	setOptional(&c.WingbandNo, a.WingbandNo)
	setOptional(&c.Description, a.Description)
	setOptional(&c.FightRecord, a.FightRecord)

	if !blank(a.Bloodline) {
		c.Bloodline = strings.TrimSpace(*a.Bloodline)
	}
	if !blank(a.Status) {
		c.Status = strings.TrimSpace(*a.Status)
	}
	if a.IsBreeder != nil {
		c.IsBreeder = *a.IsBreeder
	}
	if a.ForSale != nil {
		c.ForSale = *a.ForSale
	}
	if a.Pictures != nil {
		c.Pictures = datatypes.NewJSONSlice(a.Pictures)
	}
	if a.FightVideos != nil {
		c.FightVideos = datatypes.NewJSONSlice(a.FightVideos)
	}
	return nil
}

// setOptional stores src in dst; a blank src clears dst.
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}

func ptr[T any](v T) *T {
	return &v
}
