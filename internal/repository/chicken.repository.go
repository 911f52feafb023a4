package repository

import (
	"fmt"
	"sync"

	"palahian/internal/models"
	"palahian/internal/search"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChickenRepository interface {
	Create(chicken *models.Chicken, autoWingband bool) error
	GetByID(id uint) (*models.Chicken, error)
	GetDetail(id uint) (*models.ChickenDetail, error)
	ListByBreeder(breederID uint) ([]models.ChickenListing, error)
	Update(chicken *models.Chicken) error
	CountOffspring(id uint) (int64, error)
	Search(filter search.Filter) ([]search.ChickenResult, error)
}

type chickenRepository struct {
	db *gorm.DB

	// breederLocks serializes wingband assignment per breeder within this process.
	breederLocks sync.Map
}

func NewChickenRepository(db *gorm.DB) ChickenRepository {
	return &chickenRepository{db: db}
}

func (r *chickenRepository) lockBreeder(breederID uint) func() {
	v, _ := r.breederLocks.LoadOrStore(breederID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Create inserts chicken. With autoWingband the wingband becomes
// Palahian_{n} where n is one more than the breeder's highest chicken id;
// the read and the insert share one transaction under a per-breeder lock so
// concurrent creations never receive the same number.
func (r *chickenRepository) Create(chicken *models.Chicken, autoWingband bool) error {
	if !autoWingband {
		return r.db.Create(chicken).Error
	}

	unlock := r.lockBreeder(chicken.BreederID)
	defer unlock()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(chicken.BreederID)).Error; err != nil {
				return err
			}
		}

		var maxID uint
		err := tx.Model(&models.Chicken{}).
			Where("breeder_id = ?", chicken.BreederID).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error
		if err != nil {
			return err
		}

		wingband := fmt.Sprintf("%s%d", models.AutoWingbandPrefix, maxID+1)
		chicken.WingbandNo = &wingband
		return tx.Create(chicken).Error
	})
}

func (r *chickenRepository) GetByID(id uint) (*models.Chicken, error) {
	var chicken models.Chicken
	if err := r.db.First(&chicken, id).Error; err != nil {
		return nil, err
	}
	return &chicken, nil
}

// GetDetail loads a chicken together with its bloodline and parent summaries.
func (r *chickenRepository) GetDetail(id uint) (*models.ChickenDetail, error) {
	chicken, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	refs, err := r.loadRefs([]models.Chicken{*chicken})
	if err != nil {
		return nil, err
	}

	detail := &models.ChickenDetail{Chicken: *chicken}
	if chicken.BloodlineID != nil {
		detail.BloodlineRef = refs.bloodlines[*chicken.BloodlineID]
	}
	if chicken.FatherID != nil {
		detail.Father = refs.parentSummary(*chicken.FatherID)
	}
	if chicken.MotherID != nil {
		detail.Mother = refs.parentSummary(*chicken.MotherID)
	}
	return detail, nil
}

func (r *chickenRepository) ListByBreeder(breederID uint) ([]models.ChickenListing, error) {
	var chickens []models.Chicken
	err := r.db.Where("breeder_id = ?", breederID).Order("created_at DESC, id DESC").Find(&chickens).Error
	if err != nil {
		return nil, err
	}

	refs, err := r.loadRefs(chickens)
	if err != nil {
		return nil, err
	}

	listings := make([]models.ChickenListing, 0, len(chickens))
	for _, c := range chickens {
		l := models.ChickenListing{Chicken: c}
		if c.FarmID != nil {
			l.Farm = refs.farms[*c.FarmID]
		}
		if c.BloodlineID != nil {
			l.BloodlineRef = refs.bloodlines[*c.BloodlineID]
		}
		if c.FatherID != nil {
			l.Father = refs.bandSummary(*c.FatherID)
		}
		if c.MotherID != nil {
			l.Mother = refs.bandSummary(*c.MotherID)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *chickenRepository) Update(chicken *models.Chicken) error {
	return r.db.Save(chicken).Error
}

// CountOffspring counts live chickens that name id as father or mother.
func (r *chickenRepository) CountOffspring(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Chicken{}).Where("father_id = ? OR mother_id = ?", id, id).Count(&count).Error
	return count, err
}

type chickenSearchRow struct {
	ID          uint
	Name        *string
	Bloodline   string
	Gender      models.Gender
	BreederType *models.BreederType
	ForSale     bool
	Price       *float64
	Pictures    datatypes.JSONSlice[string]
	BreederID   uint
	BreederName *string
	FarmName    *string
}

func (r *chickenRepository) Search(filter search.Filter) ([]search.ChickenResult, error) {
	where, args, err := search.ChickenPredicate(filter).ToSql()
	if err != nil {
		return nil, err
	}

	var rows []chickenSearchRow
	err = r.db.Table("chickens").
		Select(`chickens.id, chickens.name, chickens.bloodline, chickens.gender, chickens.breeder_type,
			chickens.for_sale, chickens.price, chickens.pictures, chickens.breeder_id,
			users.name AS breeder_name, farms.name AS farm_name`).
		Joins("LEFT JOIN users ON users.id = chickens.breeder_id").
		Joins("LEFT JOIN farms ON farms.id = chickens.farm_id AND farms.deleted_at IS NULL").
		Where("chickens.deleted_at IS NULL").
		Where(where, args...).
		Order("chickens.created_at DESC, chickens.id DESC").
		Limit(search.ChickenLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]search.ChickenResult, 0, len(rows))
	for _, row := range rows {
		pictures := []string(row.Pictures)
		if pictures == nil {
			pictures = []string{}
		}
		results = append(results, search.ChickenResult{
			ChickenID:   row.ID,
			Name:        row.Name,
			Bloodline:   row.Bloodline,
			Gender:      row.Gender,
			BreederType: row.BreederType,
			ForSale:     row.ForSale,
			Price:       row.Price,
			Pictures:    pictures,
			BreederID:   row.BreederID,
			BreederName: row.BreederName,
			FarmName:    row.FarmName,
		})
	}
	return results, nil
}

// chickenRefs indexes the rows a set of chickens points at, keyed by id.
type chickenRefs struct {
	farms      map[uint]*models.FarmRef
	bloodlines map[uint]*models.BloodlineRef
	parents    map[uint]models.Chicken
}

func (refs chickenRefs) parentSummary(id uint) *models.ParentSummary {
	p, ok := refs.parents[id]
	if !ok {
		return nil
	}
	return &models.ParentSummary{ID: p.ID, Name: p.Name, Bloodline: p.Bloodline, Gender: p.Gender}
}

func (refs chickenRefs) bandSummary(id uint) *models.BandSummary {
	p, ok := refs.parents[id]
	if !ok {
		return nil
	}
	return &models.BandSummary{ID: p.ID, LegbandNo: p.LegbandNo, WingbandNo: p.WingbandNo, Bloodline: p.Bloodline}
}

// loadRefs fetches farms, bloodlines and parents for chickens with one query per table.
func (r *chickenRepository) loadRefs(chickens []models.Chicken) (chickenRefs, error) {
	refs := chickenRefs{
		farms:      map[uint]*models.FarmRef{},
		bloodlines: map[uint]*models.BloodlineRef{},
		parents:    map[uint]models.Chicken{},
	}

	var farmIDs, bloodlineIDs, parentIDs []uint
	for _, c := range chickens {
		if c.FarmID != nil {
			farmIDs = append(farmIDs, *c.FarmID)
		}
		if c.BloodlineID != nil {
			bloodlineIDs = append(bloodlineIDs, *c.BloodlineID)
		}
		if c.FatherID != nil {
			parentIDs = append(parentIDs, *c.FatherID)
		}
		if c.MotherID != nil {
			parentIDs = append(parentIDs, *c.MotherID)
		}
	}

	if len(farmIDs) > 0 {
		var farms []models.FarmRef
		if err := r.db.Model(&models.Farm{}).Select("id, name").Where("id IN ?", farmIDs).Scan(&farms).Error; err != nil {
			return refs, err
		}
		for i := range farms {
			refs.farms[farms[i].ID] = &farms[i]
		}
	}

	if len(bloodlineIDs) > 0 {
		var bloodlines []models.BloodlineRef
		if err := r.db.Model(&models.Bloodline{}).Select("id, name").Where("id IN ?", bloodlineIDs).Scan(&bloodlines).Error; err != nil {
			return refs, err
		}
		for i := range bloodlines {
			refs.bloodlines[bloodlines[i].ID] = &bloodlines[i]
		}
	}

	if len(parentIDs) > 0 {
		var parents []models.Chicken
		err := r.db.
			Select("id", "name", "bloodline", "gender", "legband_no", "wingband_no").
			Where("id IN ?", parentIDs).
			Find(&parents).Error
		if err != nil {
			return refs, err
		}
		for _, p := range parents {
			refs.parents[p.ID] = p
		}
	}

	return refs, nil
}
