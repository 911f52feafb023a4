package repository

import (
	"palahian/internal/models"
	"palahian/internal/search"

	"gorm.io/gorm"
)

type FarmRepository interface {
	Create(farm *models.Farm) error
	GetByUserID(userID uint) (*models.Farm, error)
	Update(farm *models.Farm) error
	ListPublic(roles []models.Role) ([]models.PublicFarm, error)
}

type farmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) FarmRepository {
	return &farmRepository{db: db}
}

func (r *farmRepository) Create(farm *models.Farm) error {
	return r.db.Create(farm).Error
}

func (r *farmRepository) GetByUserID(userID uint) (*models.Farm, error) {
	var farm models.Farm
	if err := r.db.Where("user_id = ?", userID).First(&farm).Error; err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *farmRepository) Update(farm *models.Farm) error {
	return r.db.Save(farm).Error
}

// ListPublic returns every farm whose owner holds one of roles, newest first.
func (r *farmRepository) ListPublic(roles []models.Role) ([]models.PublicFarm, error) {
	var farms []models.Farm
	err := r.db.
		Joins("User").
		Where(`"User".role IN ?`, search.RolesOf(roles)).
		Order("farms.created_at DESC").
		Find(&farms).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.PublicFarm, 0, len(farms))
	for _, f := range farms {
		entry := models.PublicFarm{Farm: f}
		if f.User != nil {
			entry.Breeder = f.User.Summary()
		}
		out = append(out, entry)
	}
	return out, nil
}
