package repository

import (
	"palahian/internal/models"

	"gorm.io/gorm"
)

type StableRepository interface {
	Create(stable *models.Stable) error
	GetByUserID(userID uint) (*models.Stable, error)
}

type stableRepository struct {
	db *gorm.DB
}

func NewStableRepository(db *gorm.DB) StableRepository {
	return &stableRepository{db: db}
}

func (r *stableRepository) Create(stable *models.Stable) error {
	return r.db.Create(stable).Error
}

func (r *stableRepository) GetByUserID(userID uint) (*models.Stable, error) {
	var stable models.Stable
	if err := r.db.Where("user_id = ?", userID).First(&stable).Error; err != nil {
		return nil, err
	}
	return &stable, nil
}
