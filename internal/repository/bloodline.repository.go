package repository

import (
	"palahian/internal/models"

	"gorm.io/gorm"
)

type BloodlineRepository interface {
	Create(bloodline *models.Bloodline) error
	GetForFarm(id, farmID uint) (*models.Bloodline, error)
	ListByFarm(farmID uint) ([]models.Bloodline, error)
	ListOptions(farmID uint) ([]models.BloodlineOption, error)
	Update(bloodline *models.Bloodline) error
	Delete(bloodline *models.Bloodline) error
}

type bloodlineRepository struct {
	db *gorm.DB
}

func NewBloodlineRepository(db *gorm.DB) BloodlineRepository {
	return &bloodlineRepository{db: db}
}

func (r *bloodlineRepository) Create(bloodline *models.Bloodline) error {
	return r.db.Create(bloodline).Error
}

// GetForFarm only finds the bloodline when it belongs to farmID.
func (r *bloodlineRepository) GetForFarm(id, farmID uint) (*models.Bloodline, error) {
	var bloodline models.Bloodline
	if err := r.db.Where("id = ? AND farm_id = ?", id, farmID).First(&bloodline).Error; err != nil {
		return nil, err
	}
	return &bloodline, nil
}

func (r *bloodlineRepository) ListByFarm(farmID uint) ([]models.Bloodline, error) {
	var bloodlines []models.Bloodline
	err := r.db.Where("farm_id = ?", farmID).Order("created_at DESC, id DESC").Find(&bloodlines).Error
	return bloodlines, err
}

func (r *bloodlineRepository) ListOptions(farmID uint) ([]models.BloodlineOption, error) {
	var options []models.BloodlineOption
	err := r.db.Model(&models.Bloodline{}).
		Select("id, name").
		Where("farm_id = ?", farmID).
		Order("name ASC").
		Scan(&options).Error
	return options, err
}

func (r *bloodlineRepository) Update(bloodline *models.Bloodline) error {
	return r.db.Save(bloodline).Error
}

func (r *bloodlineRepository) Delete(bloodline *models.Bloodline) error {
	return r.db.Delete(bloodline).Error
}
