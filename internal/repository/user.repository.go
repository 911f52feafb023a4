package repository

import (
	"time"

	"palahian/internal/models"
	"palahian/internal/search"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByVerificationToken(token string, now time.Time) (*models.User, error)
	MarkEmailVerified(id uint) error
	SearchSellers(filter search.Filter) ([]search.SellerResult, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByVerificationToken finds the user holding token, provided it has not expired at now.
func (r *userRepository) GetByVerificationToken(token string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("email_verification_token = ? AND email_verification_expires > ?", token, now).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) MarkEmailVerified(id uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_email_verified":          true,
		"email_verification_token":   nil,
		"email_verification_expires": nil,
	}).Error
}

type sellerRow struct {
	UserID            uint
	Name              string
	Email             string
	Role              models.Role
	FarmName          *string
	FarmCity          *string
	FarmProvince      *string
	FarmDescription   *string
	FarmBanner        *string
	StableName        *string
	StableCity        *string
	StableProvince    *string
	StableDescription *string
	StableBanner      *string
}

// SearchSellers matches users in the filter's seller roles by their own name
// or email, or by their farm or stable profile, in a single query.
func (r *userRepository) SearchSellers(filter search.Filter) ([]search.SellerResult, error) {
	where, args, err := search.SellerPredicate(filter).ToSql()
	if err != nil {
		return nil, err
	}

	var rows []sellerRow
	err = r.db.Table("users").
		Select(`users.id AS user_id, users.name, users.email, users.role,
			farms.name AS farm_name, farms.city AS farm_city, farms.province AS farm_province,
			farms.description AS farm_description, farms.banner_url AS farm_banner,
			stables.name AS stable_name, stables.city AS stable_city, stables.province AS stable_province,
			stables.description AS stable_description, stables.banner_url AS stable_banner`).
		Joins("LEFT JOIN farms ON farms.user_id = users.id AND farms.deleted_at IS NULL").
		Joins("LEFT JOIN stables ON stables.user_id = users.id AND stables.deleted_at IS NULL").
		Where("users.deleted_at IS NULL").
		Where(where, args...).
		Order("users.created_at DESC").
		Limit(search.SellerLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sellers := make([]search.SellerResult, 0, len(rows))
	for _, row := range rows {
		sellers = append(sellers, row.toResult())
	}
	return sellers, nil
}

func (row sellerRow) toResult() search.SellerResult {
	res := search.SellerResult{
		UserID: row.UserID,
		Name:   row.Name,
		Email:  row.Email,
		Role:   row.Role,
	}

	profileName, city, province := row.FarmName, row.FarmCity, row.FarmProvince
	res.Description, res.BannerURL = row.FarmDescription, row.FarmBanner
	if profileName == nil {
		profileName, city, province = row.StableName, row.StableCity, row.StableProvince
		res.Description, res.BannerURL = row.StableDescription, row.StableBanner
	}

	res.FarmName = row.FarmName
	switch row.Role {
	case models.RoleFighter:
		res.StableName = profileName
	case models.RoleSeller:
		res.StoreName = profileName
	}

	if city != nil || province != nil {
		loc := deref(city) + ", " + deref(province)
		res.Location = &loc
	}
	return res
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
