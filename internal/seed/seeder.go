// Package seed fills a development database with breeders, farms, bloodlines
// and chickens. Everything it writes goes through the services so seeded rows
// obey the same rules as API writes.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/repository"
	"palahian/internal/services"

	"gorm.io/gorm"
)

const (
	DefaultBreeders          = 10
	DefaultChickensPerFarm   = 12
	seedEmailPattern         = "seed.%@example.com"
	seedPassword             = "SeedPassword123!"
	defaultBloodlinesPerFarm = 2
)

type Options struct {
	Breeders        int
	ChickensPerFarm int
	// Seed makes runs reproducible.
	Seed int64
}

type Summary struct {
	Users      int
	Farms      int
	Bloodlines int
	Chickens   int
}

type place struct {
	region, province, city string
}

var (
	places = []place{
		{"Region IV-A", "Batangas", "Lipa"},
		{"Region IV-A", "Cavite", "Tagaytay"},
		{"Region III", "Pampanga", "San Fernando"},
		{"Region VII", "Cebu", "Talisay"},
		{"Region VI", "Negros Occidental", "Bacolod"},
		{"Region XI", "Davao del Sur", "Davao City"},
	}
	bloodlineNames = []string{
		"Boston Roundhead", "Kelso", "Sweater", "Hatch", "Claret",
		"Lemon", "Albany", "Grey", "Radio", "Whitehackle",
	}
	firstNames = []string{"Juan", "Pedro", "Jose", "Andres", "Miguel", "Ramon", "Carlos", "Emilio"}
	lastNames  = []string{"Dela Cruz", "Santos", "Reyes", "Garcia", "Mendoza", "Bautista", "Villanueva"}
)

type Seeder struct {
	db        *gorm.DB
	users     repository.UserRepository
	ownership *services.OwnershipService
	chickens  *services.ChickenService
}

func NewSeeder(db *gorm.DB) *Seeder {
	users := repository.NewUserRepository(db)
	farms := repository.NewFarmRepository(db)
	bloodlines := repository.NewBloodlineRepository(db)
	return &Seeder{
		db:        db,
		users:     users,
		ownership: services.NewOwnershipService(users, farms, repository.NewStableRepository(db), bloodlines),
		chickens:  services.NewChickenService(repository.NewChickenRepository(db), farms, bloodlines),
	}
}

// Seed creates opts.Breeders verified breeders, each with a farm, a couple of
// bloodlines and a small flock. The first rooster and hen of every flock are
// set as parents of the rest.
func (s *Seeder) Seed(opts Options) (Summary, error) {
	if opts.Breeders <= 0 {
		opts.Breeders = DefaultBreeders
	}
	if opts.ChickensPerFarm <= 0 {
		opts.ChickensPerFarm = DefaultChickensPerFarm
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for i := 0; i < opts.Breeders; i++ {
		name := fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
		user := &models.User{
			Name:            name,
			Email:           fmt.Sprintf("seed.breeder%d.%d@example.com", opts.Seed, i+1),
			PasswordHash:    hash,
			Role:            models.RoleBreeder,
			IsEmailVerified: true,
		}
		if err := s.users.Create(user); err != nil {
			return summary, fmt.Errorf("failed to create breeder %s: %w", user.Email, err)
		}
		summary.Users++
		identity := auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}

		p := places[rng.Intn(len(places))]
		farmName := fmt.Sprintf("%s Gamefarm", lastNames[rng.Intn(len(lastNames))])
		if _, err := s.ownership.CreateFarm(identity, models.FarmAttributes{
			Name:     &farmName,
			Region:   &p.region,
			Province: &p.province,
			City:     &p.city,
		}); err != nil {
			return summary, fmt.Errorf("failed to create farm for %s: %w", user.Email, err)
		}
		summary.Farms++

		var lines []*models.Bloodline
		for _, idx := range rng.Perm(len(bloodlineNames))[:defaultBloodlinesPerFarm] {
			lineName := bloodlineNames[idx]
			line, err := s.ownership.CreateBloodline(identity, models.BloodlineAttributes{Name: &lineName})
			if err != nil {
				return summary, fmt.Errorf("failed to create bloodline for %s: %w", user.Email, err)
			}
			lines = append(lines, line)
			summary.Bloodlines++
		}

		created, err := s.seedFlock(identity, lines, opts.ChickensPerFarm, rng)
		summary.Chickens += created
		if err != nil {
			return summary, err
		}
	}

	log.Printf("Seeded %d breeders, %d bloodlines and %d chickens", summary.Users, summary.Bloodlines, summary.Chickens)
	return summary, nil
}

func (s *Seeder) seedFlock(identity auth.Identity, lines []*models.Bloodline, n int, rng *rand.Rand) (int, error) {
	var sireID, damID *uint
	created := 0
	for j := 0; j < n; j++ {
		gender := models.GenderRooster
		if j%2 == 1 {
			gender = models.GenderHen
		}
		line := lines[rng.Intn(len(lines))]
		forSale := rng.Intn(3) == 0
		attrs := models.ChickenAttributes{
			Gender:      &gender,
			BloodlineID: &line.ID,
			ForSale:     &forSale,
			FatherID:    sireID,
			MotherID:    damID,
		}
		if forSale {
			price := float64(5000 + rng.Intn(20)*1000)
			attrs.Price = &price
		}

		chicken, err := s.chickens.Create(identity, attrs)
		if err != nil {
			return created, fmt.Errorf("failed to create chicken for %s: %w", identity.Email, err)
		}
		created++

		// The first pair becomes the brood stock of the rest.
		switch {
		case j == 0:
			id := chicken.ID
			sireID = &id
		case j == 1:
			id := chicken.ID
			damID = &id
		}
	}
	return created, nil
}

// Clear hard-deletes every seeded user together with their farms, bloodlines
// and chickens. It returns the number of users removed.
func (s *Seeder) Clear() (int64, error) {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Unscoped().Model(&models.User{}).Where("email LIKE ?", seedEmailPattern).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		farmIDs := tx.Unscoped().Model(&models.Farm{}).Select("id").Where("user_id IN ?", ids)
		if err := tx.Unscoped().Where("farm_id IN (?)", farmIDs).Delete(&models.Bloodline{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("breeder_id IN ?", ids).Delete(&models.Chicken{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id IN ?", ids).Delete(&models.Farm{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id IN ?", ids).Delete(&models.Stable{}).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Where("id IN ?", ids).Delete(&models.User{})
		removed = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clear seeded data: %w", err)
	}

	log.Printf("Deleted %d seeded users", removed)
	return removed, nil
}
