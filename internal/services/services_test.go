package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"palahian/internal/auth"
	"palahian/internal/models"
	"palahian/internal/repository"
	"palahian/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(recipient, subject, message string) error {
	args := m.Called(recipient, subject, message)
	return args.Error(0)
}

type fixture struct {
	db        *gorm.DB
	mailer    *mockMailer
	tokens    *auth.TokenManager
	accounts  *AccountService
	ownership *OwnershipService
	chickens  *ChickenService
	search    *SearchService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithDB(t, testutil.NewDB(t))
}

func newFixtureWithDB(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	users := repository.NewUserRepository(db)
	farms := repository.NewFarmRepository(db)
	stables := repository.NewStableRepository(db)
	bloodlines := repository.NewBloodlineRepository(db)
	chickens := repository.NewChickenRepository(db)

	mailer := &mockMailer{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return &fixture{
		db:        db,
		mailer:    mailer,
		tokens:    tokens,
		accounts:  NewAccountService(users, tokens, mailer, "http://localhost:5000", 24*time.Hour),
		ownership: NewOwnershipService(users, farms, stables, bloodlines),
		chickens:  NewChickenService(chickens, farms, bloodlines),
		search:    NewSearchService(chickens, users),
	}
}

// newUser stores a verified user directly and returns its identity.
func (f *fixture) newUser(t *testing.T, name string, role models.Role) auth.Identity {
	t.Helper()

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)

	user := &models.User{
		Name:            name,
		Email:           fmt.Sprintf("%s@example.com", strings.ToLower(strings.ReplaceAll(name, " ", "."))),
		PasswordHash:    hash,
		Role:            role,
		IsEmailVerified: true,
	}
	require.NoError(t, f.db.Create(user).Error)
	return auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
}

// newBreeder returns a breeder that already owns a farm.
func (f *fixture) newBreeder(t *testing.T, name string) (auth.Identity, *models.Farm) {
	t.Helper()

	id := f.newUser(t, name, models.RoleBreeder)
	farm, err := f.ownership.CreateFarm(id, models.FarmAttributes{
		Name:     ptr(name + " Gamefarm"),
		City:     ptr("Lipa"),
		Province: ptr("Batangas"),
	})
	require.NoError(t, err)
	return id, farm
}

func (f *fixture) newChicken(t *testing.T, owner auth.Identity, attrs models.ChickenAttributes) *models.Chicken {
	t.Helper()

	if attrs.Gender == nil {
		attrs.Gender = ptr(models.GenderRooster)
	}
	chicken, err := f.chickens.Create(owner, attrs)
	require.NoError(t, err)
	return chicken
}

// verificationToken pulls the token out of the verification link in a mail body.
func verificationToken(t *testing.T, body string) string {
	t.Helper()

	_, rest, ok := strings.Cut(body, "verify-email?token=")
	require.True(t, ok, "body has no verification link: %s", body)
	token, _, _ := strings.Cut(rest, "\r\n")
	return token
}
