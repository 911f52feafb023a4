package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"palahian/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateChickenBandNumbers(t *testing.T) {
	f := newFixture(t)
	juan, _ := f.newBreeder(t, "Juan")
	maria, _ := f.newBreeder(t, "Maria")

	first := f.newChicken(t, juan, models.ChickenAttributes{})
	require.NotNil(t, first.WingbandNo)
	assert.Equal(t, fmt.Sprintf("Palahian_%d", first.ID), *first.WingbandNo, "first chicken of a breeder")
	assert.Equal(t, "Palahian_1", *first.WingbandNo)
	assert.Nil(t, first.LegbandNo)

	f.newChicken(t, maria, models.ChickenAttributes{})

	third := f.newChicken(t, juan, models.ChickenAttributes{})
	assert.Equal(t, fmt.Sprintf("Palahian_%d", first.ID+1), *third.WingbandNo, "based on the breeder's own highest id")

	legOnly := f.newChicken(t, juan, models.ChickenAttributes{LegbandNo: ptr("L-7")})
	assert.Equal(t, "L-7", *legOnly.LegbandNo)
	assert.Equal(t, models.NoBandNumber, *legOnly.WingbandNo)

	wingOnly := f.newChicken(t, juan, models.ChickenAttributes{WingbandNo: ptr("W-7")})
	assert.Equal(t, "W-7", *wingOnly.WingbandNo)
	assert.Equal(t, models.NoBandNumber, *wingOnly.LegbandNo)

	both := f.newChicken(t, juan, models.ChickenAttributes{LegbandNo: ptr("L-8"), WingbandNo: ptr("W-8")})
	assert.Equal(t, "L-8", *both.LegbandNo)
	assert.Equal(t, "W-8", *both.WingbandNo)
}

func TestCreateChickenDefaults(t *testing.T) {
	f := newFixture(t)
	juan, farm := f.newBreeder(t, "Juan")

	c := f.newChicken(t, juan, models.ChickenAttributes{Gender: ptr(models.GenderHen)})
	assert.Equal(t, juan.UserID, c.BreederID)
	assert.Equal(t, farm.ID, *c.FarmID)
	assert.Equal(t, models.UnknownBloodline, c.Bloodline)
	assert.Equal(t, models.DefaultChickenStatus, c.Status)
	assert.False(t, c.ForSale)
	assert.False(t, c.IsBreeder)
	assert.Empty(t, c.Pictures)
	assert.NotNil(t, c.Pictures)

	detail, err := f.chickens.Get(c.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Pictures)
	assert.NotNil(t, detail.FightVideos)
}

func TestCreateChickenRules(t *testing.T) {
	f := newFixture(t)
	juan, _ := f.newBreeder(t, "Juan")

	tests := []struct {
		name    string
		attrs   models.ChickenAttributes
		wantErr error
	}{
		{"missing gender", models.ChickenAttributes{}, ErrValidation},
		{"bad gender", models.ChickenAttributes{Gender: ptr(models.Gender("capon"))}, ErrValidation},
		{"bad breeder type", models.ChickenAttributes{Gender: ptr(models.GenderHen), BreederType: ptr(models.BreederType("pet"))}, ErrValidation},
		{"bad hatch date", models.ChickenAttributes{Gender: ptr(models.GenderHen), HatchDate: ptr("15/01/2024")}, ErrValidation},
		{"negative price", models.ChickenAttributes{Gender: ptr(models.GenderHen), Price: ptr(-1.0)}, ErrValidation},
		{"unknown father", models.ChickenAttributes{Gender: ptr(models.GenderHen), FatherID: ptr(uint(999))}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.chickens.Create(juan, tt.attrs)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("buyer cannot list", func(t *testing.T) {
		buyer := f.newUser(t, "Ana", models.RoleBuyer)
		_, err := f.chickens.Create(buyer, models.ChickenAttributes{Gender: ptr(models.GenderHen)})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("seller without farm", func(t *testing.T) {
		seller := f.newUser(t, "Lito", models.RoleSeller)
		_, err := f.chickens.Create(seller, models.ChickenAttributes{Gender: ptr(models.GenderHen)})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("hatch date", func(t *testing.T) {
		c := f.newChicken(t, juan, models.ChickenAttributes{HatchDate: ptr("2024-01-15")})
		require.NotNil(t, c.HatchDate)
		assert.Equal(t, "2024-01-15", time.Time(*c.HatchDate).Format(models.HatchDateLayout))
	})
}

func TestCreateChickenBloodline(t *testing.T) {
	f := newFixture(t)
	juan, _ := f.newBreeder(t, "Juan")
	maria, _ := f.newBreeder(t, "Maria")

	boston, err := f.ownership.CreateBloodline(juan, models.BloodlineAttributes{Name: ptr("Boston Roundhead")})
	require.NoError(t, err)

	c := f.newChicken(t, juan, models.ChickenAttributes{BloodlineID: &boston.ID})
	assert.Equal(t, "Boston Roundhead", c.Bloodline)
	assert.Equal(t, boston.ID, *c.BloodlineID)

	named := f.newChicken(t, juan, models.ChickenAttributes{BloodlineID: &boston.ID, Bloodline: ptr("Boston x Kelso")})
	assert.Equal(t, "Boston x Kelso", named.Bloodline)

	_, err = f.chickens.Create(maria, models.ChickenAttributes{Gender: ptr(models.GenderHen), BloodlineID: &boston.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChickenParents(t *testing.T) {
	f := newFixture(t)
	juan, _ := f.newBreeder(t, "Juan")

	sire := f.newChicken(t, juan, models.ChickenAttributes{Name: ptr("Sire"), Gender: ptr(models.GenderRooster)})
	dam := f.newChicken(t, juan, models.ChickenAttributes{Name: ptr("Dam"), Gender: ptr(models.GenderHen)})

	_, err := f.chickens.Create(juan, models.ChickenAttributes{Gender: ptr(models.GenderHen), FatherID: &dam.ID})
	assert.ErrorIs(t, err, ErrValidation, "father must be a rooster")
	_, err = f.chickens.Create(juan, models.ChickenAttributes{Gender: ptr(models.GenderHen), MotherID: &sire.ID})
	assert.ErrorIs(t, err, ErrValidation, "mother must be a hen")

	chick := f.newChicken(t, juan, models.ChickenAttributes{Name: ptr("Chick"), FatherID: &sire.ID, MotherID: &dam.ID})

	detail, err := f.chickens.Get(chick.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Father)
	require.NotNil(t, detail.Mother)
	assert.Equal(t, "Sire", *detail.Father.Name)
	assert.Equal(t, models.GenderHen, detail.Mother.Gender)

	listing, err := f.chickens.ListForBreeder(juan)
	require.NoError(t, err)
	require.Len(t, listing, 3)
	assert.Equal(t, chick.ID, listing[0].ID, "newest first")
	require.NotNil(t, listing[0].Father)
	assert.Equal(t, sire.WingbandNo, listing[0].Father.WingbandNo)
	require.NotNil(t, listing[0].Farm)

	_, err = f.chickens.Update(juan, sire.ID, models.ChickenAttributes{FatherID: &sire.ID})
	assert.ErrorIs(t, err, ErrValidation, "own parent")

	grandchild := f.newChicken(t, juan, models.ChickenAttributes{FatherID: &chick.ID})
	_, err = f.chickens.Update(juan, sire.ID, models.ChickenAttributes{FatherID: &grandchild.ID})
	assert.ErrorIs(t, err, ErrValidation, "descendant as parent")

	_, err = f.chickens.Update(juan, sire.ID, models.ChickenAttributes{Gender: ptr(models.GenderHen)})
	assert.ErrorIs(t, err, ErrValidation, "father of others cannot become a hen")
	_, err = f.chickens.Update(juan, grandchild.ID, models.ChickenAttributes{Gender: ptr(models.GenderHen)})
	assert.NoError(t, err, "no offspring, gender may change")

	cleared, err := f.chickens.Update(juan, chick.ID, models.ChickenAttributes{FatherID: ptr(uint(0))})
	require.NoError(t, err)
	assert.Nil(t, cleared.FatherID)
	assert.Nil(t, cleared.Father)
	assert.NotNil(t, cleared.MotherID)
}

func TestDeepPedigreeIsRejected(t *testing.T) {
	f := newFixture(t)
	juan, farm := f.newBreeder(t, "Juan")

	var fatherID *uint
	for i := 0; i <= maxPedigreeWalk+10; i++ {
		c := &models.Chicken{
			BreederID:   juan.UserID,
			FarmID:      &farm.ID,
			Gender:      models.GenderRooster,
			WingbandNo:  ptr(fmt.Sprintf("D-%d", i)),
			FatherID:    fatherID,
			Pictures:    datatypes.NewJSONSlice([]string{}),
			FightVideos: datatypes.NewJSONSlice([]string{}),
		}
		require.NoError(t, f.db.Create(c).Error)
		id := c.ID
		fatherID = &id
	}

	target := f.newChicken(t, juan, models.ChickenAttributes{})
	_, err := f.chickens.Update(juan, target.ID, models.ChickenAttributes{FatherID: fatherID})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "too deep")
}

func TestUpdateChicken(t *testing.T) {
	f := newFixture(t)
	juan, _ := f.newBreeder(t, "Juan")
	maria, _ := f.newBreeder(t, "Maria")

	c := f.newChicken(t, juan, models.ChickenAttributes{Name: ptr("Red"), LegbandNo: ptr("L-1")})

	_, err := f.chickens.Update(maria, c.ID, models.ChickenAttributes{Name: ptr("Mine")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.chickens.Update(juan, 9999, models.ChickenAttributes{})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := f.chickens.Update(juan, c.ID, models.ChickenAttributes{
		ForSale:     ptr(true),
		Price:       ptr(15000.0),
		BreederType: ptr(models.BreederTypeFighter),
	})
	require.NoError(t, err)
	assert.Equal(t, "Red", *updated.Name)
	assert.Equal(t, "L-1", *updated.LegbandNo)
	assert.True(t, updated.ForSale)
	assert.Equal(t, 15000.0, *updated.Price)
	assert.Equal(t, models.BreederTypeFighter, *updated.BreederType)

	updated, err = f.chickens.Update(juan, c.ID, models.ChickenAttributes{Bloodline: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, models.UnknownBloodline, updated.Bloodline)

	_, err = f.chickens.Update(juan, c.ID, models.ChickenAttributes{LegbandNo: ptr(""), WingbandNo: ptr(" ")})
	assert.ErrorIs(t, err, ErrValidation, "both bands cleared")
	_, err = f.chickens.Update(juan, c.ID, models.ChickenAttributes{LegbandNo: ptr("")})
	assert.ErrorIs(t, err, ErrValidation, "only band cleared, other is n/a")

	stored, err := f.chickens.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "L-1", *stored.LegbandNo)

	updated, err = f.chickens.Update(juan, c.ID, models.ChickenAttributes{LegbandNo: ptr(""), WingbandNo: ptr("W-9")})
	require.NoError(t, err)
	assert.Equal(t, "W-9", *updated.WingbandNo)
	assert.Equal(t, models.NoBandNumber, *updated.LegbandNo)

	public, err := f.chickens.ListPublicForBreeder(juan.UserID)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	none, err := f.chickens.ListPublicForBreeder(maria.UserID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestConcurrentAutoWingbandsAreDistinct(t *testing.T) {
	f := newFixture(t)
	juan, _ := f.newBreeder(t, "Juan")

	const n = 8
	var wg sync.WaitGroup
	results := make([]*models.Chicken, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.chickens.Create(juan, models.ChickenAttributes{Gender: ptr(models.GenderRooster)})
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		band := *results[i].WingbandNo
		assert.False(t, seen[band], "duplicate wingband %s", band)
		seen[band] = true
	}
	assert.Len(t, seen, n)
}
