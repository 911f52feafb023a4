// Package search turns marketplace search parameters into a typed filter and
// storage-neutral SQL predicates.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"palahian/internal/models"
)

var ErrInvalidFilter = errors.New("invalid search filter")

type Category string

const (
	CategoryAll      Category = "all"
	CategoryChickens Category = "chickens"
	CategoryFarms    Category = "farms"
	CategoryStables  Category = "stables"
	CategoryStores   Category = "stores"
)

const (
	ChickenLimit = 50
	SellerLimit  = 20

	anyValue = "all"
)

// PriceRange bounds are inclusive. A nil Max means no upper bound.
type PriceRange struct {
	Min float64
	Max *float64
}

func (p PriceRange) Contains(price float64) bool {
	if price < p.Min {
		return false
	}
	return p.Max == nil || price <= *p.Max
}

// Filter is the full specification of one search request. Zero values of the
// optional fields mean "no constraint".
type Filter struct {
	Query       string
	Category    Category
	Gender      models.Gender
	BreederType models.BreederType
	Price       *PriceRange
	ForSale     bool
}

// Blank reports whether the text query is empty after trimming.
func (f Filter) Blank() bool {
	return strings.TrimSpace(f.Query) == ""
}

func (f Filter) IncludesChickens() bool {
	return f.Category == CategoryAll || f.Category == CategoryChickens
}

// SellerRoles returns the user roles the category searches for, or nil when
// the category does not include sellers.
func (f Filter) SellerRoles() []models.Role {
	switch f.Category {
	case CategoryAll:
		return models.SellerRoles
	case CategoryFarms:
		return []models.Role{models.RoleBreeder}
	case CategoryStables:
		return []models.Role{models.RoleFighter}
	case CategoryStores:
		return []models.Role{models.RoleSeller}
	default:
		return nil
	}
}

// ParseFilter reads q, category, gender, breederType, priceRange and forSale.
// Missing enumerations default to "all".
func ParseFilter(values url.Values) (Filter, error) {
	f := Filter{
		Query:    strings.TrimSpace(values.Get("q")),
		Category: Category(valueOr(values, "category", anyValue)),
		ForSale:  values.Get("forSale") == "true",
	}

	switch f.Category {
	case CategoryAll, CategoryChickens, CategoryFarms, CategoryStables, CategoryStores:
	default:
		return Filter{}, fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, f.Category)
	}

	if g := valueOr(values, "gender", anyValue); g != anyValue {
		f.Gender = models.Gender(g)
		if !f.Gender.Valid() {
			return Filter{}, fmt.Errorf("%w: unknown gender %q", ErrInvalidFilter, g)
		}
	}

	if bt := valueOr(values, "breederType", anyValue); bt != anyValue {
		f.BreederType = models.BreederType(bt)
		if !f.BreederType.Valid() {
			return Filter{}, fmt.Errorf("%w: unknown breederType %q", ErrInvalidFilter, bt)
		}
	}

	price, err := ParsePriceRange(valueOr(values, "priceRange", anyValue))
	if err != nil {
		return Filter{}, err
	}
	f.Price = price

	return f, nil
}

// ParsePriceRange accepts "all", "<min>-<max>" and "<min>-+".
func ParsePriceRange(raw string) (*PriceRange, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == anyValue {
		return nil, nil
	}

	minRaw, maxRaw, ok := strings.Cut(raw, "-")
	if !ok {
		return nil, fmt.Errorf("%w: price range %q must be min-max or min-+", ErrInvalidFilter, raw)
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(minRaw), 64)
	if err != nil || lo < 0 {
		return nil, fmt.Errorf("%w: invalid minimum price in %q", ErrInvalidFilter, raw)
	}

	r := &PriceRange{Min: lo}
	if maxRaw = strings.TrimSpace(maxRaw); maxRaw == "+" {
		return r, nil
	}

	hi, err := strconv.ParseFloat(maxRaw, 64)
	if err != nil || hi < lo {
		return nil, fmt.Errorf("%w: invalid maximum price in %q", ErrInvalidFilter, raw)
	}
	r.Max = &hi
	return r, nil
}

func valueOr(values url.Values, key, fallback string) string {
	if v := strings.TrimSpace(values.Get(key)); v != "" {
		return v
	}
	return fallback
}
