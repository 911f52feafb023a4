package search

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"palahian/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lower-cases the query and escapes LIKE wildcards so user input
// is always matched as a literal substring.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(query))) + "%"
}

func containsAny(pattern string, columns ...string) sq.Or {
	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.Expr("LOWER("+col+") LIKE ? ESCAPE '\\'", pattern))
	}
	return or
}

// ChickenPredicate builds the WHERE clause for chicken matches. Columns are
// qualified with the chickens table so the clause survives joins.
func ChickenPredicate(f Filter) sq.Sqlizer {
	pred := sq.And{
		containsAny(likePattern(f.Query),
			"chickens.name",
			"chickens.bloodline",
			"chickens.legband_no",
			"chickens.wingband_no",
			"chickens.description",
		),
	}

	if f.Gender != "" {
		pred = append(pred, sq.Eq{"chickens.gender": string(f.Gender)})
	}
	if f.BreederType != "" {
		pred = append(pred, sq.Eq{"chickens.breeder_type": string(f.BreederType)})
	}
	if f.ForSale {
		pred = append(pred, sq.Eq{"chickens.for_sale": true})
	}
	if f.Price != nil {
		pred = append(pred, sq.GtOrEq{"chickens.price": f.Price.Min})
		if f.Price.Max != nil {
			pred = append(pred, sq.LtOrEq{"chickens.price": *f.Price.Max})
		}
	}

	return pred
}

// SellerPredicate builds the WHERE clause for seller matches over users left
// joined with their farm and stable.
func SellerPredicate(f Filter) sq.Sqlizer {
	return sq.And{
		sq.Eq{"users.role": RolesOf(f.SellerRoles())},
		containsAny(likePattern(f.Query),
			"users.name",
			"users.email",
			"farms.name",
			"farms.city",
			"farms.province",
			"farms.description",
			"stables.name",
			"stables.city",
			"stables.province",
			"stables.description",
		),
	}
}

func RolesOf(roles []models.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
