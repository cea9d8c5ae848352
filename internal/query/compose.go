package query

import "github.com/galley-app/galley-client/models"

// DefaultLimit is the page size used when a filter does not specify one.
const DefaultLimit = 12

// Pagination is the limit/offset window of a composed query.
type Pagination struct {
	Limit  int
	Offset int
}

// Composed is the full parameter set of a recipe search: one predicate tree,
// one ordering specification, one pagination window. Where is a single value
// attached to both the row query and its count query.
type Composed struct {
	Where   And
	OrderBy OrderSpec
	Page    Pagination
}

// Compose is a pure transformation of a search filter into query parameters.
//
// The tree always contains the published constraint. Each optional filter
// field that is present contributes exactly one AND-ed clause; absent fields
// contribute nothing. A text query contributes a single OR group matching
// the wildcard-wrapped query against title, description, and ingredient
// names.
//
// Compose does not validate the filter; callers reject negative limits and
// offsets before composing.
func Compose(f models.SearchFilter) Composed {
	where := And{Eq("is_published", true)}

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		where = append(where, Or{
			Ilike("title", pattern),
			Ilike("description", pattern),
			Comparison{Path: []string{"ingredients", "name"}, Op: OpIlike, Value: pattern},
		})
	}
	if f.CategoryID != "" {
		where = append(where, Eq("category_id", f.CategoryID))
	}
	if f.Difficulty != "" {
		where = append(where, Eq("difficulty", f.Difficulty))
	}
	if f.MaxPrepTime > 0 {
		where = append(where, Lte("prep_time", f.MaxPrepTime))
	}
	if f.MaxCookTime > 0 {
		where = append(where, Lte("cook_time", f.MaxCookTime))
	}
	if f.MinRating > 0 {
		where = append(where, Gte("average_rating", f.MinRating))
	}
	if f.IsPremium != nil {
		where = append(where, Eq("is_premium", *f.IsPremium))
	}
	if len(f.Ingredients) > 0 {
		where = append(where, Comparison{
			Path:  []string{"ingredients", "name"},
			Op:    OpIn,
			Value: f.Ingredients,
		})
	}

	return Composed{
		Where:   where,
		OrderBy: OrderFor(f.SortBy),
		Page:    pageFor(f.Limit, f.Offset),
	}
}

func pageFor(limit, offset int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Pagination{Limit: limit, Offset: offset}
}
