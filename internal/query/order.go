package query

import (
	"encoding/json"

	"github.com/galley-app/galley-client/models"
)

// Direction is a sort direction on a single field.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// OrderField is one (field, direction) pair of an ordering specification.
type OrderField struct {
	Field     string
	Direction Direction
}

// MarshalJSON serializes the pair as the wire format's single-key object,
// e.g. {"created_at": "desc"}.
func (o OrderField) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Direction{o.Field: o.Direction})
}

// OrderSpec is the ordered field+direction list determining result sort.
// Every spec ends in a deterministic tie-breaker so pagination is stable
// across pages.
type OrderSpec []OrderField

// OrderFor maps a sort mode to its ordering specification. Unknown modes
// fall back to the relevance ordering.
func OrderFor(mode models.SortMode) OrderSpec {
	switch mode {
	case models.SortNewest:
		return OrderSpec{{Field: "created_at", Direction: Desc}}
	case models.SortPopular:
		return OrderSpec{
			{Field: "total_likes", Direction: Desc},
			{Field: "created_at", Direction: Desc},
		}
	case models.SortRating:
		return OrderSpec{
			{Field: "average_rating", Direction: Desc},
			{Field: "created_at", Direction: Desc},
		}
	case models.SortPrepTime:
		return OrderSpec{{Field: "prep_time", Direction: Asc}}
	default:
		return OrderSpec{
			{Field: "total_likes", Direction: Desc},
			{Field: "average_rating", Direction: Desc},
			{Field: "created_at", Direction: Desc},
		}
	}
}
