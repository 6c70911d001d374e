package repository

import (
	"context"
	"slices"
)

// KnownPersonIDs are the ids every person lookup is checked against.
var KnownPersonIDs = []int{1, 2, 3, 4, 5}

// PersonRepository answers existence checks over KnownPersonIDs.
type PersonRepository struct {
	ids []int
}

func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		ids: slices.Clone(KnownPersonIDs),
	}
}

// Exists reports whether id is a known person.
func (r *PersonRepository) Exists(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return slices.Contains(r.ids, id), nil
}
