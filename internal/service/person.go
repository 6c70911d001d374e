package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/rs/zerolog"
)

// PersonNotFoundMessage is returned for any id outside the known set.
const PersonNotFoundMessage = "This person doesn't exist!"

// nullKey is the map key used when an optional query name is absent.
const nullKey = "null"

type PersonService struct {
	server *server.Server
	repo   *repository.PersonRepository
}

func NewPersonService(s *server.Server, repo *repository.PersonRepository) *PersonService {
	return &PersonService{
		server: s,
		repo:   repo,
	}
}

// Create echoes the person back without the password. Nothing is stored.
func (s *PersonService) Create(ctx context.Context, person model.Person) model.PersonOut {
	zerolog.Ctx(ctx).Debug().
		Str("email", person.Email).
		Msg("person received")

	return person.Out()
}

// Detail maps the queried name to the queried age.
func (s *PersonService) Detail(_ context.Context, query model.PersonDetailQuery) map[string]int {
	key := nullKey
	if query.Name != nil {
		key = *query.Name
	}

	age := 0
	if query.Age != nil {
		age = *query.Age
	}

	return map[string]int{key: age}
}

// Exists confirms id is a known person or fails with a 404.
func (s *PersonService) Exists(ctx context.Context, id int) (map[string]string, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up person %d: %w", id, err)
	}

	if !ok {
		zerolog.Ctx(ctx).Info().Int("person_id", id).Msg("unknown person id")
		return nil, errs.NewNotFoundError(PersonNotFoundMessage, true, nil)
	}

	return map[string]string{strconv.Itoa(id): "It exists!"}, nil
}

// Update merges the person and location into one flat object. The
// password is part of the merge.
func (s *PersonService) Update(ctx context.Context, req model.UpdatePersonRequest) model.PersonWithLocation {
	zerolog.Ctx(ctx).Debug().Int("person_id", req.PersonID).Msg("person updated")

	return model.PersonWithLocation{
		Person:   req.Person,
		Location: req.Location,
	}
}

// UpdateLocation returns the location unchanged.
func (s *PersonService) UpdateLocation(ctx context.Context, req model.UpdateLocationRequest) model.Location {
	zerolog.Ctx(ctx).Debug().Int("person_id", req.PersonID).Msg("location updated")

	return req.Location
}
