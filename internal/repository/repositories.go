package repository

import (
	"github.com/deppfellow/person-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Person *PersonRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	repos := &Repositories{
		Person: NewPersonRepository(),
	}

	s.Logger.Debug().Ints("person_ids", repos.Person.ids).Msg("repositories initialized")

	return repos
}
