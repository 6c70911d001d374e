package service

import (
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

type Services struct {
	Person *PersonService
	Form   *FormService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Person: NewPersonService(s, repos.Person),
		Form:   NewFormService(s),
	}, nil
}
