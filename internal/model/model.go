// Package model declares the API schemas: the shapes of request and
// response bodies and the constraints on every field.
//
// Constraints are `validate` tags enforced by the validation package;
// `example` tags feed the generated OpenAPI document. A field whose zero
// value already breaks a bound (min=1, gt=18) carries no `required` tag, so
// "" or 0 reports the bound rather than "is required".
package model

import "github.com/deppfellow/person-api/internal/validation"

// HairColor is the closed set of accepted hair colors.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
)

// HairColors lists every HairColor in declaration order.
var HairColors = []HairColor{
	HairColorWhite,
	HairColorBrown,
	HairColorBlack,
	HairColorBlonde,
	HairColorRed,
}

// Location is where a person lives.
type Location struct {
	City    string `json:"city" validate:"min=1,max=50" example:"Campeche"`
	State   string `json:"state" validate:"min=1,max=50" example:"Campeche"`
	Country string `json:"country" validate:"min=1,max=50" example:"Mexico"`
}

// PersonBase holds every person field except the password.
//
// Optional fields are pointers: nil means the client left them out and
// they serialize as null.
type PersonBase struct {
	FirstName    string     `json:"first_name" validate:"min=1,max=50" example:"Azkur"`
	LastName     string     `json:"last_name" validate:"min=1,max=50" example:"Dev"`
	Age          int        `json:"age" validate:"gt=18,lte=115" example:"38"`
	HairColor    *HairColor `json:"hair_color" validate:"omitnil,oneof=white brown black blonde red" example:"brown"`
	IsMarried    *bool      `json:"is_married" example:"true"`
	Email        string     `json:"email" validate:"required,email" example:"azkur.zone@gmail.com"`
	PersonalSite *string    `json:"personal_site" validate:"omitnil,public_url,max=2083" example:"https://www.azkur.com"`
}

// Person is the full input schema.
type Person struct {
	PersonBase
	Password string `json:"password" validate:"min=8" example:"123454678"`
}

// Out strips the password.
func (p Person) Out() PersonOut {
	return PersonOut{PersonBase: p.PersonBase}
}

// PersonOut is the response shape of a person: a PersonBase with no password.
type PersonOut struct {
	PersonBase
}

// PersonWithLocation is the flat merge of a Person and a Location.
type PersonWithLocation struct {
	Person
	Location
}

// LoginMessage is the fixed message of every successful login.
const LoginMessage = "Login Successfully!"

// LoginOut is the login response.
type LoginOut struct {
	Username string `json:"username" example:"miguel2021"`
	Message  string `json:"message" example:"Login Successfully!"`
}

// ImageOut describes an uploaded file without storing it.
type ImageOut struct {
	Filename string  `json:"Filename" example:"avatar.png"`
	Format   string  `json:"Format" example:"image/png"`
	SizeKB   float64 `json:"Size(kb)" example:"2"`
}

// Greeting is the root payload.
type Greeting map[string]string

// StatusResponse is the liveness payload.
type StatusResponse struct {
	Status      string `json:"status" example:"healthy"`
	Timestamp   string `json:"timestamp" example:"2026-01-01T00:00:00Z"`
	Environment string `json:"environment" example:"development"`
	Service     string `json:"service" example:"person-api"`
}

// Empty is the request type of routes that take no input.
type Empty struct{}

func (Empty) Validate() error { return nil }

var _ validation.Validatable = (*Empty)(nil)
