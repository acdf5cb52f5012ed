package repository

import (
	"github.com/mcastaneda/employment-cert-api/internal/models"
)

// PersonRepository defines the interface for person data access
type PersonRepository interface {
	// Create creates a new person
	Create(person *models.Person) error

	// FindByID finds a person by ID
	FindByID(id uint64) (*models.Person, error)

	// FindByIdentification finds a person by national identification number
	FindByIdentification(numero string) (*models.Person, error)
}

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// CreatePersonWithAccount creates a person and its account within a
	// single transaction; the account's PersonaID is taken from the
	// freshly inserted person row.
	CreatePersonWithAccount(person *models.Person, account *models.Account) error

	// FindByID finds an account by ID
	FindByID(id uint64) (*models.Account, error)

	// FindByIDWithPerson finds an account by ID with its person preloaded
	FindByIDWithPerson(id uint64) (*models.Account, error)

	// FindByEmail finds an account by email
	FindByEmail(correo string) (*models.Account, error)
}

// EmploymentRepository defines the interface for employment-history data access
type EmploymentRepository interface {
	// Create creates a new employment record
	Create(record *models.EmploymentRecord) error

	// FindByID finds an employment record by ID
	FindByID(id uint64) (*models.EmploymentRecord, error)

	// ListByPerson lists a person's employment records ordered by start
	// date descending (most recent first)
	ListByPerson(personaID uint64) ([]models.EmploymentRecord, error)

	// LatestByPerson returns the person's record with the latest start date
	LatestByPerson(personaID uint64) (*models.EmploymentRecord, error)
}
