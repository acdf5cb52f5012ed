package repository

import (
	"errors"
	"fmt"

	"github.com/mcastaneda/employment-cert-api/internal/models"
	"gorm.io/gorm"
)

// GormAccountRepository is a GORM implementation of AccountRepository
type GormAccountRepository struct {
	db *gorm.DB
}

var (
	// ErrCreatePerson is returned when inserting the person fails inside the registration transaction.
	ErrCreatePerson = errors.New("account repository: create person failed")
	// ErrCreateAccount is returned when inserting the account fails inside the registration transaction.
	ErrCreateAccount = errors.New("account repository: create account failed")
)

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

// CreatePersonWithAccount inserts the person and its account atomically.
// The person insert populates person.ID, which becomes the account's owner.
func (r *GormAccountRepository) CreatePersonWithAccount(person *models.Person, account *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(person).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreatePerson, err)
		}

		account.PersonaID = person.ID

		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAccount, err)
		}

		return nil
	})
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(id uint64) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByIDWithPerson finds an account by ID with its person preloaded
func (r *GormAccountRepository) FindByIDWithPerson(id uint64) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("Persona").First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by email
func (r *GormAccountRepository) FindByEmail(correo string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("correo = ?", correo).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
