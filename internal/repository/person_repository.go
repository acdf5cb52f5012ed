package repository

import (
	"github.com/mcastaneda/employment-cert-api/internal/models"
	"gorm.io/gorm"
)

// GormPersonRepository is a GORM implementation of PersonRepository
type GormPersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &GormPersonRepository{db: db}
}

// Create creates a new person
func (r *GormPersonRepository) Create(person *models.Person) error {
	return r.db.Create(person).Error
}

// FindByID finds a person by ID
func (r *GormPersonRepository) FindByID(id uint64) (*models.Person, error) {
	var person models.Person
	if err := r.db.First(&person, id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// FindByIdentification finds a person by national identification number
func (r *GormPersonRepository) FindByIdentification(numero string) (*models.Person, error) {
	var person models.Person
	if err := r.db.Where("numero_identificacion = ?", numero).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}
