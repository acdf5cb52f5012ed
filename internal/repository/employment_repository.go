package repository

import (
	"github.com/mcastaneda/employment-cert-api/internal/models"
	"gorm.io/gorm"
)

// GormEmploymentRepository is a GORM implementation of EmploymentRepository
type GormEmploymentRepository struct {
	db *gorm.DB
}

// NewEmploymentRepository creates a new EmploymentRepository
func NewEmploymentRepository(db *gorm.DB) EmploymentRepository {
	return &GormEmploymentRepository{db: db}
}

// Create creates a new employment record
func (r *GormEmploymentRepository) Create(record *models.EmploymentRecord) error {
	return r.db.Create(record).Error
}

// FindByID finds an employment record by ID
func (r *GormEmploymentRepository) FindByID(id uint64) (*models.EmploymentRecord, error) {
	var record models.EmploymentRecord
	if err := r.db.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByPerson lists a person's employment records, most recent start date first
func (r *GormEmploymentRepository) ListByPerson(personaID uint64) ([]models.EmploymentRecord, error) {
	var records []models.EmploymentRecord
	err := r.db.Where("persona_id = ?", personaID).
		Order("fecha_ingreso DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LatestByPerson returns the person's record with the latest start date
func (r *GormEmploymentRepository) LatestByPerson(personaID uint64) (*models.EmploymentRecord, error) {
	var record models.EmploymentRecord
	err := r.db.Where("persona_id = ?", personaID).
		Order("fecha_ingreso DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
