package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcastaneda/employment-cert-api/internal/models"
	"github.com/mcastaneda/employment-cert-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidStartDate  = errors.New("la fecha de ingreso es obligatoria y debe tener formato AAAA-MM-DD")
	ErrInvalidEndDate    = errors.New("la fecha de retiro debe tener formato AAAA-MM-DD")
	ErrEndBeforeStart    = errors.New("la fecha de retiro no puede ser anterior a la fecha de ingreso")
	ErrInvalidPosition   = errors.New("el cargo es obligatorio")
	ErrInvalidSalary     = errors.New("el salario debe ser un número válido")
	ErrFailedToAddRecord = errors.New("failed to add employment record")
)

const dateLayout = "2006-01-02"

// EmploymentService handles employment-history business logic.
type EmploymentService struct {
	accountRepo    repository.AccountRepository
	employmentRepo repository.EmploymentRepository
}

// NewEmploymentService creates a new EmploymentService.
func NewEmploymentService(accountRepo repository.AccountRepository, employmentRepo repository.EmploymentRepository) *EmploymentService {
	return &EmploymentService{
		accountRepo:    accountRepo,
		employmentRepo: employmentRepo,
	}
}

// AddRecordInput represents the employment-history form fields, dates and
// salary still as submitted strings.
type AddRecordInput struct {
	FechaIngreso string
	FechaRetiro  string
	Cargo        string
	TipoContrato string
	Salario      string
	Ciudad       string
}

// AddRecord parses and validates the form input and stores one employment
// record. The record's owner is the person linked to the given account,
// resolved through the account row — never the account id itself.
func (s *EmploymentService) AddRecord(accountID uint64, input AddRecordInput) (*models.EmploymentRecord, error) {
	fechaIngreso, err := time.Parse(dateLayout, input.FechaIngreso)
	if err != nil {
		return nil, ErrInvalidStartDate
	}

	var fechaRetiro *time.Time
	if strings.TrimSpace(input.FechaRetiro) != "" {
		parsed, err := time.Parse(dateLayout, input.FechaRetiro)
		if err != nil {
			return nil, ErrInvalidEndDate
		}
		if parsed.Before(fechaIngreso) {
			return nil, ErrEndBeforeStart
		}
		fechaRetiro = &parsed
	}

	cargo := strings.TrimSpace(input.Cargo)
	if cargo == "" {
		return nil, ErrInvalidPosition
	}

	salario, err := strconv.ParseFloat(strings.TrimSpace(input.Salario), 64)
	if err != nil || salario < 0 {
		return nil, ErrInvalidSalary
	}

	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	record := &models.EmploymentRecord{
		PersonaID:    account.PersonaID,
		FechaIngreso: fechaIngreso,
		FechaRetiro:  fechaRetiro,
		Cargo:        cargo,
		TipoContrato: strings.TrimSpace(input.TipoContrato),
		Salario:      salario,
		Ciudad:       strings.TrimSpace(input.Ciudad),
	}

	if err := s.employmentRepo.Create(record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToAddRecord, err)
	}

	return record, nil
}

// History lists the person's employment records, most recent first.
func (s *EmploymentService) History(personaID uint64) ([]models.EmploymentRecord, error) {
	records, err := s.employmentRepo.ListByPerson(personaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment history: %w", err)
	}
	return records, nil
}
