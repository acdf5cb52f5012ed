package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcastaneda/employment-cert-api/internal/models"
	"github.com/mcastaneda/employment-cert-api/internal/pdf"
	"github.com/mcastaneda/employment-cert-api/internal/repository"
	"github.com/mcastaneda/employment-cert-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("No se encontró el historial de empleo.")
	ErrPersonNotFound = errors.New("No se encontró a la persona en la base de datos.")
	ErrNoHistory      = errors.New("No se encontró historial de empleo para la persona.")
)

// CertificateService produces employment-certificate PDFs.
type CertificateService struct {
	personRepo     repository.PersonRepository
	accountRepo    repository.AccountRepository
	employmentRepo repository.EmploymentRepository
	layout         pdf.Layout
	certDir        string
}

// NewCertificateService creates a new CertificateService. Certificates are
// written under certDir, created on demand.
func NewCertificateService(
	personRepo repository.PersonRepository,
	accountRepo repository.AccountRepository,
	employmentRepo repository.EmploymentRepository,
	layout pdf.Layout,
	certDir string,
) *CertificateService {
	return &CertificateService{
		personRepo:     personRepo,
		accountRepo:    accountRepo,
		employmentRepo: employmentRepo,
		layout:         layout,
		certDir:        certDir,
	}
}

// Generate renders a certificate for the person behind the given account.
// A non-zero recordID selects that specific record, which must belong to
// the person; recordID zero selects the record with the latest start date.
// It returns the path of the written file and the download filename.
func (s *CertificateService) Generate(accountID, recordID uint64) (string, string, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrAccountNotFound
		}
		return "", "", fmt.Errorf("failed to find account: %w", err)
	}

	person, err := s.personRepo.FindByID(account.PersonaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrPersonNotFound
		}
		return "", "", fmt.Errorf("failed to find person: %w", err)
	}

	record, err := s.selectRecord(person.ID, recordID)
	if err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(s.certDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create certificate directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%d.pdf",
		utils.FilenameToken(person.Nombre),
		person.NumeroIdentificacion,
		record.ID,
	)
	path := filepath.Join(s.certDir, filename)

	cert := pdf.Certificate{
		PersonName:     person.Nombre,
		Identification: person.NumeroIdentificacion,
		HireDate:       record.FechaIngreso,
		Position:       record.Cargo,
		ContractType:   record.TipoContrato,
		Salary:         record.Salario,
		City:           record.Ciudad,
		IssuedAt:       time.Now(),
	}

	if err := pdf.Render(cert, s.layout, path); err != nil {
		return "", "", fmt.Errorf("failed to render certificate: %w", err)
	}

	return path, filename, nil
}

func (s *CertificateService) selectRecord(personaID, recordID uint64) (*models.EmploymentRecord, error) {
	if recordID != 0 {
		rec, err := s.employmentRepo.FindByID(recordID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRecordNotFound
			}
			return nil, fmt.Errorf("failed to find employment record: %w", err)
		}
		if rec.PersonaID != personaID {
			return nil, ErrRecordNotFound
		}
		return rec, nil
	}

	rec, err := s.employmentRepo.LatestByPerson(personaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("failed to find latest employment record: %w", err)
	}
	return rec, nil
}
