package dto

import (
	"github.com/mcastaneda/employment-cert-api/internal/flash"
	"github.com/mcastaneda/employment-cert-api/internal/models"
)

// PersonDTO represents a person in page payloads
type PersonDTO struct {
	ID                   uint64 `json:"id"`
	Nombre               string `json:"nombre"`
	NumeroIdentificacion string `json:"numero_identificacion"`
}

// AccountDTO represents an account in page payloads
type AccountDTO struct {
	ID     uint64 `json:"id"`
	Correo string `json:"correo"`
}

// EmploymentRecordDTO represents one employment stint in page payloads.
// A null fecha_retiro means current employment.
type EmploymentRecordDTO struct {
	ID           uint64  `json:"id"`
	FechaIngreso string  `json:"fecha_ingreso"`
	FechaRetiro  *string `json:"fecha_retiro"`
	Cargo        string  `json:"cargo"`
	TipoContrato string  `json:"tipo_contrato"`
	Salario      float64 `json:"salario"`
	Ciudad       string  `json:"ciudad"`
}

// DashboardResponse is the payload of GET /dashboard
type DashboardResponse struct {
	Usuario   AccountDTO            `json:"usuario"`
	Persona   PersonDTO             `json:"persona"`
	Historial []EmploymentRecordDTO `json:"historial"`
	Notices   []flash.Notice        `json:"notices,omitempty"`
}

// Conversion functions

// ToPersonDTO converts a Person model to PersonDTO
func ToPersonDTO(person models.Person) PersonDTO {
	return PersonDTO{
		ID:                   person.ID,
		Nombre:               person.Nombre,
		NumeroIdentificacion: person.NumeroIdentificacion,
	}
}

// ToAccountDTO converts an Account model to AccountDTO
func ToAccountDTO(account models.Account) AccountDTO {
	return AccountDTO{
		ID:     account.ID,
		Correo: account.Correo,
	}
}

// ToEmploymentRecordDTO converts an EmploymentRecord model to its DTO
func ToEmploymentRecordDTO(record models.EmploymentRecord) EmploymentRecordDTO {
	const layout = "2006-01-02"

	dto := EmploymentRecordDTO{
		ID:           record.ID,
		FechaIngreso: record.FechaIngreso.Format(layout),
		Cargo:        record.Cargo,
		TipoContrato: record.TipoContrato,
		Salario:      record.Salario,
		Ciudad:       record.Ciudad,
	}
	if record.FechaRetiro != nil {
		retiro := record.FechaRetiro.Format(layout)
		dto.FechaRetiro = &retiro
	}
	return dto
}

// ToEmploymentRecordDTOs converts a slice of records, preserving order
func ToEmploymentRecordDTOs(records []models.EmploymentRecord) []EmploymentRecordDTO {
	dtos := make([]EmploymentRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = ToEmploymentRecordDTO(record)
	}
	return dtos
}
