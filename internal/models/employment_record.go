package models

import "time"

// EmploymentRecord is one employment stint owned by a Person. A nil
// FechaRetiro means the employment is still current.
type EmploymentRecord struct {
	ID           uint64     `gorm:"column:id;primarykey" json:"id"`
	PersonaID    uint64     `gorm:"column:persona_id;index;not null" json:"persona_id"`
	FechaIngreso time.Time  `gorm:"column:fecha_ingreso;type:date;not null" json:"fecha_ingreso"`
	FechaRetiro  *time.Time `gorm:"column:fecha_retiro;type:date" json:"fecha_retiro"`
	Cargo        string     `gorm:"column:cargo;type:varchar(100);not null" json:"cargo"`
	TipoContrato string     `gorm:"column:tipo_contrato;type:varchar(50);not null" json:"tipo_contrato"`
	Salario      float64    `gorm:"column:salario;type:decimal(10,2);not null" json:"salario"`
	Ciudad       string     `gorm:"column:ciudad;type:varchar(50);not null" json:"ciudad"`

	Persona Person `gorm:"foreignKey:PersonaID" json:"persona,omitempty"`
}

func (EmploymentRecord) TableName() string {
	return "historial_empleo"
}
