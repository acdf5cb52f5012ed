package models

// Person is the subject of an employment certificate, distinct from the
// login Account. Rows are immutable after registration; there is no edit
// or delete surface.
type Person struct {
	ID                   uint64 `gorm:"column:id;primarykey" json:"id"`
	Nombre               string `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	NumeroIdentificacion string `gorm:"column:numero_identificacion;type:varchar(50);uniqueIndex;not null" json:"numero_identificacion"`
}

func (Person) TableName() string {
	return "persona"
}
