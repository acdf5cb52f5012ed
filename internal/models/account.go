package models

// Account is the login credential entity. The unique index on PersonaID
// enforces the one-to-one relation with Person at the store level.
type Account struct {
	ID             uint64 `gorm:"column:id;primarykey" json:"id"`
	PersonaID      uint64 `gorm:"column:persona_id;uniqueIndex;not null" json:"persona_id"`
	Correo         string `gorm:"column:correo;type:varchar(100);uniqueIndex;not null" json:"correo"`
	ContrasenaHash string `gorm:"column:contrasena_hash;type:varchar(128);not null" json:"-"`

	Persona Person `gorm:"foreignKey:PersonaID" json:"persona,omitempty"`
}

func (Account) TableName() string {
	return "usuario"
}
