package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a supplier. Display identity only — no monetary state
// lives here; per-supplier spend is derived on demand by the report engine.
type Proveedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial string    `gorm:"not null"`
	CIF         string    `gorm:"column:cif;uniqueIndex;not null"`
	Telefono    *string
	Email       *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Productos []ProductoProveedor `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
