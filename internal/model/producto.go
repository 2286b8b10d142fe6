package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry (ingrediente o material). Its supplier list is
// ordered by Posicion; the first entry is the product's primary supplier and
// is the one credited by the per-supplier cost estimate, because pedidos do
// not record which supplier actually fulfilled a line.
type Producto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Categoria string    `gorm:"not null"`
	Unidad    string    `gorm:"not null;default:'unidad'"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Proveedores []ProductoProveedor `gorm:"foreignKey:ProductoID"`
}

func (Producto) TableName() string { return "productos" }

// ProductoProveedor is one (proveedor, precio) entry of a product's supplier
// list. Posicion preserves the order in which suppliers were registered.
type ProductoProveedor struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProveedorID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Posicion    int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductoProveedor) TableName() string { return "producto_proveedores" }
