package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an independent revenue record (menús del aula-restaurante, eventos,
// productos de obrador…). It carries no link to pedidos: revenue and expense
// are reconciled only at the report level.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfesorID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Importe    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Fecha      time.Time       `gorm:"index;not null"`
	Categoria  string          `gorm:"type:varchar(50);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Profesor *Usuario `gorm:"foreignKey:ProfesorID"`
}

func (Venta) TableName() string { return "ventas" }
