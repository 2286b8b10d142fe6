package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido. Only EstadoCompletado counts toward
// any expense figure; every other state is excluded by a strict equality
// filter, never by heuristics.
const (
	EstadoBorrador         = "Borrador"
	EstadoEnviado          = "Enviado"
	EstadoEnProceso        = "En proceso"
	EstadoRecibidoParcial  = "Recibido parcial"
	EstadoRecibidoConforme = "Recibido OK"
	EstadoCompletado       = "Completado"
	EstadoCancelado        = "Cancelado"
)

// Pedido is a purchase order placed by a profesor against the product catalog.
// CosteTotal is precomputed (tax-inclusive) when the order is settled; it may
// be nil on older rows, which the report engine treats as zero.
type Pedido struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfesorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Estado     string    `gorm:"type:varchar(20);index;not null;default:'Borrador'"`
	CosteTotal *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notas      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items    []PedidoItem `gorm:"foreignKey:PedidoID"`
	Profesor *Usuario     `gorm:"foreignKey:ProfesorID"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem is a single order line. Cantidad is expected positive but not
// validated here; PrecioUnitario is the unit price without IVA.
type PedidoItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TipoIVA        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
}

func (PedidoItem) TableName() string { return "pedido_items" }
