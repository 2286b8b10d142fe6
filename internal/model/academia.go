package model

import (
	"time"

	"github.com/google/uuid"
)

// The academic hierarchy is a strict three-level tree:
// CicloFormativo → Modulo → Grupo. Each node references its parent by id;
// the report engine never follows links downward.

// CicloFormativo is the top of the hierarchy (e.g. "Grado Medio Cocina y
// Gastronomía"). It has no parent.
type CicloFormativo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CicloFormativo) TableName() string { return "ciclos_formativos" }

// Modulo is a subject taught within a ciclo.
type Modulo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	CicloID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Ciclo *CicloFormativo `gorm:"foreignKey:CicloID"`
}

func (Modulo) TableName() string { return "modulos" }

// Grupo is a class group within a módulo; the leaf level that receives
// allocated expense.
type Grupo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	ModuloID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Modulo *Modulo `gorm:"foreignKey:ModuloID"`
}

func (Grupo) TableName() string { return "grupos" }

// Asignacion binds a profesor to a grupo. The source of truth keeps at most
// one current profesor per grupo — a later write replaces the earlier one —
// while a profesor may hold any number of grupos.
type Asignacion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfesorID uuid.UUID `gorm:"type:uuid;index;not null"`
	GrupoID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Profesor *Usuario `gorm:"foreignKey:ProfesorID"`
	Grupo    *Grupo   `gorm:"foreignKey:GrupoID"`
}

func (Asignacion) TableName() string { return "asignaciones" }
