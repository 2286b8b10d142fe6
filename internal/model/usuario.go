package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles known to the system. RolSuperAdmin is the designated maintenance
// account: it never appears in teacher-facing reports.
const (
	RolSuperAdmin = "superadmin"
	RolAdmin      = "administrador"
	RolJefe       = "jefe_departamento"
	RolProfesor   = "profesor"
)

// Usuario stores system users with role-based access. Profesores are the
// subset of users that own pedidos, ventas and asignaciones.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	Email     *string
	Rol       string `gorm:"type:varchar(30);not null"`
	Activo    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// EsProfesor reports whether the user belongs to the teacher roster used by
// the expense report. The super-user is excluded by identity.
func (u *Usuario) EsProfesor() bool {
	return u.Rol != RolSuperAdmin
}
