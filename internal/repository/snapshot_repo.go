package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/managerproapp-hue/IES-sub001/internal/informe"
	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// SnapshotRepository loads the read-only input of one report pass. Services
// depend on this interface, not on the concrete GORM implementation, enabling
// clean unit testing via stubs.
//
// Load returns a stable copy: the engine computes over slices owned by the
// returned Snapshot, so concurrent writes to the store cannot tear a pass
// mid-flight.
type SnapshotRepository interface {
	Load(ctx context.Context) (*informe.Snapshot, error)
}

type snapshotRepo struct{ db *gorm.DB }

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository { return &snapshotRepo{db: db} }

func (r *snapshotRepo) Load(ctx context.Context) (*informe.Snapshot, error) {
	snap := &informe.Snapshot{}
	q := r.db.WithContext(ctx)

	if err := q.Preload("Items").Find(&snap.Pedidos).Error; err != nil {
		return nil, err
	}
	if err := q.Find(&snap.Ventas).Error; err != nil {
		return nil, err
	}
	// Write order matters downstream: the allocator resolves one titular per
	// grupo by last write.
	if err := q.Order("updated_at ASC").Find(&snap.Asignaciones).Error; err != nil {
		return nil, err
	}
	if err := q.Find(&snap.Grupos).Error; err != nil {
		return nil, err
	}
	if err := q.Find(&snap.Modulos).Error; err != nil {
		return nil, err
	}
	if err := q.Find(&snap.Ciclos).Error; err != nil {
		return nil, err
	}
	// Supplier lists keep their registration order; the first entry is the
	// primary supplier credited by the estimate.
	if err := q.Preload("Proveedores", func(db *gorm.DB) *gorm.DB {
		return db.Order("posicion ASC")
	}).Find(&snap.Productos).Error; err != nil {
		return nil, err
	}
	if err := q.Find(&snap.Proveedores).Error; err != nil {
		return nil, err
	}
	if err := q.Where("rol <> ?", model.RolSuperAdmin).Order("created_at ASC").Find(&snap.Profesores).Error; err != nil {
		return nil, err
	}
	return snap, nil
}
