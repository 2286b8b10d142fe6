package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all persisted entities.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migraciones: %w", err)
	}
	return db, nil
}

// RunMigrations creates / updates all tables. Also used by integration tests
// against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.CicloFormativo{},
		&model.Modulo{},
		&model.Grupo{},
		&model.Asignacion{},
		&model.Proveedor{},
		&model.Producto{},
		&model.ProductoProveedor{},
		&model.Pedido{},
		&model.PedidoItem{},
		&model.Venta{},
	)
}
