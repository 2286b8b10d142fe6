// Package informe implements the hierarchical expense attribution engine:
// a pure batch computation that takes an immutable snapshot of pedidos,
// ventas, asignaciones, the academic hierarchy and the product catalog, and
// derives a consistent cost/revenue breakdown at every level plus a
// best-effort per-supplier estimate.
//
// Every function here is side-effect free and total: missing references are
// recovered locally by omission, never surfaced as errors. Callers that need
// caching do it outside this package.
package informe

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// Snapshot is the read-only input of one report pass. The engine never
// mutates it; the caller is responsible for handing over a stable copy when
// the underlying collections may change concurrently.
type Snapshot struct {
	Pedidos      []model.Pedido
	Ventas       []model.Venta
	Asignaciones []model.Asignacion
	Grupos       []model.Grupo
	Modulos      []model.Modulo
	Ciclos       []model.CicloFormativo
	Productos    []model.Producto
	Proveedores  []model.Proveedor
	Profesores   []model.Usuario
}

// ResumenProfesor is one per-teacher row of the report.
type ResumenProfesor struct {
	ProfesorID  uuid.UUID
	Nombre      string
	Pedidos     int
	GastoTotal  decimal.Decimal
	VentasTotal decimal.Decimal
	Balance     decimal.Decimal
}

// Informe is the composed result of one pass. Map keys only exist for
// entities that received at least one contribution; an absent key reads as
// an implicit zero.
type Informe struct {
	GastoTotal            decimal.Decimal
	IngresosTotales       decimal.Decimal
	BalanceGeneral        decimal.Decimal
	GastoMedioPorProfesor decimal.Decimal
	PorProfesor           []ResumenProfesor
	Top5Profesores        []ResumenProfesor

	CostePorProfesor  map[uuid.UUID]decimal.Decimal
	CostePorGrupo     map[uuid.UUID]decimal.Decimal
	CostePorModulo    map[uuid.UUID]decimal.Decimal
	CostePorCiclo     map[uuid.UUID]decimal.Decimal
	CostePorProveedor map[uuid.UUID]decimal.Decimal
}

// GenerarInforme runs the full pipeline over snap and returns the composed
// report. Stage order matters for the academic breakdown (extract → reparto →
// rollup); the supplier estimate and the KPI composition only depend on the
// snapshot and the extracted per-teacher costs.
func GenerarInforme(snap Snapshot) *Informe {
	costeProfesor := CostePorProfesor(snap.Pedidos)
	costeGrupo := RepartoPorGrupos(costeProfesor, snap.Asignaciones)
	costeModulo, costeCiclo := AcumularJerarquia(costeGrupo, snap.Grupos, snap.Modulos)
	costeProveedor := CostePorProveedor(snap.Pedidos, snap.Productos)
	kpis := ComponerKPIs(snap.Pedidos, snap.Ventas, snap.Profesores, costeProfesor)

	return &Informe{
		GastoTotal:            kpis.GastoTotal,
		IngresosTotales:       kpis.IngresosTotales,
		BalanceGeneral:        kpis.BalanceGeneral,
		GastoMedioPorProfesor: kpis.GastoMedioPorProfesor,
		PorProfesor:           kpis.PorProfesor,
		Top5Profesores:        kpis.Top5Profesores,
		CostePorProfesor:      costeProfesor,
		CostePorGrupo:         costeGrupo,
		CostePorModulo:        costeModulo,
		CostePorCiclo:         costeCiclo,
		CostePorProveedor:     costeProveedor,
	}
}
