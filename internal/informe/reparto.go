package informe

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// RepartoPorGrupos splits each profesor's settled cost evenly across the
// grupos that profesor currently holds. No weighting by group size, schedule
// or budget: n grupos each receive cost/n.
//
// A profesor with cost but zero asignaciones is NOT redistributed anywhere:
// their spend stays out of the academic breakdown while still counting in the
// top-line figures. Downstream consumers expect exactly this, so do not
// bucket it into a pseudo-group.
//
// Asignaciones are expected in write order; when a grupo appears more than
// once, the last row wins, matching the source of truth's one-titular-per-
// grupo rule.
func RepartoPorGrupos(costeProfesor map[uuid.UUID]decimal.Decimal, asignaciones []model.Asignacion) map[uuid.UUID]decimal.Decimal {
	// Resolve the current titular of each grupo (last write wins), then
	// invert into each profesor's distinct set of grupos.
	titular := make(map[uuid.UUID]uuid.UUID, len(asignaciones))
	for _, a := range asignaciones {
		titular[a.GrupoID] = a.ProfesorID
	}

	grupos := make(map[uuid.UUID][]uuid.UUID)
	visto := make(map[uuid.UUID]bool, len(titular))
	for _, a := range asignaciones {
		if titular[a.GrupoID] != a.ProfesorID || visto[a.GrupoID] {
			continue
		}
		visto[a.GrupoID] = true
		grupos[a.ProfesorID] = append(grupos[a.ProfesorID], a.GrupoID)
	}

	reparto := make(map[uuid.UUID]decimal.Decimal)
	for profesorID, coste := range costeProfesor {
		if !coste.IsPositive() {
			continue
		}
		asignados := grupos[profesorID]
		if len(asignados) == 0 {
			continue
		}
		cuota := coste.Div(decimal.NewFromInt(int64(len(asignados))))
		for _, grupoID := range asignados {
			reparto[grupoID] = reparto[grupoID].Add(cuota)
		}
	}
	return reparto
}
