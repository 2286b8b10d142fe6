package informe

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// AcumularJerarquia rolls group-level allocations up the academic tree:
// each grupo's cost is added to its módulo, each módulo's accumulated cost to
// its ciclo. Two levels, one pass each, strictly additive — the hierarchy is
// a tree, so nothing is counted twice.
//
// A grupo whose módulo is not in the snapshot (or a módulo whose ciclo is
// missing) is simply skipped; its cost stops at the last resolvable level.
// Returned maps only hold keys that received at least one contribution.
func AcumularJerarquia(costeGrupo map[uuid.UUID]decimal.Decimal, grupos []model.Grupo, modulos []model.Modulo) (porModulo, porCiclo map[uuid.UUID]decimal.Decimal) {
	moduloDe := make(map[uuid.UUID]uuid.UUID, len(grupos))
	for _, g := range grupos {
		moduloDe[g.ID] = g.ModuloID
	}
	cicloDe := make(map[uuid.UUID]uuid.UUID, len(modulos))
	for _, m := range modulos {
		cicloDe[m.ID] = m.CicloID
	}

	porModulo = make(map[uuid.UUID]decimal.Decimal)
	for grupoID, coste := range costeGrupo {
		moduloID, ok := moduloDe[grupoID]
		if !ok {
			continue
		}
		porModulo[moduloID] = porModulo[moduloID].Add(coste)
	}

	porCiclo = make(map[uuid.UUID]decimal.Decimal)
	for moduloID, coste := range porModulo {
		cicloID, ok := cicloDe[moduloID]
		if !ok {
			continue
		}
		porCiclo[cicloID] = porCiclo[cicloID].Add(coste)
	}
	return porModulo, porCiclo
}
