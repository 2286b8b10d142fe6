package informe

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// CostePorProfesor sums the settled cost of every pedido per profesor.
// A pedido contributes if and only if its estado equals EstadoCompletado;
// a nil CosteTotal contributes zero. ProfesorID values are not validated
// against the roster — an orphan id still gets its entry.
func CostePorProfesor(pedidos []model.Pedido) map[uuid.UUID]decimal.Decimal {
	coste := make(map[uuid.UUID]decimal.Decimal)
	for _, p := range pedidos {
		if p.Estado != model.EstadoCompletado {
			continue
		}
		c := decimal.Zero
		if p.CosteTotal != nil {
			c = *p.CosteTotal
		}
		coste[p.ProfesorID] = coste[p.ProfesorID].Add(c)
	}
	return coste
}
