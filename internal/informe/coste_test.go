package informe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// Only pedidos in estado Completado contribute; every other estado is a
// strict exclusion, not a heuristic.
func TestCostePorProfesorFiltroEstado(t *testing.T) {
	prof := uuid.New()
	pedidos := []model.Pedido{
		pedido(prof, model.EstadoCompletado, "10"),
		pedido(prof, model.EstadoBorrador, "100"),
		pedido(prof, model.EstadoEnviado, "100"),
		pedido(prof, model.EstadoEnProceso, "100"),
		pedido(prof, model.EstadoRecibidoParcial, "100"),
		pedido(prof, model.EstadoRecibidoConforme, "100"),
		pedido(prof, model.EstadoCancelado, "100"),
	}

	coste := CostePorProfesor(pedidos)

	assert.Len(t, coste, 1)
	assert.True(t, coste[prof].Equal(dec("10")))
}

func TestCostePorProfesorCosteNulo(t *testing.T) {
	prof := uuid.New()
	pedidos := []model.Pedido{
		{ID: uuid.New(), ProfesorID: prof, Estado: model.EstadoCompletado, CosteTotal: nil},
		pedido(prof, model.EstadoCompletado, "12.50"),
	}

	coste := CostePorProfesor(pedidos)

	assert.True(t, coste[prof].Equal(dec("12.50")))
}

// An unknown profesor id is aggregated anyway — the extractor does not
// validate ownership against the roster.
func TestCostePorProfesorHuerfano(t *testing.T) {
	huerfano := uuid.New()
	coste := CostePorProfesor([]model.Pedido{pedido(huerfano, model.EstadoCompletado, "33")})

	assert.True(t, coste[huerfano].Equal(dec("33")))
}

func TestCostePorProfesorAcumulaVariosPedidos(t *testing.T) {
	prof := uuid.New()
	coste := CostePorProfesor([]model.Pedido{
		pedido(prof, model.EstadoCompletado, "30"),
		pedido(prof, model.EstadoCompletado, "20"),
	})

	assert.True(t, coste[prof].Equal(dec("50")))
}
