package informe

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// Two teachers with settled pedidos of 100 and 200, one sale of 50 for the
// first: checks every headline figure plus the top-5 ordering.
func TestComponerKPIsIndicadores(t *testing.T) {
	profA := profesor("ana")
	profB := profesor("bruno")

	pedidos := []model.Pedido{
		pedido(profA.ID, model.EstadoCompletado, "100"),
		pedido(profB.ID, model.EstadoCompletado, "200"),
	}
	ventas := []model.Venta{{ProfesorID: profA.ID, Importe: dec("50"), Categoria: "menu"}}
	coste := CostePorProfesor(pedidos)

	kpis := ComponerKPIs(pedidos, ventas, []model.Usuario{profA, profB}, coste)

	assert.True(t, kpis.GastoTotal.Equal(dec("300")))
	assert.True(t, kpis.IngresosTotales.Equal(dec("50")))
	assert.True(t, kpis.BalanceGeneral.Equal(dec("-250")))
	assert.True(t, kpis.GastoMedioPorProfesor.Equal(dec("150")))

	require.Len(t, kpis.Top5Profesores, 2)
	assert.Equal(t, profB.ID, kpis.Top5Profesores[0].ProfesorID)
	assert.Equal(t, profA.ID, kpis.Top5Profesores[1].ProfesorID)

	require.Len(t, kpis.PorProfesor, 2)
	assert.True(t, kpis.PorProfesor[0].Balance.Equal(dec("-50")))
	assert.True(t, kpis.PorProfesor[1].Balance.Equal(dec("-200")))
	assert.Equal(t, 1, kpis.PorProfesor[0].Pedidos)
}

// With zero settled pedidos the average is 0, never NaN or a panic.
func TestComponerKPIsSinPedidos(t *testing.T) {
	prof := profesor("ana")

	kpis := ComponerKPIs(nil, nil, []model.Usuario{prof}, nil)

	assert.True(t, kpis.GastoTotal.IsZero())
	assert.True(t, kpis.GastoMedioPorProfesor.IsZero())
	require.Len(t, kpis.PorProfesor, 1)
	assert.True(t, kpis.PorProfesor[0].Balance.IsZero())
}

// The designated super-user never appears in the per-teacher rows, even when
// it owns settled pedidos (which still count in gastoTotal).
func TestComponerKPIsExcluyeSuperusuario(t *testing.T) {
	admin := model.Usuario{ID: uuid.New(), Username: "root", Nombre: "root", Rol: model.RolSuperAdmin}
	prof := profesor("ana")

	pedidos := []model.Pedido{
		pedido(admin.ID, model.EstadoCompletado, "500"),
		pedido(prof.ID, model.EstadoCompletado, "20"),
	}
	coste := CostePorProfesor(pedidos)

	kpis := ComponerKPIs(pedidos, nil, []model.Usuario{admin, prof}, coste)

	assert.True(t, kpis.GastoTotal.Equal(dec("520")))
	require.Len(t, kpis.PorProfesor, 1)
	assert.Equal(t, prof.ID, kpis.PorProfesor[0].ProfesorID)
}

// Ties in gasto keep roster order (stable sort, no secondary key), and the
// ranking is truncated to five rows.
func TestComponerKPIsTop5EstableYTruncado(t *testing.T) {
	profesores := make([]model.Usuario, 0, 7)
	pedidos := make([]model.Pedido, 0, 7)
	for i := 0; i < 7; i++ {
		p := profesor(fmt.Sprintf("prof%d", i))
		profesores = append(profesores, p)
		pedidos = append(pedidos, pedido(p.ID, model.EstadoCompletado, "10"))
	}
	coste := CostePorProfesor(pedidos)

	kpis := ComponerKPIs(pedidos, nil, profesores, coste)

	require.Len(t, kpis.Top5Profesores, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, profesores[i].ID, kpis.Top5Profesores[i].ProfesorID)
	}
}

// Non-settled pedidos influence neither gasto nor the per-teacher order count.
func TestComponerKPIsIgnoraPedidosNoCompletados(t *testing.T) {
	prof := profesor("ana")
	pedidos := []model.Pedido{
		pedido(prof.ID, model.EstadoCompletado, "10"),
		pedido(prof.ID, model.EstadoCancelado, "90"),
	}
	coste := CostePorProfesor(pedidos)

	kpis := ComponerKPIs(pedidos, nil, []model.Usuario{prof}, coste)

	assert.True(t, kpis.GastoTotal.Equal(dec("10")))
	assert.Equal(t, 1, kpis.PorProfesor[0].Pedidos)
}
