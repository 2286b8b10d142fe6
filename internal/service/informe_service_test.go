package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/managerproapp-hue/IES-sub001/internal/dto"
	"github.com/managerproapp-hue/IES-sub001/internal/informe"
	"github.com/managerproapp-hue/IES-sub001/internal/model"
	"github.com/managerproapp-hue/IES-sub001/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubSnapshotRepo returns a fixed snapshot (or error) without a database.
type stubSnapshotRepo struct {
	snap  *informe.Snapshot
	err   error
	loads int
}

func (r *stubSnapshotRepo) Load(_ context.Context) (*informe.Snapshot, error) {
	r.loads++
	if r.err != nil {
		return nil, r.err
	}
	return r.snap, nil
}

var _ repository.SnapshotRepository = (*stubSnapshotRepo)(nil)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── GenerarInforme ────────────────────────────────────────────────────────────

func TestGenerarInformeComponeRespuesta(t *testing.T) {
	profA := model.Usuario{ID: uuid.New(), Nombre: "Ana", Rol: model.RolProfesor}
	profB := model.Usuario{ID: uuid.New(), Nombre: "Bruno", Rol: model.RolProfesor}
	costeA, costeB := dec("100"), dec("200")
	grupo := uuid.New()

	repo := &stubSnapshotRepo{snap: &informe.Snapshot{
		Pedidos: []model.Pedido{
			{ID: uuid.New(), ProfesorID: profA.ID, Estado: model.EstadoCompletado, CosteTotal: &costeA},
			{ID: uuid.New(), ProfesorID: profB.ID, Estado: model.EstadoCompletado, CosteTotal: &costeB},
		},
		Ventas: []model.Venta{
			{ProfesorID: profA.ID, Importe: dec("50"), Categoria: "menu"},
		},
		Asignaciones: []model.Asignacion{{ProfesorID: profA.ID, GrupoID: grupo}},
		Profesores:   []model.Usuario{profA, profB},
	}}

	svc := NewInformeService(repo, nil, nil, 0)
	resp, err := svc.GenerarInforme(context.Background(), false)
	require.NoError(t, err)

	assert.True(t, resp.GastoTotal.Equal(dec("300")))
	assert.True(t, resp.IngresosTotales.Equal(dec("50")))
	assert.True(t, resp.BalanceGeneral.Equal(dec("-250")))
	assert.True(t, resp.GastoMedioPorProfesor.Equal(dec("150")))
	require.Len(t, resp.Top5Profesores, 2)
	assert.Equal(t, "Bruno", resp.Top5Profesores[0].Nombre)
	assert.True(t, resp.CostePorGrupo[grupo.String()].Equal(dec("100")))
	assert.NotEmpty(t, resp.GeneradoEn)
}

func TestGenerarInformePropagaErrorDelSnapshot(t *testing.T) {
	repo := &stubSnapshotRepo{err: errors.New("conexión perdida")}

	svc := NewInformeService(repo, nil, nil, 0)
	_, err := svc.GenerarInforme(context.Background(), false)

	assert.Error(t, err)
}

// Without Redis every call recomputes; with refrescar the stub must also be
// hit again.
func TestGenerarInformeSinCacheRecalculaSiempre(t *testing.T) {
	repo := &stubSnapshotRepo{snap: &informe.Snapshot{}}
	svc := NewInformeService(repo, nil, nil, 0)

	_, err := svc.GenerarInforme(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.GenerarInforme(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.loads)
}

func TestRecalcularAsyncSinDispatcher(t *testing.T) {
	svc := NewInformeService(&stubSnapshotRepo{snap: &informe.Snapshot{}}, nil, nil, 0)

	err := svc.RecalcularAsync(context.Background())

	assert.Error(t, err)
}

func TestRefrescarPropagaError(t *testing.T) {
	repo := &stubSnapshotRepo{err: errors.New("timeout")}
	svc := NewInformeService(repo, nil, nil, 0)

	assert.Error(t, svc.Refrescar(context.Background()))
}

// ── Simular ───────────────────────────────────────────────────────────────────

func TestSimularRepartoEquitativo(t *testing.T) {
	prof := uuid.New()
	g1, g2 := uuid.New(), uuid.New()
	coste := dec("50")

	req := dto.SimulacionRequest{
		Pedidos: []dto.PedidoSimulado{
			{ProfesorID: prof.String(), Estado: model.EstadoCompletado, Coste: &coste},
		},
		Asignaciones: []dto.AsignacionSimulada{
			{ProfesorID: prof.String(), GrupoID: g1.String()},
			{ProfesorID: prof.String(), GrupoID: g2.String()},
		},
		Profesores: []dto.ProfesorSimulado{{ID: prof.String(), Nombre: "Ana"}},
	}

	svc := NewInformeService(&stubSnapshotRepo{}, nil, nil, 0)
	resp, err := svc.Simular(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.GastoTotal.Equal(dec("50")))
	assert.True(t, resp.CostePorGrupo[g1.String()].Equal(dec("25")))
	assert.True(t, resp.CostePorGrupo[g2.String()].Equal(dec("25")))
}

func TestSimularAtribucionPrimerProveedor(t *testing.T) {
	prof, producto := uuid.New(), uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	coste := dec("15")

	req := dto.SimulacionRequest{
		Pedidos: []dto.PedidoSimulado{{
			ProfesorID: prof.String(),
			Estado:     model.EstadoCompletado,
			Coste:      &coste,
			Items: []dto.ItemSimulado{
				{ProductoID: producto.String(), Cantidad: 3, Precio: dec("5")},
			},
		}},
		Productos: []dto.ProductoSimulado{
			{ID: producto.String(), Proveedores: []string{s1.String(), s2.String()}},
		},
	}

	svc := NewInformeService(&stubSnapshotRepo{}, nil, nil, 0)
	resp, err := svc.Simular(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.CostePorProveedor[s1.String()].Equal(dec("15")))
	_, existe := resp.CostePorProveedor[s2.String()]
	assert.False(t, existe)
}

func TestSimularIDInvalido(t *testing.T) {
	req := dto.SimulacionRequest{
		Ventas: []dto.VentaSimulada{{ProfesorID: "no-es-uuid", Importe: dec("1")}},
	}

	svc := NewInformeService(&stubSnapshotRepo{}, nil, nil, 0)
	_, err := svc.Simular(context.Background(), req)

	assert.Error(t, err)
}
