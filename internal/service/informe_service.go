package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/dto"
	"github.com/managerproapp-hue/IES-sub001/internal/informe"
	"github.com/managerproapp-hue/IES-sub001/internal/model"
	"github.com/managerproapp-hue/IES-sub001/internal/repository"
	"github.com/managerproapp-hue/IES-sub001/internal/worker"
)

// CacheKeyInforme is the Redis key holding the last composed report.
const CacheKeyInforme = "cache:informe:gastos"

type InformeService interface {
	// GenerarInforme returns the composed expense report, serving the cached
	// copy unless refrescar is set or the cache is cold.
	GenerarInforme(ctx context.Context, refrescar bool) (*dto.InformeGastosResponse, error)
	// Simular runs one pure pass over a caller-provided snapshot. The store
	// and the cache are untouched.
	Simular(ctx context.Context, req dto.SimulacionRequest) (*dto.InformeGastosResponse, error)
	// Refrescar recomputes the report and rewrites the cache. Used by the
	// async recalculo worker.
	Refrescar(ctx context.Context) error
	// RecalcularAsync enqueues a background refresh.
	RecalcularAsync(ctx context.Context) error
}

type informeService struct {
	repo       repository.SnapshotRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
	ttl        time.Duration
}

func NewInformeService(repo repository.SnapshotRepository, rdb *redis.Client, dispatcher *worker.Dispatcher, ttl time.Duration) InformeService {
	return &informeService{repo: repo, rdb: rdb, dispatcher: dispatcher, ttl: ttl}
}

func (s *informeService) GenerarInforme(ctx context.Context, refrescar bool) (*dto.InformeGastosResponse, error) {
	if !refrescar && s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, CacheKeyInforme).Result(); err == nil {
			var resp dto.InformeGastosResponse
			if err := json.Unmarshal([]byte(raw), &resp); err == nil {
				return &resp, nil
			}
			// Corrupt cache entry: fall through and recompute.
		}
	}

	resp, err := s.computar(ctx)
	if err != nil {
		return nil, err
	}
	s.guardarCache(ctx, resp)
	return resp, nil
}

func (s *informeService) Refrescar(ctx context.Context) error {
	resp, err := s.computar(ctx)
	if err != nil {
		return err
	}
	s.guardarCache(ctx, resp)
	return nil
}

func (s *informeService) RecalcularAsync(ctx context.Context) error {
	if s.dispatcher == nil {
		return errors.New("recalculo en segundo plano no disponible")
	}
	return s.dispatcher.EnqueueRecalculo(ctx, map[string]interface{}{
		"solicitado_en": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *informeService) computar(ctx context.Context) (*dto.InformeGastosResponse, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargando snapshot: %w", err)
	}
	inf := informe.GenerarInforme(*snap)
	return informeToResponse(inf), nil
}

// guardarCache is best-effort: a cache write failure never fails the request.
func (s *informeService) guardarCache(ctx context.Context, resp *dto.InformeGastosResponse) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, CacheKeyInforme, data, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo cachear el informe")
	}
}

// ── Simulación ───────────────────────────────────────────────────────────────

func (s *informeService) Simular(_ context.Context, req dto.SimulacionRequest) (*dto.InformeGastosResponse, error) {
	snap, err := snapshotFromRequest(req)
	if err != nil {
		return nil, err
	}
	return informeToResponse(informe.GenerarInforme(*snap)), nil
}

// snapshotFromRequest converts the simulated records into model form. IDs
// arrive pre-validated as uuid strings; a parse failure is still reported
// rather than dropped.
func snapshotFromRequest(req dto.SimulacionRequest) (*informe.Snapshot, error) {
	snap := &informe.Snapshot{}

	for _, p := range req.Pedidos {
		profesorID, err := uuid.Parse(p.ProfesorID)
		if err != nil {
			return nil, fmt.Errorf("profesor_id inválido: %w", err)
		}
		pedido := model.Pedido{ID: uuid.New(), ProfesorID: profesorID, Estado: p.Estado, CosteTotal: p.Coste}
		for _, item := range p.Items {
			productoID, err := uuid.Parse(item.ProductoID)
			if err != nil {
				return nil, fmt.Errorf("producto_id inválido: %w", err)
			}
			pedido.Items = append(pedido.Items, model.PedidoItem{
				ProductoID:     productoID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.Precio,
			})
		}
		snap.Pedidos = append(snap.Pedidos, pedido)
	}

	for _, v := range req.Ventas {
		profesorID, err := uuid.Parse(v.ProfesorID)
		if err != nil {
			return nil, fmt.Errorf("profesor_id inválido: %w", err)
		}
		snap.Ventas = append(snap.Ventas, model.Venta{ProfesorID: profesorID, Importe: v.Importe, Categoria: v.Categoria})
	}

	for _, a := range req.Asignaciones {
		profesorID, err := uuid.Parse(a.ProfesorID)
		if err != nil {
			return nil, fmt.Errorf("profesor_id inválido: %w", err)
		}
		grupoID, err := uuid.Parse(a.GrupoID)
		if err != nil {
			return nil, fmt.Errorf("grupo_id inválido: %w", err)
		}
		snap.Asignaciones = append(snap.Asignaciones, model.Asignacion{ProfesorID: profesorID, GrupoID: grupoID})
	}

	for _, g := range req.Grupos {
		id, err := uuid.Parse(g.ID)
		if err != nil {
			return nil, fmt.Errorf("grupo id inválido: %w", err)
		}
		moduloID, err := uuid.Parse(g.ModuloID)
		if err != nil {
			return nil, fmt.Errorf("modulo_id inválido: %w", err)
		}
		snap.Grupos = append(snap.Grupos, model.Grupo{ID: id, ModuloID: moduloID})
	}

	for _, m := range req.Modulos {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return nil, fmt.Errorf("modulo id inválido: %w", err)
		}
		cicloID, err := uuid.Parse(m.CicloID)
		if err != nil {
			return nil, fmt.Errorf("ciclo_id inválido: %w", err)
		}
		snap.Modulos = append(snap.Modulos, model.Modulo{ID: id, CicloID: cicloID})
	}

	for _, p := range req.Productos {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("producto id inválido: %w", err)
		}
		producto := model.Producto{ID: id}
		for pos, prov := range p.Proveedores {
			proveedorID, err := uuid.Parse(prov)
			if err != nil {
				return nil, fmt.Errorf("proveedor id inválido: %w", err)
			}
			producto.Proveedores = append(producto.Proveedores, model.ProductoProveedor{
				ProductoID:  id,
				ProveedorID: proveedorID,
				Posicion:    pos,
			})
		}
		snap.Productos = append(snap.Productos, producto)
	}

	for _, prof := range req.Profesores {
		id, err := uuid.Parse(prof.ID)
		if err != nil {
			return nil, fmt.Errorf("profesor id inválido: %w", err)
		}
		snap.Profesores = append(snap.Profesores, model.Usuario{ID: id, Nombre: prof.Nombre, Rol: model.RolProfesor})
	}

	return snap, nil
}

// ── DTO conversion ───────────────────────────────────────────────────────────

func informeToResponse(inf *informe.Informe) *dto.InformeGastosResponse {
	return &dto.InformeGastosResponse{
		GastoTotal:            inf.GastoTotal,
		IngresosTotales:       inf.IngresosTotales,
		BalanceGeneral:        inf.BalanceGeneral,
		GastoMedioPorProfesor: inf.GastoMedioPorProfesor,
		Top5Profesores:        resumenesToDTO(inf.Top5Profesores),
		PorProfesor:           resumenesToDTO(inf.PorProfesor),
		CostePorProfesor:      mapToDTO(inf.CostePorProfesor),
		CostePorGrupo:         mapToDTO(inf.CostePorGrupo),
		CostePorModulo:        mapToDTO(inf.CostePorModulo),
		CostePorCiclo:         mapToDTO(inf.CostePorCiclo),
		CostePorProveedor:     mapToDTO(inf.CostePorProveedor),
		GeneradoEn:            time.Now().UTC().Format(time.RFC3339),
	}
}

func resumenesToDTO(resumenes []informe.ResumenProfesor) []dto.ResumenProfesorDTO {
	out := make([]dto.ResumenProfesorDTO, 0, len(resumenes))
	for _, r := range resumenes {
		out = append(out, dto.ResumenProfesorDTO{
			ProfesorID:  r.ProfesorID.String(),
			Nombre:      r.Nombre,
			Pedidos:     r.Pedidos,
			GastoTotal:  r.GastoTotal,
			VentasTotal: r.VentasTotal,
			Balance:     r.Balance,
		})
	}
	return out
}

func mapToDTO(m map[uuid.UUID]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k.String()] = v
	}
	return out
}
