package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// InformeFilter are the query params of GET /v1/informes/gastos.
type InformeFilter struct {
	// Refrescar bypasses the cached report and forces a fresh pass.
	Refrescar bool `form:"refrescar"`
}

// SimulacionRequest is a caller-provided snapshot for a what-if report pass.
// Nothing here touches the store: the engine runs over exactly these records.
type SimulacionRequest struct {
	Pedidos      []PedidoSimulado     `json:"pedidos"      validate:"dive"`
	Ventas       []VentaSimulada      `json:"ventas"       validate:"dive"`
	Asignaciones []AsignacionSimulada `json:"asignaciones" validate:"dive"`
	Grupos       []GrupoSimulado      `json:"grupos"       validate:"dive"`
	Modulos      []ModuloSimulado     `json:"modulos"      validate:"dive"`
	Productos    []ProductoSimulado   `json:"productos"    validate:"dive"`
	Profesores   []ProfesorSimulado   `json:"profesores"   validate:"dive"`
}

type PedidoSimulado struct {
	ProfesorID string           `json:"profesor_id" validate:"required,uuid"`
	Estado     string           `json:"estado"      validate:"required"`
	Coste      *decimal.Decimal `json:"coste"`
	Items      []ItemSimulado   `json:"items"       validate:"dive"`
}

type ItemSimulado struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   int             `json:"cantidad"    validate:"required,gt=0"`
	Precio     decimal.Decimal `json:"precio"      validate:"min=0"`
}

type VentaSimulada struct {
	ProfesorID string          `json:"profesor_id" validate:"required,uuid"`
	Importe    decimal.Decimal `json:"importe"     validate:"min=0"`
	Categoria  string          `json:"categoria"`
}

type AsignacionSimulada struct {
	ProfesorID string `json:"profesor_id" validate:"required,uuid"`
	GrupoID    string `json:"grupo_id"    validate:"required,uuid"`
}

type GrupoSimulado struct {
	ID       string `json:"id"        validate:"required,uuid"`
	ModuloID string `json:"modulo_id" validate:"required,uuid"`
}

type ModuloSimulado struct {
	ID      string `json:"id"       validate:"required,uuid"`
	CicloID string `json:"ciclo_id" validate:"required,uuid"`
}

type ProductoSimulado struct {
	ID string `json:"id" validate:"required,uuid"`
	// Proveedores in list order; the first one receives the attribution.
	Proveedores []string `json:"proveedores" validate:"dive,uuid"`
}

type ProfesorSimulado struct {
	ID     string `json:"id" validate:"required,uuid"`
	Nombre string `json:"nombre"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ResumenProfesorDTO struct {
	ProfesorID  string          `json:"profesor_id"`
	Nombre      string          `json:"nombre"`
	Pedidos     int             `json:"pedidos"`
	GastoTotal  decimal.Decimal `json:"gasto_total"`
	VentasTotal decimal.Decimal `json:"ventas_total"`
	Balance     decimal.Decimal `json:"balance"`
}

// InformeGastosResponse is the composed report. Map keys are entity UUIDs;
// an absent key reads as zero.
type InformeGastosResponse struct {
	GastoTotal            decimal.Decimal            `json:"gasto_total"`
	IngresosTotales       decimal.Decimal            `json:"ingresos_totales"`
	BalanceGeneral        decimal.Decimal            `json:"balance_general"`
	GastoMedioPorProfesor decimal.Decimal            `json:"gasto_medio_por_profesor"`
	Top5Profesores        []ResumenProfesorDTO       `json:"top5_profesores"`
	PorProfesor           []ResumenProfesorDTO       `json:"data_por_profesor"`
	CostePorProfesor      map[string]decimal.Decimal `json:"coste_por_profesor"`
	CostePorGrupo         map[string]decimal.Decimal `json:"coste_por_grupo"`
	CostePorModulo        map[string]decimal.Decimal `json:"coste_por_modulo"`
	CostePorCiclo         map[string]decimal.Decimal `json:"coste_por_ciclo"`
	CostePorProveedor     map[string]decimal.Decimal `json:"coste_por_proveedor"`
	GeneradoEn            string                     `json:"generado_en"`
}
