package informe

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// KPIs are the top-line indicators of the report.
type KPIs struct {
	GastoTotal            decimal.Decimal
	IngresosTotales       decimal.Decimal
	BalanceGeneral        decimal.Decimal
	GastoMedioPorProfesor decimal.Decimal
	PorProfesor           []ResumenProfesor
	Top5Profesores        []ResumenProfesor
}

// ComponerKPIs combines settled pedidos, ventas and the per-teacher cost map
// into the report's headline figures. PorProfesor keeps the roster's input
// order (minus the super-user); Top5Profesores is the same rows sorted by
// gasto descending, ties broken by roster order, truncated to five.
func ComponerKPIs(pedidos []model.Pedido, ventas []model.Venta, profesores []model.Usuario, costeProfesor map[uuid.UUID]decimal.Decimal) KPIs {
	gastoTotal := decimal.Zero
	pedidosPorProfesor := make(map[uuid.UUID]int)
	for _, p := range pedidos {
		if p.Estado != model.EstadoCompletado {
			continue
		}
		if p.CosteTotal != nil {
			gastoTotal = gastoTotal.Add(*p.CosteTotal)
		}
		pedidosPorProfesor[p.ProfesorID]++
	}

	ingresos := decimal.Zero
	ventasPorProfesor := make(map[uuid.UUID]decimal.Decimal)
	for _, v := range ventas {
		ingresos = ingresos.Add(v.Importe)
		ventasPorProfesor[v.ProfesorID] = ventasPorProfesor[v.ProfesorID].Add(v.Importe)
	}

	// pedidosPorProfesor keys are exactly the distinct profesores with
	// settled pedidos, orphan ids included.
	gastoMedio := decimal.Zero
	if len(pedidosPorProfesor) > 0 {
		gastoMedio = gastoTotal.Div(decimal.NewFromInt(int64(len(pedidosPorProfesor))))
	}

	porProfesor := make([]ResumenProfesor, 0, len(profesores))
	for _, u := range profesores {
		if !u.EsProfesor() {
			continue
		}
		gasto := costeProfesor[u.ID]
		ventasProf := ventasPorProfesor[u.ID]
		porProfesor = append(porProfesor, ResumenProfesor{
			ProfesorID:  u.ID,
			Nombre:      u.Nombre,
			Pedidos:     pedidosPorProfesor[u.ID],
			GastoTotal:  gasto,
			VentasTotal: ventasProf,
			Balance:     ventasProf.Sub(gasto),
		})
	}

	top5 := make([]ResumenProfesor, len(porProfesor))
	copy(top5, porProfesor)
	sort.SliceStable(top5, func(i, j int) bool {
		return top5[i].GastoTotal.GreaterThan(top5[j].GastoTotal)
	})
	if len(top5) > 5 {
		top5 = top5[:5]
	}

	return KPIs{
		GastoTotal:            gastoTotal,
		IngresosTotales:       ingresos,
		BalanceGeneral:        ingresos.Sub(gastoTotal),
		GastoMedioPorProfesor: gastoMedio,
		PorProfesor:           porProfesor,
		Top5Profesores:        top5,
	}
}
