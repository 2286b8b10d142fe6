package informe

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/managerproapp-hue/IES-sub001/internal/model"
)

// CostePorProveedor estimates spend per supplier from the line items of
// settled pedidos. Pedidos do not record which supplier fulfilled a line, so
// each item credits precio * cantidad to the FIRST supplier in its product's
// ordered list — not the cheapest one. CSV exports and existing reports are
// built on this exact tie-break; changing it would silently shift figures
// between suppliers.
//
// Items whose product is unknown, or whose product lists no suppliers,
// contribute nothing.
func CostePorProveedor(pedidos []model.Pedido, productos []model.Producto) map[uuid.UUID]decimal.Decimal {
	catalogo := make(map[uuid.UUID]*model.Producto, len(productos))
	for i := range productos {
		catalogo[productos[i].ID] = &productos[i]
	}

	coste := make(map[uuid.UUID]decimal.Decimal)
	for _, p := range pedidos {
		if p.Estado != model.EstadoCompletado {
			continue
		}
		for _, item := range p.Items {
			producto, ok := catalogo[item.ProductoID]
			if !ok || len(producto.Proveedores) == 0 {
				continue
			}
			proveedorID := producto.Proveedores[0].ProveedorID
			importe := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			coste[proveedorID] = coste[proveedorID].Add(importe)
		}
	}
	return coste
}
