package mapper

import (
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// VentaToDTO convierte la venta y su colección de items (con el producto anidado de cada item).
// Items siempre sale no nil; las entradas nil de la entidad se descartan porque el DTO no
// puede representarlas.
func VentaToDTO(v *entity.Venta) *dto.VentaDTO {
	if v == nil {
		return nil
	}
	items := make([]dto.ItemVentaDTO, 0, len(v.Items))
	for _, it := range v.Items {
		if it == nil {
			continue
		}
		items = append(items, dto.ItemVentaDTO{
			ID:             it.ID,
			Producto:       ProductoToDTO(it.Producto),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		})
	}
	return &dto.VentaDTO{
		ID:            v.ID,
		FechaVenta:    dto.FechaHora{Time: v.FechaVenta},
		NombreCliente: v.NombreCliente,
		Items:         items,
		MontoTotal:    v.MontoTotal,
		MetodoPago:    v.MetodoPago,
	}
}

// VentaToDomain convierte el DTO en entidad. Items ausentes o null en JSON quedan como slice
// vacío, igual que en VentaToDTO.
func VentaToDomain(d *dto.VentaDTO) *entity.Venta {
	if d == nil {
		return nil
	}
	items := make([]*entity.ItemVenta, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, &entity.ItemVenta{
			ID:             it.ID,
			Producto:       ProductoToDomain(it.Producto),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		})
	}
	return &entity.Venta{
		ID:            d.ID,
		FechaVenta:    d.FechaVenta.Time,
		NombreCliente: d.NombreCliente,
		Items:         items,
		MontoTotal:    d.MontoTotal,
		MetodoPago:    d.MetodoPago,
	}
}

func VentasToDTO(list []*entity.Venta) []*dto.VentaDTO {
	return mapList(list, VentaToDTO)
}
