package mapper

import (
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// InventarioToDTO convierte el registro con su producto anidado.
func InventarioToDTO(i *entity.Inventario) *dto.InventarioDTO {
	if i == nil {
		return nil
	}
	out := &dto.InventarioDTO{
		ID:          i.ID,
		Producto:    ProductoToDTO(i.Producto),
		Cantidad:    i.Cantidad,
		StockMinimo: i.StockMinimo,
		StockMaximo: i.StockMaximo,
		Ubicacion:   i.Ubicacion,
	}
	if i.FechaUltimaReposicion != nil {
		out.FechaUltimaReposicion = &dto.Fecha{Time: *i.FechaUltimaReposicion}
	}
	return out
}

func InventarioToDomain(d *dto.InventarioDTO) *entity.Inventario {
	if d == nil {
		return nil
	}
	out := &entity.Inventario{
		ID:          d.ID,
		Producto:    ProductoToDomain(d.Producto),
		Cantidad:    d.Cantidad,
		StockMinimo: d.StockMinimo,
		StockMaximo: d.StockMaximo,
		Ubicacion:   d.Ubicacion,
	}
	if d.FechaUltimaReposicion != nil {
		fecha := d.FechaUltimaReposicion.Time
		out.FechaUltimaReposicion = &fecha
	}
	return out
}

func InventariosToDTO(list []*entity.Inventario) []*dto.InventarioDTO {
	return mapList(list, InventarioToDTO)
}
