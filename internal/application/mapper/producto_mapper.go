package mapper

import (
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ProductoToDTO convierte la entidad en su DTO.
func ProductoToDTO(p *entity.Producto) *dto.ProductoDTO {
	if p == nil {
		return nil
	}
	return &dto.ProductoDTO{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio,
		Categoria:    p.Categoria,
		CodigoBarras: p.CodigoBarras,
	}
}

// ProductoToDomain convierte el DTO en entidad.
func ProductoToDomain(d *dto.ProductoDTO) *entity.Producto {
	if d == nil {
		return nil
	}
	return &entity.Producto{
		ID:           d.ID,
		Nombre:       d.Nombre,
		Descripcion:  d.Descripcion,
		Precio:       d.Precio,
		Categoria:    d.Categoria,
		CodigoBarras: d.CodigoBarras,
	}
}

// ProductosToDTO convierte una lista de entidades.
func ProductosToDTO(list []*entity.Producto) []*dto.ProductoDTO {
	return mapList(list, ProductoToDTO)
}

// ProductosToDomain convierte una lista de DTOs.
func ProductosToDomain(list []*dto.ProductoDTO) []*entity.Producto {
	return mapList(list, ProductoToDomain)
}
