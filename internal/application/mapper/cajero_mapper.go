package mapper

import (
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

func CajeroToDTO(c *entity.Cajero) *dto.CajeroDTO {
	if c == nil {
		return nil
	}
	return &dto.CajeroDTO{ID: c.ID, Nombre: c.Nombre, Codigo: c.Codigo, Turno: c.Turno}
}

func CajeroToDomain(d *dto.CajeroDTO) *entity.Cajero {
	if d == nil {
		return nil
	}
	return &entity.Cajero{ID: d.ID, Nombre: d.Nombre, Codigo: d.Codigo, Turno: d.Turno}
}

func CajerosToDTO(list []*entity.Cajero) []*dto.CajeroDTO {
	return mapList(list, CajeroToDTO)
}

func CajerosToDomain(list []*dto.CajeroDTO) []*entity.Cajero {
	return mapList(list, CajeroToDomain)
}
