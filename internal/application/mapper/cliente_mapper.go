package mapper

import (
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ClienteToDTO convierte la entidad en su DTO.
func ClienteToDTO(c *entity.Cliente) *dto.ClienteDTO {
	if c == nil {
		return nil
	}
	return &dto.ClienteDTO{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}

// ClienteToDomain convierte el DTO en entidad.
func ClienteToDomain(d *dto.ClienteDTO) *entity.Cliente {
	if d == nil {
		return nil
	}
	return &entity.Cliente{
		ID:        d.ID,
		Nombre:    d.Nombre,
		Email:     d.Email,
		Telefono:  d.Telefono,
		Direccion: d.Direccion,
	}
}

func ClientesToDTO(list []*entity.Cliente) []*dto.ClienteDTO {
	return mapList(list, ClienteToDTO)
}

func ClientesToDomain(list []*dto.ClienteDTO) []*entity.Cliente {
	return mapList(list, ClienteToDomain)
}
