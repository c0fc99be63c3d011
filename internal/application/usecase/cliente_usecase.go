package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/mapper"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// ClienteUseCase casos de uso para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create persiste un cliente nuevo.
func (uc *ClienteUseCase) Create(ctx context.Context, in *dto.ClienteDTO) (*dto.ClienteDTO, error) {
	saved, err := uc.repo.Save(ctx, mapper.ClienteToDomain(in))
	if err != nil {
		return nil, err
	}
	return mapper.ClienteToDTO(saved), nil
}

// Update reemplaza el cliente con ID id. Devuelve domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in *dto.ClienteDTO) (*dto.ClienteDTO, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("cliente %d: %w", id, domain.ErrNotFound)
	}
	cliente := mapper.ClienteToDomain(in)
	cliente.ID = id
	saved, err := uc.repo.Save(ctx, cliente)
	if err != nil {
		return nil, err
	}
	return mapper.ClienteToDTO(saved), nil
}

func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteDTO, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ClienteToDTO(c), nil
}

func (uc *ClienteUseCase) GetAll(ctx context.Context) ([]*dto.ClienteDTO, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ClientesToDTO(list), nil
}

func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func (uc *ClienteUseCase) GetByEmail(ctx context.Context, email string) (*dto.ClienteDTO, error) {
	c, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapper.ClienteToDTO(c), nil
}

// SearchByNombre lista los clientes cuyo nombre contiene el fragmento (sensible a mayúsculas).
func (uc *ClienteUseCase) SearchByNombre(ctx context.Context, fragmento string) ([]*dto.ClienteDTO, error) {
	list, err := uc.repo.FindByNombreContaining(ctx, fragmento)
	if err != nil {
		return nil, err
	}
	return mapper.ClientesToDTO(list), nil
}
