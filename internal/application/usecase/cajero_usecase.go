package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/mapper"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// CajeroUseCase casos de uso para cajeros.
type CajeroUseCase struct {
	repo repository.CajeroRepository
}

// NewCajeroUseCase construye el caso de uso.
func NewCajeroUseCase(repo repository.CajeroRepository) *CajeroUseCase {
	return &CajeroUseCase{repo: repo}
}

func (uc *CajeroUseCase) Create(ctx context.Context, in *dto.CajeroDTO) (*dto.CajeroDTO, error) {
	saved, err := uc.repo.Save(ctx, mapper.CajeroToDomain(in))
	if err != nil {
		return nil, err
	}
	return mapper.CajeroToDTO(saved), nil
}

// Update reemplaza el cajero con ID id. Devuelve domain.ErrNotFound si no existe.
func (uc *CajeroUseCase) Update(ctx context.Context, id int64, in *dto.CajeroDTO) (*dto.CajeroDTO, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("cajero %d: %w", id, domain.ErrNotFound)
	}
	cajero := mapper.CajeroToDomain(in)
	cajero.ID = id
	saved, err := uc.repo.Save(ctx, cajero)
	if err != nil {
		return nil, err
	}
	return mapper.CajeroToDTO(saved), nil
}

func (uc *CajeroUseCase) GetByID(ctx context.Context, id int64) (*dto.CajeroDTO, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.CajeroToDTO(c), nil
}

func (uc *CajeroUseCase) GetAll(ctx context.Context) ([]*dto.CajeroDTO, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.CajerosToDTO(list), nil
}

func (uc *CajeroUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func (uc *CajeroUseCase) GetByCodigo(ctx context.Context, codigo string) (*dto.CajeroDTO, error) {
	c, err := uc.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return mapper.CajeroToDTO(c), nil
}

func (uc *CajeroUseCase) GetByTurno(ctx context.Context, turno string) ([]*dto.CajeroDTO, error) {
	list, err := uc.repo.FindByTurno(ctx, turno)
	if err != nil {
		return nil, err
	}
	return mapper.CajerosToDTO(list), nil
}
