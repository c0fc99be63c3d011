package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/mapper"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD y consultas del catálogo de productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create persiste un producto nuevo. No valida los datos de negocio.
func (uc *ProductoUseCase) Create(ctx context.Context, in *dto.ProductoDTO) (*dto.ProductoDTO, error) {
	saved, err := uc.repo.Save(ctx, mapper.ProductoToDomain(in))
	if err != nil {
		return nil, err
	}
	return mapper.ProductoToDTO(saved), nil
}

// Update reemplaza el producto con ID id. Devuelve domain.ErrNotFound si no existe.
// El ID del cuerpo se ignora: se fuerza el de la ruta.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in *dto.ProductoDTO) (*dto.ProductoDTO, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	producto := mapper.ProductoToDomain(in)
	producto.ID = id
	saved, err := uc.repo.Save(ctx, producto)
	if err != nil {
		return nil, err
	}
	return mapper.ProductoToDTO(saved), nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoDTO, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ProductoToDTO(p), nil
}

// GetAll lista todos los productos.
func (uc *ProductoUseCase) GetAll(ctx context.Context) ([]*dto.ProductoDTO, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ProductosToDTO(list), nil
}

// Delete elimina un producto por ID. No comprueba existencia.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func (uc *ProductoUseCase) GetByCategoria(ctx context.Context, categoria string) ([]*dto.ProductoDTO, error) {
	list, err := uc.repo.FindByCategoria(ctx, categoria)
	if err != nil {
		return nil, err
	}
	return mapper.ProductosToDTO(list), nil
}

// GetByRangoPrecio lista productos con precio entre min y max, ambos incluidos.
func (uc *ProductoUseCase) GetByRangoPrecio(ctx context.Context, min, max decimal.Decimal) ([]*dto.ProductoDTO, error) {
	list, err := uc.repo.FindByPrecioBetween(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return mapper.ProductosToDTO(list), nil
}

func (uc *ProductoUseCase) GetByCodigoBarras(ctx context.Context, codigoBarras string) (*dto.ProductoDTO, error) {
	p, err := uc.repo.FindByCodigoBarras(ctx, codigoBarras)
	if err != nil {
		return nil, err
	}
	return mapper.ProductoToDTO(p), nil
}
