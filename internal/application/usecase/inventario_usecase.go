package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// CSVInventarioHeader cabecera fija del export de inventario.
var CSVInventarioHeader = []string{
	"id", "producto_id", "cantidad", "stockMinimo", "stockMaximo", "fechaUltimaReposicion", "ubicacion",
}

// InventarioUseCase casos de uso de inventario. Trabaja directamente con la entidad:
// Inventario no tiene DTO propio en la API.
type InventarioUseCase struct {
	repo repository.InventarioRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(repo repository.InventarioRepository) *InventarioUseCase {
	return &InventarioUseCase{repo: repo}
}

func (uc *InventarioUseCase) Create(ctx context.Context, in *entity.Inventario) (*entity.Inventario, error) {
	return uc.repo.Save(ctx, in)
}

// Update reemplaza el registro con ID id. Devuelve domain.ErrNotFound si no existe.
func (uc *InventarioUseCase) Update(ctx context.Context, id int64, in *entity.Inventario) (*entity.Inventario, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("inventario %d: %w", id, domain.ErrNotFound)
	}
	in.ID = id
	return uc.repo.Save(ctx, in)
}

// UpdateCantidad cambia solo la cantidad del registro almacenado; el resto de campos no se toca.
func (uc *InventarioUseCase) UpdateCantidad(ctx context.Context, id int64, cantidad int) (*entity.Inventario, error) {
	inv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventario %d: %w", id, domain.ErrNotFound)
	}
	inv.Cantidad = cantidad
	return uc.repo.Save(ctx, inv)
}

func (uc *InventarioUseCase) GetByID(ctx context.Context, id int64) (*entity.Inventario, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *InventarioUseCase) GetAll(ctx context.Context) ([]*entity.Inventario, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *InventarioUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func (uc *InventarioUseCase) GetByProducto(ctx context.Context, productoID int64) (*entity.Inventario, error) {
	return uc.repo.FindByProducto(ctx, productoID)
}

// GetBajoStock lista los registros con cantidad <= stock mínimo.
func (uc *InventarioUseCase) GetBajoStock(ctx context.Context) ([]*entity.Inventario, error) {
	return uc.repo.FindBajoStock(ctx)
}

func (uc *InventarioUseCase) GetByUbicacion(ctx context.Context, ubicacion string) ([]*entity.Inventario, error) {
	return uc.repo.FindByUbicacion(ctx, ubicacion)
}

// ExportCSV genera el CSV de todo el inventario. Fecha en formato YYYY-MM-DD;
// las columnas de fecha y producto quedan vacías cuando no hay valor.
func (uc *InventarioUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVInventarioHeader); err != nil {
		return nil, fmt.Errorf("csv inventario: %w", err)
	}
	for _, inv := range list {
		productoID := ""
		if inv.Producto != nil {
			productoID = strconv.FormatInt(inv.Producto.ID, 10)
		}
		fecha := ""
		if inv.FechaUltimaReposicion != nil {
			fecha = inv.FechaUltimaReposicion.Format("2006-01-02")
		}
		record := []string{
			strconv.FormatInt(inv.ID, 10),
			productoID,
			strconv.Itoa(inv.Cantidad),
			strconv.Itoa(inv.StockMinimo),
			strconv.Itoa(inv.StockMaximo),
			fecha,
			inv.Ubicacion,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv inventario: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv inventario: %w", err)
	}
	return buf.Bytes(), nil
}
