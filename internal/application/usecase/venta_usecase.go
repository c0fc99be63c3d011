package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/mapper"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// VentaUseCase casos de uso de ventas.
type VentaUseCase struct {
	repo      repository.VentaRepository
	generator ReceiptGenerator
}

// NewVentaUseCase construye el caso de uso. generator puede ser nil si no se exponen comprobantes.
func NewVentaUseCase(repo repository.VentaRepository, generator ReceiptGenerator) *VentaUseCase {
	return &VentaUseCase{repo: repo, generator: generator}
}

// Create persiste la venta con sus items. MontoTotal y subtotales se guardan tal cual llegan.
func (uc *VentaUseCase) Create(ctx context.Context, in *dto.VentaDTO) (*dto.VentaDTO, error) {
	saved, err := uc.repo.Save(ctx, mapper.VentaToDomain(in))
	if err != nil {
		return nil, err
	}
	return mapper.VentaToDTO(saved), nil
}

// Update fuerza el ID y guarda sin comprobar existencia: si la venta no existe
// queda registrada con ese ID. A diferencia del resto de entidades, nunca devuelve ErrNotFound.
func (uc *VentaUseCase) Update(ctx context.Context, id int64, in *dto.VentaDTO) (*dto.VentaDTO, error) {
	venta := mapper.VentaToDomain(in)
	venta.ID = id
	saved, err := uc.repo.Save(ctx, venta)
	if err != nil {
		return nil, err
	}
	return mapper.VentaToDTO(saved), nil
}

func (uc *VentaUseCase) GetByID(ctx context.Context, id int64) (*dto.VentaDTO, error) {
	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.VentaToDTO(v), nil
}

func (uc *VentaUseCase) GetAll(ctx context.Context) ([]*dto.VentaDTO, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

func (uc *VentaUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.DeleteByID(ctx, id)
}

func (uc *VentaUseCase) GetByNombreCliente(ctx context.Context, nombreCliente string) ([]*dto.VentaDTO, error) {
	list, err := uc.repo.FindByNombreCliente(ctx, nombreCliente)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

// GetEntreFechas lista ventas con fecha en [inicio, fin].
func (uc *VentaUseCase) GetEntreFechas(ctx context.Context, inicio, fin time.Time) ([]*dto.VentaDTO, error) {
	list, err := uc.repo.FindByFechaVentaBetween(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

// GetMontoMayorQue lista ventas con monto total estrictamente mayor que montoMinimo.
func (uc *VentaUseCase) GetMontoMayorQue(ctx context.Context, montoMinimo decimal.Decimal) ([]*dto.VentaDTO, error) {
	list, err := uc.repo.FindByMontoTotalGreaterThan(ctx, montoMinimo)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

func (uc *VentaUseCase) GetByMetodoPago(ctx context.Context, metodoPago string) ([]*dto.VentaDTO, error) {
	list, err := uc.repo.FindByMetodoPago(ctx, metodoPago)
	if err != nil {
		return nil, err
	}
	return mapper.VentasToDTO(list), nil
}

// Receipt genera el comprobante PDF de la venta.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound si la venta no existe.
func (uc *VentaUseCase) Receipt(ctx context.Context, id int64) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("comprobante: generador no configurado")
	}
	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if v == nil {
		return nil, "", fmt.Errorf("venta %d: %w", id, domain.ErrNotFound)
	}
	pdf, err := uc.generator.GenerateVentaPDF(ctx, v)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("venta-%d.pdf", id), nil
}
