package usecase

import (
	"context"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
)

// ReceiptGenerator genera la representación imprimible (PDF) de una venta.
// Lo implementa infrastructure/pdf.MarotoReceiptGenerator.
type ReceiptGenerator interface {
	GenerateVentaPDF(ctx context.Context, venta *entity.Venta) ([]byte, error)
}
