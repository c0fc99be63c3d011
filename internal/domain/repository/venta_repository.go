package repository

import (
	"context"
	"time"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// VentaRepository define el puerto de persistencia para Venta y sus items.
// Save persiste cabecera e items en una sola transacción.
type VentaRepository interface {
	CrudRepository[entity.Venta]
	// FindByFechaVentaBetween incluye ambos extremos.
	FindByFechaVentaBetween(ctx context.Context, inicio, fin time.Time) ([]*entity.Venta, error)
	FindByNombreCliente(ctx context.Context, nombreCliente string) ([]*entity.Venta, error)
	// FindByMontoTotalGreaterThan es estricto: monto_total > montoMinimo.
	FindByMontoTotalGreaterThan(ctx context.Context, montoMinimo decimal.Decimal) ([]*entity.Venta, error)
	FindByMetodoPago(ctx context.Context, metodoPago string) ([]*entity.Venta, error)
}
