package dto

import "github.com/shopspring/decimal"

// VentaDTO representación de Venta en la API, con sus items anidados.
type VentaDTO struct {
	ID            int64           `json:"id"`
	FechaVenta    FechaHora       `json:"fechaVenta"`
	NombreCliente string          `json:"nombreCliente"`
	Items         []ItemVentaDTO  `json:"items"`
	MontoTotal    decimal.Decimal `json:"montoTotal"`
	MetodoPago    string          `json:"metodoPago"`
}

// ItemVentaDTO línea de una venta. Producto puede venir nulo.
type ItemVentaDTO struct {
	ID             int64           `json:"id"`
	Producto       *ProductoDTO    `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
