package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta es la cabecera de una venta. Es dueña de sus Items: un item no existe sin su venta.
// MontoTotal lo informa quien registra la venta; no se deriva de los items.
type Venta struct {
	ID            int64
	FechaVenta    time.Time
	NombreCliente string // desnormalizado, no es referencia a Cliente
	Items         []*ItemVenta
	MontoTotal    decimal.Decimal
	MetodoPago    string
}

// ItemVenta es una línea de la venta. Subtotal se almacena tal cual llega (no se recalcula).
type ItemVenta struct {
	ID             int64
	Producto       *Producto
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// NewItemVenta construye una línea calculando el subtotal como cantidad × precio unitario.
func NewItemVenta(producto *Producto, cantidad int, precioUnitario decimal.Decimal) *ItemVenta {
	return &ItemVenta{
		Producto:       producto,
		Cantidad:       cantidad,
		PrecioUnitario: precioUnitario,
		Subtotal:       precioUnitario.Mul(decimal.NewFromInt(int64(cantidad))),
	}
}

// ProductoID devuelve el ID del producto de la línea, o 0 si no hay producto.
func (it *ItemVenta) ProductoID() int64 {
	if it.Producto == nil {
		return 0
	}
	return it.Producto.ID
}
