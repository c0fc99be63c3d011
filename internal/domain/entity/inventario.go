package entity

import "time"

// Inventario es el registro de existencias de un producto en una ubicación.
// Producto es una referencia: el registro no controla el ciclo de vida del producto.
// FechaUltimaReposicion es una fecha de calendario (medianoche UTC).
type Inventario struct {
	ID                    int64
	Producto              *Producto
	Cantidad              int
	StockMinimo           int
	StockMaximo           int
	FechaUltimaReposicion *time.Time
	Ubicacion             string
}

// BajoStock indica si la cantidad está en o por debajo del stock mínimo.
func (i *Inventario) BajoStock() bool {
	return i.Cantidad <= i.StockMinimo
}

// ProductoID devuelve el ID del producto referenciado, o 0 si no hay producto.
func (i *Inventario) ProductoID() int64 {
	if i.Producto == nil {
		return 0
	}
	return i.Producto.ID
}
