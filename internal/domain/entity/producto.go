package entity

import "github.com/shopspring/decimal"

// Producto representa un artículo del catálogo del supermercado.
// CodigoBarras es la clave de negocio; su unicidad la garantiza el almacenamiento.
type Producto struct {
	ID           int64
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	Categoria    string
	CodigoBarras string
}

// NewProducto construye un producto sin ID (aún no persistido).
func NewProducto(nombre, descripcion string, precio decimal.Decimal, categoria, codigoBarras string) *Producto {
	return &Producto{
		Nombre:       nombre,
		Descripcion:  descripcion,
		Precio:       precio,
		Categoria:    categoria,
		CodigoBarras: codigoBarras,
	}
}
