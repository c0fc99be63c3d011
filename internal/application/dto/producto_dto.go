package dto

import "github.com/shopspring/decimal"

// ProductoDTO representación de Producto en la API (entrada y salida).
type ProductoDTO struct {
	ID           int64           `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Precio       decimal.Decimal `json:"precio"`
	Categoria    string          `json:"categoria"`
	CodigoBarras string          `json:"codigoBarras"`
}
