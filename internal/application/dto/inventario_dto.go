package dto

// InventarioDTO representación de Inventario en la API. La fecha de reposición es de calendario.
type InventarioDTO struct {
	ID                    int64        `json:"id"`
	Producto              *ProductoDTO `json:"producto"`
	Cantidad              int          `json:"cantidad"`
	StockMinimo           int          `json:"stockMinimo"`
	StockMaximo           int          `json:"stockMaximo"`
	FechaUltimaReposicion *Fecha       `json:"fechaUltimaReposicion"`
	Ubicacion             string       `json:"ubicacion"`
}
