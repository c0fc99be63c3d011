package dto

// CajeroDTO representación de Cajero en la API.
type CajeroDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
	Turno  string `json:"turno"`
}
