package entity

// Turnos habituales de un cajero. Turno es texto libre; estos valores son solo referencia.
const (
	TurnoManana = "Mañana"
	TurnoTarde  = "Tarde"
	TurnoNoche  = "Noche"
)

// Cajero representa un cajero del supermercado. Codigo es la clave de negocio.
type Cajero struct {
	ID     int64
	Nombre string
	Codigo string
	Turno  string
}

// NewCajero construye un cajero sin ID.
func NewCajero(nombre, codigo, turno string) *Cajero {
	return &Cajero{Nombre: nombre, Codigo: codigo, Turno: turno}
}
