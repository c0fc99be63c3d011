package entity

// Cliente representa un cliente registrado. Email es la clave de negocio.
type Cliente struct {
	ID        int64
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
}

// NewCliente construye un cliente sin ID.
func NewCliente(nombre, email, telefono, direccion string) *Cliente {
	return &Cliente{Nombre: nombre, Email: email, Telefono: telefono, Direccion: direccion}
}
