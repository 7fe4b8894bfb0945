package entity

// Marca (proveedor) de productos. Soft delete vía Activo.
type Marca struct {
	ID        int64
	Nombre    string
	Contacto  string
	Telefono  string
	Email     string
	Direccion string
	Activo    bool
}
