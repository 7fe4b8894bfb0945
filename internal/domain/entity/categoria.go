package entity

// Categoria agrupa productos. Soft delete vía Activo.
type Categoria struct {
	ID          int64
	Nombre      string
	Descripcion string
	Activo      bool
}
