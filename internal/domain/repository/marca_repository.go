package repository

import "github.com/yerbsoft/inventario-api/internal/domain/entity"

// MarcaRepository puerto de persistencia para marcas (proveedores).
type MarcaRepository interface {
	ListarActivas() ([]*entity.Marca, error)
	// GetActivaPorNombre busca una marca activa por nombre exacto (nil si no existe).
	GetActivaPorNombre(nombre string) (*entity.Marca, error)
	Crear(m *entity.Marca) (int64, error)
	Actualizar(m *entity.Marca) (bool, error)
	SoftDelete(id int64) (bool, error)
}
