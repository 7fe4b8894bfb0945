package repository

import "github.com/yerbsoft/inventario-api/internal/domain/entity"

// CategoriaRepository puerto de persistencia para categorías.
type CategoriaRepository interface {
	ListarActivas() ([]*entity.Categoria, error)
	Crear(c *entity.Categoria) (int64, error)
	// Actualizar solo mientras activo = TRUE. Devuelve false si no hubo fila.
	Actualizar(c *entity.Categoria) (bool, error)
	SoftDelete(id int64) (bool, error)
}
