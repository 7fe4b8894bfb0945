package postgres

import (
	"context"
	"fmt"

	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// ListarActivas lista las categorías con activo = TRUE.
func (r *CategoriaRepo) ListarActivas() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_categoria, nombre_categoria, COALESCE(descripcion, ''), activo
		 FROM categorias WHERE activo = TRUE ORDER BY id_categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Activo); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Crear persiste una categoría nueva y devuelve su id.
func (r *CategoriaRepo) Crear(c *entity.Categoria) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO categorias (nombre_categoria, descripcion) VALUES ($1, $2) RETURNING id_categoria`,
		c.Nombre, nullIfEmpty(c.Descripcion)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert categoria: %w", err)
	}
	return id, nil
}

// Actualizar modifica una categoría mientras activo = TRUE.
func (r *CategoriaRepo) Actualizar(c *entity.Categoria) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nombre_categoria = $2, descripcion = $3
		 WHERE id_categoria = $1 AND activo = TRUE`,
		c.ID, c.Nombre, nullIfEmpty(c.Descripcion))
	if err != nil {
		return false, fmt.Errorf("update categoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SoftDelete pone activo = FALSE.
func (r *CategoriaRepo) SoftDelete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET activo = FALSE WHERE id_categoria = $1`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete categoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
