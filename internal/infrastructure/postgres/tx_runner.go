package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yerbsoft/inventario-api/internal/application/inventario"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// Ensure TxRunner implements inventario.TxRunner and usecase.IncidenciaTxRunner.
var _ inventario.TxRunner = (*TxRunner)(nil)
var _ usecase.IncidenciaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	tipoRepo repository.TipoMovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimientoRepository(tx)
	productoRepo := NewProductoRepository(tx)
	tipoRepo := NewTipoMovimientoRepository(tx)

	if err := fn(movRepo, productoRepo, tipoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunIncidencia inicia una transacción con los repos que valida el registro de incidencias.
func (r *TxRunner) RunIncidencia(ctx context.Context, fn func(
	incRepo repository.IncidenciaRepository,
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	incRepo := NewIncidenciaRepository(tx)
	productoRepo := NewProductoRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)

	if err := fn(incRepo, productoRepo, usuarioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
