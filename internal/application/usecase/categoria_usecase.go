package usecase

import (
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// CategoriaUseCase reglas de negocio para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Listar devuelve las categorías activas.
func (uc *CategoriaUseCase) Listar() ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListarActivas()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{
			IDCategoria: c.ID,
			Nombre:      c.Nombre,
			Descripcion: c.Descripcion,
			Activo:      c.Activo,
		})
	}
	return out, nil
}

// Crear registra una categoría nueva.
func (uc *CategoriaUseCase) Crear(in dto.GuardarCategoriaRequest) (int64, error) {
	if in.Nombre == "" {
		return 0, domain.ErrEntradaInvalida
	}
	return uc.repo.Crear(&entity.Categoria{Nombre: in.Nombre, Descripcion: in.Descripcion, Activo: true})
}

// Actualizar modifica una categoría activa.
func (uc *CategoriaUseCase) Actualizar(id int64, in dto.GuardarCategoriaRequest) error {
	if in.Nombre == "" {
		return domain.ErrEntradaInvalida
	}
	ok, err := uc.repo.Actualizar(&entity.Categoria{ID: id, Nombre: in.Nombre, Descripcion: in.Descripcion})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Eliminar desactiva la categoría (soft delete).
func (uc *CategoriaUseCase) Eliminar(id int64) error {
	ok, err := uc.repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}
