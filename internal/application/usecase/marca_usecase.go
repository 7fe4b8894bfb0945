package usecase

import (
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// MarcaUseCase reglas de negocio para marcas (proveedores).
type MarcaUseCase struct {
	repo repository.MarcaRepository
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(repo repository.MarcaRepository) *MarcaUseCase {
	return &MarcaUseCase{repo: repo}
}

// Listar devuelve las marcas activas.
func (uc *MarcaUseCase) Listar() ([]dto.MarcaResponse, error) {
	marcas, err := uc.repo.ListarActivas()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarcaResponse, 0, len(marcas))
	for _, m := range marcas {
		out = append(out, dto.MarcaResponse{
			IDMarca:   m.ID,
			Nombre:    m.Nombre,
			Contacto:  m.Contacto,
			Telefono:  m.Telefono,
			Email:     m.Email,
			Direccion: m.Direccion,
			Activo:    m.Activo,
		})
	}
	return out, nil
}

// Crear registra una marca nueva.
func (uc *MarcaUseCase) Crear(in dto.GuardarMarcaRequest) (int64, error) {
	if in.Nombre == "" {
		return 0, domain.ErrEntradaInvalida
	}
	return uc.repo.Crear(&entity.Marca{
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		Activo:    true,
	})
}

// Actualizar modifica una marca activa.
func (uc *MarcaUseCase) Actualizar(id int64, in dto.GuardarMarcaRequest) error {
	if in.Nombre == "" {
		return domain.ErrEntradaInvalida
	}
	ok, err := uc.repo.Actualizar(&entity.Marca{
		ID:        id,
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Eliminar desactiva la marca (soft delete).
func (uc *MarcaUseCase) Eliminar(id int64) error {
	ok, err := uc.repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}
