package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuariosRepo struct {
	emailsEnUso     map[string]int64 // email -> id del dueño
	creado          *entity.Usuario
	actualizadoID   int64
	actualizado     *repository.UsuarioUpdate
	existeParaID    bool
	borrados        []int64
	usuariosActivos []*entity.UsuarioListado
}

func newFakeUsuariosRepo() *fakeUsuariosRepo {
	return &fakeUsuariosRepo{emailsEnUso: make(map[string]int64), existeParaID: true}
}

func (f *fakeUsuariosRepo) ListarActivos() ([]*entity.UsuarioListado, error) {
	return f.usuariosActivos, nil
}

func (f *fakeUsuariosRepo) ListarRolesActivos() ([]*entity.Rol, error) { return nil, nil }
func (f *fakeUsuariosRepo) GetByID(int64) (*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuariosRepo) GetCredencialesPorEmail(string) (*entity.CredencialUsuario, error) {
	return nil, nil
}

func (f *fakeUsuariosRepo) EmailEnUso(email string, exceptoID int64) (bool, error) {
	dueno, ok := f.emailsEnUso[email]
	if !ok {
		return false, nil
	}
	return exceptoID == 0 || dueno != exceptoID, nil
}

func (f *fakeUsuariosRepo) Crear(u *entity.Usuario) (int64, error) {
	f.creado = u
	return 42, nil
}

func (f *fakeUsuariosRepo) ActualizarParcial(id int64, campos repository.UsuarioUpdate) (bool, error) {
	f.actualizadoID = id
	f.actualizado = &campos
	return f.existeParaID, nil
}

func (f *fakeUsuariosRepo) ActualizarPasswordHash(int64, string) error { return nil }
func (f *fakeUsuariosRepo) TocarUltimoAcceso(int64) error { return nil }

func (f *fakeUsuariosRepo) SoftDelete(id int64) (bool, error) {
	f.borrados = append(f.borrados, id)
	return f.existeParaID, nil
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearUsuario_HasheaPasswordConBcrypt(t *testing.T) {
	repo := newFakeUsuariosRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	id, err := uc.Crear(dto.CrearUsuarioRequest{
		NombreCompleto: "Ana Torres",
		Email:          "ana@empresa.com",
		Password:       "clave123",
		IDRol:          2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NotNil(t, repo.creado)
	assert.Equal(t, entity.EstadoActivo, repo.creado.Estado)
	assert.NotEqual(t, "clave123", repo.creado.PasswordHash,
		"la contraseña nunca se persiste en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.creado.PasswordHash), []byte("clave123")))
}

func TestCrearUsuario_CamposFaltantes_EntradaInvalida(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuariosRepo())

	casos := []dto.CrearUsuarioRequest{
		{Email: "a@b.com", Password: "x", IDRol: 1},
		{NombreCompleto: "A", Password: "x", IDRol: 1},
		{NombreCompleto: "A", Email: "a@b.com", IDRol: 1},
		{NombreCompleto: "A", Email: "a@b.com", Password: "x"},
	}
	for _, in := range casos {
		_, err := uc.Crear(in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}
}

func TestCrearUsuario_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuariosRepo()
	repo.emailsEnUso["ana@empresa.com"] = 9
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Crear(dto.CrearUsuarioRequest{
		NombreCompleto: "Ana",
		Email:          "ana@empresa.com",
		Password:       "x",
		IDRol:          1,
	})
	assert.ErrorIs(t, err, domain.ErrEmailYaRegistrado)
	assert.Nil(t, repo.creado, "no debe intentarse el insert con email duplicado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar (parcial)
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarUsuario_SoloCamposPresentes(t *testing.T) {
	repo := newFakeUsuariosRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Actualizar(7, dto.ActualizarUsuarioRequest{NombreCompleto: ptr("Nuevo Nombre")})
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.actualizadoID)
	require.NotNil(t, repo.actualizado.NombreCompleto)
	assert.Equal(t, "Nuevo Nombre", *repo.actualizado.NombreCompleto)
	assert.Nil(t, repo.actualizado.Email, "los campos ausentes no deben tocarse")
	assert.Nil(t, repo.actualizado.Estado)
	assert.Nil(t, repo.actualizado.PasswordHash)
}

func TestActualizarUsuario_CuerpoVacio_EntradaInvalida(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuariosRepo())
	err := uc.Actualizar(7, dto.ActualizarUsuarioRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestActualizarUsuario_EstadoDesconocido_EntradaInvalida(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuariosRepo())
	err := uc.Actualizar(7, dto.ActualizarUsuarioRequest{Estado: ptr("Suspendido")})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestActualizarUsuario_EmailDeOtroUsuario_Rechaza(t *testing.T) {
	repo := newFakeUsuariosRepo()
	repo.emailsEnUso["ocupado@empresa.com"] = 9
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Actualizar(7, dto.ActualizarUsuarioRequest{Email: ptr("ocupado@empresa.com")})
	assert.ErrorIs(t, err, domain.ErrEmailYaRegistrado)
}

func TestActualizarUsuario_MismoEmailDelUsuario_Permite(t *testing.T) {
	repo := newFakeUsuariosRepo()
	repo.emailsEnUso["ana@empresa.com"] = 7
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Actualizar(7, dto.ActualizarUsuarioRequest{Email: ptr("ana@empresa.com")})
	assert.NoError(t, err, "conservar el propio email no es un duplicado")
}

func TestActualizarUsuario_PasswordSeRehashea(t *testing.T) {
	repo := newFakeUsuariosRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Actualizar(7, dto.ActualizarUsuarioRequest{Password: ptr("nueva-clave")})
	require.NoError(t, err)

	require.NotNil(t, repo.actualizado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(*repo.actualizado.PasswordHash), []byte("nueva-clave")))
}

func TestActualizarUsuario_Inexistente_NoEncontrado(t *testing.T) {
	repo := newFakeUsuariosRepo()
	repo.existeParaID = false
	uc := usecase.NewUsuarioUseCase(repo)

	err := uc.Actualizar(99, dto.ActualizarUsuarioRequest{NombreCompleto: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar y Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestListarUsuarios_MapeaEstadoANumero(t *testing.T) {
	repo := newFakeUsuariosRepo()
	repo.usuariosActivos = []*entity.UsuarioListado{
		{ID: 1, NombreCompleto: "Ana", Estado: entity.EstadoActivo, FechaCreacion: time.Now()},
		{ID: 2, NombreCompleto: "Luis", Estado: entity.EstadoInactivo, FechaCreacion: time.Now()},
	}
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Listar()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Estado, "Activo viaja como 1")
	assert.Equal(t, 0, out[1].Estado, "Inactivo viaja como 0")
}

func TestEliminarUsuario_SoftDelete(t *testing.T) {
	repo := newFakeUsuariosRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	require.NoError(t, uc.Eliminar(7))
	assert.Equal(t, []int64{7}, repo.borrados)
}

func TestEliminarUsuario_Inexistente_NoEncontrado(t *testing.T) {
	repo := newFakeUsuariosRepo()
	repo.existeParaID = false
	uc := usecase.NewUsuarioUseCase(repo)

	assert.ErrorIs(t, uc.Eliminar(99), domain.ErrNoEncontrado)
}
