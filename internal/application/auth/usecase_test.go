package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yerbsoft/inventario-api/internal/application/auth"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
	pkgjwt "github.com/yerbsoft/inventario-api/pkg/jwt"
	"github.com/yerbsoft/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// syncRunner ejecuta las tareas en línea para que los tests sean deterministas.
type syncRunner struct{}

func (syncRunner) Go(fn func()) { fn() }

type fakeUsuarioRepo struct {
	credenciales map[string]*entity.CredencialUsuario
	hashGuardado map[int64]string
	ultimoAcceso []int64
}

func newFakeUsuarioRepo(creds ...*entity.CredencialUsuario) *fakeUsuarioRepo {
	f := &fakeUsuarioRepo{
		credenciales: make(map[string]*entity.CredencialUsuario),
		hashGuardado: make(map[int64]string),
	}
	for _, c := range creds {
		f.credenciales[c.Email] = c
	}
	return f
}

func (f *fakeUsuarioRepo) ListarActivos() ([]*entity.UsuarioListado, error) { return nil, nil }
func (f *fakeUsuarioRepo) ListarRolesActivos() ([]*entity.Rol, error) { return nil, nil }
func (f *fakeUsuarioRepo) GetByID(int64) (*entity.Usuario, error) { return nil, nil }

func (f *fakeUsuarioRepo) GetCredencialesPorEmail(email string) (*entity.CredencialUsuario, error) {
	return f.credenciales[email], nil
}

func (f *fakeUsuarioRepo) EmailEnUso(string, int64) (bool, error) { return false, nil }
func (f *fakeUsuarioRepo) Crear(*entity.Usuario) (int64, error) { return 0, nil }
func (f *fakeUsuarioRepo) ActualizarParcial(int64, repository.UsuarioUpdate) (bool, error) {
	return false, nil
}

func (f *fakeUsuarioRepo) ActualizarPasswordHash(id int64, hash string) error {
	f.hashGuardado[id] = hash
	return nil
}

func (f *fakeUsuarioRepo) TocarUltimoAcceso(id int64) error {
	f.ultimoAcceso = append(f.ultimoAcceso, id)
	return nil
}

func (f *fakeUsuarioRepo) SoftDelete(int64) (bool, error) { return false, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "secret-de-pruebas"
	testEmail  = "ana@empresa.com"
	testPass   = "clave-segura-123"
)

func buildUseCase(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventario-api-test",
	}, syncRunner{}, logger.Nop())
}

func credencialBcrypt(t *testing.T) *entity.CredencialUsuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPass), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.CredencialUsuario{
		ID:             1,
		NombreCompleto: "Ana Torres",
		Email:          testEmail,
		PasswordHash:   string(hash),
		Estado:         entity.EstadoActivo,
		NombreRol:      "Administrador",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_BcryptCorrecto_RetornaTokenYPerfil(t *testing.T) {
	repo := newFakeUsuarioRepo(credencialBcrypt(t))
	uc := buildUseCase(repo)

	resp, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPass})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "Ana Torres", resp.User.NombreCompleto)
	assert.Equal(t, "Administrador", resp.User.RolNombre)

	// El token debe validar con el mismo secret y llevar los claims del usuario.
	userID, email, rol, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, testEmail, email)
	assert.Equal(t, "Administrador", rol)
}

func TestLogin_BcryptIncorrecto_ErrorUniforme(t *testing.T) {
	repo := newFakeUsuarioRepo(credencialBcrypt(t))
	uc := buildUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestLogin_EmailInexistente_MismoErrorQuePasswordMala(t *testing.T) {
	repo := newFakeUsuarioRepo(credencialBcrypt(t))
	uc := buildUseCase(repo)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@empresa.com", Password: testPass})
	_, errPass := uc.Login(dto.LoginRequest{Email: testEmail, Password: "mala"})

	assert.ErrorIs(t, errEmail, domain.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errPass, domain.ErrCredencialesInvalidas,
		"no se debe poder distinguir email inexistente de password incorrecta")
}

func TestLogin_CamposVacios_EntradaInvalida(t *testing.T) {
	uc := buildUseCase(newFakeUsuarioRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "", Password: testPass})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: ""})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLogin_PasswordLegadaEnTextoPlano_MigraABcrypt(t *testing.T) {
	repo := newFakeUsuarioRepo(&entity.CredencialUsuario{
		ID:             5,
		NombreCompleto: "Usuario Legado",
		Email:          testEmail,
		PasswordHash:   testPass, // texto plano de base antigua
		Estado:         entity.EstadoActivo,
		NombreRol:      "Bodeguero",
	})
	uc := buildUseCase(repo)

	resp, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPass})
	require.NoError(t, err, "la credencial legada que coincide debe autorizar el login")
	assert.NotEmpty(t, resp.Token)

	// Con el runner síncrono la migración ya debe haber persistido.
	hash, ok := repo.hashGuardado[5]
	require.True(t, ok, "el hash migrado debe persistirse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(testPass)),
		"el hash persistido debe ser bcrypt válido de la misma contraseña")
}

func TestLogin_PasswordLegadaIncorrecta_NoMigra(t *testing.T) {
	repo := newFakeUsuarioRepo(&entity.CredencialUsuario{
		ID:           5,
		Email:        testEmail,
		PasswordHash: testPass,
		Estado:       entity.EstadoActivo,
	})
	uc := buildUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: "no-coincide"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	assert.Empty(t, repo.hashGuardado, "una credencial rechazada nunca debe migrar")
}

func TestLogin_HashVacio_Rechaza(t *testing.T) {
	repo := newFakeUsuarioRepo(&entity.CredencialUsuario{
		ID:           9,
		Email:        testEmail,
		PasswordHash: "",
		Estado:       entity.EstadoActivo,
	})
	uc := buildUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: ""})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas,
		"hash vacío en base nunca debe autorizar, ni con password vacía")
}

func TestLogin_ActualizaUltimoAcceso(t *testing.T) {
	repo := newFakeUsuarioRepo(credencialBcrypt(t))
	uc := buildUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPass})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.ultimoAcceso,
		"el login exitoso debe tocar fecha_ultimo_acceso")
}
