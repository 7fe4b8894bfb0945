package auth

import (
	"crypto/subtle"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
	"github.com/yerbsoft/inventario-api/pkg/jwt"
	"github.com/yerbsoft/inventario-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login con soporte de migración de contraseñas legadas.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
	tareas      TareaAsincrona
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig, tareas TareaAsincrona, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg, tareas: tareas, log: log}
}

// formato bcrypt: $2a$, $2b$ o $2y$.
var bcryptPrefix = regexp.MustCompile(`^\$2[aby]\$`)

// Login verifica email/password contra el usuario Activo, genera el JWT y
// retorna token + perfil público.
//
// Verificación con soporte de migración:
//   - Si password_hash tiene formato bcrypt, se compara con bcrypt.
//   - Si no (bases antiguas con texto plano), se compara byte a byte; si
//     coincide se autoriza el login y se re-hashea y persiste en segundo
//     plano. La migración es best-effort: nunca bloquea ni falla el login.
//
// Toda falla responde con ErrCredencialesInvalidas, sin distinguir si el
// email no existe o la contraseña no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}

	cred, err := uc.usuarioRepo.GetCredencialesPorEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrCredencialesInvalidas
	}

	stored := cred.PasswordHash
	if bcryptPrefix.MatchString(stored) {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(in.Password)); err != nil {
			return nil, domain.ErrCredencialesInvalidas
		}
	} else {
		// Almacenamiento en texto plano de bases antiguas: soporte de
		// migración intencional, pendiente de retirarse cuando no queden
		// credenciales sin hashear.
		if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(in.Password)) != 1 {
			return nil, domain.ErrCredencialesInvalidas
		}
		uc.migrarPassword(cred.ID, in.Password)
	}

	userID := cred.ID
	uc.tareas.Go(func() {
		if err := uc.usuarioRepo.TocarUltimoAcceso(userID); err != nil {
			uc.log.Warn().Err(err).Int64("id_usuario", userID).Msg("no se pudo actualizar último acceso")
		}
	})

	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.ID, cred.Email, cred.NombreRol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UsuarioPublico{
			ID:             cred.ID,
			NombreCompleto: cred.NombreCompleto,
			Email:          cred.Email,
			RolNombre:      cred.NombreRol,
		},
	}, nil
}

// migrarPassword re-hashea la credencial legada y la persiste en segundo plano.
func (uc *AuthUseCase) migrarPassword(userID int64, password string) {
	uc.tareas.Go(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			uc.log.Warn().Err(err).Int64("id_usuario", userID).Msg("fallo generando hash bcrypt para migración")
			return
		}
		if err := uc.usuarioRepo.ActualizarPasswordHash(userID, string(hash)); err != nil {
			uc.log.Warn().Err(err).Int64("id_usuario", userID).Msg("no se pudo migrar password a bcrypt")
			return
		}
		uc.log.Info().Int64("id_usuario", userID).Msg("password migrado a bcrypt")
	})
}
