package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/yerbsoft/inventario-api/pkg/jwt"
)

const (
	secret = "secret-de-pruebas"
	issuer = "inventario-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 42, "ana@empresa.com", "Administrador", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, rol, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "ana@empresa.com", email)
	assert.Equal(t, "Administrador", rol)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1, "a@b.com", "Administrador", issuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1, "a@b.com", "Administrador", issuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_Basura_RetornaError(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(secret, "no.es.jwt")
	assert.Error(t, err)
}
