package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
)

func TestParseFecha_LayoutsAceptados(t *testing.T) {
	casos := map[string]time.Time{
		"2026-03-15":                time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		"2026-03-15T10:30:00Z":      time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		"2026-03-15 10:30:00":       time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		"2026-03-15T10:30:00-05:00": time.Date(2026, 3, 15, 10, 30, 0, 0, time.FixedZone("", -5*3600)),
	}
	for in, esperado := range casos {
		got, err := dto.ParseFecha(in)
		require.NoError(t, err, "fecha %q debe aceptarse", in)
		assert.True(t, esperado.Equal(got), "fecha %q: esperado %v, obtenido %v", in, esperado, got)
	}
}

func TestParseFecha_FormatoInvalido_RetornaError(t *testing.T) {
	for _, in := range []string{"15/03/2026", "ayer", ""} {
		_, err := dto.ParseFecha(in)
		assert.Error(t, err, "fecha %q debe rechazarse", in)
	}
}
