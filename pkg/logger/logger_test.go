package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmiteCampoService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Msg("arranque")

	assert.Contains(t, buf.String(), `"service":"riskguard-api"`,
		"toda línea lleva la identidad del servicio")
}

func TestNew_ServiceConfigurable(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Service: "riskguard-worker", Output: &buf})

	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"service":"riskguard-worker"`)
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "verboso", Output: &buf})

	l.Debug().Msg("no debería salir")
	l.Info().Msg("sí debería salir")

	out := buf.String()
	assert.NotContains(t, out, "no debería salir")
	assert.Contains(t, out, "sí debería salir")
}

func TestWithVendor_FijaElTenant(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Output: &buf})

	l.WithVendor("vendor-1").Warn().Msg("licencia por vencer")

	line := buf.String()
	require.True(t, strings.Contains(line, `"vendor_id":"vendor-1"`),
		"el sublogger arrastra el vendor en cada evento: %s", line)
	assert.Contains(t, line, `"service":"riskguard-api"`)
}
