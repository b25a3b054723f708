package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/pkg/logger"
)

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "debug").Component("gastos")
	log.Info().Str("gasto_id", "gasto-1").Msg("guardado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "gastos", line["component"])
	assert.Equal(t, "gasto-1", line["gasto_id"])
	assert.Equal(t, "info", line["level"])
}

func TestNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "WARN")
	log.Info().Msg("oculto")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	logger.NewWriter(&buf, "desconocido").Debug().Msg("oculto")
	assert.Zero(t, buf.Len())
}
