package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf).Component("importer")

	l.Info().Int("row", 3).Msg("fila importada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "importer", entry["component"])
	assert.Equal(t, "fila importada", entry["message"])
	assert.EqualValues(t, 3, entry["row"])
}

func TestNop_Discards(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("nada") })
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("debug").String())
	assert.Equal(t, "info", parseLevel("desconocido").String())
}
