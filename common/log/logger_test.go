package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestInitJSON(t *testing.T) {
	var out bytes.Buffer
	Init(Options{LogLevel: zerolog.InfoLevel, Type: JSONLogger, Output: &out})

	Decoder.Debug().Msg("hidden")
	Decoder.Info().Int("words", 3).Msg("decoded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "decoder", entry["component"])
	assert.Equal(t, "decoded", entry["message"])
	assert.Equal(t, float64(3), entry["words"])
}

func TestInitConsole(t *testing.T) {
	var out bytes.Buffer
	Init(Options{LogLevel: zerolog.DebugLevel, Type: ConsoleLogger, Output: &out})

	Report.Debug().Str("mode", "opcodes").Msg("rendering")
	assert.Contains(t, out.String(), "| DEBUG |")
	assert.Contains(t, out.String(), "rendering")
	assert.Contains(t, out.String(), "mode=opcodes")
}
