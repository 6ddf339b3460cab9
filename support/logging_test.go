package support

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes json outside development", func(t *testing.T) {
		var out bytes.Buffer
		logger := NewLogger(Config{Environment: Production, LogLevel: zerolog.InfoLevel}, &out)

		logger.Info().Int("port", 8080).Msg("listening")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		assert.Equal(t, "listening", entry["message"])
		assert.Equal(t, ServiceName, entry["service"])
		assert.Equal(t, "production", entry["env"])
		assert.EqualValues(t, 8080, entry["port"])
	})

	t.Run("drops entries below the configured level", func(t *testing.T) {
		var out bytes.Buffer
		logger := NewLogger(Config{Environment: Production, LogLevel: zerolog.WarnLevel}, &out)

		logger.Info().Msg("quiet")

		assert.Empty(t, out.String())
	})
}
