package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str(FieldComponent, "http").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "http", line[FieldComponent])
	assert.Contains(t, line, "time")
	assert.Contains(t, line, "caller")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("chatty")
	assert.Error(t, err)
	assert.False(t, ValidLevel("chatty"))
	assert.True(t, ValidLevel("debug"))
}

func TestCtx_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldRequestID, "abc").Logger().WithContext(context.Background())
	Ctx(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}
