package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json format honours level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger := newLogger("warn", "json", buf)

		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger := newLogger("loud", "text", buf)

		logger.Debug("hidden")
		logger.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}
