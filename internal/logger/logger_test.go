package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter(t *testing.T) {
	t.Run("json format emits base attributes", func(t *testing.T) {
		var buf bytes.Buffer
		config := NewConfig("info", "json", "mealplan-api", "test", "dev", false)
		InitLoggerWithWriter(config, &buf)

		FromContext(context.Background()).Info("hello")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "mealplan-api", entry["service"])
		assert.Equal(t, "dev", entry["environment"])
	})

	t.Run("debug messages suppressed at info level", func(t *testing.T) {
		var buf bytes.Buffer
		config := NewConfig("info", "text", "mealplan-api", "test", "dev", false)
		InitLoggerWithWriter(config, &buf)

		FromContext(context.Background()).Debug("hidden")

		assert.Empty(t, buf.String())
	})
}

func TestRequestIDPropagation(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		id := GenerateRequestID()
		ctx := WithRequestID(context.Background(), id)

		got, ok := RequestIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("absent on bare context", func(t *testing.T) {
		_, ok := RequestIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("logger includes request_id attribute", func(t *testing.T) {
		var buf bytes.Buffer
		InitLoggerWithWriter(NewConfig("info", "json", "mealplan-api", "test", "dev", false), &buf)

		ctx := WithRequestID(context.Background(), "req-123")
		FromContext(ctx).Info("traced")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-123", entry["request_id"])
	})
}

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.want, cfg.LogLevel().String())
		})
	}
}
