package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		wantErr bool
	}{
		{name: "texto em desenvolvimento", level: "debug", env: "development"},
		{name: "json em produção", level: "info", env: "production"},
		{name: "nível inválido", level: "barulhento", env: "production", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Configure(&buf, tt.level, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestForContext_IncludesCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "info", "production"))

	ctx, correlationID := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("revision", "abc123").Info("snapshot publicado")

	out := buf.String()
	assert.Contains(t, out, correlationID)
	assert.Contains(t, out, `"revision":"abc123"`)
	assert.Contains(t, out, "snapshot publicado")
}

func TestWithCorrelationID_ReusesExisting(t *testing.T) {
	ctx, first := WithCorrelationID(context.Background())
	_, second := WithCorrelationID(ctx)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "info", "production"))

	L.WithFields(Fields{"command": "report", "interno": "x"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, `"command":"report"`)
	assert.NotContains(t, out, "interno")
}
