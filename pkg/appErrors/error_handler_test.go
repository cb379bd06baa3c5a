package appErrors

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"JSON inválido", ErrInvalidJSON, 2},
		{"Não é objeto", ErrNotObject, 2},
		{"Argumento inválido", ErrInvalidArgument, 64},
		{"Leitura", ErrReadInput, 66},
		{"Configuração", ErrConfiguration, 78},
		{"Código desconhecido", "XYZ_999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	buf := new(bytes.Buffer)

	exitCode := WriteError(buf, ErrReadInput, "arquivo não encontrado", nil)

	assert.Equal(t, 66, exitCode)

	var body AppError
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, ErrReadInput, body.Code)
	assert.Equal(t, "arquivo não encontrado", body.Message)
	assert.NotContains(t, buf.String(), "details")
}

func TestFromError(t *testing.T) {
	assert.Equal(t, AppError{Code: ErrInternal, Message: "Erro desconhecido"}, FromError(nil, ErrReadInput))

	appErr := FromError(errors.New("disco cheio"), ErrWriteOutput)
	assert.Equal(t, "IO_002: disco cheio", appErr.Error())
}
