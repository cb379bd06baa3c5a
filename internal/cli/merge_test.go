package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
)

func TestMergeCmd(t *testing.T) {
	dir := t.TempDir()

	patchFile := filepath.Join(dir, "patch.json")
	require.NoError(t, os.WriteFile(patchFile, []byte(`{"financial": {"cancelled": 500}}`), 0o644))

	baseFile := filepath.Join(dir, "base.json")
	require.NoError(t, os.WriteFile(baseFile, []byte(`{"target": 90000}`), 0o644))

	invalidBase := filepath.Join(dir, "invalida.json")
	require.NoError(t, os.WriteFile(invalidBase, []byte(`[1, 2]`), 0o644))

	outFile := filepath.Join(dir, "saida.json")

	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode string
		validate func(t *testing.T, stdout, stderr string)
	}{
		{
			name:  "Documento lido da entrada padrão",
			stdin: `{"target": 5}`,
			args:  []string{"merge"},
			validate: func(t *testing.T, stdout, stderr string) {
				got := parseSnapshot(t, stdout)
				assert.Equal(t, domain.Float(5), got.Target)
				assert.Equal(t, 78144.5, got.Financial.Invoiced)
			},
		},
		{
			name:  "Hífen também lê a entrada padrão",
			stdin: `{"target": 7}`,
			args:  []string{"merge", "-"},
			validate: func(t *testing.T, stdout, stderr string) {
				assert.Equal(t, domain.Float(7), parseSnapshot(t, stdout).Target)
			},
		},
		{
			name: "Arquivo sobre base informada",
			args: []string{"merge", patchFile, "--base", baseFile},
			validate: func(t *testing.T, stdout, stderr string) {
				got := parseSnapshot(t, stdout)
				assert.Equal(t, domain.Float(90000), got.Target)
				assert.Equal(t, 500.0, got.Financial.Cancelled)
			},
		},
		{
			name:  "Avisos vão para a saída de erro",
			stdin: `{"revenueLastYear": [1, 2], "zzz": 1}`,
			args:  []string{"merge"},
			validate: func(t *testing.T, stdout, stderr string) {
				assert.Contains(t, stderr, "aviso: revenueLastYear: wrong_length")
				assert.Contains(t, stderr, "aviso: zzz: unknown_field")
				assert.Equal(t, domain.DefaultSnapshot().RevenueLastYear, parseSnapshot(t, stdout).RevenueLastYear)
			},
		},
		{
			name: "Resultado gravado em arquivo",
			args: []string{"merge", patchFile, "--out", outFile},
			validate: func(t *testing.T, stdout, stderr string) {
				assert.Empty(t, stdout)
				content, err := os.ReadFile(outFile)
				require.NoError(t, err)
				assert.Equal(t, 500.0, parseSnapshot(t, string(content)).Financial.Cancelled)
			},
		},
		{
			name:     "JSON inválido",
			stdin:    `{"target": `,
			args:     []string{"merge"},
			wantCode: appErrors.ErrInvalidJSON,
		},
		{
			name:     "Documento que não é objeto",
			stdin:    `"texto"`,
			args:     []string{"merge"},
			wantCode: appErrors.ErrNotObject,
		},
		{
			name:     "Base inválida",
			args:     []string{"merge", patchFile, "--base", invalidBase},
			wantCode: appErrors.ErrNotObject,
		},
		{
			name:     "Flag desconhecida",
			args:     []string{"merge", "--nao-existe"},
			wantCode: appErrors.ErrInvalidArgument,
		},
		{
			name:     "Dois documentos",
			args:     []string{"merge", patchFile, patchFile},
			wantCode: appErrors.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.stdin, tt.args...)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errorCode(err))
				return
			}
			require.NoError(t, err)
			tt.validate(t, stdout, stderr)
		})
	}
}
