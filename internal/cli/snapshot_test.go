package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/internal/usecases/merging"
	"github.com/vfg2006/kpi-dashboard/pkg/appErrors"
)

// parseSnapshot reconstrói o snapshot a partir do JSON emitido pelo comando
func parseSnapshot(t *testing.T, out string) domain.Snapshot {
	t.Helper()
	result, err := merging.NewService().Merge(domain.Snapshot{}.Clone(), []byte(out))
	require.NoError(t, err)
	require.Empty(t, result.Warnings)
	return result.Snapshot
}

func TestSnapshotCmd(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "kpi.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`{"target": 150000, "extra": true}`), 0o644))

	tests := []struct {
		name     string
		args     []string
		wantCode string
		validate func(t *testing.T, stdout, stderr string)
	}{
		{
			name: "Snapshot padrão",
			args: []string{"snapshot"},
			validate: func(t *testing.T, stdout, stderr string) {
				got := parseSnapshot(t, stdout)
				if diff := cmp.Diff(domain.DefaultSnapshot(), got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("snapshot diferente do padrão (-want +got):\n%s", diff)
				}
				assert.Empty(t, stderr)
			},
		},
		{
			name: "Arquivo de dados aplicado com aviso",
			args: []string{"snapshot", "--data", dataFile},
			validate: func(t *testing.T, stdout, stderr string) {
				got := parseSnapshot(t, stdout)
				assert.Equal(t, domain.Float(150000), got.Target)
				assert.Contains(t, stderr, "aviso: extra: unknown_field")
			},
		},
		{
			name:     "Arquivo inexistente",
			args:     []string{"snapshot", "--data", filepath.Join(dir, "nao-existe.json")},
			wantCode: appErrors.ErrReadInput,
		},
		{
			name:     "Argumento inesperado",
			args:     []string{"snapshot", "extra"},
			wantCode: appErrors.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, "", tt.args...)

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
