package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const waitTimeout = 3 * time.Second

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDataFileWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "kpi.json")
	writeFile(t, path, `{}`)

	calls := make(chan struct{}, 10)
	watcher, err := NewDataFileWatcher(path, 50*time.Millisecond, func(ctx context.Context) error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	// Gravações em sequência viram uma única recarga
	for i := 0; i < 3; i++ {
		writeFile(t, path, `{"target": 1}`)
	}

	select {
	case <-calls:
	case <-time.After(waitTimeout):
		t.Fatal("recarga não disparada após gravação no arquivo")
	}

	assert.Eventually(t, func() bool { return watcher.GetStats().Reloads >= 1 }, waitTimeout, 10*time.Millisecond)
	stats := watcher.GetStats()
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.Equal(t, 0, stats.Errors)
	assert.False(t, stats.LastEventTime.IsZero())
}

func TestDataFileWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "kpi.json")
	writeFile(t, path, `{}`)

	calls := make(chan struct{}, 10)
	watcher, err := NewDataFileWatcher(path, 20*time.Millisecond, func(ctx context.Context) error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	writeFile(t, filepath.Join(dir, "outro.json"), `{}`)

	select {
	case <-calls:
		t.Fatal("recarga disparada por outro arquivo")
	case <-time.After(300 * time.Millisecond):
	}
	assert.Equal(t, 0, watcher.GetStats().Events)
}

func TestDataFileWatcher_CountsReloadErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "kpi.json")
	writeFile(t, path, `{}`)

	watcher, err := NewDataFileWatcher(path, 20*time.Millisecond, func(ctx context.Context) error {
		return errors.New("documento rejeitado")
	})
	require.NoError(t, err)

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	writeFile(t, path, `{`)

	assert.Eventually(t, func() bool { return watcher.GetStats().Errors >= 1 }, waitTimeout, 10*time.Millisecond)
	assert.Equal(t, 0, watcher.GetStats().Reloads)
}

func TestDataFileWatcher_StartOnMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "nao-existe", "kpi.json")
	watcher, err := NewDataFileWatcher(path, 20*time.Millisecond, func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	err = watcher.Start(context.Background())
	assert.Error(t, err)

	// Stop sem observador ativo não bloqueia
	watcher.Stop()
}

func TestDataFileWatcher_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "kpi.json")
	writeFile(t, path, `{}`)

	watcher, err := NewDataFileWatcher(path, 20*time.Millisecond, func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, watcher.Start(ctx))
	require.NoError(t, watcher.Start(ctx))

	cancel()

	stopped := make(chan struct{})
	go func() {
		watcher.Stop()
		watcher.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(waitTimeout):
		t.Fatal("observador não parou após cancelamento do contexto")
	}
}
