package scheduler

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const minDebounceTick = 10 * time.Millisecond

// DataFileWatcherStats acompanha a atividade do observador
type DataFileWatcherStats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventTime time.Time
	LastEventType string
}

// DataFileWatcher observa o arquivo de dados e dispara a recarga quando ele é
// gravado. Gravações em sequência dentro da janela de debounce disparam uma
// única recarga.
type DataFileWatcher struct {
	watcher      *fsnotify.Watcher
	path         string
	debounce     time.Duration
	onChange     func(ctx context.Context) error
	mu           sync.Mutex
	running      bool
	pendingSince time.Time
	stats        DataFileWatcherStats
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// NewDataFileWatcher cria o observador para o arquivo informado
func NewDataFileWatcher(path string, debounce time.Duration, onChange func(ctx context.Context) error) (*DataFileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "caminho inválido %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar observador de arquivos")
	}

	return &DataFileWatcher{
		watcher:  watcher,
		path:     filepath.Clean(absPath),
		debounce: debounce,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start observa o diretório do arquivo (editores costumam substituir o
// arquivo por renomeação). Não bloqueia.
func (w *DataFileWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		_ = w.watcher.Close()
		return errors.Wrapf(err, "erro ao observar diretório %s", dir)
	}

	logrus.WithField("data_file", w.path).Info("Observando alterações no arquivo de dados")

	go w.run(ctx)

	return nil
}

// Stop encerra o observador e aguarda o fim do loop de eventos
func (w *DataFileWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logrus.WithError(err).Error("Erro ao fechar observador de arquivos")
	}
	logrus.Debug("Observador do arquivo de dados parado")
}

func (w *DataFileWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 2
	if tick < minDebounceTick {
		tick = minDebounceTick
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Error("Erro no observador de arquivos")
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processPending(ctx)
		}
	}
}

func (w *DataFileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	default:
		// Remoção ou renomeação: o snapshot publicado é mantido
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventType = eventType
	if w.pendingSince.IsZero() {
		w.pendingSince = time.Now()
	}
}

func (w *DataFileWatcher) processPending(ctx context.Context) {
	w.mu.Lock()
	if w.pendingSince.IsZero() || time.Since(w.stats.LastEventTime) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pendingSince = time.Time{}
	w.mu.Unlock()

	err := w.onChange(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.stats.Errors++
		logrus.WithError(err).WithField("data_file", w.path).Error("Erro ao recarregar arquivo de dados")
		return
	}
	w.stats.Reloads++
}

// GetStats retorna uma cópia das estatísticas do observador
func (w *DataFileWatcher) GetStats() DataFileWatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
