package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard/internal/domain"
	"github.com/vfg2006/kpi-dashboard/pkg/utils"
)

//go:generate mockgen -destination=mocks/snapshot.go -package=mocks . SnapshotRepository

// SnapshotRepository guarda o snapshot publicado em memória.
// Replace é last-writer-wins e fica visível para toda leitura posterior.
type SnapshotRepository interface {
	Current() domain.PublishedSnapshot
	Replace(snapshot domain.Snapshot) (domain.PublishedSnapshot, error)
}

type snapshotRepository struct {
	mu         sync.RWMutex
	current    domain.PublishedSnapshot
	now        func() time.Time
	generateID func() (string, error)
}

// NewSnapshotRepository cria o repositório já publicando o snapshot inicial
func NewSnapshotRepository(initial domain.Snapshot) (SnapshotRepository, error) {
	repo := &snapshotRepository{
		now:        time.Now,
		generateID: utils.GenerateID,
	}

	if _, err := repo.Replace(initial); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *snapshotRepository) Current() domain.PublishedSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	published := r.current
	published.Snapshot = r.current.Snapshot.Clone()
	return published
}

func (r *snapshotRepository) Replace(snapshot domain.Snapshot) (domain.PublishedSnapshot, error) {
	revision, err := r.generateID()
	if err != nil {
		return domain.PublishedSnapshot{}, errors.Wrap(err, "erro ao gerar revisão do snapshot")
	}

	published := domain.PublishedSnapshot{
		Revision:    revision,
		PublishedAt: r.now(),
		Snapshot:    snapshot.Clone(),
	}

	r.mu.Lock()
	r.current = published
	r.mu.Unlock()

	published.Snapshot = published.Snapshot.Clone()
	return published, nil
}
