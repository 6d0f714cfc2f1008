package repository

import (
	"context"
	"sync"
	"time"

	"github.com/andresuchdata/lotplan/internal/domain"
)

// memoryPlanRepository keeps runs in process memory; used when no database
// is configured and in tests.
type memoryPlanRepository struct {
	mu     sync.RWMutex
	nextID int64
	runs   []*domain.PlanRun
	now    func() time.Time
}

func NewMemoryPlanRepository() PlanRepository {
	return &memoryPlanRepository{now: time.Now}
}

func (r *memoryPlanRepository) SavePlanRun(ctx context.Context, run *domain.PlanRun) error {
	return r.SavePlanRuns(ctx, []*domain.PlanRun{run})
}

func (r *memoryPlanRepository) SavePlanRuns(ctx context.Context, runs []*domain.PlanRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, run := range runs {
		r.nextID++
		run.ID = r.nextID
		run.CreatedAt = r.now().UTC()

		stored := *run
		stored.Cached = false
		r.runs = append(r.runs, &stored)
	}
	return nil
}

func (r *memoryPlanRepository) GetPlanRun(ctx context.Context, id int64) (*domain.PlanRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, run := range r.runs {
		if run.ID == id {
			cp := *run
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// ListPlanRuns returns the newest runs first.
func (r *memoryPlanRepository) ListPlanRuns(ctx context.Context, limit int) ([]*domain.PlanRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.runs) {
		limit = len(r.runs)
	}
	out := make([]*domain.PlanRun, 0, limit)
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.runs[i]
		out = append(out, &cp)
	}
	return out, nil
}
