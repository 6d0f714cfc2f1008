package repository

import (
	"context"
	"errors"

	"github.com/andresuchdata/lotplan/internal/domain"
)

// ErrNotFound is returned when a plan run does not exist.
var ErrNotFound = errors.New("plan run not found")

type PlanRepository interface {
	SavePlanRun(ctx context.Context, run *domain.PlanRun) error
	// SavePlanRuns stores every run or none of them.
	SavePlanRuns(ctx context.Context, runs []*domain.PlanRun) error
	GetPlanRun(ctx context.Context, id int64) (*domain.PlanRun, error)
	ListPlanRuns(ctx context.Context, limit int) ([]*domain.PlanRun, error)
}
