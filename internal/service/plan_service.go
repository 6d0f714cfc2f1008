package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/lotplan/internal/cache"
	"github.com/andresuchdata/lotplan/internal/domain"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/andresuchdata/lotplan/internal/report"
	"github.com/andresuchdata/lotplan/internal/repository"
	"github.com/andresuchdata/lotplan/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxPeriods   = 1000
	defaultBatchWorkers = 4
	defaultListLimit    = 50
	maxListLimit        = 500
	archiveTimeout      = 30 * time.Second
)

type PlanServiceOptions struct {
	MaxPeriods    int
	BatchWorkers  int
	Archive       storage.ObjectStorage
	ArchivePrefix string
}

type PlanService struct {
	repo          repository.PlanRepository
	cache         cache.PlanCache
	archive       storage.ObjectStorage
	archivePrefix string
	maxPeriods    int
	workers       int
}

func NewPlanService(repo repository.PlanRepository, cacheImpl cache.PlanCache, opts PlanServiceOptions) *PlanService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlanCache()
	}
	if opts.MaxPeriods <= 0 {
		opts.MaxPeriods = defaultMaxPeriods
	}
	if opts.BatchWorkers <= 0 {
		opts.BatchWorkers = defaultBatchWorkers
	}
	return &PlanService{
		repo:          repo,
		cache:         cacheImpl,
		archive:       opts.Archive,
		archivePrefix: opts.ArchivePrefix,
		maxPeriods:    opts.MaxPeriods,
		workers:       opts.BatchWorkers,
	}
}

// Solve computes, records and returns the optimal plan for req. Results
// already in the cache are reused and marked as cached.
func (s *PlanService) Solve(ctx context.Context, req domain.PlanRequest) (*domain.PlanRun, error) {
	in, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	run, err := s.compute(ctx, req.Name, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SavePlanRun(ctx, run); err != nil {
		return nil, fmt.Errorf("save plan run: %w", err)
	}

	s.archiveRun(ctx, run)
	return run, nil
}

func (s *PlanService) prepare(req domain.PlanRequest) (lotsizing.Instance, error) {
	in := req.Instance()
	if err := in.Validate(); err != nil {
		return lotsizing.Instance{}, err
	}
	if in.Periods() > s.maxPeriods {
		return lotsizing.Instance{}, fmt.Errorf("%w: %d periods exceeds the limit of %d", lotsizing.ErrInvalidInstance, in.Periods(), s.maxPeriods)
	}
	return in, nil
}

// compute returns the unsaved run for in, from the cache when possible.
func (s *PlanService) compute(ctx context.Context, name string, in lotsizing.Instance) (*domain.PlanRun, error) {
	res, cached, err := s.cache.GetPlan(ctx, in)
	if err != nil {
		log.Warn().Err(err).Msg("plan: cache get failed")
		cached = false
	}

	if !cached {
		start := time.Now()
		res, err = in.Solve()
		if err != nil {
			return nil, err
		}
		log.Debug().
			Int("periods", in.Periods()).
			Dur("elapsed", time.Since(start)).
			Float64("min_total_cost", res.MinimumTotalCost).
			Msg("plan: solved")

		if err := s.cache.SetPlan(ctx, in, res); err != nil {
			log.Warn().Err(err).Msg("plan: cache set failed")
		}
	}

	run := domain.NewPlanRun(name, in, res)
	run.Cached = cached
	return run, nil
}

// archiveRun uploads the CSV export of run. Failures are logged only.
func (s *PlanService) archiveRun(ctx context.Context, run *domain.PlanRun) {
	if s.archive == nil {
		return
	}

	payload, err := renderCSV(run)
	if err != nil {
		log.Warn().Err(err).Int64("run_id", run.ID).Msg("plan: archive render failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()

	key := s.ArchiveKey(run)
	if err := s.archive.UploadObject(ctx, key, payload); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("plan: archive upload failed")
		return
	}
	log.Debug().Str("key", key).Msg("plan: archived")
}

// ArchiveKey is the object key a run's CSV export is stored under.
func (s *PlanService) ArchiveKey(run *domain.PlanRun) string {
	hash := run.InstanceHash
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return fmt.Sprintf("%s%d-%s.csv", s.archivePrefix, run.ID, hash)
}

// SolveBatch solves every request concurrently and returns the runs in
// request order. Nothing is solved unless every request is valid, and the
// runs are stored together only after all of them are solved.
func (s *PlanService) SolveBatch(ctx context.Context, reqs []domain.PlanRequest) ([]*domain.PlanRun, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: batch must contain at least one plan", lotsizing.ErrInvalidInstance)
	}

	instances := make([]lotsizing.Instance, len(reqs))
	for i, req := range reqs {
		in, err := s.prepare(req)
		if err != nil {
			return nil, fmt.Errorf("plan %d: %w", i, err)
		}
		instances[i] = in
	}

	runs := make([]*domain.PlanRun, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range reqs {
		i := i
		g.Go(func() error {
			run, err := s.compute(gctx, reqs[i].Name, instances[i])
			if err != nil {
				return fmt.Errorf("plan %d: %w", i, err)
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.repo.SavePlanRuns(ctx, runs); err != nil {
		return nil, fmt.Errorf("save plan runs: %w", err)
	}
	for _, run := range runs {
		s.archiveRun(ctx, run)
	}

	log.Info().Int("plans", len(runs)).Msg("plan: batch solved")
	return runs, nil
}

func (s *PlanService) GetRun(ctx context.Context, id int64) (*domain.PlanRun, error) {
	return s.repo.GetPlanRun(ctx, id)
}

// ListRuns returns the most recent runs, newest first.
func (s *PlanService) ListRuns(ctx context.Context, limit int) ([]*domain.PlanRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	runs, err := s.repo.ListPlanRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = make([]*domain.PlanRun, 0)
	}
	return runs, nil
}

// ExportCSV renders the order plan of a stored run as CSV.
func (s *PlanService) ExportCSV(ctx context.Context, id int64) ([]byte, error) {
	run, err := s.repo.GetPlanRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return renderCSV(run)
}

func renderCSV(run *domain.PlanRun) ([]byte, error) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, run.Result()); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
