package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andresuchdata/lotplan/internal/domain"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/andresuchdata/lotplan/internal/repository"
	"github.com/lib/pq"
)

const defaultListLimit = 50

type planRepository struct {
	db *DB
}

func NewPlanRepository(db *DB) repository.PlanRepository {
	return &planRepository{db: db}
}

// planRunRow mirrors the plan_runs table.
type planRunRow struct {
	ID               int64           `db:"id"`
	Name             string          `db:"name"`
	InstanceHash     string          `db:"instance_hash"`
	Periods          int             `db:"periods"`
	Demand           pq.Float64Array `db:"demand"`
	SetupCost        pq.Float64Array `db:"setup_cost"`
	HoldingCost      pq.Float64Array `db:"holding_cost"`
	MinimumTotalCost float64         `db:"minimum_total_cost"`
	OrderPeriods     pq.Int64Array   `db:"order_periods"`
	Orders           []byte          `db:"orders"`
	CreatedAt        time.Time       `db:"created_at"`
}

const selectPlanRun = `
	SELECT id, name, instance_hash, periods, demand, setup_cost, holding_cost,
	       minimum_total_cost, order_periods, orders, created_at
	FROM plan_runs
`

const insertPlanRun = `
	INSERT INTO plan_runs (
		name, instance_hash, periods, demand, setup_cost, holding_cost,
		minimum_total_cost, order_periods, orders
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
`

func (r *planRepository) SavePlanRun(ctx context.Context, run *domain.PlanRun) error {
	return r.SavePlanRuns(ctx, []*domain.PlanRun{run})
}

// SavePlanRuns inserts all runs in a single transaction.
func (r *planRepository) SavePlanRuns(ctx context.Context, runs []*domain.PlanRun) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, run := range runs {
			if err := insertRun(ctx, tx, run); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertRun(ctx context.Context, tx *sql.Tx, run *domain.PlanRun) error {
	orders, err := json.Marshal(run.Orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	err = tx.QueryRowContext(ctx, insertPlanRun,
		run.Name,
		run.InstanceHash,
		run.Periods,
		pq.Float64Array(run.Demand),
		pq.Float64Array(run.SetupCost),
		pq.Float64Array(run.HoldingCost),
		run.MinimumTotalCost,
		toInt64Array(run.OrderSchedule),
		string(orders),
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return fmt.Errorf("error saving plan run: %w", err)
	}
	return nil
}

func (r *planRepository) GetPlanRun(ctx context.Context, id int64) (*domain.PlanRun, error) {
	var row planRunRow
	err := r.db.GetContext(ctx, &row, selectPlanRun+" WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting plan run %d: %w", id, err)
	}
	return row.toDomain()
}

func (r *planRepository) ListPlanRuns(ctx context.Context, limit int) ([]*domain.PlanRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var rows []planRunRow
	if err := r.db.SelectContext(ctx, &rows, selectPlanRun+" ORDER BY created_at DESC, id DESC LIMIT $1", limit); err != nil {
		return nil, fmt.Errorf("error listing plan runs: %w", err)
	}

	runs := make([]*domain.PlanRun, 0, len(rows))
	for _, row := range rows {
		run, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (row planRunRow) toDomain() (*domain.PlanRun, error) {
	var orders []lotsizing.Order
	if len(row.Orders) > 0 {
		if err := json.Unmarshal(row.Orders, &orders); err != nil {
			return nil, fmt.Errorf("decode orders of plan run %d: %w", row.ID, err)
		}
	}

	schedule := make([]int, len(row.OrderPeriods))
	for k, p := range row.OrderPeriods {
		schedule[k] = int(p)
	}

	return &domain.PlanRun{
		ID:               row.ID,
		Name:             row.Name,
		InstanceHash:     row.InstanceHash,
		Periods:          row.Periods,
		Demand:           []float64(row.Demand),
		SetupCost:        []float64(row.SetupCost),
		HoldingCost:      []float64(row.HoldingCost),
		MinimumTotalCost: row.MinimumTotalCost,
		OrderSchedule:    schedule,
		Orders:           orders,
		CreatedAt:        row.CreatedAt,
	}, nil
}

func toInt64Array(values []int) pq.Int64Array {
	out := make(pq.Int64Array, len(values))
	for k, v := range values {
		out[k] = int64(v)
	}
	return out
}
