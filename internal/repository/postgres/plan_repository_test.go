package postgres

import (
	"testing"
	"time"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRunRow_ToDomain(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := planRunRow{
		ID:               7,
		Name:             "weekly",
		InstanceHash:     "abc",
		Periods:          3,
		Demand:           pq.Float64Array{10, 20, 15},
		SetupCost:        pq.Float64Array{50, 50, 50},
		HoldingCost:      pq.Float64Array{1, 1, 1},
		MinimumTotalCost: 100,
		OrderPeriods:     pq.Int64Array{1},
		Orders:           []byte(`[{"period":1,"quantity":45,"covers_from":1,"covers_to":3,"order_cost":100}]`),
		CreatedAt:        created,
	}

	run, err := row.toDomain()
	require.NoError(t, err)
	assert.Equal(t, int64(7), run.ID)
	assert.Equal(t, []int{1}, run.OrderSchedule)
	assert.Equal(t, []float64{10, 20, 15}, run.Demand)
	assert.Equal(t, []lotsizing.Order{{Period: 1, Quantity: 45, CoversFrom: 1, CoversTo: 3, OrderCost: 100}}, run.Orders)
	assert.Equal(t, created, run.CreatedAt)
}

func TestPlanRunRow_ToDomainBadOrders(t *testing.T) {
	_, err := planRunRow{ID: 3, Orders: []byte("{")}.toDomain()
	assert.ErrorContains(t, err, "decode orders of plan run 3")
}

func TestToInt64Array(t *testing.T) {
	assert.Equal(t, pq.Int64Array{1, 4}, toInt64Array([]int{1, 4}))
	assert.Equal(t, pq.Int64Array{}, toInt64Array(nil))
}
