package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/lotplan/internal/input"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
)

// PlanRequest is the caller's description of one lot-sizing problem.
// SetupCost and HoldingCost may hold a single value that applies to every period.
type PlanRequest struct {
	Name        string           `json:"name,omitempty"`
	Demand      input.NumberList `json:"demand"`
	SetupCost   input.NumberList `json:"setup_cost"`
	HoldingCost input.NumberList `json:"holding_cost"`
}

// Instance builds the solver instance, broadcasting scalar costs.
func (r PlanRequest) Instance() lotsizing.Instance {
	periods := len(r.Demand)
	return lotsizing.Instance{
		Demand:  []float64(r.Demand),
		Setup:   input.Expand([]float64(r.SetupCost), periods),
		Holding: input.Expand([]float64(r.HoldingCost), periods),
	}
}

// PlanRun is a solved instance as stored and served.
type PlanRun struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name,omitempty"`
	InstanceHash     string            `json:"instance_hash"`
	Periods          int               `json:"periods"`
	Demand           []float64         `json:"demand"`
	SetupCost        []float64         `json:"setup_cost"`
	HoldingCost      []float64         `json:"holding_cost"`
	MinimumTotalCost float64           `json:"min_total_cost"`
	OrderSchedule    []int             `json:"order_schedule"`
	Orders           []lotsizing.Order `json:"orders"`
	Cached           bool              `json:"cached"`
	CreatedAt        time.Time         `json:"created_at"`
}

// NewPlanRun combines an instance with its solution.
func NewPlanRun(name string, in lotsizing.Instance, res *lotsizing.Result) *PlanRun {
	return &PlanRun{
		Name:             name,
		InstanceHash:     HashInstance(in),
		Periods:          in.Periods(),
		Demand:           in.Demand,
		SetupCost:        in.Setup,
		HoldingCost:      in.Holding,
		MinimumTotalCost: res.MinimumTotalCost,
		OrderSchedule:    res.OrderPeriods,
		Orders:           res.Orders,
	}
}

// Instance returns the solver instance the run was computed from.
func (r *PlanRun) Instance() lotsizing.Instance {
	return lotsizing.Instance{Demand: r.Demand, Setup: r.SetupCost, Holding: r.HoldingCost}
}

// Result returns the solution part of the run.
func (r *PlanRun) Result() *lotsizing.Result {
	return &lotsizing.Result{
		MinimumTotalCost: r.MinimumTotalCost,
		OrderPeriods:     r.OrderSchedule,
		Orders:           r.Orders,
	}
}

// HashInstance returns a stable identifier for the numeric content of an
// instance. Values are written in shortest round-trip form.
func HashInstance(in lotsizing.Instance) string {
	var b strings.Builder
	for k, field := range [][]float64{in.Demand, in.Setup, in.Holding} {
		if k > 0 {
			b.WriteByte('|')
		}
		for i, v := range field {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
