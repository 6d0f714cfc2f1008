package lotsizing

import (
	"fmt"
	"math"
)

// Order is one entry of the optimal schedule.
type Order struct {
	Period     int     `json:"period"`
	Quantity   float64 `json:"quantity"`
	CoversFrom int     `json:"covers_from"`
	CoversTo   int     `json:"covers_to"`
	OrderCost  float64 `json:"order_cost"`
}

// Result is the optimal plan for an Instance.
type Result struct {
	MinimumTotalCost float64 `json:"minimum_total_cost"`
	OrderPeriods     []int   `json:"order_periods"`
	Orders           []Order `json:"orders"`
}

// Solve validates and solves the instance described by the three vectors.
func Solve(demand, setup, holding []float64) (*Result, error) {
	return Instance{Demand: demand, Setup: setup, Holding: holding}.Solve()
}

// Solve returns the minimum-cost order schedule for the instance. Either a
// complete plan or an error is returned, never both.
func (in Instance) Solve() (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	costs := NewIntervalCosts(in)
	rec := Forward(costs)
	total := rec.Total()
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: total cost overflows float64", ErrInvalidInstance)
	}

	intervals, err := Reconstruct(rec.Pred)
	if err != nil {
		return nil, err
	}

	res := &Result{
		MinimumTotalCost: total,
		OrderPeriods:     make([]int, 0, len(intervals)),
		Orders:           make([]Order, 0, len(intervals)),
	}
	for _, iv := range intervals {
		quantity := 0.0
		for _, d := range in.Demand[iv.From-1 : iv.To] {
			quantity += d
		}
		res.OrderPeriods = append(res.OrderPeriods, iv.From)
		res.Orders = append(res.Orders, Order{
			Period:     iv.From,
			Quantity:   quantity,
			CoversFrom: iv.From,
			CoversTo:   iv.To,
			OrderCost:  costs.Cost(iv.From, iv.To),
		})
	}
	return res, nil
}

// Intervals returns the order intervals of the result.
func (r *Result) Intervals() []Interval {
	out := make([]Interval, len(r.Orders))
	for k, o := range r.Orders {
		out[k] = Interval{From: o.CoversFrom, To: o.CoversTo}
	}
	return out
}
