package lotsizing

import "math"

// Recurrence holds the forward DP tables.
//
// Cost[t] is the minimum cost of satisfying demand for periods 1..t, with
// Cost[0] = 0. Pred[t] is the period of the last order in that optimal plan;
// Pred[0] is unused and always 0.
type Recurrence struct {
	Cost []float64
	Pred []int
}

// Forward runs F[t] = min_{1≤i≤t} F[i-1] + Cost(i,t).
//
// Candidates are scanned in ascending i and only a strictly smaller value
// replaces the incumbent, so among equal-cost choices the earliest order
// period wins.
func Forward(costs *IntervalCosts) Recurrence {
	t := costs.Periods()
	f := make([]float64, t+1)
	pred := make([]int, t+1)

	for end := 1; end <= t; end++ {
		best := math.Inf(1)
		arg := 0
		for i := 1; i <= end; i++ {
			v := f[i-1] + costs.Cost(i, end)
			if v < best {
				best = v
				arg = i
			}
		}
		f[end] = best
		pred[end] = arg
	}

	return Recurrence{Cost: f, Pred: pred}
}

// Total returns F[T].
func (r Recurrence) Total() float64 {
	return r.Cost[len(r.Cost)-1]
}
