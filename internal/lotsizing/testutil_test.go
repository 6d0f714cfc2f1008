package lotsizing_test

import (
	"math"
	"math/rand"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
)

// naiveCost evaluates Cost(i,j) straight from its definition.
func naiveCost(in lotsizing.Instance, i, j int) float64 {
	c := in.Setup[i-1]
	for k := i + 1; k <= j; k++ {
		rate := 0.0
		for m := i; m <= k-1; m++ {
			rate += in.Holding[m-1]
		}
		c += in.Demand[k-1] * rate
	}
	return c
}

// bruteForce enumerates every partition of 1..T into order intervals. Bit
// p-2 of mask set means an order starts in period p (period 1 always does).
func bruteForce(in lotsizing.Instance) float64 {
	t := in.Periods()
	best := math.Inf(1)
	for mask := 0; mask < 1<<(t-1); mask++ {
		total, start := 0.0, 1
		for p := 2; p <= t; p++ {
			if mask&(1<<(p-2)) != 0 {
				total += naiveCost(in, start, p-1)
				start = p
			}
		}
		total += naiveCost(in, start, t)
		if total < best {
			best = total
		}
	}
	return best
}

// randomInstance draws integer-valued vectors so floating point sums stay exact.
func randomInstance(rng *rand.Rand, t int) lotsizing.Instance {
	in := lotsizing.Instance{
		Demand:  make([]float64, t),
		Setup:   make([]float64, t),
		Holding: make([]float64, t),
	}
	for k := 0; k < t; k++ {
		if rng.Intn(4) > 0 {
			in.Demand[k] = float64(rng.Intn(60))
		}
		in.Setup[k] = float64(rng.Intn(300))
		in.Holding[k] = float64(rng.Intn(5))
	}
	return in
}
