package lotsizing

import (
	"fmt"
	"math"
)

// Instance is one lot-sizing problem. Slot k of every vector describes
// period k+1.
type Instance struct {
	Demand  []float64 `json:"demand"`
	Setup   []float64 `json:"setup_cost"`
	Holding []float64 `json:"holding_cost"`
}

// Periods returns the horizon length T.
func (in Instance) Periods() int {
	return len(in.Demand)
}

// Validate reports whether the instance is well formed. The returned error
// wraps ErrInvalidInstance and names the offending field and period.
func (in Instance) Validate() error {
	t := len(in.Demand)
	if t == 0 {
		return fmt.Errorf("%w: demand must cover at least one period", ErrInvalidInstance)
	}
	if len(in.Setup) != t || len(in.Holding) != t {
		return fmt.Errorf("%w: length mismatch (demand=%d, setup_cost=%d, holding_cost=%d)",
			ErrInvalidInstance, t, len(in.Setup), len(in.Holding))
	}

	fields := []struct {
		name   string
		values []float64
	}{
		{"demand", in.Demand},
		{"setup_cost", in.Setup},
		{"holding_cost", in.Holding},
	}
	for _, f := range fields {
		for k, v := range f.values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s in period %d is not a number", ErrInvalidInstance, f.name, k+1)
			}
			if v < 0 {
				return fmt.Errorf("%w: %s in period %d is negative (%g)", ErrInvalidInstance, f.name, k+1, v)
			}
		}
	}
	return nil
}
