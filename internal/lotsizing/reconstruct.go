package lotsizing

import "fmt"

// Interval is a run of periods [From, To] served by one order placed in From.
type Interval struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Len returns the number of periods the interval covers.
func (iv Interval) Len() int {
	return iv.To - iv.From + 1
}

// Reconstruct walks a predecessor table back from T = len(pred)-1 and returns
// the order intervals in ascending order. pred[0] is ignored.
//
// The intervals always partition 1..T. A predecessor outside [1,t] yields
// ErrReconstructionInconsistency.
func Reconstruct(pred []int) ([]Interval, error) {
	if len(pred) < 2 {
		return nil, fmt.Errorf("%w: predecessor table covers no periods", ErrReconstructionInconsistency)
	}

	var out []Interval
	for t := len(pred) - 1; t > 0; {
		i := pred[t]
		if i < 1 || i > t {
			return nil, fmt.Errorf("%w: predecessor of period %d is %d, want a value in [1,%d]",
				ErrReconstructionInconsistency, t, i, t)
		}
		out = append(out, Interval{From: i, To: t})
		t = i - 1
	}

	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out, nil
}
