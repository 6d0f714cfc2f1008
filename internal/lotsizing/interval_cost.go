package lotsizing

// IntervalCosts is the materialised upper triangle of Cost(i,j): the cost of
// a single order in period i that satisfies demand for periods i..j.
type IntervalCosts struct {
	rows [][]float64 // rows[i-1][j-i] = Cost(i,j)
}

// NewIntervalCosts evaluates Cost(i,j) for all 1 ≤ i ≤ j ≤ T using
//
//	Cost(i,i) = K[i]
//	Cost(i,j) = Cost(i,j-1) + d[j] * (h[i] + ... + h[j-1])
//
// The running holding rate is carried along each row so the whole table is
// built in O(T²). The instance is assumed valid.
func NewIntervalCosts(in Instance) *IntervalCosts {
	t := in.Periods()
	rows := make([][]float64, t)
	for i := 0; i < t; i++ {
		row := make([]float64, t-i)
		row[0] = in.Setup[i]
		rate := 0.0
		for j := i + 1; j < t; j++ {
			rate += in.Holding[j-1]
			row[j-i] = row[j-i-1] + in.Demand[j]*rate
		}
		rows[i] = row
	}
	return &IntervalCosts{rows: rows}
}

// Periods returns the horizon length T the table was built for.
func (c *IntervalCosts) Periods() int {
	return len(c.rows)
}

// Cost returns Cost(i,j) for 1 ≤ i ≤ j ≤ T. It panics outside that range.
func (c *IntervalCosts) Cost(i, j int) float64 {
	return c.rows[i-1][j-i]
}
