package lotsizing_test

import (
	"fmt"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
)

func ExampleSolve() {
	res, err := lotsizing.Solve(
		[]float64{25, 40, 0, 30, 50},
		[]float64{200, 200, 180, 200, 180},
		[]float64{2, 2, 1, 1, 3},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.MinimumTotalCost, res.OrderPeriods)
	for _, o := range res.Orders {
		fmt.Printf("period %d: %g units for %d..%d\n", o.Period, o.Quantity, o.CoversFrom, o.CoversTo)
	}
	// Output:
	// 530 [1 4]
	// period 1: 65 units for 1..3
	// period 4: 80 units for 4..5
}
