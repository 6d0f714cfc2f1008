// Package lotsizing solves the single-item, uncapacitated dynamic lot-sizing
// problem (Wagner-Whitin) over a finite horizon of T periods.
//
// Periods are 1-indexed throughout the public API, matching the way planners
// talk about "period 1" to "period T". Solving runs in four stages:
//
//  1. Validate: the demand, setup and holding vectors have the same positive
//     length and every value is a finite, non-negative number.
//  2. IntervalCosts: Cost(i,j) for every 1 ≤ i ≤ j ≤ T, the setup cost of an
//     order placed in period i plus the holding cost of carrying demand for
//     periods i+1..j from period i. Built incrementally in O(T²).
//  3. Forward: F[t] = min over i in 1..t of F[i-1] + Cost(i,t), with the
//     earliest minimising i recorded as the predecessor of t.
//  4. Reconstruct: walks the predecessor chain back from T and emits the
//     order intervals in ascending order.
//
// Every call owns its tables; Solve is safe to call from many goroutines.
//
// Example:
//
//	res, err := lotsizing.Solve(
//		[]float64{10, 20, 15},
//		[]float64{50, 50, 50},
//		[]float64{1, 1, 1},
//	)
//	// res.MinimumTotalCost == 100, res.OrderPeriods == []int{1}
package lotsizing
