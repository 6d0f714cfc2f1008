package lotsizing_test

import (
	"math/rand"
	"testing"
)

func benchmarkSolve(b *testing.B, periods int) {
	in := randomInstance(rand.New(rand.NewSource(1)), periods)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_52(b *testing.B)   { benchmarkSolve(b, 52) }
func BenchmarkSolve_365(b *testing.B)  { benchmarkSolve(b, 365) }
func BenchmarkSolve_2000(b *testing.B) { benchmarkSolve(b, 2000) }
