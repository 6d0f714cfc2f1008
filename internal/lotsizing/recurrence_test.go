package lotsizing_test

import (
	"testing"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_Tables(t *testing.T) {
	in := lotsizing.Instance{
		Demand:  []float64{25, 40, 0, 30, 50},
		Setup:   []float64{200, 200, 180, 200, 180},
		Holding: []float64{2, 2, 1, 1, 3},
	}
	rec := lotsizing.Forward(lotsizing.NewIntervalCosts(in))

	assert.Equal(t, []float64{0, 200, 280, 280, 430, 530}, rec.Cost)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 4}, rec.Pred)
	assert.Equal(t, 530.0, rec.Total())
}

func TestReconstruct_Intervals(t *testing.T) {
	ivs, err := lotsizing.Reconstruct([]int{0, 1, 1, 3, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, []lotsizing.Interval{{From: 1, To: 2}, {From: 3, To: 4}, {From: 5, To: 5}}, ivs)
	assert.Equal(t, 2, ivs[0].Len())
}

func TestReconstruct_SkipsUnreachedEntries(t *testing.T) {
	// pred[2] is never visited from T=3, so its value is irrelevant.
	ivs, err := lotsizing.Reconstruct([]int{0, 1, 99, 1})
	require.NoError(t, err)
	assert.Equal(t, []lotsizing.Interval{{From: 1, To: 3}}, ivs)
}

func TestReconstruct_Inconsistent(t *testing.T) {
	tests := []struct {
		name string
		pred []int
	}{
		{"empty", nil},
		{"no periods", []int{0}},
		{"zero predecessor", []int{0, 1, 0}},
		{"predecessor beyond period", []int{0, 1, 3}},
		{"negative predecessor", []int{0, -1}},
		{"predecessor beyond first period", []int{0, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ivs, err := lotsizing.Reconstruct(tt.pred)
			assert.ErrorIs(t, err, lotsizing.ErrReconstructionInconsistency)
			assert.Nil(t, ivs)
		})
	}
}
