package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solved(t *testing.T) (lotsizing.Instance, *lotsizing.Result) {
	t.Helper()
	in := lotsizing.Instance{
		Demand:  []float64{25, 40, 0, 30, 50},
		Setup:   []float64{200, 200, 180, 200, 180},
		Holding: []float64{2, 2, 1, 1, 3},
	}
	res, err := in.Solve()
	require.NoError(t, err)
	return in, res
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.EqualError(t, err, "unsupported output format: xml")
}

func TestPlanLines(t *testing.T) {
	_, res := solved(t)
	assert.Equal(t, []string{
		"Order in Period 1: Produce 65.00 units (Cost: 280.00) to cover demand for periods 1 to 3.",
		"Order in Period 4: Produce 80.00 units (Cost: 250.00) to cover demand for periods 4 to 5.",
	}, PlanLines(res))
}

func TestSummaryLines(t *testing.T) {
	in := lotsizing.Instance{
		Demand:  []float64{10.5, 20},
		Setup:   []float64{1745, 1745},
		Holding: []float64{2.52, 1},
	}
	assert.Equal(t, []string{
		"Number of periods: 2",
		"Total demand: 30.50",
		"Setup cost per period: 1745.00",
		"Holding cost per unit per period: 2.52, 1.00",
	}, SummaryLines(in))
}

func TestWriteText(t *testing.T) {
	in, res := solved(t)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, in, res))

	out := buf.String()
	assert.Contains(t, out, "Minimum total cost: 530.00\n")
	assert.Contains(t, out, "Order schedule (1-indexed periods): 1, 4\n")
	assert.Contains(t, out, "  Order in Period 4: Produce 80.00 units")
}

func TestWriteCSV(t *testing.T) {
	_, res := solved(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, lotsizing.Instance{}, res))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"period,quantity,covers_from,covers_to,order_cost",
		"1,65.00,1,3,280.00",
		"4,80.00,4,5,250.00",
	}, lines)
}

func TestWriteJSON(t *testing.T) {
	_, res := solved(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, lotsizing.Instance{}, res))

	var decoded lotsizing.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *res, decoded)
}

func TestWrite_UnknownFormat(t *testing.T) {
	_, res := solved(t)
	assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), lotsizing.Instance{}, res))
}
