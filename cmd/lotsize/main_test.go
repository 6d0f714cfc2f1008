package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"lotsize"}, args...))
	return out.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := run(t, "solve", "-d", "10,20,15", "-s", "50", "-c", "1")
	require.NoError(t, err)

	want := "--- Input Summary ---\n" +
		"Number of periods: 3\n" +
		"Total demand: 45.00\n" +
		"Setup cost per period: 50.00\n" +
		"Holding cost per unit per period: 1.00\n" +
		"\n--- Results ---\n" +
		"Minimum total cost: 100.00\n" +
		"Order schedule (1-indexed periods): 1\n" +
		"\nDetailed Order Plan:\n" +
		"  Order in Period 1: Produce 45.00 units (Cost: 100.00) to cover demand for periods 1 to 3.\n"
	assert.Equal(t, want, out)
}

func TestSolve_PerPeriodCostsCSV(t *testing.T) {
	out, err := run(t, "solve",
		"--demand", "25,40,0,30,50",
		"--setup-cost", "200,200,180,200,180",
		"--holding-cost", "2,2,1,1,3",
		"--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "period,quantity,covers_from,covers_to,order_cost\n1,65.00,1,3,280.00\n4,80.00,4,5,250.00\n", out)
}

func TestSolve_Example(t *testing.T) {
	out, err := run(t, "solve", "--example")
	require.NoError(t, err)
	assert.Contains(t, out, "-d 172,183,173,233,229,239,257,251,650,636,662,674,643 -s 1745 -c 2.52")
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve", "-d", "10,20")
	assert.ErrorContains(t, err, "are required")

	_, err = run(t, "solve", "-d", "10,-5", "-s", "1", "-c", "1")
	assert.ErrorIs(t, err, lotsizing.ErrInvalidInstance)

	_, err = run(t, "solve", "-d", "10,abc", "-s", "1", "-c", "1")
	assert.ErrorIs(t, err, lotsizing.ErrInvalidInstance)

	_, err = run(t, "solve", "-d", "10", "-s", "1", "-c", "1", "-f", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestBatch_InMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"small","demand":[10,20,15],"setup_cost":50,"holding_cost":1},
		{"name":"five","demand":"25,40,0,30,50","setup_cost":"200,200,180,200,180","holding_cost":"2,2,1,1,3"}
	]`), 0o644))

	out, err := run(t, "batch", "--workers", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MIN TOTAL COST")
	assert.Regexp(t, `\d\s+small\s+3\s+100\.00\s+1\n`, out)
	assert.Regexp(t, `\d\s+five\s+5\s+530\.00\s+1, 4\n`, out)
}

func TestBatch_MissingFile(t *testing.T) {
	_, err := run(t, "batch", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read")

	_, err = run(t, "batch")
	assert.ErrorContains(t, err, "exactly one JSON file")
}

func TestReadBatchFile_Wrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"plans":[{"demand":"1,2","setup_cost":3,"holding_cost":1}]}`), 0o644))

	plans, err := readBatchFile(path)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, []float64{1, 2}, []float64(plans[0].Demand))
}

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "001_a.sql", filepath.Base(files[0]))
	assert.Equal(t, "002_b.sql", filepath.Base(files[1]))

	_, err = migrationFiles(t.TempDir())
	assert.ErrorContains(t, err, "no migrations found")
}

func TestArchiveFetch_Args(t *testing.T) {
	_, err := run(t, "archive", "fetch", "a")
	assert.ErrorContains(t, err, "expects <key> <dest>")
}
