// Package report renders lot-sizing inputs and plans for people and files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/shopspring/decimal"
)

// Format selects an output renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts text, json or csv (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// fixed renders v with two decimals, rounding half away from zero.
func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// SummaryLines describes the input of a run.
func SummaryLines(in lotsizing.Instance) []string {
	total := decimal.Zero
	for _, d := range in.Demand {
		total = total.Add(decimal.NewFromFloat(d))
	}
	return []string{
		fmt.Sprintf("Number of periods: %d", in.Periods()),
		fmt.Sprintf("Total demand: %s", total.StringFixed(2)),
		fmt.Sprintf("Setup cost per period: %s", describeCosts(in.Setup)),
		fmt.Sprintf("Holding cost per unit per period: %s", describeCosts(in.Holding)),
	}
}

// describeCosts collapses a uniform vector to its single value.
func describeCosts(values []float64) string {
	if len(values) == 0 {
		return "-"
	}
	uniform := true
	for _, v := range values[1:] {
		if v != values[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return fixed(values[0])
	}
	parts := make([]string, len(values))
	for k, v := range values {
		parts[k] = fixed(v)
	}
	return strings.Join(parts, ", ")
}

// PlanLines returns one line per order.
func PlanLines(res *lotsizing.Result) []string {
	lines := make([]string, 0, len(res.Orders))
	for _, o := range res.Orders {
		lines = append(lines, fmt.Sprintf(
			"Order in Period %d: Produce %s units (Cost: %s) to cover demand for periods %d to %d.",
			o.Period, fixed(o.Quantity), fixed(o.OrderCost), o.CoversFrom, o.CoversTo))
	}
	return lines
}

// ScheduleString joins the order periods as "1, 4".
func ScheduleString(periods []int) string {
	parts := make([]string, len(periods))
	for k, p := range periods {
		parts[k] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

// Write renders the plan in the requested format.
func Write(w io.Writer, format Format, in lotsizing.Instance, res *lotsizing.Result) error {
	switch format {
	case FormatText:
		return WriteText(w, in, res)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatCSV:
		return WriteCSV(w, res)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteText writes the input summary, the result and the detailed plan.
func WriteText(w io.Writer, in lotsizing.Instance, res *lotsizing.Result) error {
	var b strings.Builder
	b.WriteString("--- Input Summary ---\n")
	for _, line := range SummaryLines(in) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n--- Results ---\n")
	fmt.Fprintf(&b, "Minimum total cost: %s\n", fixed(res.MinimumTotalCost))
	fmt.Fprintf(&b, "Order schedule (1-indexed periods): %s\n", ScheduleString(res.OrderPeriods))
	b.WriteString("\nDetailed Order Plan:\n")
	for _, line := range PlanLines(res) {
		b.WriteString("  " + line + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the result as indented JSON.
func WriteJSON(w io.Writer, res *lotsizing.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

var csvHeader = []string{"period", "quantity", "covers_from", "covers_to", "order_cost"}

// WriteCSV writes one row per order.
func WriteCSV(w io.Writer, res *lotsizing.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range res.Orders {
		record := []string{
			strconv.Itoa(o.Period),
			fixed(o.Quantity),
			strconv.Itoa(o.CoversFrom),
			strconv.Itoa(o.CoversTo),
			fixed(o.OrderCost),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
