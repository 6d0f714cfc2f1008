// Package input turns user-supplied text into the number vectors a
// lot-sizing instance is built from.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/andresuchdata/lotplan/internal/lotsizing"
)

// ParseList parses a comma-separated list such as "10, 20,30". Blank items
// are skipped so a trailing comma is harmless.
func ParseList(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := parseNumber(part)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q at position %d is not a number",
				lotsizing.ErrInvalidInstance, part, len(values)+1)
		}
		values = append(values, v)
	}
	return values, nil
}

// Expand repeats a single value across the horizon so a uniform setup or
// holding cost can be given once. Any other length is returned unchanged and
// left for validation to judge.
func Expand(values []float64, periods int) []float64 {
	if len(values) != 1 || periods <= 1 {
		return values
	}
	out := make([]float64, periods)
	for k := range out {
		out[k] = values[0]
	}
	return out
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// NumberList decodes from a JSON array of numbers (or numeric strings), a
// comma-separated string, or a bare number.
type NumberList []float64

func (l *NumberList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		values, err := ParseList(s)
		if err != nil {
			return err
		}
		*l = values
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		values := make([]float64, 0, len(items))
		for k, item := range items {
			v, err := decodeItem(item)
			if err != nil {
				return fmt.Errorf("%w: item %d (%s) is not a number", lotsizing.ErrInvalidInstance, k+1, item)
			}
			values = append(values, v)
		}
		*l = values
		return nil
	default:
		v, err := decodeItem(data)
		if err != nil {
			return fmt.Errorf("%w: %s is not a number", lotsizing.ErrInvalidInstance, data)
		}
		*l = NumberList{v}
		return nil
	}
}

func decodeItem(raw json.RawMessage) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return parseNumber(s)
}
