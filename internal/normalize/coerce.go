package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/sells-group/risk-dashboard/internal/tabular"
)

// Float parses s as a finite number. Anything else yields 0.
func Float(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int parses s as a whole number, truncating a fractional form ("12.0" -> 12).
func Int(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f := Float(s)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// Bool reads the truthy spellings found in exported spreadsheets.
// Any non-zero number is true.
func Bool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y":
		return true
	}
	return Float(s) != 0
}

// lookup returns the value of the first key present in row.
// Presence is what matters: a present but empty value still wins.
func lookup(row tabular.Row, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := row.Get(k); ok {
			return v, true
		}
	}
	return "", false
}

// text returns the first present value, or "".
func text(row tabular.Row, keys ...string) string {
	v, _ := lookup(row, keys...)
	return strings.TrimSpace(v)
}

// Coordinate returns nil when none of keys is present in row, or the present
// value is blank, so "not supplied" stays distinct from "supplied as 0".
// A present but unparseable value is 0.
func Coordinate(row tabular.Row, keys ...string) *float64 {
	v, ok := lookup(row, keys...)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	f := Float(v)
	return &f
}
