package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// toFloat coerces a raw record value to float64. It accepts the numeric
// types encoding/json produces plus digit strings, which several vendor
// APIs use for money and count fields. Returns (0, false) for anything else.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// floatField reads a numeric field from a raw record. Missing or
// unparseable values contribute 0; a malformed field never aborts an
// aggregation.
func floatField(rec map[string]any, key string) float64 {
	v, ok := rec[key]
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return f
}

// intField reads a count field from a raw record, with the same
// default-to-zero behavior as floatField.
func intField(rec map[string]any, key string) int {
	return int(floatField(rec, key))
}
