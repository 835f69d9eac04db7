package resolve

import (
	"strconv"
	"strings"
)

// coerceInt converts a raw snapshot value to an int. JSON numbers arrive as
// float64; strings are parsed leniently. The second return is false for
// absent values, the third for values that are present but malformed.
func coerceInt(v any) (n int, present bool, ok bool) {
	switch t := v.(type) {
	case nil:
		return 0, false, false
	case float64:
		return int(t), true, true
	case int:
		return t, true, true
	case int64:
		return int(t), true, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true, true
		}
		return 0, true, false
	default:
		return 0, true, false
	}
}
