// Package cast coerces loosely typed document values into the parameters the
// pattern builder needs.
//
// It uses [safemath] for integer inputs so that values which do not fit an int
// are rejected instead of silently truncated, and [cast] for everything else
// (strings, floats, json.Number and friends).
package cast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Int converts v to an int. Fractional floats are rejected.
func Int(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("unsupported conversion to int from nil")
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return safemath.ConvertAny[int](n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case bool:
		return 0, fmt.Errorf("unsupported conversion to int from %T", v)
	}

	return cast.ToIntE(v)
}

// String converts v to a string. nil is rejected rather than mapped to "".
func String(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("unsupported conversion to string from nil")
	}

	return cast.ToStringE(v)
}

// Strings converts every element of v with [String].
func Strings(v any) ([]string, error) {
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, err := String(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("unsupported conversion to int from non-integral %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("unsupported conversion to int from out of range %v", f)
	}

	return safemath.ConvertAny[int](int64(f))
}
