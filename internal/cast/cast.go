package cast

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrInvalidCount indicates a value that cannot be used as a repetition count.
var ErrInvalidCount = errors.New("invalid count")

// Truthy reports whether v would be considered true by a JavaScript
// condition: nil, false, zero numbers, NaN and the empty string are false,
// everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case float64:
		return t != 0 && !math.IsNaN(t)
	}

	if isIntVal(v) {
		n, err := cast.ToE[int64](v)
		// uint64 values above MaxInt64 fail conversion but are non-zero.
		return err != nil || n != 0
	}

	return true
}

// Count converts v to a non-negative int. A nil v is a zero count.
func Count(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case bool:
		return 0, fmt.Errorf("%w: %v", ErrInvalidCount, t)
	case float32:
		return Count(float64(t))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidCount, t)
		}
	}

	var (
		n   int
		err error
	)
	if isIntVal(v) {
		n, err = safemath.ConvertAny[int](v)
	} else {
		n, err = cast.ToE[int](v)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCount, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}

	return n, nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
