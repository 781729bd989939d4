package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Limit separates the doubling branch from the offset branch
const Limit int32 = 100

// ErrOverflow is returned by CheckStrict when the result does not fit in int32
var ErrOverflow = errors.New("integer overflow")

// OverflowPolicy selects how Apply treats int32 overflow
type OverflowPolicy string

const (
	PolicyWrap  OverflowPolicy = "wrap"
	PolicyError OverflowPolicy = "error"
)

// Check returns x*2 when x is below Limit and x+Limit otherwise.
// Overflow wraps around as int32 arithmetic does.
func Check(x int32) int32 {
	if x < Limit {
		return x * 2
	}
	return x + Limit
}

// CheckStrict is Check with overflow detection
func CheckStrict(x int32) (int32, error) {
	if x < Limit {
		if x < math.MinInt32/2 {
			return 0, fmt.Errorf("%w: %d * 2", ErrOverflow, x)
		}
		return x * 2, nil
	}
	if x > math.MaxInt32-Limit {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, x, Limit)
	}
	return x + Limit, nil
}

// Apply runs the transform under the given policy
func Apply(x int32, policy OverflowPolicy) (int32, error) {
	switch policy {
	case PolicyWrap, "":
		return Check(x), nil
	case PolicyError:
		return CheckStrict(x)
	default:
		return 0, fmt.Errorf("unknown overflow policy: %s", policy)
	}
}

// Branch names the arm of the transform x falls into
func Branch(x int32) string {
	if x < Limit {
		return "double"
	}
	return "offset"
}

// ParsePolicy parses a policy name, case-insensitively
func ParsePolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyWrap, PolicyError:
		return p, nil
	default:
		return "", fmt.Errorf("invalid overflow policy: %s (must be 'wrap' or 'error')", s)
	}
}
