// Package math32 wraps the float64 math functions the renderer needs for float32 values.
package math32

import "math"

func Min(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func IsInf(a float32) bool {
	return math.IsInf(float64(a), 0)
}

func IsNaN(a float32) bool {
	return a != a
}
