package mutils

import (
	"golang.org/x/exp/constraints"
)

func Clamp[T constraints.Integer | constraints.Float](x, min, max T) T {
	if x < min {
		return min
	}

	if x > max {
		return max
	}

	return x
}

// Lerp interpolates between a and b without clamping t
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}
