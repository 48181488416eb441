// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// IntToUint8 safely converts an int to uint8 using cast and checks for overflow
func IntToUint8(value int) (uint8, error) {
	if value < 0 || value > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", value)
	}

	return cast.ToUint8E(value)
}

// Uint64ToInt safely converts a uint64 to int using cast and checks for overflow
func Uint64ToInt(value uint64) (int, error) {
	if value > math.MaxInt {
		return 0, fmt.Errorf("value %d exceeds int range", value)
	}

	return cast.ToIntE(value)
}

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for overflow
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}
