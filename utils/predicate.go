// Package utils holds small generic helpers shared by the parsers.
package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if value lies within [minValue, maxValue].
func IsInRange[T number](minValue, value, maxValue T) bool {
	return minValue <= value && value <= maxValue
}
