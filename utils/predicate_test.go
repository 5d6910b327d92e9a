package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(int64(math.MinInt8), -128, int64(math.MaxInt8)))
	assert.True(t, IsInRange(int64(math.MinInt8), 127, int64(math.MaxInt8)))
	assert.False(t, IsInRange(int64(math.MinInt8), 128, int64(math.MaxInt8)))
	assert.False(t, IsInRange(0.5, 0.25, 1.0))
}
