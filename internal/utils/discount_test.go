package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, 100, ApplyDiscount(100, 0))
	assert.Equal(t, 50, ApplyDiscount(100, 50))
	assert.Equal(t, 0, ApplyDiscount(100, 100))

	// the discount itself is rounded down
	assert.Equal(t, 67, ApplyDiscount(99, 33))
	assert.Equal(t, 64, ApplyDiscount(80, 20))
}

func TestApplyDiscountOutOfRangePassesThrough(t *testing.T) {
	// percent outside 0-100 is the caller's responsibility
	assert.Equal(t, -10, ApplyDiscount(100, 110))
	assert.Equal(t, 110, ApplyDiscount(100, -10))
}
