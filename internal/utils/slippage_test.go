package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlippageBps(t *testing.T) {
	for _, x := range []uint64{0, 1, 100, math.MaxUint64} {
		assert.Equal(t, uint16(0), SlippageBps(0, x))
	}
	assert.Equal(t, uint16(0), SlippageBps(100, 100))
	assert.Equal(t, uint16(10000), SlippageBps(100, 0))
	assert.Equal(t, uint16(50), SlippageBps(10000, 9950))
	assert.Equal(t, uint16(0), SlippageBps(100, 150)) // 负差值按 0
	assert.Equal(t, uint16(3333), SlippageBps(3, 2))
	// 大数不溢出
	assert.Equal(t, uint16(5000), SlippageBps(math.MaxUint64, math.MaxUint64/2))
}

func TestPriceImpactBps(t *testing.T) {
	assert.Equal(t, uint16(0), PriceImpactBps(100, 50, 0))
	assert.Equal(t, uint16(0), PriceImpactBps(100, 100, 100))
	assert.Equal(t, uint16(1000), PriceImpactBps(100, 90, 100))
	assert.Equal(t, uint16(10000), PriceImpactBps(100, 0, 100))
	assert.Equal(t, uint16(0), PriceImpactBps(100, 120, 100))
}
