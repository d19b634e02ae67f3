package utils

import "math/bits"

const maxBps = 10_000

// SlippageBps 计算最小成交约束相对输入的滑点（基点）：
// floor((amountIn - amountOutMin) * 10000 / amountIn)，上限 10000；amountIn 为 0 时返回 0，差值为负按 0 处理。
func SlippageBps(amountIn, amountOutMin uint64) uint16 {
	return ratioBps(amountIn, amountOutMin)
}

// PriceImpactBps 以 expectedOut 为基准计算实际成交的偏离（基点），expectedOut 为 0 时返回 0。
// amountIn 仅保留参数位置，计算不依赖它。
func PriceImpactBps(amountIn, amountOut, expectedOut uint64) uint16 {
	return ratioBps(expectedOut, amountOut)
}

func ratioBps(base, actual uint64) uint16 {
	if base == 0 || actual >= base {
		return 0
	}
	// 128 位乘法避免 diff*10000 溢出；diff < base 保证 hi < base，Div64 不会 panic
	hi, lo := bits.Mul64(base-actual, maxBps)
	q, _ := bits.Div64(hi, lo, base)
	if q > maxBps {
		q = maxBps
	}
	return uint16(q)
}
