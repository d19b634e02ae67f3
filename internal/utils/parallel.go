package utils

import (
	"github.com/zeromicro/go-zero/core/mr"
)

// ParallelMap 并发执行 fn，结果按输入顺序返回。
// workers <= 1 或输入不超过 1 个时直接串行执行，避免调度开销。
func ParallelMap[T any, R any](input []T, workers int, fn func(T) R) []R {
	results := make([]R, len(input))
	if len(input) == 0 {
		return results
	}
	if workers <= 1 || len(input) == 1 {
		for i, item := range input {
			results[i] = fn(item)
		}
		return results
	}

	// 每个下标只由一个 worker 写入，无需加锁
	mr.ForEach(func(source chan<- int) {
		for i := range input {
			source <- i
		}
	}, func(i int) {
		results[i] = fn(input[i])
	}, mr.WithWorkers(min(workers, len(input))))
	return results
}
