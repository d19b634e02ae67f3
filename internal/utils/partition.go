package utils

import (
	"encoding/binary"

	"dex-event-parser-sol/internal/types"
)

// PartitionOf 按事件的分区键（pool 或 mint）选分区，同一 key 恒定落在同一分区。
// 分区数为 2 的幂时直接取末字节低位。
func PartitionOf(key types.Pubkey, partitions int) int32 {
	if partitions <= 1 {
		return 0
	}
	n := uint32(partitions)
	if n&(n-1) == 0 {
		return int32(uint32(key[31]) & (n - 1))
	}
	return int32(binary.LittleEndian.Uint32(key[28:]) % n)
}

// BucketCap 单个分区 batch 的初始容量估计，分区越多越接近均分
func BucketCap(total, partitions int) int {
	const minCap = 8
	switch {
	case partitions <= 1:
		return max(total, minCap)
	case partitions < 5:
		return max(total/2, minCap)
	default:
		return max(total*3/partitions, minCap)
	}
}
