package dispatcher

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/mq"
	"dex-event-parser-sol/internal/utils"
	"fmt"
)

// JobStats 构建统计，用于日志
type JobStats struct {
	Events int
	Trades int
	Pools  int
	Others int
}

// 交易类事件
var tradeEvents = core.IncludeOnly(
	core.EventPumpFunTrade,
	core.EventPumpSwapBuy,
	core.EventPumpSwapSell,
	core.EventBonkTrade,
	core.EventRaydiumCpmmSwap,
	core.EventRaydiumClmmSwap,
	core.EventRaydiumAmmV4Swap,
	core.EventOrcaWhirlpoolSwap,
	core.EventMeteoraPoolsSwap,
	core.EventMeteoraDammV2Swap,
)

// 建池 / 发币类事件
var poolEvents = core.IncludeOnly(
	core.EventPumpFunCreateToken,
	core.EventPumpFunMigrate,
	core.EventPumpSwapCreatePool,
	core.EventBonkPoolCreate,
	core.EventRaydiumCpmmInitialize,
	core.EventRaydiumClmmCreatePool,
	core.EventRaydiumAmmV4Initialize,
	core.EventOrcaWhirlpoolPoolInitialize,
	core.EventMeteoraPoolsBootstrapLiquidity,
	core.EventMeteoraDammV2InitializePool,
)

func (s *JobStats) count(t core.EventType) {
	s.Events++
	switch {
	case tradeEvents.ShouldInclude(t):
		s.Trades++
	case poolEvents.ShouldInclude(t):
		s.Pools++
	default:
		s.Others++
	}
}

// BuildEventKafkaJobs 按 PartitionKey（池子或 mint）把事件分到各分区，每个非空分区一个 KafkaJob。
// 同一分区内保持输入顺序，因此同一池子的事件在消费端有序。
func BuildEventKafkaJobs(
	h SlotHeader,
	topic string,
	partitions int,
	events []core.ProtocolEvent,
) ([]*mq.KafkaJob, JobStats, error) {
	var stats JobStats
	if partitions <= 0 {
		partitions = 1
	}
	if len(events) == 0 {
		return nil, stats, nil
	}

	buckets := make([]*EventBatch, partitions)
	capacity := utils.BucketCap(len(events), partitions)

	for _, evt := range events {
		if evt == nil {
			continue
		}
		payload, err := utils.EncodeEvent(uint32(evt.Type()), evt)
		if err != nil {
			return nil, stats, fmt.Errorf("encode %s event: %w", evt.Type(), err)
		}

		pid := utils.PartitionOf(evt.PartitionKey(), partitions)
		if buckets[pid] == nil {
			buckets[pid] = newEventBatch(h, capacity)
		}
		buckets[pid].Events = append(buckets[pid].Events, payload)
		stats.count(evt.Type())
	}

	jobs := make([]*mq.KafkaJob, 0, partitions)
	for pid, batch := range buckets {
		if batch == nil {
			continue
		}
		value, err := EncodeEventBatch(batch)
		if err != nil {
			return nil, stats, err
		}
		jobs = append(jobs, &mq.KafkaJob{
			Topic:     topic,
			Partition: int32(pid),
			Key:       slotKey(h.Slot),
			Value:     value,
			Events:    len(batch.Events),
		})
	}
	return jobs, stats, nil
}

func slotKey(slot uint64) []byte {
	return fmt.Appendf(nil, "%d:%d", consts.ChainIDSolana, slot)
}
