package dispatcher

import (
	"dex-event-parser-sol/internal/config"
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/mq"
	"fmt"

	"github.com/near/borsh-go"
)

const batchVersion uint8 = 1

// EventBatch 一个 Kafka 消息的载荷：同一 slot、同一分区内的事件，保持区块内顺序。
// Events 中每一项为 utils.EncodeEvent 的输出（4 字节事件类型 + borsh 事件体）。
type EventBatch struct {
	Version   uint8
	ChainID   uint32
	Slot      uint64
	Source    int16
	BlockTime int64 // 区块时间（秒），0 表示未知
	Events    [][]byte
}

func EncodeEventBatch(b *EventBatch) ([]byte, error) {
	data, err := borsh.Serialize(*b)
	if err != nil {
		return nil, fmt.Errorf("EncodeEventBatch: %w", err)
	}
	return data, nil
}

func DecodeEventBatch(data []byte) (*EventBatch, error) {
	var b EventBatch
	if err := borsh.Deserialize(&b, data); err != nil {
		return nil, fmt.Errorf("DecodeEventBatch: %w", err)
	}
	if b.Version != batchVersion {
		return nil, fmt.Errorf("DecodeEventBatch: unsupported version %d", b.Version)
	}
	return &b, nil
}

// SlotHeader 描述一批事件所属的区块
type SlotHeader struct {
	Slot      uint64
	Source    int16
	BlockTime *int64
}

func newEventBatch(h SlotHeader, capacity int) *EventBatch {
	b := &EventBatch{
		Version: batchVersion,
		ChainID: consts.ChainIDSolana,
		Slot:    h.Slot,
		Source:  h.Source,
		Events:  make([][]byte, 0, capacity),
	}
	if h.BlockTime != nil {
		b.BlockTime = *h.BlockTime
	}
	return b
}

// BuildAllKafkaJobs 按 Kafka 配置构建一个 slot 的全部 KafkaJob，可直接传入 mq.SendKafkaJobs。
func BuildAllKafkaJobs(
	h SlotHeader,
	events []core.ProtocolEvent,
	cfg config.KafkaProducerConfig,
) ([]*mq.KafkaJob, JobStats, error) {
	return BuildEventKafkaJobs(h, cfg.Topics.Event, cfg.Partitions.Event, events)
}
