package mq

import (
	"context"
	"dex-event-parser-sol/internal/config"
	"fmt"
	"os"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultBatchSize  = 32 * 1024
	defaultLingerMs   = 5
	metadataTimeoutMs = 10_000
	maxMessageBytes   = 2 * 1024 * 1024
)

// NewKafkaProducer 确认 event topic 可用后创建幂等生产者
func NewKafkaProducer(cfg config.KafkaProducerConfig) (*kafka.Producer, error) {
	if cfg.Topics.Event == "" {
		return nil, fmt.Errorf("kafka event topic is empty")
	}

	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{"bootstrap.servers": cfg.Brokers})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ensureTopic(ctx, admin, cfg.Topics.Event, max(cfg.Partitions.Event, 1)); err != nil {
		return nil, err
	}

	producer, err := kafka.NewProducer(producerConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}

// ensureTopic topic 不存在则创建；已存在时分区数不能少于事件路由使用的分区数
func ensureTopic(ctx context.Context, admin *kafka.AdminClient, topic string, partitions int) error {
	meta, err := admin.GetMetadata(&topic, false, metadataTimeoutMs)
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}

	if t, ok := meta.Topics[topic]; ok && t.Error.Code() == kafka.ErrNoError {
		if len(t.Partitions) < partitions {
			return fmt.Errorf("topic %s has %d partitions, config routes events to %d", topic, len(t.Partitions), partitions)
		}
		logx.Infof("[Kafka] topic %s ready, partitions=%d", topic, len(t.Partitions))
		return nil
	}

	replication := 1
	if len(meta.Brokers) > 1 {
		replication = 2
	}
	results, err := admin.CreateTopics(ctx, []kafka.TopicSpecification{{
		Topic:             topic,
		NumPartitions:     partitions,
		ReplicationFactor: replication,
	}})
	if err != nil {
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}
	for _, r := range results {
		// 并发启动的实例可能抢先建好
		if code := r.Error.Code(); code != kafka.ErrNoError && code != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", r.Topic, r.Error)
		}
	}
	logx.Infof("[Kafka] topic %s created, partitions=%d, replication=%d", topic, partitions, replication)
	return nil
}

func producerConfig(cfg config.KafkaProducerConfig) *kafka.ConfigMap {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	lingerMs := cfg.LingerMs
	if lingerMs < 0 {
		lingerMs = defaultLingerMs
	}

	return &kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"client.id":         clientID(),

		// 幂等写入，消费端按 slot 去重
		"acks":                                  "all",
		"enable.idempotence":                    true,
		"max.in.flight.requests.per.connection": 5,

		"delivery.timeout.ms": 30000,
		"request.timeout.ms":  30000,
		"retries":             5,
		"retry.backoff.ms":    100,

		// 一个 slot 的一个分区就是一条消息，batch 主要来自相邻 slot
		"batch.size":        batchSize,
		"linger.ms":         lingerMs,
		"compression.type":  "lz4",
		"message.max.bytes": maxMessageBytes,
	}
}

func clientID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return "dex-event-parser-sol-" + host
}
