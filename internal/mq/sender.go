package mq

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// KafkaJob 表示一条需要发送的 Kafka 消息，Value 为一个分区内按顺序编码的事件批次
type KafkaJob struct {
	Topic     string
	Partition int32
	Key       []byte
	Value     []byte
	Events    int // 批次内事件数，仅用于统计
}

// KafkaSendResult 表示每条消息的发送结果
type KafkaSendResult struct {
	Job *KafkaJob
	Err error
}

// SendKafkaJobs 并发发送同一 slot 的全部消息，每条独立等待 ack。
// 结果按 jobs 原顺序返回；ctx 取消或单条超时记为失败。
func SendKafkaJobs(
	ctx context.Context,
	producer *kafka.Producer,
	jobs []*KafkaJob,
	perMessageTimeout time.Duration,
) (ok []*KafkaJob, failed []KafkaSendResult) {
	if len(jobs) == 0 {
		return nil, nil
	}

	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = sendOne(ctx, producer, job, perMessageTimeout)
		}()
	}
	wg.Wait()

	for i, job := range jobs {
		if errs[i] != nil {
			failed = append(failed, KafkaSendResult{Job: job, Err: errs[i]})
		} else {
			ok = append(ok, job)
		}
	}
	return ok, failed
}

func sendOne(ctx context.Context, producer *kafka.Producer, job *KafkaJob, timeout time.Duration) error {
	delivery := make(chan kafka.Event, 1)
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &job.Topic, Partition: job.Partition},
		Key:            job.Key,
		Value:          job.Value,
	}
	if err := producer.Produce(msg, delivery); err != nil {
		return fmt.Errorf("produce to %s[%d]: %w", job.Topic, job.Partition, err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case e, ok := <-delivery:
		if !ok {
			return fmt.Errorf("delivery channel closed unexpectedly")
		}
		return deliveryError(e)
	case <-timer.C:
		go safeDrain(delivery)
		return fmt.Errorf("delivery to %s[%d] timeout (>%v)", job.Topic, job.Partition, timeout)
	case <-ctx.Done():
		go safeDrain(delivery)
		return fmt.Errorf("ctx cancelled: %w", ctx.Err())
	}
}

// deliveryError 从投递回执中取出发送结果
func deliveryError(e kafka.Event) error {
	switch ev := e.(type) {
	case *kafka.Message:
		return ev.TopicPartition.Error
	case kafka.Error:
		return ev
	default:
		return fmt.Errorf("unexpected delivery event: %T", e)
	}
}

// safeDrain 超时后仍要读掉迟到的回执，避免 librdkafka 回调阻塞
func safeDrain(ch <-chan kafka.Event) {
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
	}
}
