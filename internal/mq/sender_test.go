package mq

import (
	"context"
	"os"
	"testing"
	"time"

	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "dex-event-parser-sol-test"

// 需要真实 Kafka，未设置 KAFKA_BROKERS 时跳过
func testBrokers(t *testing.T) string {
	t.Helper()
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		t.Skip("KAFKA_BROKERS not set")
	}
	return brokers
}

func createTestProducer(t *testing.T, brokers string) *kafka.Producer {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":        brokers,
		"client.id":                "dex-event-parser-sol-test",
		"acks":                     "all",
		"delivery.timeout.ms":      30000,
		"message.send.max.retries": 3,
		"allow.auto.create.topics": true,
	})
	require.NoError(t, err)
	return producer
}

func TestSendKafkaJobsEmpty(t *testing.T) {
	ok, failed := SendKafkaJobs(context.Background(), nil, nil, time.Second)
	assert.Empty(t, ok)
	assert.Empty(t, failed)
}

func TestSendKafkaJobs_RealKafka(t *testing.T) {
	brokers := testBrokers(t)
	producer := createTestProducer(t, brokers)
	defer producer.Close()

	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"group.id":          "test-group-" + time.Now().Format("20060102150405"),
		"auto.offset.reset": "earliest",
	})
	require.NoError(t, err)
	defer consumer.Close()
	require.NoError(t, consumer.Subscribe(testTopic, nil))

	evt := &core.PumpFunTradeEvent{SolAmount: 11, TokenAmount: 22, IsBuy: true}
	payload, err := utils.EncodeEvent(uint32(evt.Type()), evt)
	require.NoError(t, err)

	jobs := []*KafkaJob{{Topic: testTopic, Value: payload, Events: 1}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ok, failed := SendKafkaJobs(ctx, producer, jobs, 5*time.Second)
	assert.Len(t, ok, 1)
	assert.Empty(t, failed)

	msg, err := consumer.ReadMessage(10 * time.Second)
	require.NoError(t, err)

	var got core.PumpFunTradeEvent
	eventType, err := utils.DecodeEvent(msg.Value, &got)
	require.NoError(t, err)
	assert.Equal(t, uint32(core.EventPumpFunTrade), eventType)
	assert.Equal(t, uint64(11), got.SolAmount)
	assert.True(t, got.IsBuy)
}

func TestSendKafkaJobs_RealKafka_Timeout(t *testing.T) {
	producer := createTestProducer(t, testBrokers(t))
	defer func() {
		producer.Flush(1000)
		producer.Close()
	}()

	jobs := []*KafkaJob{{Topic: testTopic, Value: []byte("late")}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ok, failed := SendKafkaJobs(ctx, producer, jobs, 5*time.Millisecond)
	assert.Empty(t, ok)
	assert.Len(t, failed, 1)
}
