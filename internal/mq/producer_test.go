package mq

import (
	"dex-event-parser-sol/internal/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerConfigDefaults(t *testing.T) {
	var cfg config.KafkaProducerConfig
	cfg.Brokers = "127.0.0.1:9092"
	cfg.LingerMs = -1

	m := producerConfig(cfg)
	v, err := m.Get("batch.size", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultBatchSize, v)

	v, err = m.Get("linger.ms", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultLingerMs, v)

	v, err = m.Get("bootstrap.servers", nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9092", v)
}

func TestClientID(t *testing.T) {
	assert.True(t, strings.HasPrefix(clientID(), "dex-event-parser-sol-"))
}

func TestNewKafkaProducerEmptyTopic(t *testing.T) {
	_, err := NewKafkaProducer(config.KafkaProducerConfig{Brokers: "127.0.0.1:1"})
	assert.ErrorContains(t, err, "topic is empty")
}
