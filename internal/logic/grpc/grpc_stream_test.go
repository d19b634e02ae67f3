package grpc

import (
	"testing"
	"time"

	"dex-event-parser-sol/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestReconnectDelay(t *testing.T) {
	base := time.Second
	assert.Equal(t, time.Duration(0), reconnectDelay(0, base))
	assert.Equal(t, time.Second, reconnectDelay(1, base))
	assert.Equal(t, 2*time.Second, reconnectDelay(2, base))
	assert.Equal(t, 8*time.Second, reconnectDelay(4, base))
	assert.Equal(t, 8*time.Second, reconnectDelay(100, base))
}

func TestDialOptions(t *testing.T) {
	var conf config.GrpcClientConfig
	base := len(dialOptions(conf))

	conf.InitialWindowSize = 1 << 20
	conf.InitialConnWindowSize = 1 << 21
	conf.MaxCallRecvMsgSize = 64 << 20
	assert.Equal(t, base+3, len(dialOptions(conf)))
}
