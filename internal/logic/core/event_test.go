package core

import (
	"testing"

	"dex-event-parser-sol/internal/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeNames(t *testing.T) {
	for _, et := range AllEventTypes() {
		name := et.String()
		require.NotEqual(t, "Unknown", name, "event type %d 缺少名称", et)
		require.NotZero(t, et.Dex(), "event type %s 缺少 dex", name)

		parsed, ok := ParseEventType(name)
		require.True(t, ok)
		assert.Equal(t, et, parsed)
	}
	assert.Equal(t, "Unknown", EventType(999).String())
	assert.Equal(t, consts.DexPumpfun, EventPumpFunTrade.Dex())

	_, ok := ParseEventType("NoSuchEvent")
	assert.False(t, ok)
}

func TestEventTypeFilter(t *testing.T) {
	var nilFilter *EventTypeFilter
	assert.True(t, nilFilter.ShouldInclude(EventBonkTrade))
	assert.True(t, nilFilter.ShouldIncludeAny(nil))

	f := IncludeOnly(EventPumpFunTrade, EventRaydiumClmmSwap)
	assert.True(t, f.ShouldInclude(EventPumpFunTrade))
	assert.True(t, f.ShouldInclude(EventRaydiumClmmSwap))
	assert.False(t, f.ShouldInclude(EventBonkTrade))
	assert.False(t, f.ShouldInclude(EventType(200)))
	assert.True(t, f.ShouldIncludeAny([]EventType{EventBonkTrade, EventPumpFunTrade}))
	assert.False(t, f.ShouldIncludeAny([]EventType{EventBonkTrade}))

	empty := IncludeOnly()
	assert.False(t, empty.ShouldInclude(EventPumpFunTrade))
}

func TestNewEventMetadata(t *testing.T) {
	bt := int64(1_700_000_000)
	m := NewEventMetadata([64]byte{1}, 42, &bt, 7)
	assert.Equal(t, uint64(42), m.Slot)
	assert.Equal(t, bt*1_000_000, m.BlockTimeUs)
	assert.Equal(t, int64(7), m.RecvUs)
	assert.Equal(t, byte(1), m.Signature[0])

	m = NewEventMetadata([64]byte{}, 1, nil, 0)
	assert.Zero(t, m.BlockTimeUs)
}

func TestProtocolEventInterface(t *testing.T) {
	evt := &PumpFunTradeEvent{Mint: [32]byte{9}}
	evt.Slot = 5

	var pe ProtocolEvent = evt
	assert.Equal(t, EventPumpFunTrade, pe.Type())
	assert.Equal(t, uint64(5), pe.Metadata().Slot)
	assert.Equal(t, evt.Mint, pe.PartitionKey())

	// Metadata 返回的是事件内部指针
	pe.Metadata().TxIndex = 3
	assert.Equal(t, uint64(3), evt.TxIndex)

	assert.True(t, CanMerge(evt, &PumpFunTradeEvent{}))
	assert.False(t, CanMerge(evt, &BonkTradeEvent{}))
	assert.False(t, CanMerge(evt, nil))
}

func TestBuildEventID(t *testing.T) {
	assert.Equal(t, uint32(0x00030201), BuildEventID(3, 2, 1))
	assert.Equal(t, uint32(0), BuildEventID(0, 0, 0))
}
