package main

import (
	"bytes"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlippageOf(t *testing.T) {
	evt := &core.RaydiumCpmmSwapEvent{
		BaseInput:        true,
		InputAmount:      1_000,
		OutputAmount:     2_000,
		MinimumAmountOut: 1_900,
	}
	bps := slippageOf(evt)
	require.NotNil(t, bps)
	assert.Equal(t, uint16(500), *bps)

	evt.BaseInput = false
	assert.Nil(t, slippageOf(evt))

	evt.BaseInput = true
	evt.MinimumAmountOut = 0
	assert.Nil(t, slippageOf(evt))

	assert.Nil(t, slippageOf(&core.PumpFunTradeEvent{}))
}

func TestWriteEventRecord(t *testing.T) {
	var sig types.Signature
	sig[0] = 7
	evt := &core.RaydiumCpmmSwapEvent{
		EventMetadata: core.NewEventMetadata(sig, 42, nil, 0),
		PoolState:     types.Pubkey{1},
		InputAmount:   10,
	}
	evt.IxIndex = 3

	var buf bytes.Buffer
	require.NoError(t, newJSONWriter(&buf).write(newEventRecord(evt)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, evt.Type().String(), got["type"])
	assert.Equal(t, sig.String(), got["signature"])
	assert.EqualValues(t, 42, got["slot"])
	assert.EqualValues(t, 3, got["ix_index"])
	assert.NotContains(t, got, "slippage_bps")

	body, ok := got["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, types.Pubkey{1}.String(), body["PoolState"])
	assert.EqualValues(t, 10, body["InputAmount"])
}
