package eventparser

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/pumpfun"
	"dex-event-parser-sol/internal/types"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b byte) types.Pubkey {
	var p types.Pubkey
	p[0], p[31] = b, b
	return p
}

func keys(n int) []types.Pubkey {
	out := make([]types.Pubkey, n)
	for i := range out {
		out[i] = key(byte(i + 1))
	}
	return out
}

func ixData(disc uint64, args ...uint64) []byte {
	data := binary.BigEndian.AppendUint64(nil, disc)
	for _, a := range args {
		data = binary.LittleEndian.AppendUint64(data, a)
	}
	return data
}

// programDataLine 构造 "Program data: <base64>" 日志行
func programDataLine(t *testing.T, disc uint64, body any) string {
	t.Helper()
	raw, err := borsh.Serialize(body)
	require.NoError(t, err)
	payload := append(binary.BigEndian.AppendUint64(nil, disc), raw...)
	return programDataPrefix + base64.StdEncoding.EncodeToString(payload)
}

func invoke(programID string, depth int) string {
	return "Program " + programID + " invoke [" + string(rune('0'+depth)) + "]"
}

func success(programID string) string {
	return "Program " + programID + " success"
}

type pumpFunTradeLog struct {
	Mint                 types.Pubkey
	SolAmount            uint64
	TokenAmount          uint64
	IsBuy                bool
	User                 types.Pubkey
	Timestamp            int64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
}

type bonkTradeLog struct {
	PoolState       types.Pubkey
	TotalBaseSell   uint64
	VirtualBase     uint64
	VirtualQuote    uint64
	RealBaseBefore  uint64
	RealQuoteBefore uint64
	RealBaseAfter   uint64
	RealQuoteAfter  uint64
	AmountIn        uint64
	AmountOut       uint64
	ProtocolFee     uint64
	PlatformFee     uint64
	ShareFee        uint64
	TradeDirection  uint8
	PoolStatus      uint8
}

func TestRegistryEmptyDataIsAbsent(t *testing.T) {
	r := NewRegistry()
	for _, p := range r.Protocols() {
		assert.Nil(t, r.DecodeInstruction(p.ProgramID, nil, keys(20), core.EventMetadata{}), p.ProgramIDStr)
		assert.Nil(t, r.DecodeInstruction(p.ProgramID, []byte{}, keys(20), core.EventMetadata{}), p.ProgramIDStr)
	}
}

func TestRegistryDispatchOrder(t *testing.T) {
	want := []types.Pubkey{
		consts.PumpFunProgram,
		consts.PumpSwapProgram,
		consts.RaydiumV4Program,
		consts.RaydiumCLMMProgram,
		consts.RaydiumCPMMProgram,
		consts.OrcaWhirlpoolProgram,
		consts.MeteoraDammV2Program,
		consts.BonkProgram,
		consts.MeteoraPoolsProgram,
	}
	protocols := NewRegistry().Protocols()
	require.Len(t, protocols, len(want))
	for i, p := range protocols {
		assert.Equal(t, want[i], p.ProgramID)
		assert.Equal(t, p.ProgramIDStr, p.ProgramID.String())
		assert.NotNil(t, p.DecodeInstruction)
	}
}

func TestDecodeInstructionDispatch(t *testing.T) {
	data := ixData(pumpfun.Buy, 1_000, 2_000)
	accounts := keys(12)

	evt := DecodeInstruction(data, accounts, types.Signature{1}, 100, nil, consts.PumpFunProgram)
	require.NotNil(t, evt)
	assert.Equal(t, core.EventPumpFunTrade, evt.Type())
	assert.Equal(t, uint64(100), evt.Metadata().Slot)
	assert.NotZero(t, evt.Metadata().RecvUs)

	assert.Nil(t, DecodeInstruction(data, accounts, types.Signature{1}, 100, nil, types.Pubkey{}))
	// 同一判别符交给别的程序不会被误解码为 PumpFun
	assert.Nil(t, DecodeInstruction(data, accounts, types.Signature{1}, 100, nil, consts.SystemProgram))
}

func TestDecodeInstructionBlockTime(t *testing.T) {
	bt := int64(1_700_000_000)
	evt := DecodeInstruction(ixData(pumpfun.Sell, 1, 2), keys(12), types.Signature{}, 1, &bt, consts.PumpFunProgram)
	require.NotNil(t, evt)
	assert.Equal(t, bt*1_000_000, evt.Metadata().BlockTimeUs)
}

func TestParserFilterAppliesToInstructions(t *testing.T) {
	p := NewParser(core.IncludeOnly(core.EventPumpSwapBuy))
	assert.Nil(t, p.DecodeInstruction(consts.PumpFunProgram, ixData(pumpfun.Buy, 1, 2), keys(12), core.EventMetadata{}))

	p = NewParser(core.IncludeOnly(core.EventPumpFunTrade))
	assert.NotNil(t, p.DecodeInstruction(consts.PumpFunProgram, ixData(pumpfun.Buy, 1, 2), keys(12), core.EventMetadata{}))
}

func TestRegistryIsSupported(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.IsSupported(consts.BonkProgram))
	assert.False(t, r.IsSupported(consts.TokenProgram))
	assert.False(t, r.IsSupported(types.Pubkey{}))
	assert.False(t, r.IsSupported(consts.InvalidAddress))

	id, ok := r.lookupIDStr(consts.MeteoraPoolsProgramStr)
	assert.True(t, ok)
	assert.Equal(t, consts.MeteoraPoolsProgram, id)
}
