package eventparser

import (
	"encoding/binary"
	"testing"

	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/logic/eventparser/pumpfun"
	"dex-event-parser-sol/internal/logic/eventparser/raydiumv4"
	"dex-event-parser-sol/internal/types"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfCPIData(eventDisc uint64) []byte {
	data := binary.BigEndian.AppendUint64(nil, common.AnchorSelfCPIPrefix)
	return binary.BigEndian.AppendUint64(data, eventDisc)
}

// selfCPIEvent emit_cpi! 事件指令数据：自调用前缀 + 事件判别符 + borsh 内容
func selfCPIEvent(t *testing.T, eventDisc uint64, body any) []byte {
	t.Helper()
	raw, err := borsh.Serialize(body)
	require.NoError(t, err)
	return append(selfCPIData(eventDisc), raw...)
}

func testTx(instrs []*core.AdaptedInstruction, logs []string) *core.AdaptedTx {
	bt := int64(1_700_000_000)
	return &core.AdaptedTx{
		TxCtx:        &core.TxContext{BlockTime: &bt, Slot: 900, RecvUs: 77},
		TxIndex:      12,
		Signature:    types.Signature{3},
		Instructions: instrs,
		LogMessages:  logs,
	}
}

func TestExtractPairsInstructionWithSegment(t *testing.T) {
	accounts := keys(12)
	tx := testTx([]*core.AdaptedInstruction{
		{IxIndex: 0, ProgramID: types.PubkeyFromBase58(consts.ComputeBudgetProgramIdStr), Data: []byte{2, 0, 0, 0}},
		{IxIndex: 1, ProgramID: consts.PumpFunProgram, Accounts: accounts, Data: ixData(pumpfun.Buy, 1_000, 6_000)},
		// 与日志同一事件，日志已产出同类型事件时不再重复回调
		{IxIndex: 1, InnerIndex: 1, ProgramID: consts.PumpFunProgram, Data: selfCPIEvent(t, pumpfun.TradeEvent, pumpFunTradeLog{Mint: key(9), SolAmount: 9_999, IsBuy: true})},
	}, []string{
		invoke(consts.ComputeBudgetProgramIdStr, 1),
		success(consts.ComputeBudgetProgramIdStr),
		invoke(consts.PumpFunProgramStr, 1),
		"Program log: Instruction: Buy",
		programDataLine(t, pumpfun.TradeEvent, pumpFunTradeLog{Mint: key(9), SolAmount: 5_000, IsBuy: true}),
		invoke(consts.PumpFunProgramStr, 2),
		success(consts.PumpFunProgramStr),
		success(consts.PumpFunProgramStr),
	})

	events := CollectEventsFromTx(tx)
	require.Len(t, events, 1)
	trade := events[0].(*core.PumpFunTradeEvent)
	assert.Equal(t, uint64(5_000), trade.SolAmount)
	assert.Equal(t, accounts[3], trade.BondingCurve)
	assert.Equal(t, uint64(12), trade.TxIndex)
	assert.Equal(t, uint16(1), trade.IxIndex)
	assert.Equal(t, uint64(900), trade.Slot)
	assert.Equal(t, int64(77), trade.RecvUs)
	assert.Equal(t, int64(1_700_000_000_000_000), trade.BlockTimeUs)
}

func TestExtractUnpairedSegmentsAndInstructions(t *testing.T) {
	accounts := keys(18)
	tx := testTx([]*core.AdaptedInstruction{
		// 没有日志的 PumpFun 指令
		{IxIndex: 0, ProgramID: consts.PumpFunProgram, Accounts: keys(12), Data: ixData(pumpfun.Sell, 1, 2)},
		{IxIndex: 1, ProgramID: consts.RaydiumV4Program, Accounts: accounts, Data: append([]byte{raydiumv4.SwapBaseIn}, ixData(0, 100, 90)[8:]...)},
	}, []string{
		// 没有对应指令的 Bonk 分段，先于 RaydiumV4 分段输出
		invoke(consts.BonkProgramStr, 1),
		programDataLine(t, pumpfun.TradeEvent, bonkTradeLog{PoolState: key(8)}),
		success(consts.BonkProgramStr),
		invoke(consts.RaydiumV4ProgramStr, 1),
		rayLogLine(raydiumv4.LogSwapBaseIn, 100, 90, 2, 1, 2, 3, 95),
		success(consts.RaydiumV4ProgramStr),
	})

	events := CollectEventsFromTx(tx)
	require.Len(t, events, 3)

	assert.Equal(t, core.EventPumpFunTrade, events[0].Type())
	assert.Equal(t, uint16(0), events[0].Metadata().IxIndex)

	assert.Equal(t, core.EventBonkTrade, events[1].Type())
	assert.Equal(t, key(8), events[1].(*core.BonkTradeEvent).PoolState)

	swap := events[2].(*core.RaydiumAmmV4SwapEvent)
	assert.Equal(t, uint64(95), swap.AmountOut)
	assert.Equal(t, accounts[1], swap.Amm)
	assert.Equal(t, uint16(1), swap.IxIndex)
}

func TestSplitSegments(t *testing.T) {
	logs := []string{
		invoke(consts.SystemProgramStr, 1),
		"Program log: outside",
		success(consts.SystemProgramStr),
		invoke(consts.PumpSwapProgramStr, 1),
		"Program log: a",
		invoke(consts.PumpFunProgramStr, 2),
		"Program log: b",
		invoke(consts.PumpFunProgramStr, 3),
		success(consts.PumpFunProgramStr),
		success(consts.PumpFunProgramStr),
		invoke(consts.TokenProgramStr, 2),
		"Program log: c",
		success(consts.TokenProgramStr),
		success(consts.PumpSwapProgramStr),
	}
	segments := NewParser(nil).splitSegments(logs)
	require.Len(t, segments, 2)

	assert.Equal(t, consts.PumpSwapProgram, segments[0].programID)
	assert.Equal(t, []string{
		logs[3], logs[4], logs[10], logs[11], logs[12], logs[13],
	}, segments[0].lines)

	assert.Equal(t, consts.PumpFunProgram, segments[1].programID)
	assert.Equal(t, logs[5:10], segments[1].lines)
}

func TestExtractRecoversCallbackPanic(t *testing.T) {
	tx := testTx([]*core.AdaptedInstruction{
		{ProgramID: consts.PumpFunProgram, Accounts: keys(12), Data: ixData(pumpfun.Buy, 1, 1)},
	}, nil)
	assert.NotPanics(t, func() {
		ExtractEventsFromTx(tx, func(core.ProtocolEvent) { panic("boom") })
	})
}

func TestExtractSelfCPIEventWithoutProgramData(t *testing.T) {
	accounts := keys(12)
	tx := testTx([]*core.AdaptedInstruction{
		{IxIndex: 0, ProgramID: consts.PumpFunProgram, Accounts: accounts, Data: ixData(pumpfun.Buy, 1_000, 6_000)},
		{IxIndex: 0, InnerIndex: 1, ProgramID: consts.TokenProgram, Data: []byte{3, 1, 2}},
		{IxIndex: 0, InnerIndex: 2, ProgramID: consts.PumpFunProgram, Data: selfCPIEvent(t, pumpfun.TradeEvent, pumpFunTradeLog{
			Mint:               key(9),
			SolAmount:          777,
			TokenAmount:        1_000,
			IsBuy:              true,
			VirtualSolReserves: 30_000,
		})},
	}, []string{
		invoke(consts.PumpFunProgramStr, 1),
		"Program log: Instruction: Buy",
		invoke(consts.TokenProgramStr, 2),
		success(consts.TokenProgramStr),
		invoke(consts.PumpFunProgramStr, 2),
		success(consts.PumpFunProgramStr),
		success(consts.PumpFunProgramStr),
	})

	events := CollectEventsFromTx(tx)
	require.Len(t, events, 1)
	trade := events[0].(*core.PumpFunTradeEvent)
	assert.Equal(t, uint64(777), trade.SolAmount)
	assert.Equal(t, uint64(30_000), trade.VirtualSolReserves)
	assert.Equal(t, key(9), trade.Mint)
	assert.Equal(t, accounts[3], trade.BondingCurve, "账户由指令侧回填")
	assert.Equal(t, uint16(0), trade.IxIndex)

	// 没有任何日志时同样生效
	tx.LogMessages = nil
	events = CollectEventsFromTx(tx)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(777), events[0].(*core.PumpFunTradeEvent).SolAmount)
}

func TestExtractIgnoresUnsupportedAndOrphanSelfCPI(t *testing.T) {
	tx := testTx([]*core.AdaptedInstruction{
		{ProgramID: consts.TokenProgram, Data: []byte{3, 1, 2}},
		{ProgramID: consts.PumpFunProgram, Data: selfCPIData(pumpfun.TradeEvent)},
	}, nil)
	assert.Empty(t, CollectEventsFromTx(tx))
}
