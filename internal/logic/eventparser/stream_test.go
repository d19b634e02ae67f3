package eventparser

import (
	"testing"

	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/bonk"
	"dex-event-parser-sol/internal/logic/eventparser/pumpfun"
	"dex-event-parser-sol/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, p *Parser, data []byte, accounts []types.Pubkey, logs []string, programID types.Pubkey) []core.ProtocolEvent {
	t.Helper()
	var got []core.ProtocolEvent
	p.StreamTransactionEvents(data, accounts, logs, types.Signature{9}, 500, nil, programID, func(evt core.ProtocolEvent) {
		got = append(got, evt)
	})
	return got
}

func TestStreamMergesLogAndInstruction(t *testing.T) {
	accounts := keys(12)
	logs := []string{
		invoke(consts.PumpFunProgramStr, 1),
		"Program log: Instruction: Buy",
		programDataLine(t, pumpfun.TradeEvent, pumpFunTradeLog{
			Mint:        key(9),
			SolAmount:   5_000,
			TokenAmount: 1_000,
			IsBuy:       true,
			User:        key(7),
		}),
		success(consts.PumpFunProgramStr),
	}

	calls := 0
	var got core.ProtocolEvent
	StreamTransactionEvents(ixData(pumpfun.Buy, 1_000, 6_000), accounts, logs, types.Signature{9}, 500, nil, consts.PumpFunProgram, func(evt core.ProtocolEvent) {
		calls++
		got = evt
	})

	require.Equal(t, 1, calls)
	trade := got.(*core.PumpFunTradeEvent)
	// 日志字段
	assert.Equal(t, uint64(5_000), trade.SolAmount)
	assert.Equal(t, key(9), trade.Mint)
	assert.Equal(t, key(7), trade.User)
	// 指令回填字段
	assert.Equal(t, accounts[3], trade.BondingCurve)
	assert.Equal(t, accounts[4], trade.AssociatedBondingCurve)
	assert.Equal(t, uint64(6_000), trade.MaxSolCost)
	assert.Equal(t, uint64(500), trade.Slot)
}

func TestStreamSingleSource(t *testing.T) {
	p := NewParser(nil)

	ixOnly := collect(t, p, ixData(pumpfun.Sell, 10, 20), keys(12), nil, consts.PumpFunProgram)
	require.Len(t, ixOnly, 1)
	assert.Equal(t, uint64(20), ixOnly[0].(*core.PumpFunTradeEvent).MinSolOutput)

	logOnly := collect(t, p, nil, nil, []string{
		programDataLine(t, pumpfun.TradeEvent, pumpFunTradeLog{Mint: key(1), SolAmount: 3}),
	}, consts.PumpFunProgram)
	require.Len(t, logOnly, 1)
	assert.True(t, logOnly[0].(*core.PumpFunTradeEvent).BondingCurve.IsZero())

	assert.Empty(t, collect(t, p, nil, nil, nil, consts.PumpFunProgram))
}

func TestStreamMergesFirstPendingOnly(t *testing.T) {
	logs := []string{
		invoke(consts.PumpFunProgramStr, 1),
		programDataLine(t, pumpfun.TradeEvent, pumpFunTradeLog{Mint: key(1), SolAmount: 1}),
		programDataLine(t, pumpfun.TradeEvent, pumpFunTradeLog{Mint: key(2), SolAmount: 2}),
		success(consts.PumpFunProgramStr),
	}
	got := collect(t, NewParser(nil), ixData(pumpfun.Buy, 1, 1), keys(12), logs, consts.PumpFunProgram)
	require.Len(t, got, 2)

	first := got[0].(*core.PumpFunTradeEvent)
	second := got[1].(*core.PumpFunTradeEvent)
	assert.Equal(t, uint64(1), first.SolAmount)
	assert.Equal(t, key(4), first.BondingCurve)
	assert.Equal(t, uint64(2), second.SolAmount)
	assert.True(t, second.BondingCurve.IsZero())
}

func TestStreamInstructionWithoutCounterpartEmittedLast(t *testing.T) {
	logs := []string{
		programDataLine(t, pumpfun.CompleteEvent, struct {
			User, Mint, BondingCurve types.Pubkey
			Timestamp                int64
		}{key(1), key(2), key(3), 10}),
	}
	got := collect(t, NewParser(nil), ixData(pumpfun.Buy, 1, 1), keys(12), logs, consts.PumpFunProgram)
	require.Len(t, got, 2)
	assert.Equal(t, core.EventPumpFunComplete, got[0].Type())
	assert.Equal(t, core.EventPumpFunTrade, got[1].Type())
}

func TestStreamUsesInvokeContext(t *testing.T) {
	bonkLine := programDataLine(t, bonk.TradeEvent, bonkTradeLog{PoolState: key(8), AmountIn: 5})
	p := NewParser(nil)

	// 栈为空时以交易程序为上下文
	got := collect(t, p, nil, nil, []string{bonkLine}, consts.BonkProgram)
	require.Len(t, got, 1)
	assert.Equal(t, core.EventBonkTrade, got[0].Type())

	// 内层帧决定路由
	got = collect(t, p, nil, nil, []string{
		invoke(consts.PumpFunProgramStr, 1),
		invoke(consts.BonkProgramStr, 2),
		bonkLine,
		success(consts.BonkProgramStr),
		success(consts.PumpFunProgramStr),
	}, consts.PumpFunProgram)
	require.Len(t, got, 1)
	assert.Equal(t, core.EventBonkTrade, got[0].Type())

	// 未注册程序帧内的日志忽略
	got = collect(t, p, nil, nil, []string{
		invoke(consts.BonkProgramStr, 1),
		invoke(consts.SystemProgramStr, 2),
		bonkLine,
		success(consts.SystemProgramStr),
		success(consts.BonkProgramStr),
	}, consts.BonkProgram)
	assert.Empty(t, got)
}

func TestStreamFilter(t *testing.T) {
	logs := []string{
		programDataLine(t, pumpfun.TradeEvent, pumpFunTradeLog{Mint: key(1), SolAmount: 1}),
	}
	p := NewParser(core.IncludeOnly(core.EventPumpFunCreateToken))
	assert.Empty(t, collect(t, p, ixData(pumpfun.Buy, 1, 1), keys(12), logs, consts.PumpFunProgram))
}
