package raydiumv4

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

// 来源, https://github.com/raydium-io/raydium-amm/blob/master/program/src/instruction.rs
const (
	Initialize2 = 1
	Deposit     = 3
	Withdraw    = 4
	SwapBaseIn  = 9
	SwapBaseOut = 11
)

// ray_log 首字节日志类型，来源 program/src/log.rs
const (
	LogInit        = 0
	LogDeposit     = 1
	LogWithdraw    = 2
	LogSwapBaseIn  = 3
	LogSwapBaseOut = 4
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexRaydiumV4,
		ProgramID:         consts.RaydiumV4Program,
		ProgramIDStr:      consts.RaydiumV4ProgramStr,
		DecodeInstruction: decodeInstruction,
		RayLog: []common.LogHandler{
			{Discriminator: LogInit, Kinds: []core.EventType{core.EventRaydiumAmmV4Initialize}, Decode: decodeInitLog},
			{Discriminator: LogDeposit, Kinds: []core.EventType{core.EventRaydiumAmmV4Deposit}, Decode: decodeDepositLog},
			{Discriminator: LogWithdraw, Kinds: []core.EventType{core.EventRaydiumAmmV4Withdraw}, Decode: decodeWithdrawLog},
			{Discriminator: LogSwapBaseIn, Kinds: []core.EventType{core.EventRaydiumAmmV4Swap}, Decode: decodeSwapBaseInLog},
			{Discriminator: LogSwapBaseOut, Kinds: []core.EventType{core.EventRaydiumAmmV4Swap}, Decode: decodeSwapBaseOutLog},
		},
	}
}
