package raydiumcpmm

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

const (
	SwapBaseInput  uint64 = 0x8fbe5adac41e33de
	SwapBaseOutput uint64 = 0x37d96256a34ab4ad
	Initialize     uint64 = 0xafaf6d1f0d989bed
	Deposit        uint64 = 0xf223c68952e1f2b6
	Withdraw       uint64 = 0xb712469c946da122
)

// SwapEvent 与 CLMM SwapEvent 判别符相同，由调用栈上下文区分
const (
	SwapEvent     uint64 = 0x40c6cde8260871e2
	LpChangeEvent uint64 = 0x79a3cdc939da753c
)

const (
	lpChangeDeposit  uint8 = 0
	lpChangeWithdraw uint8 = 1
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexRaydiumCPMM,
		ProgramID:         consts.RaydiumCPMMProgram,
		ProgramIDStr:      consts.RaydiumCPMMProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: SwapEvent, Kinds: []core.EventType{core.EventRaydiumCpmmSwap}, Decode: decodeSwapLog},
			{
				Discriminator: LpChangeEvent,
				Kinds:         []core.EventType{core.EventRaydiumCpmmDeposit, core.EventRaydiumCpmmWithdraw},
				Decode:        decodeLpChangeLog,
			},
		},
	}
}
