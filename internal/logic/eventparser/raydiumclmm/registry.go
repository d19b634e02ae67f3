package raydiumclmm

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

const (
	Swap                uint64 = 0xf8c69e91e17587c8
	SwapV2              uint64 = 0x2b04ed0b1ac91e62
	CreatePool          uint64 = 0xe992d18ecf6840bc
	IncreaseLiquidity   uint64 = 0x2e9cf3760dcdfbb2
	IncreaseLiquidityV2 uint64 = 0x851d59df45eeb00a
	DecreaseLiquidity   uint64 = 0xa026d06f685b2c01
	DecreaseLiquidityV2 uint64 = 0x3a7fbc3e4f52c460
)

const (
	SwapEvent              uint64 = 0x40c6cde8260871e2
	PoolCreatedEvent       uint64 = 0x195e4b2f7063353f
	IncreaseLiquidityEvent uint64 = 0x314f69d420221e54
	DecreaseLiquidityEvent uint64 = 0x3ade563a44325538
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexRaydiumCLMM,
		ProgramID:         consts.RaydiumCLMMProgram,
		ProgramIDStr:      consts.RaydiumCLMMProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: SwapEvent, Kinds: []core.EventType{core.EventRaydiumClmmSwap}, Decode: decodeSwapLog},
			{Discriminator: PoolCreatedEvent, Kinds: []core.EventType{core.EventRaydiumClmmCreatePool}, Decode: decodePoolCreatedLog},
			{Discriminator: IncreaseLiquidityEvent, Kinds: []core.EventType{core.EventRaydiumClmmIncreaseLiquidity}, Decode: decodeIncreaseLiquidityLog},
			{Discriminator: DecreaseLiquidityEvent, Kinds: []core.EventType{core.EventRaydiumClmmDecreaseLiquidity}, Decode: decodeDecreaseLiquidityLog},
		},
	}
}
