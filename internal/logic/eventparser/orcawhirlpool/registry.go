package orcawhirlpool

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

// 来源：https://github.com/orca-so/whirlpools/tree/main/programs/whirlpool/src/instructions
const (
	Swap                uint64 = 0xf8c69e91e17587c8
	SwapV2              uint64 = 0x2b04ed0b1ac91e62
	IncreaseLiquidity   uint64 = 0x2e9cf3760dcdfbb2
	IncreaseLiquidityV2 uint64 = 0x851d59df45eeb00a
	DecreaseLiquidity   uint64 = 0xa026d06f685b2c01
	DecreaseLiquidityV2 uint64 = 0x3a7fbc3e4f52c460
	InitializePool      uint64 = 0x5fb40aac54aee828
	InitializePoolV2    uint64 = 0xcf2d57f21b3fcc43
)

const (
	TradedEvent             uint64 = 0xe1ca49af932ba096
	LiquidityIncreasedEvent uint64 = 0x1e0790b566fe9ba1
	LiquidityDecreasedEvent uint64 = 0xa601244770cab5ab
	PoolInitializedEvent    uint64 = 0x6476ad570cc6fee5
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexOrcaWhirlpool,
		ProgramID:         consts.OrcaWhirlpoolProgram,
		ProgramIDStr:      consts.OrcaWhirlpoolProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: TradedEvent, Kinds: []core.EventType{core.EventOrcaWhirlpoolSwap}, Decode: decodeTradedLog},
			{Discriminator: LiquidityIncreasedEvent, Kinds: []core.EventType{core.EventOrcaWhirlpoolIncreaseLiquidity}, Decode: decodeLiquidityIncreasedLog},
			{Discriminator: LiquidityDecreasedEvent, Kinds: []core.EventType{core.EventOrcaWhirlpoolDecreaseLiquidity}, Decode: decodeLiquidityDecreasedLog},
			{Discriminator: PoolInitializedEvent, Kinds: []core.EventType{core.EventOrcaWhirlpoolPoolInitialize}, Decode: decodePoolInitializedLog},
		},
	}
}
