package meteorapools

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

// Meteora Dynamic AMM（Pools）
const (
	Swap                   uint64 = 0xf8c69e91e17587c8
	AddBalanceLiquidity    uint64 = 0xa8e3323ebdab54b0
	RemoveBalanceLiquidity uint64 = 0x856d2cb338ee7221
	BootstrapLiquidity     uint64 = 0x04e4d747e1fd77ce
)

const (
	SwapEvent               uint64 = 0x516ce3becdd00ac4
	AddLiquidityEvent       uint64 = 0x1f5e7d5ae3343dba
	RemoveLiquidityEvent    uint64 = 0x74f461e8671f983a
	BootstrapLiquidityEvent uint64 = 0x797f26885c370ef7
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexMeteoraPools,
		ProgramID:         consts.MeteoraPoolsProgram,
		ProgramIDStr:      consts.MeteoraPoolsProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: SwapEvent, Kinds: []core.EventType{core.EventMeteoraPoolsSwap}, Decode: decodeSwapLog},
			{Discriminator: AddLiquidityEvent, Kinds: []core.EventType{core.EventMeteoraPoolsAddLiquidity}, Decode: decodeAddLiquidityLog},
			{Discriminator: RemoveLiquidityEvent, Kinds: []core.EventType{core.EventMeteoraPoolsRemoveLiquidity}, Decode: decodeRemoveLiquidityLog},
			{Discriminator: BootstrapLiquidityEvent, Kinds: []core.EventType{core.EventMeteoraPoolsBootstrapLiquidity}, Decode: decodeBootstrapLiquidityLog},
		},
	}
}
