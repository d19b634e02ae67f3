package bonk

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

const (
	BuyExactIn   uint64 = 0xfaea0d7bd59c13ec
	BuyExactOut  uint64 = 0x18d3742869039938
	SellExactIn  uint64 = 0x9527de9bd37c981a
	SellExactOut uint64 = 0x5fc8472208090ba6
	Initialize   uint64 = 0xafaf6d1f0d989bed
)

// TradeEvent 与 Pump.fun TradeEvent 判别符相同，由调用栈上下文区分
const (
	TradeEvent      uint64 = 0xbddb7fd34ee661ee
	PoolCreateEvent uint64 = 0x97d7e20976a173ae
)

// Protocol Raydium Launchpad（Bonk）
func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexBonk,
		ProgramID:         consts.BonkProgram,
		ProgramIDStr:      consts.BonkProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: TradeEvent, Kinds: []core.EventType{core.EventBonkTrade}, Decode: decodeTradeLog},
			{Discriminator: PoolCreateEvent, Kinds: []core.EventType{core.EventBonkPoolCreate}, Decode: decodePoolCreateLog},
		},
	}
}
