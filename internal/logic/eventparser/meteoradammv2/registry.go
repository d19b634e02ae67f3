package meteoradammv2

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

// 来源：https://github.com/MeteoraAg/damm-v2/tree/main/programs/cp-amm/src/instructions
const (
	Swap             uint64 = 0xf8c69e91e17587c8
	AddLiquidity     uint64 = 0xb59d59438fb63448
	RemoveLiquidity  uint64 = 0x5055d14818ceb16c
	InitializePool   uint64 = 0x5fb40aac54aee828
	ClaimPositionFee uint64 = 0xb4269a118521a2d3
	FundReward       uint64 = 0xbc32f9a55d97263f
	ClaimReward      uint64 = 0x955fb5f25e5a9ea2
)

const (
	EvtSwap             uint64 = 0x1b3c15d58aaabb93
	EvtAddLiquidity     uint64 = 0xaff2089d1ef7b9a9
	EvtRemoveLiquidity  uint64 = 0x572e5862af60225b
	EvtInitializePool   uint64 = 0xe432f655cb428625
	EvtClaimPositionFee uint64 = 0xc6b6b734610c3138
	EvtFundReward       uint64 = 0x68e9ed7ac7bf7955
	EvtClaimReward      uint64 = 0xda5693c8ebbcd7e7
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexMeteoraDammV2,
		ProgramID:         consts.MeteoraDammV2Program,
		ProgramIDStr:      consts.MeteoraDammV2ProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: EvtSwap, Kinds: []core.EventType{core.EventMeteoraDammV2Swap}, Decode: decodeSwapLog},
			{Discriminator: EvtAddLiquidity, Kinds: []core.EventType{core.EventMeteoraDammV2AddLiquidity}, Decode: decodeAddLiquidityLog},
			{Discriminator: EvtRemoveLiquidity, Kinds: []core.EventType{core.EventMeteoraDammV2RemoveLiquidity}, Decode: decodeRemoveLiquidityLog},
			{Discriminator: EvtInitializePool, Kinds: []core.EventType{core.EventMeteoraDammV2InitializePool}, Decode: decodeInitializePoolLog},
			{Discriminator: EvtClaimPositionFee, Kinds: []core.EventType{core.EventMeteoraDammV2ClaimPositionFee}, Decode: decodeClaimPositionFeeLog},
			{Discriminator: EvtFundReward, Kinds: []core.EventType{core.EventMeteoraDammV2FundReward}, Decode: decodeFundRewardLog},
			{Discriminator: EvtClaimReward, Kinds: []core.EventType{core.EventMeteoraDammV2ClaimReward}, Decode: decodeClaimRewardLog},
		},
	}
}
