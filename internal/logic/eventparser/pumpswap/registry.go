package pumpswap

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

const (
	Buy        uint64 = 0x66063d1201daebea
	Sell       uint64 = 0x33e685a4017f83ad
	CreatePool uint64 = 0xe992d18ecf6840bc
	Deposit    uint64 = 0xf223c68952e1f2b6
	Withdraw   uint64 = 0xb712469c946da122
)

const (
	BuyEvent        uint64 = 0x67f4521f2cf57777
	SellEvent       uint64 = 0x3e2f370aa503dc2a
	CreatePoolEvent uint64 = 0xb1310cd2a076a774
	DepositEvent    uint64 = 0x78f83d531f8e6b90
	WithdrawEvent   uint64 = 0x1609851aa02c47c0
)

func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexPumpSwap,
		ProgramID:         consts.PumpSwapProgram,
		ProgramIDStr:      consts.PumpSwapProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: BuyEvent, Kinds: []core.EventType{core.EventPumpSwapBuy}, Decode: decodeBuyLog},
			{Discriminator: SellEvent, Kinds: []core.EventType{core.EventPumpSwapSell}, Decode: decodeSellLog},
			{Discriminator: CreatePoolEvent, Kinds: []core.EventType{core.EventPumpSwapCreatePool}, Decode: decodeCreatePoolLog},
			{Discriminator: DepositEvent, Kinds: []core.EventType{core.EventPumpSwapDeposit}, Decode: decodeDepositLog},
			{Discriminator: WithdrawEvent, Kinds: []core.EventType{core.EventPumpSwapWithdraw}, Decode: decodeWithdrawLog},
		},
	}
}
