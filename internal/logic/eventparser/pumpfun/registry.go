package pumpfun

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
)

// 指令判别符
const (
	Create  uint64 = 0x181ec828051c0777
	Buy     uint64 = 0x66063d1201daebea
	Sell    uint64 = 0x33e685a4017f83ad
	Migrate uint64 = 0x9beae792ec9ea21e
)

// 事件判别符（Program data 前 8 字节）
const (
	TradeEvent                    uint64 = 0xbddb7fd34ee661ee
	CreateEvent                   uint64 = 0x1b72a94ddeeb6376
	CompleteEvent                 uint64 = 0x5f72619cd42e9808
	CompletePumpAmmMigrationEvent uint64 = 0xbde95db95c94ea94
)

// Protocol 返回 Pump.fun bonding curve 的解码描述
func Protocol() common.Protocol {
	return common.Protocol{
		Dex:               consts.DexPumpfun,
		ProgramID:         consts.PumpFunProgram,
		ProgramIDStr:      consts.PumpFunProgramStr,
		DecodeInstruction: decodeInstruction,
		ProgramData: []common.LogHandler{
			{Discriminator: TradeEvent, Kinds: []core.EventType{core.EventPumpFunTrade}, Decode: decodeTradeLog},
			{Discriminator: CreateEvent, Kinds: []core.EventType{core.EventPumpFunCreateToken}, Decode: decodeCreateLog},
			{Discriminator: CompleteEvent, Kinds: []core.EventType{core.EventPumpFunComplete}, Decode: decodeCompleteLog},
			{Discriminator: CompletePumpAmmMigrationEvent, Kinds: []core.EventType{core.EventPumpFunMigrate}, Decode: decodeMigrateLog},
		},
	}
}
