package core

import (
	"time"

	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/types"
)

// EventType 事件类别（协议 + 动作）。数值参与过滤位图与 Kafka 消息前缀，只能追加不能重排。
type EventType uint16

const (
	EventTypeUnknown EventType = iota

	// PumpFun bonding curve
	EventPumpFunTrade
	EventPumpFunCreateToken
	EventPumpFunComplete
	EventPumpFunMigrate

	// PumpSwap AMM
	EventPumpSwapBuy
	EventPumpSwapSell
	EventPumpSwapCreatePool
	EventPumpSwapDeposit
	EventPumpSwapWithdraw

	// Bonk (Raydium Launchpad)
	EventBonkTrade
	EventBonkPoolCreate

	// Raydium CPMM
	EventRaydiumCpmmSwap
	EventRaydiumCpmmDeposit
	EventRaydiumCpmmWithdraw
	EventRaydiumCpmmInitialize

	// Raydium CLMM
	EventRaydiumClmmSwap
	EventRaydiumClmmCreatePool
	EventRaydiumClmmIncreaseLiquidity
	EventRaydiumClmmDecreaseLiquidity

	// Raydium AMM V4
	EventRaydiumAmmV4Swap
	EventRaydiumAmmV4Deposit
	EventRaydiumAmmV4Withdraw
	EventRaydiumAmmV4Initialize

	// Orca Whirlpool
	EventOrcaWhirlpoolSwap
	EventOrcaWhirlpoolIncreaseLiquidity
	EventOrcaWhirlpoolDecreaseLiquidity
	EventOrcaWhirlpoolPoolInitialize

	// Meteora Pools
	EventMeteoraPoolsSwap
	EventMeteoraPoolsAddLiquidity
	EventMeteoraPoolsRemoveLiquidity
	EventMeteoraPoolsBootstrapLiquidity

	// Meteora DAMM v2
	EventMeteoraDammV2Swap
	EventMeteoraDammV2AddLiquidity
	EventMeteoraDammV2RemoveLiquidity
	EventMeteoraDammV2InitializePool
	EventMeteoraDammV2ClaimPositionFee
	EventMeteoraDammV2FundReward
	EventMeteoraDammV2ClaimReward

	eventTypeCount
)

type eventTypeInfo struct {
	name string
	dex  int
}

var eventTypeInfos = [eventTypeCount]eventTypeInfo{
	EventTypeUnknown: {"Unknown", 0},

	EventPumpFunTrade:       {"PumpFunTrade", consts.DexPumpfun},
	EventPumpFunCreateToken: {"PumpFunCreateToken", consts.DexPumpfun},
	EventPumpFunComplete:    {"PumpFunComplete", consts.DexPumpfun},
	EventPumpFunMigrate:     {"PumpFunMigrate", consts.DexPumpfun},

	EventPumpSwapBuy:        {"PumpSwapBuy", consts.DexPumpSwap},
	EventPumpSwapSell:       {"PumpSwapSell", consts.DexPumpSwap},
	EventPumpSwapCreatePool: {"PumpSwapCreatePool", consts.DexPumpSwap},
	EventPumpSwapDeposit:    {"PumpSwapDeposit", consts.DexPumpSwap},
	EventPumpSwapWithdraw:   {"PumpSwapWithdraw", consts.DexPumpSwap},

	EventBonkTrade:      {"BonkTrade", consts.DexBonk},
	EventBonkPoolCreate: {"BonkPoolCreate", consts.DexBonk},

	EventRaydiumCpmmSwap:       {"RaydiumCpmmSwap", consts.DexRaydiumCPMM},
	EventRaydiumCpmmDeposit:    {"RaydiumCpmmDeposit", consts.DexRaydiumCPMM},
	EventRaydiumCpmmWithdraw:   {"RaydiumCpmmWithdraw", consts.DexRaydiumCPMM},
	EventRaydiumCpmmInitialize: {"RaydiumCpmmInitialize", consts.DexRaydiumCPMM},

	EventRaydiumClmmSwap:              {"RaydiumClmmSwap", consts.DexRaydiumCLMM},
	EventRaydiumClmmCreatePool:        {"RaydiumClmmCreatePool", consts.DexRaydiumCLMM},
	EventRaydiumClmmIncreaseLiquidity: {"RaydiumClmmIncreaseLiquidity", consts.DexRaydiumCLMM},
	EventRaydiumClmmDecreaseLiquidity: {"RaydiumClmmDecreaseLiquidity", consts.DexRaydiumCLMM},

	EventRaydiumAmmV4Swap:       {"RaydiumAmmV4Swap", consts.DexRaydiumV4},
	EventRaydiumAmmV4Deposit:    {"RaydiumAmmV4Deposit", consts.DexRaydiumV4},
	EventRaydiumAmmV4Withdraw:   {"RaydiumAmmV4Withdraw", consts.DexRaydiumV4},
	EventRaydiumAmmV4Initialize: {"RaydiumAmmV4Initialize", consts.DexRaydiumV4},

	EventOrcaWhirlpoolSwap:              {"OrcaWhirlpoolSwap", consts.DexOrcaWhirlpool},
	EventOrcaWhirlpoolIncreaseLiquidity: {"OrcaWhirlpoolIncreaseLiquidity", consts.DexOrcaWhirlpool},
	EventOrcaWhirlpoolDecreaseLiquidity: {"OrcaWhirlpoolDecreaseLiquidity", consts.DexOrcaWhirlpool},
	EventOrcaWhirlpoolPoolInitialize:    {"OrcaWhirlpoolPoolInitialize", consts.DexOrcaWhirlpool},

	EventMeteoraPoolsSwap:               {"MeteoraPoolsSwap", consts.DexMeteoraPools},
	EventMeteoraPoolsAddLiquidity:       {"MeteoraPoolsAddLiquidity", consts.DexMeteoraPools},
	EventMeteoraPoolsRemoveLiquidity:    {"MeteoraPoolsRemoveLiquidity", consts.DexMeteoraPools},
	EventMeteoraPoolsBootstrapLiquidity: {"MeteoraPoolsBootstrapLiquidity", consts.DexMeteoraPools},

	EventMeteoraDammV2Swap:             {"MeteoraDammV2Swap", consts.DexMeteoraDammV2},
	EventMeteoraDammV2AddLiquidity:     {"MeteoraDammV2AddLiquidity", consts.DexMeteoraDammV2},
	EventMeteoraDammV2RemoveLiquidity:  {"MeteoraDammV2RemoveLiquidity", consts.DexMeteoraDammV2},
	EventMeteoraDammV2InitializePool:   {"MeteoraDammV2InitializePool", consts.DexMeteoraDammV2},
	EventMeteoraDammV2ClaimPositionFee: {"MeteoraDammV2ClaimPositionFee", consts.DexMeteoraDammV2},
	EventMeteoraDammV2FundReward:       {"MeteoraDammV2FundReward", consts.DexMeteoraDammV2},
	EventMeteoraDammV2ClaimReward:      {"MeteoraDammV2ClaimReward", consts.DexMeteoraDammV2},
}

var eventTypeByName = func() map[string]EventType {
	m := make(map[string]EventType, eventTypeCount)
	for i := EventType(1); i < eventTypeCount; i++ {
		m[eventTypeInfos[i].name] = i
	}
	return m
}()

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeInfos[t].name
	}
	return eventTypeInfos[EventTypeUnknown].name
}

// Dex 返回事件所属协议编号（consts.Dex*）
func (t EventType) Dex() int {
	if t < eventTypeCount {
		return eventTypeInfos[t].dex
	}
	return 0
}

// ParseEventType 按名称解析事件类型（配置文件 include_events 使用）
func ParseEventType(name string) (EventType, bool) {
	t, ok := eventTypeByName[name]
	return t, ok
}

// AllEventTypes 返回全部已知事件类型（不含 Unknown）
func AllEventTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount-1)
	for i := EventType(1); i < eventTypeCount; i++ {
		out = append(out, i)
	}
	return out
}

// EventMetadata 事件来源信息，嵌入到每个协议事件中
type EventMetadata struct {
	Signature   types.Signature
	Slot        uint64
	TxIndex     uint64
	BlockTimeUs int64  // 区块时间（微秒），0 表示未知
	RecvUs      int64  // 本地接收时间（微秒）
	IxIndex     uint16 // 所属主指令序号，仅整笔交易解析时填充
	InnerIndex  uint16 // inner 指令序号，主指令为 0
}

// NewEventMetadata blockTime 单位为秒，nil 表示未知
func NewEventMetadata(sig types.Signature, slot uint64, blockTime *int64, recvUs int64) EventMetadata {
	m := EventMetadata{
		Signature: sig,
		Slot:      slot,
		RecvUs:    recvUs,
	}
	if blockTime != nil {
		m.BlockTimeUs = *blockTime * 1_000_000
	}
	return m
}

// NowMicros 本地接收时间戳
func NowMicros() int64 {
	return time.Now().UnixMicro()
}

func (m *EventMetadata) Metadata() *EventMetadata {
	return m
}

func (m *EventMetadata) protocolEvent() {}

// ProtocolEvent 封闭的事件联合类型：只有嵌入 EventMetadata 的本包事件结构体才能实现
type ProtocolEvent interface {
	Type() EventType
	Metadata() *EventMetadata
	// PartitionKey 用于 Kafka 分区的账户（池子或 mint）
	PartitionKey() types.Pubkey
	protocolEvent()
}

// CanMerge 同一事件类型才允许合并
func CanMerge(a, b ProtocolEvent) bool {
	return a != nil && b != nil && a.Type() == b.Type()
}

// EventTypeFilter 事件类型白名单（位图）。nil 表示全部解析。
type EventTypeFilter struct {
	mask uint64
}

func IncludeOnly(kinds ...EventType) *EventTypeFilter {
	f := &EventTypeFilter{}
	for _, k := range kinds {
		if k > EventTypeUnknown && k < eventTypeCount {
			f.mask |= 1 << k
		}
	}
	return f
}

func (f *EventTypeFilter) ShouldInclude(t EventType) bool {
	if f == nil {
		return true
	}
	return t < eventTypeCount && f.mask&(1<<t) != 0
}

// ShouldIncludeAny 任一类型命中即返回 true（同一判别符可能对应多种事件）
func (f *EventTypeFilter) ShouldIncludeAny(kinds []EventType) bool {
	if f == nil {
		return true
	}
	for _, k := range kinds {
		if f.ShouldInclude(k) {
			return true
		}
	}
	return false
}

// BuildEventID 构造 slot 内唯一事件 ID（uint32），由 txIndex、ixIndex、innerIndex 组合而成：
//
//	[ 16 bits txIndex ] [ 8 bits ixIndex ] [ 8 bits innerIndex ]
func BuildEventID(txIndex uint32, ixIndex uint16, innerIndex uint16) uint32 {
	return (txIndex << 16) | (uint32(ixIndex&0xFF) << 8) | uint32(innerIndex&0xFF)
}
