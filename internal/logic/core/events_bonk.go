package core

import "dex-event-parser-sol/internal/types"

// TradeDirection Bonk 交易方向
type TradeDirection uint8

const (
	TradeDirectionBuy  TradeDirection = 0
	TradeDirectionSell TradeDirection = 1
)

type BonkTradeEvent struct {
	EventMetadata
	PoolState        types.Pubkey
	Payer            types.Pubkey
	GlobalConfig     types.Pubkey
	PlatformConfig   types.Pubkey
	BaseMint         types.Pubkey
	QuoteMint        types.Pubkey
	TotalBaseSell    uint64
	VirtualBase      uint64
	VirtualQuote     uint64
	RealBaseBefore   uint64
	RealQuoteBefore  uint64
	RealBaseAfter    uint64
	RealQuoteAfter   uint64
	AmountIn         uint64
	AmountOut        uint64
	ProtocolFee      uint64
	PlatformFee      uint64
	ShareFee         uint64
	TradeDirection   TradeDirection
	PoolStatus       uint8
	ExactIn          bool
	MinimumAmountOut uint64
	MaximumAmountIn  uint64
	ShareFeeRate     uint64
}

func (e *BonkTradeEvent) Type() EventType            { return EventBonkTrade }
func (e *BonkTradeEvent) PartitionKey() types.Pubkey { return e.PoolState }

type BonkPoolCreateEvent struct {
	EventMetadata
	PoolState      types.Pubkey
	Creator        types.Pubkey
	Payer          types.Pubkey
	GlobalConfig   types.Pubkey
	PlatformConfig types.Pubkey
	BaseMint       types.Pubkey
	QuoteMint      types.Pubkey
	Decimals       uint8
	Name           string
	Symbol         string
	Uri            string
}

func (e *BonkPoolCreateEvent) Type() EventType            { return EventBonkPoolCreate }
func (e *BonkPoolCreateEvent) PartitionKey() types.Pubkey { return e.PoolState }
