package merger

import "dex-event-parser-sol/internal/logic/core"

func mergeBonkTrade(l, ix *core.BonkTradeEvent) *core.BonkTradeEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.Payer, ix.Payer)
	fill(&out.GlobalConfig, ix.GlobalConfig)
	fill(&out.PlatformConfig, ix.PlatformConfig)
	fill(&out.BaseMint, ix.BaseMint)
	fill(&out.QuoteMint, ix.QuoteMint)
	fill(&out.TotalBaseSell, ix.TotalBaseSell)
	fill(&out.VirtualBase, ix.VirtualBase)
	fill(&out.VirtualQuote, ix.VirtualQuote)
	fill(&out.RealBaseBefore, ix.RealBaseBefore)
	fill(&out.RealQuoteBefore, ix.RealQuoteBefore)
	fill(&out.RealBaseAfter, ix.RealBaseAfter)
	fill(&out.RealQuoteAfter, ix.RealQuoteAfter)
	fill(&out.AmountIn, ix.AmountIn)
	fill(&out.AmountOut, ix.AmountOut)
	fill(&out.ProtocolFee, ix.ProtocolFee)
	fill(&out.PlatformFee, ix.PlatformFee)
	fill(&out.ShareFee, ix.ShareFee)
	fill(&out.TradeDirection, ix.TradeDirection)
	fill(&out.PoolStatus, ix.PoolStatus)
	fill(&out.ExactIn, ix.ExactIn)
	fill(&out.MinimumAmountOut, ix.MinimumAmountOut)
	fill(&out.MaximumAmountIn, ix.MaximumAmountIn)
	fill(&out.ShareFeeRate, ix.ShareFeeRate)
	return &out
}

func mergeBonkPoolCreate(l, ix *core.BonkPoolCreateEvent) *core.BonkPoolCreateEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.Creator, ix.Creator)
	fill(&out.Payer, ix.Payer)
	fill(&out.GlobalConfig, ix.GlobalConfig)
	fill(&out.PlatformConfig, ix.PlatformConfig)
	fill(&out.BaseMint, ix.BaseMint)
	fill(&out.QuoteMint, ix.QuoteMint)
	fill(&out.Decimals, ix.Decimals)
	fill(&out.Name, ix.Name)
	fill(&out.Symbol, ix.Symbol)
	fill(&out.Uri, ix.Uri)
	return &out
}
