package merger

import "dex-event-parser-sol/internal/logic/core"

func mergePumpSwapAccounts(dst *core.PumpSwapAccounts, src *core.PumpSwapAccounts) {
	fill(&dst.Pool, src.Pool)
	fill(&dst.User, src.User)
	fill(&dst.GlobalConfig, src.GlobalConfig)
	fill(&dst.BaseMint, src.BaseMint)
	fill(&dst.QuoteMint, src.QuoteMint)
	fill(&dst.UserBaseTokenAccount, src.UserBaseTokenAccount)
	fill(&dst.UserQuoteTokenAccount, src.UserQuoteTokenAccount)
	fill(&dst.PoolBaseTokenAccount, src.PoolBaseTokenAccount)
	fill(&dst.PoolQuoteTokenAccount, src.PoolQuoteTokenAccount)
	fill(&dst.ProtocolFeeRecipient, src.ProtocolFeeRecipient)
	fill(&dst.ProtocolFeeRecipientTokenAccount, src.ProtocolFeeRecipientTokenAccount)
}

func mergePumpSwapReserves(dst *core.PumpSwapReserves, src *core.PumpSwapReserves) {
	fill(&dst.UserBaseTokenReserves, src.UserBaseTokenReserves)
	fill(&dst.UserQuoteTokenReserves, src.UserQuoteTokenReserves)
	fill(&dst.PoolBaseTokenReserves, src.PoolBaseTokenReserves)
	fill(&dst.PoolQuoteTokenReserves, src.PoolQuoteTokenReserves)
}

func mergePumpSwapLiquidityAccounts(dst *core.PumpSwapLiquidityAccounts, src *core.PumpSwapLiquidityAccounts) {
	fill(&dst.Pool, src.Pool)
	fill(&dst.User, src.User)
	fill(&dst.BaseMint, src.BaseMint)
	fill(&dst.QuoteMint, src.QuoteMint)
	fill(&dst.LpMint, src.LpMint)
	fill(&dst.UserBaseTokenAccount, src.UserBaseTokenAccount)
	fill(&dst.UserQuoteTokenAccount, src.UserQuoteTokenAccount)
	fill(&dst.UserPoolTokenAccount, src.UserPoolTokenAccount)
}

func mergePumpSwapBuy(l, ix *core.PumpSwapBuyEvent) *core.PumpSwapBuyEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergePumpSwapAccounts(&out.PumpSwapAccounts, &ix.PumpSwapAccounts)
	mergePumpSwapReserves(&out.PumpSwapReserves, &ix.PumpSwapReserves)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.BaseAmountOut, ix.BaseAmountOut)
	fill(&out.MaxQuoteAmountIn, ix.MaxQuoteAmountIn)
	fill(&out.QuoteAmountIn, ix.QuoteAmountIn)
	fill(&out.LpFeeBasisPoints, ix.LpFeeBasisPoints)
	fill(&out.LpFee, ix.LpFee)
	fill(&out.ProtocolFeeBasisPoints, ix.ProtocolFeeBasisPoints)
	fill(&out.ProtocolFee, ix.ProtocolFee)
	fill(&out.QuoteAmountInWithLpFee, ix.QuoteAmountInWithLpFee)
	fill(&out.UserQuoteAmountIn, ix.UserQuoteAmountIn)
	return &out
}

func mergePumpSwapSell(l, ix *core.PumpSwapSellEvent) *core.PumpSwapSellEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergePumpSwapAccounts(&out.PumpSwapAccounts, &ix.PumpSwapAccounts)
	mergePumpSwapReserves(&out.PumpSwapReserves, &ix.PumpSwapReserves)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.BaseAmountIn, ix.BaseAmountIn)
	fill(&out.MinQuoteAmountOut, ix.MinQuoteAmountOut)
	fill(&out.QuoteAmountOut, ix.QuoteAmountOut)
	fill(&out.LpFeeBasisPoints, ix.LpFeeBasisPoints)
	fill(&out.LpFee, ix.LpFee)
	fill(&out.ProtocolFeeBasisPoints, ix.ProtocolFeeBasisPoints)
	fill(&out.ProtocolFee, ix.ProtocolFee)
	fill(&out.QuoteAmountOutWithoutLpFee, ix.QuoteAmountOutWithoutLpFee)
	fill(&out.UserQuoteAmountOut, ix.UserQuoteAmountOut)
	return &out
}

func mergePumpSwapCreatePool(l, ix *core.PumpSwapCreatePoolEvent) *core.PumpSwapCreatePoolEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.GlobalConfig, ix.GlobalConfig)
	fill(&out.Creator, ix.Creator)
	fill(&out.BaseMint, ix.BaseMint)
	fill(&out.QuoteMint, ix.QuoteMint)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.UserBaseTokenAccount, ix.UserBaseTokenAccount)
	fill(&out.UserQuoteTokenAccount, ix.UserQuoteTokenAccount)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.Index, ix.Index)
	fill(&out.BaseMintDecimals, ix.BaseMintDecimals)
	fill(&out.QuoteMintDecimals, ix.QuoteMintDecimals)
	fill(&out.BaseAmountIn, ix.BaseAmountIn)
	fill(&out.QuoteAmountIn, ix.QuoteAmountIn)
	fill(&out.PoolBaseAmount, ix.PoolBaseAmount)
	fill(&out.PoolQuoteAmount, ix.PoolQuoteAmount)
	fill(&out.MinimumLiquidity, ix.MinimumLiquidity)
	fill(&out.InitialLiquidity, ix.InitialLiquidity)
	fill(&out.LpTokenAmountOut, ix.LpTokenAmountOut)
	fill(&out.PoolBump, ix.PoolBump)
	return &out
}

func mergePumpSwapDeposit(l, ix *core.PumpSwapDepositEvent) *core.PumpSwapDepositEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergePumpSwapLiquidityAccounts(&out.PumpSwapLiquidityAccounts, &ix.PumpSwapLiquidityAccounts)
	mergePumpSwapReserves(&out.PumpSwapReserves, &ix.PumpSwapReserves)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.LpTokenAmountOut, ix.LpTokenAmountOut)
	fill(&out.MaxBaseAmountIn, ix.MaxBaseAmountIn)
	fill(&out.MaxQuoteAmountIn, ix.MaxQuoteAmountIn)
	fill(&out.BaseAmountIn, ix.BaseAmountIn)
	fill(&out.QuoteAmountIn, ix.QuoteAmountIn)
	fill(&out.LpMintSupply, ix.LpMintSupply)
	return &out
}

func mergePumpSwapWithdraw(l, ix *core.PumpSwapWithdrawEvent) *core.PumpSwapWithdrawEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergePumpSwapLiquidityAccounts(&out.PumpSwapLiquidityAccounts, &ix.PumpSwapLiquidityAccounts)
	mergePumpSwapReserves(&out.PumpSwapReserves, &ix.PumpSwapReserves)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.LpTokenAmountIn, ix.LpTokenAmountIn)
	fill(&out.MinBaseAmountOut, ix.MinBaseAmountOut)
	fill(&out.MinQuoteAmountOut, ix.MinQuoteAmountOut)
	fill(&out.BaseAmountOut, ix.BaseAmountOut)
	fill(&out.QuoteAmountOut, ix.QuoteAmountOut)
	fill(&out.LpMintSupply, ix.LpMintSupply)
	return &out
}
