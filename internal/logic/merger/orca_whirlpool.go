package merger

import "dex-event-parser-sol/internal/logic/core"

// AToB 来自日志；AmountSpecifiedIsInput 只有指令携带
func mergeOrcaWhirlpoolSwap(l, ix *core.OrcaWhirlpoolSwapEvent) *core.OrcaWhirlpoolSwapEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Whirlpool, ix.Whirlpool)
	fill(&out.TokenAuthority, ix.TokenAuthority)
	fill(&out.TokenMintA, ix.TokenMintA)
	fill(&out.TokenMintB, ix.TokenMintB)
	fill(&out.TokenOwnerAccountA, ix.TokenOwnerAccountA)
	fill(&out.TokenVaultA, ix.TokenVaultA)
	fill(&out.TokenOwnerAccountB, ix.TokenOwnerAccountB)
	fill(&out.TokenVaultB, ix.TokenVaultB)
	fill(&out.PreSqrtPrice, ix.PreSqrtPrice)
	fill(&out.PostSqrtPrice, ix.PostSqrtPrice)
	fill(&out.InputAmount, ix.InputAmount)
	fill(&out.OutputAmount, ix.OutputAmount)
	fill(&out.InputTransferFee, ix.InputTransferFee)
	fill(&out.OutputTransferFee, ix.OutputTransferFee)
	fill(&out.LpFee, ix.LpFee)
	fill(&out.ProtocolFee, ix.ProtocolFee)
	fill(&out.Amount, ix.Amount)
	fill(&out.OtherAmountThreshold, ix.OtherAmountThreshold)
	fill(&out.SqrtPriceLimit, ix.SqrtPriceLimit)
	fill(&out.AmountSpecifiedIsInput, ix.AmountSpecifiedIsInput)
	return &out
}

func mergeOrcaWhirlpoolLiquidity(dst *core.OrcaWhirlpoolLiquidity, src *core.OrcaWhirlpoolLiquidity) {
	fill(&dst.Whirlpool, src.Whirlpool)
	fill(&dst.PositionAuthority, src.PositionAuthority)
	fill(&dst.Position, src.Position)
	fill(&dst.TokenMintA, src.TokenMintA)
	fill(&dst.TokenMintB, src.TokenMintB)
	fill(&dst.TickLowerIndex, src.TickLowerIndex)
	fill(&dst.TickUpperIndex, src.TickUpperIndex)
	fill(&dst.Liquidity, src.Liquidity)
	fill(&dst.TokenAAmount, src.TokenAAmount)
	fill(&dst.TokenBAmount, src.TokenBAmount)
	fill(&dst.TokenATransferFee, src.TokenATransferFee)
	fill(&dst.TokenBTransferFee, src.TokenBTransferFee)
	fill(&dst.TokenLimitA, src.TokenLimitA)
	fill(&dst.TokenLimitB, src.TokenLimitB)
}

func mergeOrcaWhirlpoolIncreaseLiquidity(l, ix *core.OrcaWhirlpoolIncreaseLiquidityEvent) *core.OrcaWhirlpoolIncreaseLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergeOrcaWhirlpoolLiquidity(&out.OrcaWhirlpoolLiquidity, &ix.OrcaWhirlpoolLiquidity)
	return &out
}

func mergeOrcaWhirlpoolDecreaseLiquidity(l, ix *core.OrcaWhirlpoolDecreaseLiquidityEvent) *core.OrcaWhirlpoolDecreaseLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergeOrcaWhirlpoolLiquidity(&out.OrcaWhirlpoolLiquidity, &ix.OrcaWhirlpoolLiquidity)
	return &out
}

func mergeOrcaWhirlpoolPoolInitialize(l, ix *core.OrcaWhirlpoolPoolInitializeEvent) *core.OrcaWhirlpoolPoolInitializeEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Whirlpool, ix.Whirlpool)
	fill(&out.WhirlpoolsConfig, ix.WhirlpoolsConfig)
	fill(&out.TokenMintA, ix.TokenMintA)
	fill(&out.TokenMintB, ix.TokenMintB)
	fill(&out.Funder, ix.Funder)
	fill(&out.TokenProgramA, ix.TokenProgramA)
	fill(&out.TokenProgramB, ix.TokenProgramB)
	fill(&out.TickSpacing, ix.TickSpacing)
	fill(&out.DecimalsA, ix.DecimalsA)
	fill(&out.DecimalsB, ix.DecimalsB)
	fill(&out.InitialSqrtPrice, ix.InitialSqrtPrice)
	fill(&out.Bump, ix.Bump)
	return &out
}
