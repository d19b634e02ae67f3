package merger

import "dex-event-parser-sol/internal/logic/core"

// HasReferral 来自日志
func mergeMeteoraDammV2Swap(l, ix *core.MeteoraDammV2SwapEvent) *core.MeteoraDammV2SwapEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.InputTokenAccount, ix.InputTokenAccount)
	fill(&out.OutputTokenAccount, ix.OutputTokenAccount)
	fill(&out.TokenAMint, ix.TokenAMint)
	fill(&out.TokenBMint, ix.TokenBMint)
	fill(&out.Payer, ix.Payer)
	fill(&out.TradeDirection, ix.TradeDirection)
	fill(&out.AmountIn, ix.AmountIn)
	fill(&out.MinimumAmountOut, ix.MinimumAmountOut)
	fill(&out.OutputAmount, ix.OutputAmount)
	fill(&out.NextSqrtPrice, ix.NextSqrtPrice)
	fill(&out.LpFee, ix.LpFee)
	fill(&out.ProtocolFee, ix.ProtocolFee)
	fill(&out.PartnerFee, ix.PartnerFee)
	fill(&out.ReferralFee, ix.ReferralFee)
	fill(&out.ActualAmountIn, ix.ActualAmountIn)
	fill(&out.CurrentTimestamp, ix.CurrentTimestamp)
	return &out
}

func mergeMeteoraDammV2AddLiquidity(l, ix *core.MeteoraDammV2AddLiquidityEvent) *core.MeteoraDammV2AddLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.Position, ix.Position)
	fill(&out.Owner, ix.Owner)
	fill(&out.TokenAMint, ix.TokenAMint)
	fill(&out.TokenBMint, ix.TokenBMint)
	fill(&out.LiquidityDelta, ix.LiquidityDelta)
	fill(&out.TokenAAmountThreshold, ix.TokenAAmountThreshold)
	fill(&out.TokenBAmountThreshold, ix.TokenBAmountThreshold)
	fill(&out.TokenAAmount, ix.TokenAAmount)
	fill(&out.TokenBAmount, ix.TokenBAmount)
	fill(&out.TotalAmountA, ix.TotalAmountA)
	fill(&out.TotalAmountB, ix.TotalAmountB)
	return &out
}

func mergeMeteoraDammV2RemoveLiquidity(l, ix *core.MeteoraDammV2RemoveLiquidityEvent) *core.MeteoraDammV2RemoveLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.Position, ix.Position)
	fill(&out.Owner, ix.Owner)
	fill(&out.TokenAMint, ix.TokenAMint)
	fill(&out.TokenBMint, ix.TokenBMint)
	fill(&out.LiquidityDelta, ix.LiquidityDelta)
	fill(&out.TokenAAmountThreshold, ix.TokenAAmountThreshold)
	fill(&out.TokenBAmountThreshold, ix.TokenBAmountThreshold)
	fill(&out.TokenAAmount, ix.TokenAAmount)
	fill(&out.TokenBAmount, ix.TokenBAmount)
	return &out
}

func mergeMeteoraDammV2InitializePool(l, ix *core.MeteoraDammV2InitializePoolEvent) *core.MeteoraDammV2InitializePoolEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.Creator, ix.Creator)
	fill(&out.PositionNftMint, ix.PositionNftMint)
	fill(&out.Payer, ix.Payer)
	fill(&out.Config, ix.Config)
	fill(&out.Position, ix.Position)
	fill(&out.TokenAMint, ix.TokenAMint)
	fill(&out.TokenBMint, ix.TokenBMint)
	fill(&out.AlphaVault, ix.AlphaVault)
	fill(&out.Liquidity, ix.Liquidity)
	fill(&out.SqrtPrice, ix.SqrtPrice)
	fill(&out.ActivationPoint, ix.ActivationPoint)
	return &out
}

func mergeMeteoraDammV2ClaimPositionFee(l, ix *core.MeteoraDammV2ClaimPositionFeeEvent) *core.MeteoraDammV2ClaimPositionFeeEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.Position, ix.Position)
	fill(&out.Owner, ix.Owner)
	fill(&out.TokenAMint, ix.TokenAMint)
	fill(&out.TokenBMint, ix.TokenBMint)
	fill(&out.FeeAClaimed, ix.FeeAClaimed)
	fill(&out.FeeBClaimed, ix.FeeBClaimed)
	return &out
}

func mergeMeteoraDammV2FundReward(l, ix *core.MeteoraDammV2FundRewardEvent) *core.MeteoraDammV2FundRewardEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.RewardVault, ix.RewardVault)
	fill(&out.RewardMint, ix.RewardMint)
	fill(&out.Funder, ix.Funder)
	fill(&out.RewardIndex, ix.RewardIndex)
	fill(&out.Amount, ix.Amount)
	fill(&out.TransferFeeExcludedAmountIn, ix.TransferFeeExcludedAmountIn)
	fill(&out.CarryForward, ix.CarryForward)
	return &out
}

func mergeMeteoraDammV2ClaimReward(l, ix *core.MeteoraDammV2ClaimRewardEvent) *core.MeteoraDammV2ClaimRewardEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.Position, ix.Position)
	fill(&out.Owner, ix.Owner)
	fill(&out.RewardMint, ix.RewardMint)
	fill(&out.RewardIndex, ix.RewardIndex)
	fill(&out.TotalReward, ix.TotalReward)
	return &out
}
