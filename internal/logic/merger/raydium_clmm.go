package merger

import "dex-event-parser-sol/internal/logic/core"

// ZeroForOne 来自日志；IsBaseInput 只有指令携带，按哨兵规则回填
func mergeRaydiumClmmSwap(l, ix *core.RaydiumClmmSwapEvent) *core.RaydiumClmmSwapEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.Sender, ix.Sender)
	fill(&out.AmmConfig, ix.AmmConfig)
	fill(&out.TokenAccount0, ix.TokenAccount0)
	fill(&out.TokenAccount1, ix.TokenAccount1)
	fill(&out.InputVault, ix.InputVault)
	fill(&out.OutputVault, ix.OutputVault)
	fill(&out.InputVaultMint, ix.InputVaultMint)
	fill(&out.OutputVaultMint, ix.OutputVaultMint)
	fill(&out.Amount0, ix.Amount0)
	fill(&out.TransferFee0, ix.TransferFee0)
	fill(&out.Amount1, ix.Amount1)
	fill(&out.TransferFee1, ix.TransferFee1)
	fill(&out.SqrtPriceX64, ix.SqrtPriceX64)
	fill(&out.Liquidity, ix.Liquidity)
	fill(&out.Tick, ix.Tick)
	fill(&out.Amount, ix.Amount)
	fill(&out.OtherAmountThreshold, ix.OtherAmountThreshold)
	fill(&out.SqrtPriceLimitX64, ix.SqrtPriceLimitX64)
	fill(&out.IsBaseInput, ix.IsBaseInput)
	return &out
}

func mergeRaydiumClmmCreatePool(l, ix *core.RaydiumClmmCreatePoolEvent) *core.RaydiumClmmCreatePoolEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolCreator, ix.PoolCreator)
	fill(&out.AmmConfig, ix.AmmConfig)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.TokenMint0, ix.TokenMint0)
	fill(&out.TokenMint1, ix.TokenMint1)
	fill(&out.TokenVault0, ix.TokenVault0)
	fill(&out.TokenVault1, ix.TokenVault1)
	fill(&out.TickSpacing, ix.TickSpacing)
	fill(&out.FeeRate, ix.FeeRate)
	fill(&out.SqrtPriceX64, ix.SqrtPriceX64)
	fill(&out.Tick, ix.Tick)
	fill(&out.OpenTime, ix.OpenTime)
	return &out
}

func mergeRaydiumClmmIncreaseLiquidity(l, ix *core.RaydiumClmmIncreaseLiquidityEvent) *core.RaydiumClmmIncreaseLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.NftOwner, ix.NftOwner)
	fill(&out.PersonalPosition, ix.PersonalPosition)
	fill(&out.PositionNftMint, ix.PositionNftMint)
	fill(&out.Liquidity, ix.Liquidity)
	fill(&out.Amount0, ix.Amount0)
	fill(&out.Amount1, ix.Amount1)
	fill(&out.Amount0TransferFee, ix.Amount0TransferFee)
	fill(&out.Amount1TransferFee, ix.Amount1TransferFee)
	fill(&out.Amount0Max, ix.Amount0Max)
	fill(&out.Amount1Max, ix.Amount1Max)
	return &out
}

func mergeRaydiumClmmDecreaseLiquidity(l, ix *core.RaydiumClmmDecreaseLiquidityEvent) *core.RaydiumClmmDecreaseLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.NftOwner, ix.NftOwner)
	fill(&out.PersonalPosition, ix.PersonalPosition)
	fill(&out.PositionNftMint, ix.PositionNftMint)
	fill(&out.Liquidity, ix.Liquidity)
	fill(&out.DecreaseAmount0, ix.DecreaseAmount0)
	fill(&out.DecreaseAmount1, ix.DecreaseAmount1)
	fill(&out.FeeAmount0, ix.FeeAmount0)
	fill(&out.FeeAmount1, ix.FeeAmount1)
	fill(&out.RewardAmounts, ix.RewardAmounts)
	fill(&out.TransferFee0, ix.TransferFee0)
	fill(&out.TransferFee1, ix.TransferFee1)
	fill(&out.Amount0Min, ix.Amount0Min)
	fill(&out.Amount1Min, ix.Amount1Min)
	return &out
}
