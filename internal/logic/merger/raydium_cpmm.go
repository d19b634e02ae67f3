package merger

import "dex-event-parser-sol/internal/logic/core"

// BaseInput 来自日志，不参与回填
func mergeRaydiumCpmmSwap(l, ix *core.RaydiumCpmmSwapEvent) *core.RaydiumCpmmSwapEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.Payer, ix.Payer)
	fill(&out.AmmConfig, ix.AmmConfig)
	fill(&out.InputTokenAccount, ix.InputTokenAccount)
	fill(&out.OutputTokenAccount, ix.OutputTokenAccount)
	fill(&out.InputVault, ix.InputVault)
	fill(&out.OutputVault, ix.OutputVault)
	fill(&out.InputTokenMint, ix.InputTokenMint)
	fill(&out.OutputTokenMint, ix.OutputTokenMint)
	fill(&out.InputVaultBefore, ix.InputVaultBefore)
	fill(&out.OutputVaultBefore, ix.OutputVaultBefore)
	fill(&out.InputAmount, ix.InputAmount)
	fill(&out.OutputAmount, ix.OutputAmount)
	fill(&out.InputTransferFee, ix.InputTransferFee)
	fill(&out.OutputTransferFee, ix.OutputTransferFee)
	fill(&out.TradeFee, ix.TradeFee)
	fill(&out.MinimumAmountOut, ix.MinimumAmountOut)
	fill(&out.MaxAmountIn, ix.MaxAmountIn)
	return &out
}

func mergeRaydiumCpmmLiquidity(dst *core.RaydiumCpmmLiquidity, src *core.RaydiumCpmmLiquidity) {
	fill(&dst.PoolState, src.PoolState)
	fill(&dst.Owner, src.Owner)
	fill(&dst.Token0Mint, src.Token0Mint)
	fill(&dst.Token1Mint, src.Token1Mint)
	fill(&dst.LpMint, src.LpMint)
	fill(&dst.LpAmountBefore, src.LpAmountBefore)
	fill(&dst.Token0VaultBefore, src.Token0VaultBefore)
	fill(&dst.Token1VaultBefore, src.Token1VaultBefore)
	fill(&dst.LpTokenAmount, src.LpTokenAmount)
	fill(&dst.Token0Amount, src.Token0Amount)
	fill(&dst.Token1Amount, src.Token1Amount)
	fill(&dst.Token0TransferFee, src.Token0TransferFee)
	fill(&dst.Token1TransferFee, src.Token1TransferFee)
	fill(&dst.Token0AmountLimit, src.Token0AmountLimit)
	fill(&dst.Token1AmountLimit, src.Token1AmountLimit)
}

func mergeRaydiumCpmmDeposit(l, ix *core.RaydiumCpmmDepositEvent) *core.RaydiumCpmmDepositEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergeRaydiumCpmmLiquidity(&out.RaydiumCpmmLiquidity, &ix.RaydiumCpmmLiquidity)
	return &out
}

func mergeRaydiumCpmmWithdraw(l, ix *core.RaydiumCpmmWithdrawEvent) *core.RaydiumCpmmWithdrawEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	mergeRaydiumCpmmLiquidity(&out.RaydiumCpmmLiquidity, &ix.RaydiumCpmmLiquidity)
	return &out
}

func mergeRaydiumCpmmInitialize(l, ix *core.RaydiumCpmmInitializeEvent) *core.RaydiumCpmmInitializeEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Creator, ix.Creator)
	fill(&out.AmmConfig, ix.AmmConfig)
	fill(&out.PoolState, ix.PoolState)
	fill(&out.Token0Mint, ix.Token0Mint)
	fill(&out.Token1Mint, ix.Token1Mint)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.InitAmount0, ix.InitAmount0)
	fill(&out.InitAmount1, ix.InitAmount1)
	fill(&out.OpenTime, ix.OpenTime)
	return &out
}
