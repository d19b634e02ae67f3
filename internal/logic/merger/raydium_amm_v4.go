package merger

import "dex-event-parser-sol/internal/logic/core"

// BaseIn 由 ray_log 类型决定，不参与回填
func mergeRaydiumAmmV4Swap(l, ix *core.RaydiumAmmV4SwapEvent) *core.RaydiumAmmV4SwapEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Amm, ix.Amm)
	fill(&out.PoolCoinTokenAccount, ix.PoolCoinTokenAccount)
	fill(&out.PoolPcTokenAccount, ix.PoolPcTokenAccount)
	fill(&out.UserSourceTokenAccount, ix.UserSourceTokenAccount)
	fill(&out.UserDestTokenAccount, ix.UserDestTokenAccount)
	fill(&out.UserSourceOwner, ix.UserSourceOwner)
	fill(&out.AmountIn, ix.AmountIn)
	fill(&out.MinimumAmountOut, ix.MinimumAmountOut)
	fill(&out.MaxAmountIn, ix.MaxAmountIn)
	fill(&out.AmountOut, ix.AmountOut)
	fill(&out.Direction, ix.Direction)
	fill(&out.UserSource, ix.UserSource)
	fill(&out.PoolCoin, ix.PoolCoin)
	fill(&out.PoolPc, ix.PoolPc)
	return &out
}

func mergeRaydiumAmmV4Deposit(l, ix *core.RaydiumAmmV4DepositEvent) *core.RaydiumAmmV4DepositEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Amm, ix.Amm)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.UserOwner, ix.UserOwner)
	fill(&out.MaxCoinAmount, ix.MaxCoinAmount)
	fill(&out.MaxPcAmount, ix.MaxPcAmount)
	fill(&out.BaseSide, ix.BaseSide)
	fill(&out.PoolCoin, ix.PoolCoin)
	fill(&out.PoolPc, ix.PoolPc)
	fill(&out.PoolLp, ix.PoolLp)
	fill(&out.PoolPnlX, ix.PoolPnlX)
	fill(&out.PoolPnlY, ix.PoolPnlY)
	fill(&out.DeductCoin, ix.DeductCoin)
	fill(&out.DeductPc, ix.DeductPc)
	fill(&out.MintLp, ix.MintLp)
	return &out
}

func mergeRaydiumAmmV4Withdraw(l, ix *core.RaydiumAmmV4WithdrawEvent) *core.RaydiumAmmV4WithdrawEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Amm, ix.Amm)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.UserOwner, ix.UserOwner)
	fill(&out.WithdrawLp, ix.WithdrawLp)
	fill(&out.UserLp, ix.UserLp)
	fill(&out.PoolCoin, ix.PoolCoin)
	fill(&out.PoolPc, ix.PoolPc)
	fill(&out.PoolLp, ix.PoolLp)
	fill(&out.PoolPnlX, ix.PoolPnlX)
	fill(&out.PoolPnlY, ix.PoolPnlY)
	fill(&out.OutCoin, ix.OutCoin)
	fill(&out.OutPc, ix.OutPc)
	return &out
}

func mergeRaydiumAmmV4Initialize(l, ix *core.RaydiumAmmV4InitializeEvent) *core.RaydiumAmmV4InitializeEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Amm, ix.Amm)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.CoinMint, ix.CoinMint)
	fill(&out.PcMint, ix.PcMint)
	fill(&out.PoolCoinVault, ix.PoolCoinVault)
	fill(&out.PoolPcVault, ix.PoolPcVault)
	fill(&out.Market, ix.Market)
	fill(&out.UserWallet, ix.UserWallet)
	fill(&out.Nonce, ix.Nonce)
	fill(&out.OpenTime, ix.OpenTime)
	fill(&out.InitPcAmount, ix.InitPcAmount)
	fill(&out.InitCoinAmount, ix.InitCoinAmount)
	fill(&out.Time, ix.Time)
	fill(&out.PcDecimals, ix.PcDecimals)
	fill(&out.CoinDecimals, ix.CoinDecimals)
	fill(&out.PcLotSize, ix.PcLotSize)
	fill(&out.CoinLotSize, ix.CoinLotSize)
	return &out
}
