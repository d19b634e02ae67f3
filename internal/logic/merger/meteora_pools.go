package merger

import "dex-event-parser-sol/internal/logic/core"

func mergeMeteoraPoolsSwap(l, ix *core.MeteoraPoolsSwapEvent) *core.MeteoraPoolsSwapEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.UserSourceToken, ix.UserSourceToken)
	fill(&out.UserDestinationToken, ix.UserDestinationToken)
	fill(&out.AVault, ix.AVault)
	fill(&out.BVault, ix.BVault)
	fill(&out.ProtocolTokenFee, ix.ProtocolTokenFee)
	fill(&out.User, ix.User)
	fill(&out.InAmount, ix.InAmount)
	fill(&out.OutAmount, ix.OutAmount)
	fill(&out.TradeFee, ix.TradeFee)
	fill(&out.ProtocolFee, ix.ProtocolFee)
	fill(&out.HostFee, ix.HostFee)
	fill(&out.MinimumOutAmount, ix.MinimumOutAmount)
	return &out
}

func mergeMeteoraPoolsAddLiquidity(l, ix *core.MeteoraPoolsAddLiquidityEvent) *core.MeteoraPoolsAddLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.User, ix.User)
	fill(&out.LpMintAmount, ix.LpMintAmount)
	fill(&out.TokenAAmount, ix.TokenAAmount)
	fill(&out.TokenBAmount, ix.TokenBAmount)
	fill(&out.PoolTokenAmount, ix.PoolTokenAmount)
	fill(&out.MaximumTokenAAmount, ix.MaximumTokenAAmount)
	fill(&out.MaximumTokenBAmount, ix.MaximumTokenBAmount)
	return &out
}

func mergeMeteoraPoolsRemoveLiquidity(l, ix *core.MeteoraPoolsRemoveLiquidityEvent) *core.MeteoraPoolsRemoveLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.User, ix.User)
	fill(&out.LpUnmintAmount, ix.LpUnmintAmount)
	fill(&out.TokenAOutAmount, ix.TokenAOutAmount)
	fill(&out.TokenBOutAmount, ix.TokenBOutAmount)
	fill(&out.PoolTokenAmount, ix.PoolTokenAmount)
	fill(&out.MinimumTokenAAmount, ix.MinimumTokenAAmount)
	fill(&out.MinimumTokenBAmount, ix.MinimumTokenBAmount)
	return &out
}

func mergeMeteoraPoolsBootstrapLiquidity(l, ix *core.MeteoraPoolsBootstrapLiquidityEvent) *core.MeteoraPoolsBootstrapLiquidityEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Pool, ix.Pool)
	fill(&out.LpMint, ix.LpMint)
	fill(&out.User, ix.User)
	fill(&out.LpMintAmount, ix.LpMintAmount)
	fill(&out.TokenAAmount, ix.TokenAAmount)
	fill(&out.TokenBAmount, ix.TokenBAmount)
	return &out
}
