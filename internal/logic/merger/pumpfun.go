package merger

import "dex-event-parser-sol/internal/logic/core"

// IsBuy 来自日志，不参与回填
func mergePumpFunTrade(l, ix *core.PumpFunTradeEvent) *core.PumpFunTradeEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Mint, ix.Mint)
	fill(&out.BondingCurve, ix.BondingCurve)
	fill(&out.AssociatedBondingCurve, ix.AssociatedBondingCurve)
	fill(&out.User, ix.User)
	fill(&out.FeeRecipient, ix.FeeRecipient)
	fill(&out.Creator, ix.Creator)
	fill(&out.SolAmount, ix.SolAmount)
	fill(&out.TokenAmount, ix.TokenAmount)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.VirtualSolReserves, ix.VirtualSolReserves)
	fill(&out.VirtualTokenReserves, ix.VirtualTokenReserves)
	fill(&out.RealSolReserves, ix.RealSolReserves)
	fill(&out.RealTokenReserves, ix.RealTokenReserves)
	fill(&out.FeeBasisPoints, ix.FeeBasisPoints)
	fill(&out.Fee, ix.Fee)
	fill(&out.CreatorFeeBasisPoints, ix.CreatorFeeBasisPoints)
	fill(&out.CreatorFee, ix.CreatorFee)
	fill(&out.MaxSolCost, ix.MaxSolCost)
	fill(&out.MinSolOutput, ix.MinSolOutput)
	return &out
}

func mergePumpFunCreateToken(l, ix *core.PumpFunCreateTokenEvent) *core.PumpFunCreateTokenEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.Name, ix.Name)
	fill(&out.Symbol, ix.Symbol)
	fill(&out.Uri, ix.Uri)
	fill(&out.Mint, ix.Mint)
	fill(&out.BondingCurve, ix.BondingCurve)
	fill(&out.AssociatedBondingCurve, ix.AssociatedBondingCurve)
	fill(&out.User, ix.User)
	fill(&out.Creator, ix.Creator)
	fill(&out.Timestamp, ix.Timestamp)
	fill(&out.VirtualTokenReserves, ix.VirtualTokenReserves)
	fill(&out.VirtualSolReserves, ix.VirtualSolReserves)
	fill(&out.RealTokenReserves, ix.RealTokenReserves)
	fill(&out.TokenTotalSupply, ix.TokenTotalSupply)
	return &out
}

func mergePumpFunComplete(l, ix *core.PumpFunCompleteEvent) *core.PumpFunCompleteEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.User, ix.User)
	fill(&out.Mint, ix.Mint)
	fill(&out.BondingCurve, ix.BondingCurve)
	fill(&out.Timestamp, ix.Timestamp)
	return &out
}

func mergePumpFunMigrate(l, ix *core.PumpFunMigrateEvent) *core.PumpFunMigrateEvent {
	out := *l
	fillMetadata(&out.EventMetadata, &ix.EventMetadata)
	fill(&out.User, ix.User)
	fill(&out.Mint, ix.Mint)
	fill(&out.BondingCurve, ix.BondingCurve)
	fill(&out.Pool, ix.Pool)
	fill(&out.MintAmount, ix.MintAmount)
	fill(&out.SolAmount, ix.SolAmount)
	fill(&out.PoolMigrationFee, ix.PoolMigrationFee)
	fill(&out.Timestamp, ix.Timestamp)
	return &out
}
