package pumpfun

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// decodeTradeLog TradeEvent：
// mint, sol_amount, token_amount, is_buy, user, timestamp, 四个储备字段为必需；
// fee_recipient 起的手续费字段为新版追加，缺失时保持零值。
func decodeTradeLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpFunTradeEvent{
		EventMetadata:        meta,
		Mint:                 r.Pubkey(),
		SolAmount:            r.U64(),
		TokenAmount:          r.U64(),
		IsBuy:                r.Bool(),
		User:                 r.Pubkey(),
		Timestamp:            r.I64(),
		VirtualSolReserves:   r.U64(),
		VirtualTokenReserves: r.U64(),
		RealSolReserves:      r.U64(),
		RealTokenReserves:    r.U64(),
	}
	if !r.Ok() {
		return nil
	}

	// fee_recipient(32) + fee_bps + fee + creator(32) + creator_fee_bps + creator_fee
	if r.Remaining() >= 32+8+8+32+8+8 {
		evt.FeeRecipient = r.Pubkey()
		evt.FeeBasisPoints = r.U64()
		evt.Fee = r.U64()
		evt.Creator = r.Pubkey()
		evt.CreatorFeeBasisPoints = r.U64()
		evt.CreatorFee = r.U64()
	}
	return evt
}

// decodeCreateLog CreateEvent：name, symbol, uri, mint, bonding_curve, user 为必需，
// creator 与储备字段为新版追加。
func decodeCreateLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpFunCreateTokenEvent{
		EventMetadata: meta,
		Name:          r.String(),
		Symbol:        r.String(),
		Uri:           r.String(),
		Mint:          r.Pubkey(),
		BondingCurve:  r.Pubkey(),
		User:          r.Pubkey(),
	}
	if !r.Ok() {
		return nil
	}

	if r.Remaining() >= 32+8*5 {
		evt.Creator = r.Pubkey()
		evt.Timestamp = r.I64()
		evt.VirtualTokenReserves = r.U64()
		evt.VirtualSolReserves = r.U64()
		evt.RealTokenReserves = r.U64()
		evt.TokenTotalSupply = r.U64()
	}
	return evt
}

// decodeCompleteLog CompleteEvent：user, mint, bonding_curve, timestamp
func decodeCompleteLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpFunCompleteEvent{
		EventMetadata: meta,
		User:          r.Pubkey(),
		Mint:          r.Pubkey(),
		BondingCurve:  r.Pubkey(),
		Timestamp:     r.I64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodeMigrateLog CompletePumpAmmMigrationEvent：
// user, mint, mint_amount, sol_amount, pool_migration_fee, bonding_curve, timestamp, pool
func decodeMigrateLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpFunMigrateEvent{
		EventMetadata:    meta,
		User:             r.Pubkey(),
		Mint:             r.Pubkey(),
		MintAmount:       r.U64(),
		SolAmount:        r.U64(),
		PoolMigrationFee: r.U64(),
		BondingCurve:     r.Pubkey(),
		Timestamp:        r.I64(),
		Pool:             r.Pubkey(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
