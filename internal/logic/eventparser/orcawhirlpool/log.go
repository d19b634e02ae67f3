package orcawhirlpool

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// Traded: whirlpool, a_to_b, pre_sqrt_price, post_sqrt_price, input_amount, output_amount,
// input_transfer_fee, output_transfer_fee, lp_fee, protocol_fee
func decodeTradedLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.OrcaWhirlpoolSwapEvent{
		EventMetadata:     meta,
		Whirlpool:         r.Pubkey(),
		AToB:              r.Bool(),
		PreSqrtPrice:      r.U128(),
		PostSqrtPrice:     r.U128(),
		InputAmount:       r.U64(),
		OutputAmount:      r.U64(),
		InputTransferFee:  r.U64(),
		OutputTransferFee: r.U64(),
		LpFee:             r.U64(),
		ProtocolFee:       r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// readLiquidity LiquidityIncreased / LiquidityDecreased 结构相同：
// whirlpool, position, tick_lower_index, tick_upper_index, liquidity, token_a_amount, token_b_amount,
// token_a_transfer_fee, token_b_transfer_fee
func readLiquidity(payload []byte) (core.OrcaWhirlpoolLiquidity, bool) {
	r := utils.NewReader(payload)
	liq := core.OrcaWhirlpoolLiquidity{
		Whirlpool:         r.Pubkey(),
		Position:          r.Pubkey(),
		TickLowerIndex:    r.I32(),
		TickUpperIndex:    r.I32(),
		Liquidity:         r.U128(),
		TokenAAmount:      r.U64(),
		TokenBAmount:      r.U64(),
		TokenATransferFee: r.U64(),
		TokenBTransferFee: r.U64(),
	}
	return liq, r.Ok()
}

func decodeLiquidityIncreasedLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	liq, ok := readLiquidity(payload)
	if !ok {
		return nil
	}
	return &core.OrcaWhirlpoolIncreaseLiquidityEvent{EventMetadata: meta, OrcaWhirlpoolLiquidity: liq}
}

func decodeLiquidityDecreasedLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	liq, ok := readLiquidity(payload)
	if !ok {
		return nil
	}
	return &core.OrcaWhirlpoolDecreaseLiquidityEvent{EventMetadata: meta, OrcaWhirlpoolLiquidity: liq}
}

// PoolInitialized: whirlpool, whirlpools_config, token_mint_a, token_mint_b, tick_spacing,
// token_program_a, token_program_b, decimals_a, decimals_b, initial_sqrt_price
func decodePoolInitializedLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.OrcaWhirlpoolPoolInitializeEvent{
		EventMetadata:    meta,
		Whirlpool:        r.Pubkey(),
		WhirlpoolsConfig: r.Pubkey(),
		TokenMintA:       r.Pubkey(),
		TokenMintB:       r.Pubkey(),
		TickSpacing:      r.U16(),
		TokenProgramA:    r.Pubkey(),
		TokenProgramB:    r.Pubkey(),
		DecimalsA:        r.U8(),
		DecimalsB:        r.U8(),
		InitialSqrtPrice: r.U128(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
