package meteoradammv2

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// EvtSwap: pool, trade_direction, has_referral, params{amount_in, minimum_amount_out},
// swap_result{output_amount, next_sqrt_price, lp_fee, protocol_fee, partner_fee, referral_fee},
// actual_amount_in, current_timestamp
func decodeSwapLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2SwapEvent{
		EventMetadata:    meta,
		Pool:             r.Pubkey(),
		TradeDirection:   r.U8(),
		HasReferral:      r.Bool(),
		AmountIn:         r.U64(),
		MinimumAmountOut: r.U64(),
		OutputAmount:     r.U64(),
		NextSqrtPrice:    r.U128(),
		LpFee:            r.U64(),
		ProtocolFee:      r.U64(),
		PartnerFee:       r.U64(),
		ReferralFee:      r.U64(),
		ActualAmountIn:   r.U64(),
		CurrentTimestamp: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeAddLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2AddLiquidityEvent{
		EventMetadata:         meta,
		Pool:                  r.Pubkey(),
		Position:              r.Pubkey(),
		Owner:                 r.Pubkey(),
		LiquidityDelta:        r.U128(),
		TokenAAmountThreshold: r.U64(),
		TokenBAmountThreshold: r.U64(),
		TokenAAmount:          r.U64(),
		TokenBAmount:          r.U64(),
		TotalAmountA:          r.U64(),
		TotalAmountB:          r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeRemoveLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2RemoveLiquidityEvent{
		EventMetadata:         meta,
		Pool:                  r.Pubkey(),
		Position:              r.Pubkey(),
		Owner:                 r.Pubkey(),
		LiquidityDelta:        r.U128(),
		TokenAAmountThreshold: r.U64(),
		TokenBAmountThreshold: r.U64(),
		TokenAAmount:          r.U64(),
		TokenBAmount:          r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// EvtInitializePool 只取前 6 个地址，后续 pool_fees 等嵌套结构不解析
func decodeInitializePoolLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2InitializePoolEvent{
		EventMetadata: meta,
		Pool:          r.Pubkey(),
		TokenAMint:    r.Pubkey(),
		TokenBMint:    r.Pubkey(),
		Creator:       r.Pubkey(),
		Payer:         r.Pubkey(),
		AlphaVault:    r.Pubkey(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeClaimPositionFeeLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2ClaimPositionFeeEvent{
		EventMetadata: meta,
		Pool:          r.Pubkey(),
		Position:      r.Pubkey(),
		Owner:         r.Pubkey(),
		FeeAClaimed:   r.U64(),
		FeeBClaimed:   r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeFundRewardLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2FundRewardEvent{
		EventMetadata:               meta,
		Pool:                        r.Pubkey(),
		Funder:                      r.Pubkey(),
		RewardMint:                  r.Pubkey(),
		RewardIndex:                 r.U8(),
		Amount:                      r.U64(),
		TransferFeeExcludedAmountIn: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeClaimRewardLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraDammV2ClaimRewardEvent{
		EventMetadata: meta,
		Pool:          r.Pubkey(),
		Position:      r.Pubkey(),
		Owner:         r.Pubkey(),
		RewardMint:    r.Pubkey(),
		RewardIndex:   r.U8(),
		TotalReward:   r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
