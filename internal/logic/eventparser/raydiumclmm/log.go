package raydiumclmm

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// decodeSwapLog SwapEvent：
// pool_state, sender, token_account_0, token_account_1, amount_0, transfer_fee_0,
// amount_1, transfer_fee_1, zero_for_one, sqrt_price_x64, liquidity, tick
func decodeSwapLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumClmmSwapEvent{
		EventMetadata: meta,
		PoolState:     r.Pubkey(),
		Sender:        r.Pubkey(),
		TokenAccount0: r.Pubkey(),
		TokenAccount1: r.Pubkey(),
		Amount0:       r.U64(),
		TransferFee0:  r.U64(),
		Amount1:       r.U64(),
		TransferFee1:  r.U64(),
		ZeroForOne:    r.Bool(),
		SqrtPriceX64:  r.U128(),
		Liquidity:     r.U128(),
		Tick:          r.I32(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodePoolCreatedLog PoolCreatedEvent：
// token_mint_0, token_mint_1, tick_spacing, fee_rate, sqrt_price_x64, tick, pool_state, token_vault_0, token_vault_1
func decodePoolCreatedLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumClmmCreatePoolEvent{
		EventMetadata: meta,
		TokenMint0:    r.Pubkey(),
		TokenMint1:    r.Pubkey(),
		TickSpacing:   r.U16(),
		FeeRate:       r.U32(),
		SqrtPriceX64:  r.U128(),
		Tick:          r.I32(),
		PoolState:     r.Pubkey(),
		TokenVault0:   r.Pubkey(),
		TokenVault1:   r.Pubkey(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodeIncreaseLiquidityLog IncreaseLiquidityEvent：
// position_nft_mint, liquidity, amount_0, amount_1, amount_0_transfer_fee, amount_1_transfer_fee
func decodeIncreaseLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumClmmIncreaseLiquidityEvent{
		EventMetadata:      meta,
		PositionNftMint:    r.Pubkey(),
		Liquidity:          r.U128(),
		Amount0:            r.U64(),
		Amount1:            r.U64(),
		Amount0TransferFee: r.U64(),
		Amount1TransferFee: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodeDecreaseLiquidityLog DecreaseLiquidityEvent：
// position_nft_mint, liquidity, decrease_amount_0/1, fee_amount_0/1, reward_amounts [u64; 3], transfer_fee_0/1
func decodeDecreaseLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumClmmDecreaseLiquidityEvent{
		EventMetadata:   meta,
		PositionNftMint: r.Pubkey(),
		Liquidity:       r.U128(),
		DecreaseAmount0: r.U64(),
		DecreaseAmount1: r.U64(),
		FeeAmount0:      r.U64(),
		FeeAmount1:      r.U64(),
	}
	r.U64Array(evt.RewardAmounts[:])
	evt.TransferFee0 = r.U64()
	evt.TransferFee1 = r.U64()
	if !r.Ok() {
		return nil
	}
	return evt
}
