package raydiumv4

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// ray_log payload 已去掉首字节日志类型，其余字段均为小端定长编码

// InitLog: time, pc_decimals, coin_decimals, pc_lot_size, coin_lot_size, pc_amount, coin_amount, market
func decodeInitLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumAmmV4InitializeEvent{
		EventMetadata:  meta,
		Time:           r.U64(),
		PcDecimals:     r.U8(),
		CoinDecimals:   r.U8(),
		PcLotSize:      r.U64(),
		CoinLotSize:    r.U64(),
		InitPcAmount:   r.U64(),
		InitCoinAmount: r.U64(),
		Market:         r.Pubkey(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// DepositLog: max_coin, max_pc, base, pool_coin, pool_pc, pool_lp, pool_pnl_x, pool_pnl_y, deduct_coin, deduct_pc, mint_lp
func decodeDepositLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumAmmV4DepositEvent{
		EventMetadata: meta,
		MaxCoinAmount: r.U64(),
		MaxPcAmount:   r.U64(),
		BaseSide:      r.U64(),
		PoolCoin:      r.U64(),
		PoolPc:        r.U64(),
		PoolLp:        r.U64(),
		PoolPnlX:      r.U128(),
		PoolPnlY:      r.U128(),
		DeductCoin:    r.U64(),
		DeductPc:      r.U64(),
		MintLp:        r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// WithdrawLog: withdraw_lp, user_lp, pool_coin, pool_pc, pool_lp, pool_pnl_x, pool_pnl_y, out_coin, out_pc
func decodeWithdrawLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumAmmV4WithdrawEvent{
		EventMetadata: meta,
		WithdrawLp:    r.U64(),
		UserLp:        r.U64(),
		PoolCoin:      r.U64(),
		PoolPc:        r.U64(),
		PoolLp:        r.U64(),
		PoolPnlX:      r.U128(),
		PoolPnlY:      r.U128(),
		OutCoin:       r.U64(),
		OutPc:         r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// SwapBaseInLog: amount_in, minimum_out, direction, user_source, pool_coin, pool_pc, out_amount
func decodeSwapBaseInLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumAmmV4SwapEvent{
		EventMetadata:    meta,
		BaseIn:           true,
		AmountIn:         r.U64(),
		MinimumAmountOut: r.U64(),
		Direction:        r.U64(),
		UserSource:       r.U64(),
		PoolCoin:         r.U64(),
		PoolPc:           r.U64(),
		AmountOut:        r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// SwapBaseOutLog: max_in, amount_out, direction, user_source, pool_coin, pool_pc, deduct_in
func decodeSwapBaseOutLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumAmmV4SwapEvent{
		EventMetadata: meta,
		MaxAmountIn:   r.U64(),
		AmountOut:     r.U64(),
		Direction:     r.U64(),
		UserSource:    r.U64(),
		PoolCoin:      r.U64(),
		PoolPc:        r.U64(),
		AmountIn:      r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
