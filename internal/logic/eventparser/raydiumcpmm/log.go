package raydiumcpmm

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// decodeSwapLog SwapEvent：pool_id, 两个 vault 前值, 输入输出数量与转账手续费, base_input；
// 新版追加 input_mint, output_mint, trade_fee。
func decodeSwapLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.RaydiumCpmmSwapEvent{
		EventMetadata:     meta,
		PoolState:         r.Pubkey(),
		InputVaultBefore:  r.U64(),
		OutputVaultBefore: r.U64(),
		InputAmount:       r.U64(),
		OutputAmount:      r.U64(),
		InputTransferFee:  r.U64(),
		OutputTransferFee: r.U64(),
		BaseInput:         r.Bool(),
	}
	if !r.Ok() {
		return nil
	}
	if r.Remaining() >= 32+32+8 {
		evt.InputTokenMint = r.Pubkey()
		evt.OutputTokenMint = r.Pubkey()
		evt.TradeFee = r.U64()
	}
	return evt
}

// decodeLpChangeLog LpChangeEvent 按 change_type 还原为 deposit 或 withdraw
func decodeLpChangeLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	liq := core.RaydiumCpmmLiquidity{
		PoolState:         r.Pubkey(),
		LpAmountBefore:    r.U64(),
		Token0VaultBefore: r.U64(),
		Token1VaultBefore: r.U64(),
		Token0Amount:      r.U64(),
		Token1Amount:      r.U64(),
		Token0TransferFee: r.U64(),
		Token1TransferFee: r.U64(),
	}
	changeType := r.U8()
	if !r.Ok() {
		return nil
	}

	switch changeType {
	case lpChangeDeposit:
		return &core.RaydiumCpmmDepositEvent{EventMetadata: meta, RaydiumCpmmLiquidity: liq}
	case lpChangeWithdraw:
		return &core.RaydiumCpmmWithdrawEvent{EventMetadata: meta, RaydiumCpmmLiquidity: liq}
	default:
		return nil
	}
}
