package meteorapools

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// Swap 日志不带池子地址，只携带金额与手续费
func decodeSwapLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraPoolsSwapEvent{
		EventMetadata: meta,
		InAmount:      r.U64(),
		OutAmount:     r.U64(),
		TradeFee:      r.U64(),
		ProtocolFee:   r.U64(),
		HostFee:       r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeAddLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraPoolsAddLiquidityEvent{
		EventMetadata: meta,
		LpMintAmount:  r.U64(),
		TokenAAmount:  r.U64(),
		TokenBAmount:  r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeRemoveLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraPoolsRemoveLiquidityEvent{
		EventMetadata:   meta,
		LpUnmintAmount:  r.U64(),
		TokenAOutAmount: r.U64(),
		TokenBOutAmount: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// BootstrapLiquidity: lp_mint_amount, token_a_amount, token_b_amount, pool
func decodeBootstrapLiquidityLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.MeteoraPoolsBootstrapLiquidityEvent{
		EventMetadata: meta,
		LpMintAmount:  r.U64(),
		TokenAAmount:  r.U64(),
		TokenBAmount:  r.U64(),
		Pool:          r.Pubkey(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
