package bonk

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

// decodeTradeLog TradeEvent：pool_state 之后 12 个 u64，再接 trade_direction、pool_status；
// exact_in 为新版追加。
func decodeTradeLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.BonkTradeEvent{
		EventMetadata:   meta,
		PoolState:       r.Pubkey(),
		TotalBaseSell:   r.U64(),
		VirtualBase:     r.U64(),
		VirtualQuote:    r.U64(),
		RealBaseBefore:  r.U64(),
		RealQuoteBefore: r.U64(),
		RealBaseAfter:   r.U64(),
		RealQuoteAfter:  r.U64(),
		AmountIn:        r.U64(),
		AmountOut:       r.U64(),
		ProtocolFee:     r.U64(),
		PlatformFee:     r.U64(),
		ShareFee:        r.U64(),
		TradeDirection:  core.TradeDirection(r.U8()),
		PoolStatus:      r.U8(),
	}
	if !r.Ok() {
		return nil
	}
	if r.Remaining() >= 1 {
		evt.ExactIn = r.Bool()
	}
	return evt
}

// decodePoolCreateLog PoolCreateEvent：pool_state, creator, config, base_mint_param
func decodePoolCreateLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.BonkPoolCreateEvent{
		EventMetadata: meta,
		PoolState:     r.Pubkey(),
		Creator:       r.Pubkey(),
		GlobalConfig:  r.Pubkey(),
		Decimals:      r.U8(),
		Name:          r.String(),
		Symbol:        r.String(),
		Uri:           r.String(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
