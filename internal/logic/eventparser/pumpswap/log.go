package pumpswap

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
)

func readReserves(r *utils.Reader) core.PumpSwapReserves {
	var res core.PumpSwapReserves
	res.UserBaseTokenReserves = r.U64()
	res.UserQuoteTokenReserves = r.U64()
	res.PoolBaseTokenReserves = r.U64()
	res.PoolQuoteTokenReserves = r.U64()
	return res
}

// decodeBuyLog BuyEvent；新版在末尾追加的 coin_creator 相关字段不解析
func decodeBuyLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpSwapBuyEvent{EventMetadata: meta}
	evt.Timestamp = r.I64()
	evt.BaseAmountOut = r.U64()
	evt.MaxQuoteAmountIn = r.U64()
	evt.PumpSwapReserves = readReserves(r)
	evt.QuoteAmountIn = r.U64()
	evt.LpFeeBasisPoints = r.U64()
	evt.LpFee = r.U64()
	evt.ProtocolFeeBasisPoints = r.U64()
	evt.ProtocolFee = r.U64()
	evt.QuoteAmountInWithLpFee = r.U64()
	evt.UserQuoteAmountIn = r.U64()
	evt.Pool = r.Pubkey()
	evt.User = r.Pubkey()
	evt.UserBaseTokenAccount = r.Pubkey()
	evt.UserQuoteTokenAccount = r.Pubkey()
	evt.ProtocolFeeRecipient = r.Pubkey()
	evt.ProtocolFeeRecipientTokenAccount = r.Pubkey()
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeSellLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpSwapSellEvent{EventMetadata: meta}
	evt.Timestamp = r.I64()
	evt.BaseAmountIn = r.U64()
	evt.MinQuoteAmountOut = r.U64()
	evt.PumpSwapReserves = readReserves(r)
	evt.QuoteAmountOut = r.U64()
	evt.LpFeeBasisPoints = r.U64()
	evt.LpFee = r.U64()
	evt.ProtocolFeeBasisPoints = r.U64()
	evt.ProtocolFee = r.U64()
	evt.QuoteAmountOutWithoutLpFee = r.U64()
	evt.UserQuoteAmountOut = r.U64()
	evt.Pool = r.Pubkey()
	evt.User = r.Pubkey()
	evt.UserBaseTokenAccount = r.Pubkey()
	evt.UserQuoteTokenAccount = r.Pubkey()
	evt.ProtocolFeeRecipient = r.Pubkey()
	evt.ProtocolFeeRecipientTokenAccount = r.Pubkey()
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeCreatePoolLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpSwapCreatePoolEvent{EventMetadata: meta}
	evt.Timestamp = r.I64()
	evt.Index = r.U16()
	evt.Creator = r.Pubkey()
	evt.BaseMint = r.Pubkey()
	evt.QuoteMint = r.Pubkey()
	evt.BaseMintDecimals = r.U8()
	evt.QuoteMintDecimals = r.U8()
	evt.BaseAmountIn = r.U64()
	evt.QuoteAmountIn = r.U64()
	evt.PoolBaseAmount = r.U64()
	evt.PoolQuoteAmount = r.U64()
	evt.MinimumLiquidity = r.U64()
	evt.InitialLiquidity = r.U64()
	evt.LpTokenAmountOut = r.U64()
	evt.PoolBump = r.U8()
	evt.Pool = r.Pubkey()
	evt.LpMint = r.Pubkey()
	evt.UserBaseTokenAccount = r.Pubkey()
	evt.UserQuoteTokenAccount = r.Pubkey()
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeDepositLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpSwapDepositEvent{EventMetadata: meta}
	evt.Timestamp = r.I64()
	evt.LpTokenAmountOut = r.U64()
	evt.MaxBaseAmountIn = r.U64()
	evt.MaxQuoteAmountIn = r.U64()
	evt.PumpSwapReserves = readReserves(r)
	evt.BaseAmountIn = r.U64()
	evt.QuoteAmountIn = r.U64()
	evt.LpMintSupply = r.U64()
	evt.Pool = r.Pubkey()
	evt.User = r.Pubkey()
	evt.UserBaseTokenAccount = r.Pubkey()
	evt.UserQuoteTokenAccount = r.Pubkey()
	evt.UserPoolTokenAccount = r.Pubkey()
	if !r.Ok() {
		return nil
	}
	return evt
}

func decodeWithdrawLog(payload []byte, meta core.EventMetadata) core.ProtocolEvent {
	r := utils.NewReader(payload)
	evt := &core.PumpSwapWithdrawEvent{EventMetadata: meta}
	evt.Timestamp = r.I64()
	evt.LpTokenAmountIn = r.U64()
	evt.MinBaseAmountOut = r.U64()
	evt.MinQuoteAmountOut = r.U64()
	evt.PumpSwapReserves = readReserves(r)
	evt.BaseAmountOut = r.U64()
	evt.QuoteAmountOut = r.U64()
	evt.LpMintSupply = r.U64()
	evt.Pool = r.Pubkey()
	evt.User = r.Pubkey()
	evt.UserBaseTokenAccount = r.Pubkey()
	evt.UserQuoteTokenAccount = r.Pubkey()
	evt.UserPoolTokenAccount = r.Pubkey()
	if !r.Ok() {
		return nil
	}
	return evt
}
