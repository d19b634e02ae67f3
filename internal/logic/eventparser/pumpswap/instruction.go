package pumpswap

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/types"
	"dex-event-parser-sol/internal/utils"
)

func decodeInstruction(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	disc, ok := common.Discriminator8(data)
	if !ok {
		return nil
	}
	switch disc {
	case Buy:
		return decodeBuy(data, accounts, meta)
	case Sell:
		return decodeSell(data, accounts, meta)
	case CreatePool:
		return decodeCreatePool(data, accounts, meta)
	case Deposit:
		return decodeDeposit(data, accounts, meta)
	case Withdraw:
		return decodeWithdraw(data, accounts, meta)
	default:
		return nil
	}
}

// swapAccounts 买卖指令账户布局：
//
//	#0  - Pool
//	#1  - User
//	#2  - Global Config
//	#3  - Base Mint
//	#4  - Quote Mint
//	#5  - User Base Token Account
//	#6  - User Quote Token Account
//	#7  - Pool Base Token Account
//	#8  - Pool Quote Token Account
//	#9  - Protocol Fee Recipient
//	#10 - Protocol Fee Recipient Token Account
func swapAccounts(accounts []types.Pubkey) (core.PumpSwapAccounts, bool) {
	if !common.HasAccounts(accounts, 9) {
		return core.PumpSwapAccounts{}, false
	}
	return core.PumpSwapAccounts{
		Pool:                             accounts[0],
		User:                             accounts[1],
		GlobalConfig:                     accounts[2],
		BaseMint:                         accounts[3],
		QuoteMint:                        accounts[4],
		UserBaseTokenAccount:             accounts[5],
		UserQuoteTokenAccount:            accounts[6],
		PoolBaseTokenAccount:             accounts[7],
		PoolQuoteTokenAccount:            accounts[8],
		ProtocolFeeRecipient:             common.AccountAt(accounts, 9),
		ProtocolFeeRecipientTokenAccount: common.AccountAt(accounts, 10),
	}, true
}

// decodeBuy 数据：base_amount_out u64, max_quote_amount_in u64
func decodeBuy(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	accs, ok := swapAccounts(accounts)
	if !ok {
		return nil
	}
	baseOut, ok1 := utils.ReadU64(data, 8)
	maxQuoteIn, ok2 := utils.ReadU64(data, 16)
	if !ok1 || !ok2 {
		return nil
	}
	return &core.PumpSwapBuyEvent{
		EventMetadata:    meta,
		PumpSwapAccounts: accs,
		BaseAmountOut:    baseOut,
		MaxQuoteAmountIn: maxQuoteIn,
	}
}

// decodeSell 数据：base_amount_in u64, min_quote_amount_out u64
func decodeSell(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	accs, ok := swapAccounts(accounts)
	if !ok {
		return nil
	}
	baseIn, ok1 := utils.ReadU64(data, 8)
	minQuoteOut, ok2 := utils.ReadU64(data, 16)
	if !ok1 || !ok2 {
		return nil
	}
	return &core.PumpSwapSellEvent{
		EventMetadata:     meta,
		PumpSwapAccounts:  accs,
		BaseAmountIn:      baseIn,
		MinQuoteAmountOut: minQuoteOut,
	}
}

// decodeCreatePool 账户布局：
//
//	#0  - Pool
//	#1  - Global Config
//	#2  - Creator
//	#3  - Base Mint
//	#4  - Quote Mint
//	#5  - LP Mint
//	#6  - User Base Token Account
//	#7  - User Quote Token Account
//	#8  - User Pool Token Account
//
// 数据：index u16, base_amount_in u64, quote_amount_in u64
func decodeCreatePool(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 6) {
		return nil
	}
	r := utils.NewReader(data[8:])
	index := r.U16()
	baseIn := r.U64()
	quoteIn := r.U64()
	if !r.Ok() {
		return nil
	}
	return &core.PumpSwapCreatePoolEvent{
		EventMetadata:         meta,
		Pool:                  accounts[0],
		GlobalConfig:          accounts[1],
		Creator:               accounts[2],
		BaseMint:              accounts[3],
		QuoteMint:             accounts[4],
		LpMint:                accounts[5],
		UserBaseTokenAccount:  common.AccountAt(accounts, 6),
		UserQuoteTokenAccount: common.AccountAt(accounts, 7),
		Index:                 index,
		BaseAmountIn:          baseIn,
		QuoteAmountIn:         quoteIn,
	}
}

// liquidityAccounts 加减流动性账户布局：
//
//	#0  - Pool
//	#1  - Global Config
//	#2  - User
//	#3  - Base Mint
//	#4  - Quote Mint
//	#5  - LP Mint
//	#6  - User Base Token Account
//	#7  - User Quote Token Account
//	#8  - User Pool Token Account
//	#9  - Pool Base Token Account
//	#10 - Pool Quote Token Account
func liquidityAccounts(accounts []types.Pubkey) (core.PumpSwapLiquidityAccounts, bool) {
	if !common.HasAccounts(accounts, 9) {
		return core.PumpSwapLiquidityAccounts{}, false
	}
	return core.PumpSwapLiquidityAccounts{
		Pool:                  accounts[0],
		User:                  accounts[2],
		BaseMint:              accounts[3],
		QuoteMint:             accounts[4],
		LpMint:                accounts[5],
		UserBaseTokenAccount:  accounts[6],
		UserQuoteTokenAccount: accounts[7],
		UserPoolTokenAccount:  accounts[8],
	}, true
}

// decodeDeposit 数据：lp_token_amount_out, max_base_amount_in, max_quote_amount_in
func decodeDeposit(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	accs, ok := liquidityAccounts(accounts)
	if !ok {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.PumpSwapDepositEvent{
		EventMetadata:             meta,
		PumpSwapLiquidityAccounts: accs,
		LpTokenAmountOut:          r.U64(),
		MaxBaseAmountIn:           r.U64(),
		MaxQuoteAmountIn:          r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodeWithdraw 数据：lp_token_amount_in, min_base_amount_out, min_quote_amount_out
func decodeWithdraw(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	accs, ok := liquidityAccounts(accounts)
	if !ok {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.PumpSwapWithdrawEvent{
		EventMetadata:             meta,
		PumpSwapLiquidityAccounts: accs,
		LpTokenAmountIn:           r.U64(),
		MinBaseAmountOut:          r.U64(),
		MinQuoteAmountOut:         r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
