package bonk

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
	case BuyExactIn:
		return decodeTrade(data, accounts, meta, core.TradeDirectionBuy, true)
	case BuyExactOut:
		return decodeTrade(data, accounts, meta, core.TradeDirectionBuy, false)
	case SellExactIn:
		return decodeTrade(data, accounts, meta, core.TradeDirectionSell, true)
	case SellExactOut:
		return decodeTrade(data, accounts, meta, core.TradeDirectionSell, false)
	case Initialize:
		return decodeInitialize(data, accounts, meta)
	default:
		return nil
	}
}

// decodeTrade 四种买卖指令共用。
//
// 账户布局：
//
//	#0  - Payer
//	#1  - Authority
//	#2  - Global Config
//	#3  - Platform Config
//	#4  - Pool State
//	#5  - User Base Token
//	#6  - User Quote Token
//	#7  - Base Vault
//	#8  - Quote Vault
//	#9  - Base Token Mint
//	#10 - Quote Token Mint
//
// 数据：exact_in 为 (amount_in, minimum_amount_out, share_fee_rate)，
// exact_out 为 (amount_out, maximum_amount_in, share_fee_rate)
func decodeTrade(data []byte, accounts []types.Pubkey, meta core.EventMetadata, dir core.TradeDirection, exactIn bool) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 11) {
		return nil
	}
	amount, ok1 := utils.ReadU64(data, 8)
	limit, ok2 := utils.ReadU64(data, 16)
	shareFeeRate, ok3 := utils.ReadU64(data, 24)
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	evt := &core.BonkTradeEvent{
		EventMetadata:  meta,
		Payer:          accounts[0],
		GlobalConfig:   accounts[2],
		PlatformConfig: accounts[3],
		PoolState:      accounts[4],
		BaseMint:       accounts[9],
		QuoteMint:      accounts[10],
		TradeDirection: dir,
		ExactIn:        exactIn,
		ShareFeeRate:   shareFeeRate,
	}
	if exactIn {
		evt.AmountIn = amount
		evt.MinimumAmountOut = limit
	} else {
		evt.AmountOut = amount
		evt.MaximumAmountIn = limit
	}
	return evt
}

// decodeInitialize 只解析 base_mint_param（decimals, name, symbol, uri），
// 曲线与锁仓参数不进入事件。
//
// 账户布局：
//
//	#0 - Payer
//	#1 - Creator
//	#2 - Global Config
//	#3 - Platform Config
//	#4 - Authority
//	#5 - Pool State
//	#6 - Base Mint
//	#7 - Quote Mint
func decodeInitialize(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 8) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.BonkPoolCreateEvent{
		EventMetadata:  meta,
		Payer:          accounts[0],
		Creator:        accounts[1],
		GlobalConfig:   accounts[2],
		PlatformConfig: accounts[3],
		PoolState:      accounts[5],
		BaseMint:       accounts[6],
		QuoteMint:      accounts[7],
		Decimals:       r.U8(),
		Name:           r.String(),
		Symbol:         r.String(),
		Uri:            r.String(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
