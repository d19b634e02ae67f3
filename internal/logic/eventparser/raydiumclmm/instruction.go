package raydiumclmm

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
	case Swap:
		return decodeSwap(data, accounts, meta, false)
	case SwapV2:
		return decodeSwap(data, accounts, meta, true)
	case IncreaseLiquidity, IncreaseLiquidityV2:
		return decodeIncreaseLiquidity(data, accounts, meta)
	case DecreaseLiquidity, DecreaseLiquidityV2:
		return decodeDecreaseLiquidity(data, accounts, meta)
	case CreatePool:
		return decodeCreatePool(data, accounts, meta)
	default:
		return nil
	}
}

// decodeSwap 账户布局：
//
//	#0  - Payer（用户钱包）
//	#1  - Amm Config
//	#2  - Pool State
//	#3  - Input Token Account
//	#4  - Output Token Account
//	#5  - Input Vault
//	#6  - Output Vault
//	#7  - Observation State
//
// swap_v2 额外：#8 Token Program、#9 Token Program 2022、#10 Memo、#11 Input Vault Mint、#12 Output Vault Mint
//
// 数据：amount u64, other_amount_threshold u64, sqrt_price_limit_x64 u128, is_base_input bool
func decodeSwap(data []byte, accounts []types.Pubkey, meta core.EventMetadata, v2 bool) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 7) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.RaydiumClmmSwapEvent{
		EventMetadata:        meta,
		Sender:               accounts[0],
		AmmConfig:            accounts[1],
		PoolState:            accounts[2],
		InputVault:           accounts[5],
		OutputVault:          accounts[6],
		Amount:               r.U64(),
		OtherAmountThreshold: r.U64(),
		SqrtPriceLimitX64:    r.U128(),
		IsBaseInput:          r.Bool(),
	}
	if !r.Ok() {
		return nil
	}
	if v2 {
		evt.InputVaultMint = common.AccountAt(accounts, 11)
		evt.OutputVaultMint = common.AccountAt(accounts, 12)
	}
	return evt
}

// decodeIncreaseLiquidity v1 / v2 前 5 个账户相同：
//
//	#0 - NFT Owner
//	#1 - NFT Account
//	#2 - Pool State
//	#3 - Protocol Position
//	#4 - Personal Position
//
// 数据：liquidity u128, amount_0_max u64, amount_1_max u64（v2 追加 base_flag，忽略）
func decodeIncreaseLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 5) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.RaydiumClmmIncreaseLiquidityEvent{
		EventMetadata:    meta,
		NftOwner:         accounts[0],
		PoolState:        accounts[2],
		PersonalPosition: accounts[4],
		Liquidity:        r.U128(),
		Amount0Max:       r.U64(),
		Amount1Max:       r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodeDecreaseLiquidity 账户布局：
//
//	#0 - NFT Owner
//	#1 - NFT Account
//	#2 - Personal Position
//	#3 - Pool State
//
// 数据：liquidity u128, amount_0_min u64, amount_1_min u64
func decodeDecreaseLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 4) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.RaydiumClmmDecreaseLiquidityEvent{
		EventMetadata:    meta,
		NftOwner:         accounts[0],
		PersonalPosition: accounts[2],
		PoolState:        accounts[3],
		Liquidity:        r.U128(),
		Amount0Min:       r.U64(),
		Amount1Min:       r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// decodeCreatePool 账户布局：
//
//	#0 - Pool Creator
//	#1 - Amm Config
//	#2 - Pool State
//	#3 - Token Mint 0
//	#4 - Token Mint 1
//	#5 - Token Vault 0
//	#6 - Token Vault 1
//
// 数据：sqrt_price_x64 u128, open_time u64
func decodeCreatePool(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 7) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.RaydiumClmmCreatePoolEvent{
		EventMetadata: meta,
		PoolCreator:   accounts[0],
		AmmConfig:     accounts[1],
		PoolState:     accounts[2],
		TokenMint0:    accounts[3],
		TokenMint1:    accounts[4],
		TokenVault0:   accounts[5],
		TokenVault1:   accounts[6],
		SqrtPriceX64:  r.U128(),
		OpenTime:      r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
