package orcawhirlpool

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
		return decodeSwap(data, accounts, meta)
	case SwapV2:
		return decodeSwapV2(data, accounts, meta)
	case IncreaseLiquidity, IncreaseLiquidityV2, DecreaseLiquidity, DecreaseLiquidityV2:
		return decodeLiquidity(disc, data, accounts, meta)
	case InitializePool:
		return decodeInitializePool(data, accounts, meta)
	case InitializePoolV2:
		return decodeInitializePoolV2(data, accounts, meta)
	default:
		return nil
	}
}

// readSwapArgs 数据：amount u64, other_amount_threshold u64, sqrt_price_limit u128,
// amount_specified_is_input bool, a_to_b bool
func readSwapArgs(data []byte, evt *core.OrcaWhirlpoolSwapEvent) bool {
	r := utils.NewReader(data[8:])
	evt.Amount = r.U64()
	evt.OtherAmountThreshold = r.U64()
	evt.SqrtPriceLimit = r.U128()
	evt.AmountSpecifiedIsInput = r.Bool()
	evt.AToB = r.Bool()
	return r.Ok()
}

// Orca Whirlpool Swap 交易中账户结构:
//
// 0 - Token Program
// 1 - Token Authority
// 2 - Whirlpool (Orca Whirlpool 市场池地址)
// 3 - Token Owner Account A（用户的 Token A 账户）
// 4 - Token Vault A（池子的 Token A 账户）
// 5 - Token Owner Account B（用户的 Token B 账户）
// 6 - Token Vault B（池子的 Token B 账户）
func decodeSwap(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 7) {
		return nil
	}
	evt := &core.OrcaWhirlpoolSwapEvent{
		EventMetadata:      meta,
		TokenAuthority:     accounts[1],
		Whirlpool:          accounts[2],
		TokenOwnerAccountA: accounts[3],
		TokenVaultA:        accounts[4],
		TokenOwnerAccountB: accounts[5],
		TokenVaultB:        accounts[6],
	}
	if !readSwapArgs(data, evt) {
		return nil
	}
	return evt
}

// swap_v2 账户结构:
//
//	0 - Token Program A
//	1 - Token Program B
//	2 - Memo Program
//	3 - Token Authority
//	4 - Whirlpool
//	5 - Token Mint A
//	6 - Token Mint B
//	7 - Token Owner Account A
//	8 - Token Vault A
//	9 - Token Owner Account B
//	10 - Token Vault B
func decodeSwapV2(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 11) {
		return nil
	}
	evt := &core.OrcaWhirlpoolSwapEvent{
		EventMetadata:      meta,
		TokenAuthority:     accounts[3],
		Whirlpool:          accounts[4],
		TokenMintA:         accounts[5],
		TokenMintB:         accounts[6],
		TokenOwnerAccountA: accounts[7],
		TokenVaultA:        accounts[8],
		TokenOwnerAccountB: accounts[9],
		TokenVaultB:        accounts[10],
	}
	if !readSwapArgs(data, evt) {
		return nil
	}
	return evt
}

// decodeLiquidity 加减流动性共用：数据 liquidity_amount u128, token_a_limit u64, token_b_limit u64
//
// v1 账户：0 Whirlpool，2 Position Authority，3 Position
// v2 账户：0 Whirlpool，4 Position Authority，5 Position，7 Token Mint A，8 Token Mint B
func decodeLiquidity(disc uint64, data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	v2 := disc == IncreaseLiquidityV2 || disc == DecreaseLiquidityV2
	var liq core.OrcaWhirlpoolLiquidity
	if v2 {
		if !common.HasAccounts(accounts, 9) {
			return nil
		}
		liq.Whirlpool = accounts[0]
		liq.PositionAuthority = accounts[4]
		liq.Position = accounts[5]
		liq.TokenMintA = accounts[7]
		liq.TokenMintB = accounts[8]
	} else {
		if !common.HasAccounts(accounts, 4) {
			return nil
		}
		liq.Whirlpool = accounts[0]
		liq.PositionAuthority = accounts[2]
		liq.Position = accounts[3]
	}

	r := utils.NewReader(data[8:])
	liq.Liquidity = r.U128()
	liq.TokenLimitA = r.U64()
	liq.TokenLimitB = r.U64()
	if !r.Ok() {
		return nil
	}

	if disc == IncreaseLiquidity || disc == IncreaseLiquidityV2 {
		return &core.OrcaWhirlpoolIncreaseLiquidityEvent{EventMetadata: meta, OrcaWhirlpoolLiquidity: liq}
	}
	return &core.OrcaWhirlpoolDecreaseLiquidityEvent{EventMetadata: meta, OrcaWhirlpoolLiquidity: liq}
}

// initialize_pool 账户：0 Whirlpools Config，1 Token Mint A，2 Token Mint B，3 Funder，4 Whirlpool
// 数据：whirlpool_bump u8, tick_spacing u16, initial_sqrt_price u128
func decodeInitializePool(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 5) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.OrcaWhirlpoolPoolInitializeEvent{
		EventMetadata:    meta,
		WhirlpoolsConfig: accounts[0],
		TokenMintA:       accounts[1],
		TokenMintB:       accounts[2],
		Funder:           accounts[3],
		Whirlpool:        accounts[4],
		Bump:             r.U8(),
		TickSpacing:      r.U16(),
		InitialSqrtPrice: r.U128(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// initialize_pool_v2 账户：0 Config，1 Mint A，2 Mint B，3/4 Token Badge，5 Funder，6 Whirlpool
// 数据：tick_spacing u16, initial_sqrt_price u128
func decodeInitializePoolV2(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 7) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.OrcaWhirlpoolPoolInitializeEvent{
		EventMetadata:    meta,
		WhirlpoolsConfig: accounts[0],
		TokenMintA:       accounts[1],
		TokenMintB:       accounts[2],
		Funder:           accounts[5],
		Whirlpool:        accounts[6],
		TickSpacing:      r.U16(),
		InitialSqrtPrice: r.U128(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
