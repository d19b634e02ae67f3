package meteorapools

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
	case AddBalanceLiquidity:
		return decodeAddLiquidity(data, accounts, meta)
	case RemoveBalanceLiquidity:
		return decodeRemoveLiquidity(data, accounts, meta)
	case BootstrapLiquidity:
		return decodeBootstrapLiquidity(data, accounts, meta)
	default:
		return nil
	}
}

// Swap 账户结构：
//
//	0  - Pool
//	1  - User Source Token
//	2  - User Destination Token
//	3  - A Vault
//	4  - B Vault
//	5~10 - Vault Token / LP 账户
//	11 - Protocol Token Fee
//	12 - User
//
// 数据：in_amount u64, minimum_out_amount u64
func decodeSwap(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 13) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraPoolsSwapEvent{
		EventMetadata:        meta,
		Pool:                 accounts[0],
		UserSourceToken:      accounts[1],
		UserDestinationToken: accounts[2],
		AVault:               accounts[3],
		BVault:               accounts[4],
		ProtocolTokenFee:     accounts[11],
		User:                 accounts[12],
		InAmount:             r.U64(),
		MinimumOutAmount:     r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// 加减流动性、bootstrap 账户：0 Pool，1 LP Mint，13 User

// 数据：pool_token_amount u64, maximum_token_a_amount u64, maximum_token_b_amount u64
func decodeAddLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 14) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraPoolsAddLiquidityEvent{
		EventMetadata:       meta,
		Pool:                accounts[0],
		LpMint:              accounts[1],
		User:                accounts[13],
		PoolTokenAmount:     r.U64(),
		MaximumTokenAAmount: r.U64(),
		MaximumTokenBAmount: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// 数据：pool_token_amount u64, minimum_a_token_out u64, minimum_b_token_out u64
func decodeRemoveLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 14) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraPoolsRemoveLiquidityEvent{
		EventMetadata:       meta,
		Pool:                accounts[0],
		LpMint:              accounts[1],
		User:                accounts[13],
		PoolTokenAmount:     r.U64(),
		MinimumTokenAAmount: r.U64(),
		MinimumTokenBAmount: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// 数据：token_a_amount u64, token_b_amount u64
func decodeBootstrapLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 14) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraPoolsBootstrapLiquidityEvent{
		EventMetadata: meta,
		Pool:          accounts[0],
		LpMint:        accounts[1],
		User:          accounts[13],
		TokenAAmount:  r.U64(),
		TokenBAmount:  r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
