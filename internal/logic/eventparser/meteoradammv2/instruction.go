package meteoradammv2

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
	case AddLiquidity:
		return decodeAddLiquidity(data, accounts, meta)
	case RemoveLiquidity:
		return decodeRemoveLiquidity(data, accounts, meta)
	case InitializePool:
		return decodeInitializePool(data, accounts, meta)
	case ClaimPositionFee:
		return decodeClaimPositionFee(accounts, meta)
	case FundReward:
		return decodeFundReward(data, accounts, meta)
	case ClaimReward:
		return decodeClaimReward(data, accounts, meta)
	default:
		return nil
	}
}

// swap 账户：
//
//	0 - Pool Authority
//	1 - Pool
//	2 - Input Token Account
//	3 - Output Token Account
//	4 - Token A Vault
//	5 - Token B Vault
//	6 - Token A Mint
//	7 - Token B Mint
//	8 - Payer
func decodeSwap(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 9) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraDammV2SwapEvent{
		EventMetadata:      meta,
		Pool:               accounts[1],
		InputTokenAccount:  accounts[2],
		OutputTokenAccount: accounts[3],
		TokenAMint:         accounts[6],
		TokenBMint:         accounts[7],
		Payer:              accounts[8],
		AmountIn:           r.U64(),
		MinimumAmountOut:   r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// add_liquidity 账户：0 Pool，1 Position，6 Token A Mint，7 Token B Mint，9 Owner
// 数据：liquidity_delta u128, token_a_amount_threshold u64, token_b_amount_threshold u64
func decodeAddLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 10) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraDammV2AddLiquidityEvent{
		EventMetadata:         meta,
		Pool:                  accounts[0],
		Position:              accounts[1],
		TokenAMint:            accounts[6],
		TokenBMint:            accounts[7],
		Owner:                 accounts[9],
		LiquidityDelta:        r.U128(),
		TokenAAmountThreshold: r.U64(),
		TokenBAmountThreshold: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// remove_liquidity 账户：0 Pool Authority，1 Pool，2 Position，7 Token A Mint，8 Token B Mint，10 Owner
func decodeRemoveLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 11) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraDammV2RemoveLiquidityEvent{
		EventMetadata:         meta,
		Pool:                  accounts[1],
		Position:              accounts[2],
		TokenAMint:            accounts[7],
		TokenBMint:            accounts[8],
		Owner:                 accounts[10],
		LiquidityDelta:        r.U128(),
		TokenAAmountThreshold: r.U64(),
		TokenBAmountThreshold: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// initialize_pool 账户：
//
//	0 - Creator
//	1 - Position NFT Mint
//	2 - Position NFT Account
//	3 - Payer
//	4 - Config
//	5 - Pool Authority
//	6 - Pool
//	7 - Position
//	8 - Token A Mint
//	9 - Token B Mint
//
// 数据：liquidity u128, sqrt_price u128, activation_point Option<u64>
func decodeInitializePool(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 10) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraDammV2InitializePoolEvent{
		EventMetadata:   meta,
		Creator:         accounts[0],
		PositionNftMint: accounts[1],
		Payer:           accounts[3],
		Config:          accounts[4],
		Pool:            accounts[6],
		Position:        accounts[7],
		TokenAMint:      accounts[8],
		TokenBMint:      accounts[9],
		Liquidity:       r.U128(),
		SqrtPrice:       r.U128(),
	}
	evt.ActivationPoint, _ = r.OptionU64()
	if !r.Ok() {
		return nil
	}
	return evt
}

// claim_position_fee 无参数，账户布局同 remove_liquidity
func decodeClaimPositionFee(accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 11) {
		return nil
	}
	return &core.MeteoraDammV2ClaimPositionFeeEvent{
		EventMetadata: meta,
		Pool:          accounts[1],
		Position:      accounts[2],
		TokenAMint:    accounts[7],
		TokenBMint:    accounts[8],
		Owner:         accounts[10],
	}
}

// fund_reward 账户：0 Pool，1 Reward Vault，2 Reward Mint，3 Funder Token Account，4 Funder
// 数据：reward_index u8, amount u64, carry_forward bool
func decodeFundReward(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 5) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.MeteoraDammV2FundRewardEvent{
		EventMetadata: meta,
		Pool:          accounts[0],
		RewardVault:   accounts[1],
		RewardMint:    accounts[2],
		Funder:        accounts[4],
		RewardIndex:   r.U8(),
		Amount:        r.U64(),
		CarryForward:  r.Bool(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// claim_reward 账户：1 Pool，2 Position，3 Reward Vault，4 Reward Mint，7 Owner
// 数据：reward_index u8
func decodeClaimReward(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 8) {
		return nil
	}
	idx, ok := utils.ReadU8(data, 8)
	if !ok {
		return nil
	}
	return &core.MeteoraDammV2ClaimRewardEvent{
		EventMetadata: meta,
		Pool:          accounts[1],
		Position:      accounts[2],
		RewardMint:    accounts[4],
		Owner:         accounts[7],
		RewardIndex:   idx,
	}
}
