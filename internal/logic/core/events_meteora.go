package core

import "dex-event-parser-sol/internal/types"

// ---------------- Meteora Pools（dynamic AMM） ----------------

type MeteoraPoolsSwapEvent struct {
	EventMetadata
	Pool                 types.Pubkey
	UserSourceToken      types.Pubkey
	UserDestinationToken types.Pubkey
	AVault               types.Pubkey
	BVault               types.Pubkey
	ProtocolTokenFee     types.Pubkey
	User                 types.Pubkey
	InAmount             uint64
	OutAmount            uint64
	TradeFee             uint64
	ProtocolFee          uint64
	HostFee              uint64
	MinimumOutAmount     uint64
}

func (e *MeteoraPoolsSwapEvent) Type() EventType            { return EventMeteoraPoolsSwap }
func (e *MeteoraPoolsSwapEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraPoolsAddLiquidityEvent struct {
	EventMetadata
	Pool                types.Pubkey
	LpMint              types.Pubkey
	User                types.Pubkey
	LpMintAmount        uint64
	TokenAAmount        uint64
	TokenBAmount        uint64
	PoolTokenAmount     uint64
	MaximumTokenAAmount uint64
	MaximumTokenBAmount uint64
}

func (e *MeteoraPoolsAddLiquidityEvent) Type() EventType            { return EventMeteoraPoolsAddLiquidity }
func (e *MeteoraPoolsAddLiquidityEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraPoolsRemoveLiquidityEvent struct {
	EventMetadata
	Pool                types.Pubkey
	LpMint              types.Pubkey
	User                types.Pubkey
	LpUnmintAmount      uint64
	TokenAOutAmount     uint64
	TokenBOutAmount     uint64
	PoolTokenAmount     uint64
	MinimumTokenAAmount uint64
	MinimumTokenBAmount uint64
}

func (e *MeteoraPoolsRemoveLiquidityEvent) Type() EventType {
	return EventMeteoraPoolsRemoveLiquidity
}
func (e *MeteoraPoolsRemoveLiquidityEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraPoolsBootstrapLiquidityEvent struct {
	EventMetadata
	Pool         types.Pubkey
	LpMint       types.Pubkey
	User         types.Pubkey
	LpMintAmount uint64
	TokenAAmount uint64
	TokenBAmount uint64
}

func (e *MeteoraPoolsBootstrapLiquidityEvent) Type() EventType {
	return EventMeteoraPoolsBootstrapLiquidity
}
func (e *MeteoraPoolsBootstrapLiquidityEvent) PartitionKey() types.Pubkey { return e.Pool }

// ---------------- Meteora DAMM v2 ----------------

type MeteoraDammV2SwapEvent struct {
	EventMetadata
	Pool               types.Pubkey
	InputTokenAccount  types.Pubkey
	OutputTokenAccount types.Pubkey
	TokenAMint         types.Pubkey
	TokenBMint         types.Pubkey
	Payer              types.Pubkey
	TradeDirection     uint8
	HasReferral        bool
	AmountIn           uint64
	MinimumAmountOut   uint64
	OutputAmount       uint64
	NextSqrtPrice      types.Uint128
	LpFee              uint64
	ProtocolFee        uint64
	PartnerFee         uint64
	ReferralFee        uint64
	ActualAmountIn     uint64
	CurrentTimestamp   uint64
}

func (e *MeteoraDammV2SwapEvent) Type() EventType            { return EventMeteoraDammV2Swap }
func (e *MeteoraDammV2SwapEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraDammV2AddLiquidityEvent struct {
	EventMetadata
	Pool                  types.Pubkey
	Position              types.Pubkey
	Owner                 types.Pubkey
	TokenAMint            types.Pubkey
	TokenBMint            types.Pubkey
	LiquidityDelta        types.Uint128
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
	TokenAAmount          uint64
	TokenBAmount          uint64
	TotalAmountA          uint64
	TotalAmountB          uint64
}

func (e *MeteoraDammV2AddLiquidityEvent) Type() EventType {
	return EventMeteoraDammV2AddLiquidity
}
func (e *MeteoraDammV2AddLiquidityEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraDammV2RemoveLiquidityEvent struct {
	EventMetadata
	Pool                  types.Pubkey
	Position              types.Pubkey
	Owner                 types.Pubkey
	TokenAMint            types.Pubkey
	TokenBMint            types.Pubkey
	LiquidityDelta        types.Uint128
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
	TokenAAmount          uint64
	TokenBAmount          uint64
}

func (e *MeteoraDammV2RemoveLiquidityEvent) Type() EventType {
	return EventMeteoraDammV2RemoveLiquidity
}
func (e *MeteoraDammV2RemoveLiquidityEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraDammV2InitializePoolEvent struct {
	EventMetadata
	Pool            types.Pubkey
	Creator         types.Pubkey
	PositionNftMint types.Pubkey
	Payer           types.Pubkey
	Config          types.Pubkey
	Position        types.Pubkey
	TokenAMint      types.Pubkey
	TokenBMint      types.Pubkey
	AlphaVault      types.Pubkey
	Liquidity       types.Uint128
	SqrtPrice       types.Uint128
	ActivationPoint uint64
}

func (e *MeteoraDammV2InitializePoolEvent) Type() EventType {
	return EventMeteoraDammV2InitializePool
}
func (e *MeteoraDammV2InitializePoolEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraDammV2ClaimPositionFeeEvent struct {
	EventMetadata
	Pool        types.Pubkey
	Position    types.Pubkey
	Owner       types.Pubkey
	TokenAMint  types.Pubkey
	TokenBMint  types.Pubkey
	FeeAClaimed uint64
	FeeBClaimed uint64
}

func (e *MeteoraDammV2ClaimPositionFeeEvent) Type() EventType {
	return EventMeteoraDammV2ClaimPositionFee
}
func (e *MeteoraDammV2ClaimPositionFeeEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraDammV2FundRewardEvent struct {
	EventMetadata
	Pool                        types.Pubkey
	RewardVault                 types.Pubkey
	RewardMint                  types.Pubkey
	Funder                      types.Pubkey
	RewardIndex                 uint8
	Amount                      uint64
	TransferFeeExcludedAmountIn uint64
	CarryForward                bool
}

func (e *MeteoraDammV2FundRewardEvent) Type() EventType            { return EventMeteoraDammV2FundReward }
func (e *MeteoraDammV2FundRewardEvent) PartitionKey() types.Pubkey { return e.Pool }

type MeteoraDammV2ClaimRewardEvent struct {
	EventMetadata
	Pool        types.Pubkey
	Position    types.Pubkey
	Owner       types.Pubkey
	RewardMint  types.Pubkey
	RewardIndex uint8
	TotalReward uint64
}

func (e *MeteoraDammV2ClaimRewardEvent) Type() EventType {
	return EventMeteoraDammV2ClaimReward
}
func (e *MeteoraDammV2ClaimRewardEvent) PartitionKey() types.Pubkey { return e.Pool }
