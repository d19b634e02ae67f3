package core

import "dex-event-parser-sol/internal/types"

type RaydiumClmmSwapEvent struct {
	EventMetadata
	PoolState            types.Pubkey
	Sender               types.Pubkey
	AmmConfig            types.Pubkey
	TokenAccount0        types.Pubkey
	TokenAccount1        types.Pubkey
	InputVault           types.Pubkey
	OutputVault          types.Pubkey
	InputVaultMint       types.Pubkey
	OutputVaultMint      types.Pubkey
	Amount0              uint64
	TransferFee0         uint64
	Amount1              uint64
	TransferFee1         uint64
	ZeroForOne           bool
	SqrtPriceX64         types.Uint128
	Liquidity            types.Uint128
	Tick                 int32
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    types.Uint128
	IsBaseInput          bool
}

func (e *RaydiumClmmSwapEvent) Type() EventType            { return EventRaydiumClmmSwap }
func (e *RaydiumClmmSwapEvent) PartitionKey() types.Pubkey { return e.PoolState }

type RaydiumClmmCreatePoolEvent struct {
	EventMetadata
	PoolCreator  types.Pubkey
	AmmConfig    types.Pubkey
	PoolState    types.Pubkey
	TokenMint0   types.Pubkey
	TokenMint1   types.Pubkey
	TokenVault0  types.Pubkey
	TokenVault1  types.Pubkey
	TickSpacing  uint16
	FeeRate      uint32
	SqrtPriceX64 types.Uint128
	Tick         int32
	OpenTime     uint64
}

func (e *RaydiumClmmCreatePoolEvent) Type() EventType            { return EventRaydiumClmmCreatePool }
func (e *RaydiumClmmCreatePoolEvent) PartitionKey() types.Pubkey { return e.PoolState }

type RaydiumClmmIncreaseLiquidityEvent struct {
	EventMetadata
	PoolState          types.Pubkey
	NftOwner           types.Pubkey
	PersonalPosition   types.Pubkey
	PositionNftMint    types.Pubkey
	Liquidity          types.Uint128
	Amount0            uint64
	Amount1            uint64
	Amount0TransferFee uint64
	Amount1TransferFee uint64
	Amount0Max         uint64
	Amount1Max         uint64
}

func (e *RaydiumClmmIncreaseLiquidityEvent) Type() EventType {
	return EventRaydiumClmmIncreaseLiquidity
}
func (e *RaydiumClmmIncreaseLiquidityEvent) PartitionKey() types.Pubkey { return e.PoolState }

type RaydiumClmmDecreaseLiquidityEvent struct {
	EventMetadata
	PoolState        types.Pubkey
	NftOwner         types.Pubkey
	PersonalPosition types.Pubkey
	PositionNftMint  types.Pubkey
	Liquidity        types.Uint128
	DecreaseAmount0  uint64
	DecreaseAmount1  uint64
	FeeAmount0       uint64
	FeeAmount1       uint64
	RewardAmounts    [3]uint64
	TransferFee0     uint64
	TransferFee1     uint64
	Amount0Min       uint64
	Amount1Min       uint64
}

func (e *RaydiumClmmDecreaseLiquidityEvent) Type() EventType {
	return EventRaydiumClmmDecreaseLiquidity
}
func (e *RaydiumClmmDecreaseLiquidityEvent) PartitionKey() types.Pubkey { return e.PoolState }
