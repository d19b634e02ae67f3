package core

import "dex-event-parser-sol/internal/types"

type OrcaWhirlpoolSwapEvent struct {
	EventMetadata
	Whirlpool              types.Pubkey
	TokenAuthority         types.Pubkey
	TokenMintA             types.Pubkey
	TokenMintB             types.Pubkey
	TokenOwnerAccountA     types.Pubkey
	TokenVaultA            types.Pubkey
	TokenOwnerAccountB     types.Pubkey
	TokenVaultB            types.Pubkey
	AToB                   bool
	PreSqrtPrice           types.Uint128
	PostSqrtPrice          types.Uint128
	InputAmount            uint64
	OutputAmount           uint64
	InputTransferFee       uint64
	OutputTransferFee      uint64
	LpFee                  uint64
	ProtocolFee            uint64
	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimit         types.Uint128
	AmountSpecifiedIsInput bool
}

func (e *OrcaWhirlpoolSwapEvent) Type() EventType            { return EventOrcaWhirlpoolSwap }
func (e *OrcaWhirlpoolSwapEvent) PartitionKey() types.Pubkey { return e.Whirlpool }

// OrcaWhirlpoolLiquidity 加减流动性共用字段
type OrcaWhirlpoolLiquidity struct {
	Whirlpool         types.Pubkey
	PositionAuthority types.Pubkey
	Position          types.Pubkey
	TokenMintA        types.Pubkey
	TokenMintB        types.Pubkey
	TickLowerIndex    int32
	TickUpperIndex    int32
	Liquidity         types.Uint128
	TokenAAmount      uint64
	TokenBAmount      uint64
	TokenATransferFee uint64
	TokenBTransferFee uint64
	TokenLimitA       uint64 // increase 为 max，decrease 为 min
	TokenLimitB       uint64
}

type OrcaWhirlpoolIncreaseLiquidityEvent struct {
	EventMetadata
	OrcaWhirlpoolLiquidity
}

func (e *OrcaWhirlpoolIncreaseLiquidityEvent) Type() EventType {
	return EventOrcaWhirlpoolIncreaseLiquidity
}
func (e *OrcaWhirlpoolIncreaseLiquidityEvent) PartitionKey() types.Pubkey { return e.Whirlpool }

type OrcaWhirlpoolDecreaseLiquidityEvent struct {
	EventMetadata
	OrcaWhirlpoolLiquidity
}

func (e *OrcaWhirlpoolDecreaseLiquidityEvent) Type() EventType {
	return EventOrcaWhirlpoolDecreaseLiquidity
}
func (e *OrcaWhirlpoolDecreaseLiquidityEvent) PartitionKey() types.Pubkey { return e.Whirlpool }

type OrcaWhirlpoolPoolInitializeEvent struct {
	EventMetadata
	Whirlpool        types.Pubkey
	WhirlpoolsConfig types.Pubkey
	TokenMintA       types.Pubkey
	TokenMintB       types.Pubkey
	Funder           types.Pubkey
	TokenProgramA    types.Pubkey
	TokenProgramB    types.Pubkey
	TickSpacing      uint16
	DecimalsA        uint8
	DecimalsB        uint8
	InitialSqrtPrice types.Uint128
	Bump             uint8
}

func (e *OrcaWhirlpoolPoolInitializeEvent) Type() EventType {
	return EventOrcaWhirlpoolPoolInitialize
}
func (e *OrcaWhirlpoolPoolInitializeEvent) PartitionKey() types.Pubkey { return e.Whirlpool }
