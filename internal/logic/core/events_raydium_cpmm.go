package core

import "dex-event-parser-sol/internal/types"

type RaydiumCpmmSwapEvent struct {
	EventMetadata
	PoolState          types.Pubkey
	Payer              types.Pubkey
	AmmConfig          types.Pubkey
	InputTokenAccount  types.Pubkey
	OutputTokenAccount types.Pubkey
	InputVault         types.Pubkey
	OutputVault        types.Pubkey
	InputTokenMint     types.Pubkey
	OutputTokenMint    types.Pubkey
	InputVaultBefore   uint64
	OutputVaultBefore  uint64
	InputAmount        uint64
	OutputAmount       uint64
	InputTransferFee   uint64
	OutputTransferFee  uint64
	BaseInput          bool
	TradeFee           uint64
	MinimumAmountOut   uint64
	MaxAmountIn        uint64
}

func (e *RaydiumCpmmSwapEvent) Type() EventType            { return EventRaydiumCpmmSwap }
func (e *RaydiumCpmmSwapEvent) PartitionKey() types.Pubkey { return e.PoolState }

// RaydiumCpmmLiquidity Deposit / Withdraw 共用字段，日志 LpChangeEvent 以 change_type 区分
type RaydiumCpmmLiquidity struct {
	PoolState         types.Pubkey
	Owner             types.Pubkey
	Token0Mint        types.Pubkey
	Token1Mint        types.Pubkey
	LpMint            types.Pubkey
	LpAmountBefore    uint64
	Token0VaultBefore uint64
	Token1VaultBefore uint64
	LpTokenAmount     uint64
	Token0Amount      uint64
	Token1Amount      uint64
	Token0TransferFee uint64
	Token1TransferFee uint64
	Token0AmountLimit uint64 // deposit 为 maximum，withdraw 为 minimum
	Token1AmountLimit uint64
}

type RaydiumCpmmDepositEvent struct {
	EventMetadata
	RaydiumCpmmLiquidity
}

func (e *RaydiumCpmmDepositEvent) Type() EventType            { return EventRaydiumCpmmDeposit }
func (e *RaydiumCpmmDepositEvent) PartitionKey() types.Pubkey { return e.PoolState }

type RaydiumCpmmWithdrawEvent struct {
	EventMetadata
	RaydiumCpmmLiquidity
}

func (e *RaydiumCpmmWithdrawEvent) Type() EventType            { return EventRaydiumCpmmWithdraw }
func (e *RaydiumCpmmWithdrawEvent) PartitionKey() types.Pubkey { return e.PoolState }

// RaydiumCpmmInitializeEvent 仅指令来源
type RaydiumCpmmInitializeEvent struct {
	EventMetadata
	Creator     types.Pubkey
	AmmConfig   types.Pubkey
	PoolState   types.Pubkey
	Token0Mint  types.Pubkey
	Token1Mint  types.Pubkey
	LpMint      types.Pubkey
	InitAmount0 uint64
	InitAmount1 uint64
	OpenTime    uint64
}

func (e *RaydiumCpmmInitializeEvent) Type() EventType            { return EventRaydiumCpmmInitialize }
func (e *RaydiumCpmmInitializeEvent) PartitionKey() types.Pubkey { return e.PoolState }
