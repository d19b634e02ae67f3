package core

import "dex-event-parser-sol/internal/types"

// RaydiumAmmV4SwapEvent swap_base_in(9) / swap_base_out(11)
type RaydiumAmmV4SwapEvent struct {
	EventMetadata
	Amm                    types.Pubkey
	PoolCoinTokenAccount   types.Pubkey
	PoolPcTokenAccount     types.Pubkey
	UserSourceTokenAccount types.Pubkey
	UserDestTokenAccount   types.Pubkey
	UserSourceOwner        types.Pubkey
	BaseIn                 bool
	AmountIn               uint64
	MinimumAmountOut       uint64
	MaxAmountIn            uint64
	AmountOut              uint64
	Direction              uint64 // 1: coin -> pc，2: pc -> coin
	UserSource             uint64 // 用户 source 账户交易前余额
	PoolCoin               uint64
	PoolPc                 uint64
}

func (e *RaydiumAmmV4SwapEvent) Type() EventType            { return EventRaydiumAmmV4Swap }
func (e *RaydiumAmmV4SwapEvent) PartitionKey() types.Pubkey { return e.Amm }

type RaydiumAmmV4DepositEvent struct {
	EventMetadata
	Amm           types.Pubkey
	LpMint        types.Pubkey
	UserOwner     types.Pubkey
	MaxCoinAmount uint64
	MaxPcAmount   uint64
	BaseSide      uint64
	PoolCoin      uint64
	PoolPc        uint64
	PoolLp        uint64
	PoolPnlX      types.Uint128
	PoolPnlY      types.Uint128
	DeductCoin    uint64
	DeductPc      uint64
	MintLp        uint64
}

func (e *RaydiumAmmV4DepositEvent) Type() EventType            { return EventRaydiumAmmV4Deposit }
func (e *RaydiumAmmV4DepositEvent) PartitionKey() types.Pubkey { return e.Amm }

type RaydiumAmmV4WithdrawEvent struct {
	EventMetadata
	Amm        types.Pubkey
	LpMint     types.Pubkey
	UserOwner  types.Pubkey
	WithdrawLp uint64
	UserLp     uint64
	PoolCoin   uint64
	PoolPc     uint64
	PoolLp     uint64
	PoolPnlX   types.Uint128
	PoolPnlY   types.Uint128
	OutCoin    uint64
	OutPc      uint64
}

func (e *RaydiumAmmV4WithdrawEvent) Type() EventType            { return EventRaydiumAmmV4Withdraw }
func (e *RaydiumAmmV4WithdrawEvent) PartitionKey() types.Pubkey { return e.Amm }

// RaydiumAmmV4InitializeEvent initialize2(1)
type RaydiumAmmV4InitializeEvent struct {
	EventMetadata
	Amm            types.Pubkey
	LpMint         types.Pubkey
	CoinMint       types.Pubkey
	PcMint         types.Pubkey
	PoolCoinVault  types.Pubkey
	PoolPcVault    types.Pubkey
	Market         types.Pubkey
	UserWallet     types.Pubkey
	Nonce          uint8
	OpenTime       uint64
	InitPcAmount   uint64
	InitCoinAmount uint64
	Time           uint64 // 日志记录的初始化时间
	PcDecimals     uint8
	CoinDecimals   uint8
	PcLotSize      uint64
	CoinLotSize    uint64
}

func (e *RaydiumAmmV4InitializeEvent) Type() EventType            { return EventRaydiumAmmV4Initialize }
func (e *RaydiumAmmV4InitializeEvent) PartitionKey() types.Pubkey { return e.Amm }
