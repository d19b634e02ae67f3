package core

import "dex-event-parser-sol/internal/types"

// PumpSwapAccounts 买卖指令共用的账户布局
type PumpSwapAccounts struct {
	Pool                             types.Pubkey
	User                             types.Pubkey
	GlobalConfig                     types.Pubkey
	BaseMint                         types.Pubkey
	QuoteMint                        types.Pubkey
	UserBaseTokenAccount             types.Pubkey
	UserQuoteTokenAccount            types.Pubkey
	PoolBaseTokenAccount             types.Pubkey
	PoolQuoteTokenAccount            types.Pubkey
	ProtocolFeeRecipient             types.Pubkey
	ProtocolFeeRecipientTokenAccount types.Pubkey
}

// PumpSwapReserves 日志中记录的交易前储备
type PumpSwapReserves struct {
	UserBaseTokenReserves  uint64
	UserQuoteTokenReserves uint64
	PoolBaseTokenReserves  uint64
	PoolQuoteTokenReserves uint64
}

type PumpSwapBuyEvent struct {
	EventMetadata
	PumpSwapAccounts
	PumpSwapReserves
	Timestamp              int64
	BaseAmountOut          uint64
	MaxQuoteAmountIn       uint64
	QuoteAmountIn          uint64
	LpFeeBasisPoints       uint64
	LpFee                  uint64
	ProtocolFeeBasisPoints uint64
	ProtocolFee            uint64
	QuoteAmountInWithLpFee uint64
	UserQuoteAmountIn      uint64
}

func (e *PumpSwapBuyEvent) Type() EventType            { return EventPumpSwapBuy }
func (e *PumpSwapBuyEvent) PartitionKey() types.Pubkey { return e.Pool }

type PumpSwapSellEvent struct {
	EventMetadata
	PumpSwapAccounts
	PumpSwapReserves
	Timestamp                  int64
	BaseAmountIn               uint64
	MinQuoteAmountOut          uint64
	QuoteAmountOut             uint64
	LpFeeBasisPoints           uint64
	LpFee                      uint64
	ProtocolFeeBasisPoints     uint64
	ProtocolFee                uint64
	QuoteAmountOutWithoutLpFee uint64
	UserQuoteAmountOut         uint64
}

func (e *PumpSwapSellEvent) Type() EventType            { return EventPumpSwapSell }
func (e *PumpSwapSellEvent) PartitionKey() types.Pubkey { return e.Pool }

type PumpSwapCreatePoolEvent struct {
	EventMetadata
	Pool                  types.Pubkey
	GlobalConfig          types.Pubkey
	Creator               types.Pubkey
	BaseMint              types.Pubkey
	QuoteMint             types.Pubkey
	LpMint                types.Pubkey
	UserBaseTokenAccount  types.Pubkey
	UserQuoteTokenAccount types.Pubkey
	Timestamp             int64
	Index                 uint16
	BaseMintDecimals      uint8
	QuoteMintDecimals     uint8
	BaseAmountIn          uint64
	QuoteAmountIn         uint64
	PoolBaseAmount        uint64
	PoolQuoteAmount       uint64
	MinimumLiquidity      uint64
	InitialLiquidity      uint64
	LpTokenAmountOut      uint64
	PoolBump              uint8
}

func (e *PumpSwapCreatePoolEvent) Type() EventType            { return EventPumpSwapCreatePool }
func (e *PumpSwapCreatePoolEvent) PartitionKey() types.Pubkey { return e.Pool }

// PumpSwapLiquidityAccounts 加减流动性指令共用的账户布局
type PumpSwapLiquidityAccounts struct {
	Pool                  types.Pubkey
	User                  types.Pubkey
	BaseMint              types.Pubkey
	QuoteMint             types.Pubkey
	LpMint                types.Pubkey
	UserBaseTokenAccount  types.Pubkey
	UserQuoteTokenAccount types.Pubkey
	UserPoolTokenAccount  types.Pubkey
}

type PumpSwapDepositEvent struct {
	EventMetadata
	PumpSwapLiquidityAccounts
	PumpSwapReserves
	Timestamp        int64
	LpTokenAmountOut uint64
	MaxBaseAmountIn  uint64
	MaxQuoteAmountIn uint64
	BaseAmountIn     uint64
	QuoteAmountIn    uint64
	LpMintSupply     uint64
}

func (e *PumpSwapDepositEvent) Type() EventType            { return EventPumpSwapDeposit }
func (e *PumpSwapDepositEvent) PartitionKey() types.Pubkey { return e.Pool }

type PumpSwapWithdrawEvent struct {
	EventMetadata
	PumpSwapLiquidityAccounts
	PumpSwapReserves
	Timestamp         int64
	LpTokenAmountIn   uint64
	MinBaseAmountOut  uint64
	MinQuoteAmountOut uint64
	BaseAmountOut     uint64
	QuoteAmountOut    uint64
	LpMintSupply      uint64
}

func (e *PumpSwapWithdrawEvent) Type() EventType            { return EventPumpSwapWithdraw }
func (e *PumpSwapWithdrawEvent) PartitionKey() types.Pubkey { return e.Pool }
