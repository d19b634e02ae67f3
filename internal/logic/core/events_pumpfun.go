package core

import "dex-event-parser-sol/internal/types"

// PumpFunTradeEvent bonding curve 买卖。
// 指令侧只有 TokenAmount 与滑点约束（MaxSolCost / MinSolOutput），成交 SOL 与储备来自日志。
type PumpFunTradeEvent struct {
	EventMetadata
	Mint                   types.Pubkey
	BondingCurve           types.Pubkey
	AssociatedBondingCurve types.Pubkey
	User                   types.Pubkey
	FeeRecipient           types.Pubkey
	Creator                types.Pubkey
	SolAmount              uint64
	TokenAmount            uint64
	IsBuy                  bool
	Timestamp              int64
	VirtualSolReserves     uint64
	VirtualTokenReserves   uint64
	RealSolReserves        uint64
	RealTokenReserves      uint64
	FeeBasisPoints         uint64
	Fee                    uint64
	CreatorFeeBasisPoints  uint64
	CreatorFee             uint64
	MaxSolCost             uint64
	MinSolOutput           uint64
}

func (e *PumpFunTradeEvent) Type() EventType            { return EventPumpFunTrade }
func (e *PumpFunTradeEvent) PartitionKey() types.Pubkey { return e.Mint }

type PumpFunCreateTokenEvent struct {
	EventMetadata
	Name                   string
	Symbol                 string
	Uri                    string
	Mint                   types.Pubkey
	BondingCurve           types.Pubkey
	AssociatedBondingCurve types.Pubkey
	User                   types.Pubkey
	Creator                types.Pubkey
	Timestamp              int64
	VirtualTokenReserves   uint64
	VirtualSolReserves     uint64
	RealTokenReserves      uint64
	TokenTotalSupply       uint64
}

func (e *PumpFunCreateTokenEvent) Type() EventType            { return EventPumpFunCreateToken }
func (e *PumpFunCreateTokenEvent) PartitionKey() types.Pubkey { return e.Mint }

// PumpFunCompleteEvent bonding curve 完成（仅日志）
type PumpFunCompleteEvent struct {
	EventMetadata
	User         types.Pubkey
	Mint         types.Pubkey
	BondingCurve types.Pubkey
	Timestamp    int64
}

func (e *PumpFunCompleteEvent) Type() EventType            { return EventPumpFunComplete }
func (e *PumpFunCompleteEvent) PartitionKey() types.Pubkey { return e.Mint }

// PumpFunMigrateEvent 迁移到 PumpSwap
type PumpFunMigrateEvent struct {
	EventMetadata
	User             types.Pubkey
	Mint             types.Pubkey
	BondingCurve     types.Pubkey
	Pool             types.Pubkey
	MintAmount       uint64
	SolAmount        uint64
	PoolMigrationFee uint64
	Timestamp        int64
}

func (e *PumpFunMigrateEvent) Type() EventType            { return EventPumpFunMigrate }
func (e *PumpFunMigrateEvent) PartitionKey() types.Pubkey { return e.Mint }
