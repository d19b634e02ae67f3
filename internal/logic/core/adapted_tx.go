package core

import (
	"dex-event-parser-sol/internal/types"
)

// TxContext 表示交易所属区块的上下文信息
type TxContext struct {
	BlockTime  *int64 // 区块时间戳（Unix 秒），nil 表示未知
	Slot       uint64 // 当前 Slot（Solana 高度单位）
	ParentSlot uint64 // 父 Slot（用于分叉检测和回滚）
	RecvUs     int64  // 收到区块的本地时间（微秒）
}

// AdaptedInstruction 表示一条主指令或 inner 指令，来源于 Solana Transaction 中的 message.instructions 或 innerInstructions。
// 所有指令在预处理阶段已展平，并补充了位置信息（IxIndex、InnerIndex），以支持顺序遍历与事件定位。
type AdaptedInstruction struct {
	IxIndex    uint16         // 主指令索引（从 0 开始）
	InnerIndex uint16         // Inner 指令在主指令中的序号，主指令本身为 0，CPI 调用从 1 开始
	ProgramID  types.Pubkey   // 指令对应的程序 ID
	Accounts   []types.Pubkey // 指令涉及的账户列表，保持原始顺序
	Data       []byte         // 指令原始数据
}

// AdaptedTx 已适配的链上交易，是整笔交易事件解析的输入，解析过程只读。
type AdaptedTx struct {
	TxCtx     *TxContext
	TxIndex   uint32 // 当前交易在区块中的序号
	Signature types.Signature

	// Instructions 交易中的所有指令（主指令 + inner 指令），已按执行顺序展平
	Instructions []*AdaptedInstruction

	// LogMessages 交易执行过程中产生的 Program 日志，顺序即执行顺序
	LogMessages []string
}

// BlockTime 返回区块时间，TxCtx 缺失时为 nil
func (tx *AdaptedTx) BlockTime() *int64 {
	if tx.TxCtx == nil {
		return nil
	}
	return tx.TxCtx.BlockTime
}

func (tx *AdaptedTx) Slot() uint64 {
	if tx.TxCtx == nil {
		return 0
	}
	return tx.TxCtx.Slot
}
