package common

import (
	"encoding/binary"

	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
)

// AnchorSelfCPIPrefix Anchor emit_cpi! 事件指令的 8 字节前缀（sha256("anchor:event")[:8]）
const AnchorSelfCPIPrefix uint64 = 0xe445a52e51cb9a1d

// InstructionDecoder 解码单条指令。data 包含判别符；无法识别或越界时返回 nil。
type InstructionDecoder func(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent

// LogDecoder 解码日志 payload（已去掉判别符）；结构不完整时返回 nil。
type LogDecoder func(payload []byte, meta core.EventMetadata) core.ProtocolEvent

// LogHandler 单个日志事件的解码入口
type LogHandler struct {
	// Discriminator Anchor 事件为 8 字节判别符（大端 uint64），ray_log 为 1 字节日志类型
	Discriminator uint64
	// Kinds 可能产出的事件类型，用于在完整解码前按过滤器剔除
	Kinds  []core.EventType
	Decode LogDecoder
}

// Protocol 单个 DEX 程序的解码描述，注册表构造后只读
type Protocol struct {
	Dex               int
	ProgramID         types.Pubkey
	ProgramIDStr      string
	DecodeInstruction InstructionDecoder
	ProgramData       []LogHandler // "Program data: <base64>"
	RayLog            []LogHandler // "Program log: ray_log: <base64>"
}

// Discriminator8 读取 Anchor 8 字节判别符
func Discriminator8(data []byte) (uint64, bool) {
	if len(data) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(data[:8]), true
}

// HasAccounts 账户列表长度是否满足要求
func HasAccounts(accounts []types.Pubkey, n int) bool {
	return len(accounts) >= n
}

// AccountAt 越界时返回零值
func AccountAt(accounts []types.Pubkey, i int) types.Pubkey {
	if i < 0 || i >= len(accounts) {
		return types.Pubkey{}
	}
	return accounts[i]
}
