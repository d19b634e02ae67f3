package eventparser

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
)

// defaultRegistry 全局只读注册表，所有 Parser 共享
var defaultRegistry = NewRegistry()

// Parser 绑定事件类型过滤器的解析入口；无内部可变状态，可并发使用
type Parser struct {
	registry *Registry
	filter   *core.EventTypeFilter
}

// NewParser filter 为 nil 表示解析全部事件类型
func NewParser(filter *core.EventTypeFilter) *Parser {
	return &Parser{registry: defaultRegistry, filter: filter}
}

var defaultParser = NewParser(nil)

func (p *Parser) Registry() *Registry {
	return p.registry
}

// DecodeInstruction 解码单条指令，被过滤器排除的类型返回 nil
func (p *Parser) DecodeInstruction(programID types.Pubkey, data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	evt := p.registry.DecodeInstruction(programID, data, accounts, meta)
	if evt == nil || !p.filter.ShouldInclude(evt.Type()) {
		return nil
	}
	return evt
}

// DecodeLogLine 解码单行日志（无调用帧上下文）
func (p *Parser) DecodeLogLine(line string, meta core.EventMetadata) core.ProtocolEvent {
	return p.registry.decodeLogLine(line, types.Pubkey{}, meta, p.filter)
}

// DecodeInstruction 解码单条指令，未知程序、空数据或结构不完整时返回 nil
func DecodeInstruction(data []byte, accounts []types.Pubkey, sig types.Signature, slot uint64, blockTime *int64, programID types.Pubkey) core.ProtocolEvent {
	meta := core.NewEventMetadata(sig, slot, blockTime, core.NowMicros())
	return defaultParser.DecodeInstruction(programID, data, accounts, meta)
}

// DecodeLogLine 解码单行 "Program data:" / "ray_log:" 日志
func DecodeLogLine(line string, sig types.Signature, slot uint64, blockTime *int64) core.ProtocolEvent {
	return DecodeLogLineWithOptions(line, sig, slot, blockTime, core.NowMicros(), nil)
}

// DecodeLogLineWithOptions recvUs 由调用方提供（如 gRPC 收包时间）；filter 为 nil 表示不过滤
func DecodeLogLineWithOptions(line string, sig types.Signature, slot uint64, blockTime *int64, recvUs int64, filter *core.EventTypeFilter) core.ProtocolEvent {
	meta := core.NewEventMetadata(sig, slot, blockTime, recvUs)
	return defaultRegistry.decodeLogLine(line, types.Pubkey{}, meta, filter)
}

// StreamTransactionEvents 单笔交易（单个程序调用）的流式解析，每个事件恰好回调一次
func StreamTransactionEvents(
	data []byte,
	accounts []types.Pubkey,
	logs []string,
	sig types.Signature,
	slot uint64,
	blockTime *int64,
	programID types.Pubkey,
	onEvent func(core.ProtocolEvent),
) {
	defaultParser.StreamTransactionEvents(data, accounts, logs, sig, slot, blockTime, programID, onEvent)
}
