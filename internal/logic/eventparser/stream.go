package eventparser

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/merger"
	"dex-event-parser-sol/internal/types"
)

// StreamTransactionEvents 先扫描日志得到待合并事件，再解码指令：
// 同类型的首个日志事件与指令事件合并后回调，其余事件按日志顺序原样回调，
// 没有日志对应的指令事件最后回调。
func (p *Parser) StreamTransactionEvents(
	data []byte,
	accounts []types.Pubkey,
	logs []string,
	sig types.Signature,
	slot uint64,
	blockTime *int64,
	programID types.Pubkey,
	onEvent func(core.ProtocolEvent),
) {
	meta := core.NewEventMetadata(sig, slot, blockTime, core.NowMicros())
	p.stream(data, accounts, logs, nil, programID, meta, onEvent)
}

// stream cpiEvents 为该指令发出的 emit_cpi! 事件指令数据，作为日志侧事件参与合并
func (p *Parser) stream(data []byte, accounts []types.Pubkey, logs []string, cpiEvents [][]byte, programID types.Pubkey, meta core.EventMetadata, onEvent func(core.ProtocolEvent)) {
	pending := p.scanLogs(logs, programID, meta)
	pending = p.appendSelfCPIEvents(pending, cpiEvents, programID, meta)

	if ixEvt := p.DecodeInstruction(programID, data, accounts, meta); ixEvt != nil {
		merged := false
		for i, evt := range pending {
			if core.CanMerge(evt, ixEvt) {
				pending[i] = merger.Merge(evt, ixEvt)
				merged = true
				break
			}
		}
		if !merged {
			pending = append(pending, ixEvt)
		}
	}

	for _, evt := range pending {
		onEvent(evt)
	}
}

// appendSelfCPIEvents 日志里已有同类型事件时跳过，同一事件只回调一次
func (p *Parser) appendSelfCPIEvents(pending []core.ProtocolEvent, cpiEvents [][]byte, programID types.Pubkey, meta core.EventMetadata) []core.ProtocolEvent {
	fromLogs := len(pending)
	for _, data := range cpiEvents {
		evt := p.registry.decodeSelfCPIEvent(data, programID, meta, p.filter)
		if evt == nil {
			continue
		}
		dup := false
		for _, logged := range pending[:fromLogs] {
			if logged.Type() == evt.Type() {
				dup = true
				break
			}
		}
		if !dup {
			pending = append(pending, evt)
		}
	}
	return pending
}

// scanLogs 按 invoke/success 维护调用栈，日志只交给当前帧所属程序的路由解码。
// 栈为空时以 base 作为上下文：base 为已注册程序时直接使用，否则为零值（尝试全部路由）。
func (p *Parser) scanLogs(logs []string, base types.Pubkey, meta core.EventMetadata) []core.ProtocolEvent {
	if len(logs) == 0 {
		return nil
	}
	if !p.registry.IsSupported(base) {
		base = types.Pubkey{}
	}

	var pending []core.ProtocolEvent
	stack := make([]types.Pubkey, 0, 8)
	for _, line := range logs {
		id, kind := parseProgramLine(line)
		switch kind {
		case lineInvoke:
			prog, ok := p.registry.lookupIDStr(id)
			if !ok {
				prog = consts.InvalidAddress
			}
			stack = append(stack, prog)
			continue
		case lineExit:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		hint := base
		if len(stack) > 0 {
			hint = stack[len(stack)-1]
		}
		if evt := p.registry.decodeLogLine(line, hint, meta, p.filter); evt != nil {
			pending = append(pending, evt)
		}
	}
	return pending
}
