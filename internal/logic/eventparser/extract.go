package eventparser

import (
	"runtime/debug"

	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/pkg/logger"
	"dex-event-parser-sol/internal/types"
)

// logSegment 一次受支持程序调用（含其内部调用）产生的日志
type logSegment struct {
	programID types.Pubkey
	lines     []string
}

type logFrame struct {
	programID types.Pubkey
	segment   int // -1 表示不属于任何受支持程序
}

// splitSegments 按调用栈切分日志：父帧不是同一程序的受支持程序调用开启新分段，
// 自调用（Anchor emit_cpi!）与未注册程序的日志归入父帧所在分段。
func (p *Parser) splitSegments(logs []string) []logSegment {
	var segments []logSegment
	stack := make([]logFrame, 0, 8)

	for _, line := range logs {
		id, kind := parseProgramLine(line)
		switch kind {
		case lineInvoke:
			parent := logFrame{programID: consts.InvalidAddress, segment: -1}
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			frame := logFrame{programID: consts.InvalidAddress, segment: parent.segment}
			if prog, ok := p.registry.lookupIDStr(id); ok {
				frame.programID = prog
				if prog != parent.programID {
					segments = append(segments, logSegment{programID: prog})
					frame.segment = len(segments) - 1
				}
			}
			stack = append(stack, frame)
			if frame.segment >= 0 {
				segments[frame.segment].lines = append(segments[frame.segment].lines, line)
			}

		case lineExit:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.segment >= 0 {
				segments[top.segment].lines = append(segments[top.segment].lines, line)
			}

		default:
			if len(stack) > 0 {
				if seg := stack[len(stack)-1].segment; seg >= 0 {
					segments[seg].lines = append(segments[seg].lines, line)
				}
			}
		}
	}
	return segments
}

// candidate 受支持程序的业务指令，以及它随后发出的 emit_cpi! 事件指令数据
type candidate struct {
	ix        *core.AdaptedInstruction
	cpiEvents [][]byte
}

func isSelfCPIEvent(data []byte) bool {
	disc, ok := common.Discriminator8(data)
	return ok && disc == common.AnchorSelfCPIPrefix
}

// collectCandidates 事件指令由程序自调用发出，归属同一主指令下最近一次同程序的业务指令
func (p *Parser) collectCandidates(tx *core.AdaptedTx) []candidate {
	out := make([]candidate, 0, 4)
	for _, ix := range tx.Instructions {
		if !p.registry.IsSupported(ix.ProgramID) {
			continue
		}
		if !isSelfCPIEvent(ix.Data) {
			out = append(out, candidate{ix: ix})
			continue
		}
		owned := false
		for k := len(out) - 1; k >= 0 && out[k].ix.IxIndex == ix.IxIndex; k-- {
			if out[k].ix.ProgramID == ix.ProgramID {
				out[k].cpiEvents = append(out[k].cpiEvents, ix.Data)
				owned = true
				break
			}
		}
		if !owned {
			logger.Debugf("[eventparser::ExtractEventsFromTx] orphan self-CPI event, tx=%s ix=%d inner=%d", tx.Signature, ix.IxIndex, ix.InnerIndex)
		}
	}
	return out
}

// ExtractEventsFromTx 解析整笔交易：日志分段与候选指令按执行顺序、按程序配对，
// 每一对走一次流式解析。单笔交易内的 panic 会被恢复并记录，不影响调用方。
func (p *Parser) ExtractEventsFromTx(tx *core.AdaptedTx, onEvent func(core.ProtocolEvent)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[eventparser::ExtractEventsFromTx] panic tx=%s: %+v\nstack: %s", tx.Signature, r, debug.Stack())
		}
	}()

	recvUs := core.NowMicros()
	if tx.TxCtx != nil && tx.TxCtx.RecvUs > 0 {
		recvUs = tx.TxCtx.RecvUs
	}
	base := core.NewEventMetadata(tx.Signature, tx.Slot(), tx.BlockTime(), recvUs)
	base.TxIndex = uint64(tx.TxIndex)

	segments := p.splitSegments(tx.LogMessages)
	next := 0

	flush := func(until int) {
		for ; next < until; next++ {
			seg := &segments[next]
			p.stream(nil, nil, seg.lines, nil, seg.programID, base, onEvent)
		}
	}

	for _, c := range p.collectCandidates(tx) {
		ix := c.ix
		meta := base
		meta.IxIndex = ix.IxIndex
		meta.InnerIndex = ix.InnerIndex

		j := next
		for j < len(segments) && segments[j].programID != ix.ProgramID {
			j++
		}
		if j == len(segments) {
			logger.Debugf("[eventparser::ExtractEventsFromTx] no log segment for ix, tx=%s ix=%d inner=%d", tx.Signature, ix.IxIndex, ix.InnerIndex)
			p.stream(ix.Data, ix.Accounts, nil, c.cpiEvents, ix.ProgramID, meta, onEvent)
			continue
		}
		flush(j)
		p.stream(ix.Data, ix.Accounts, segments[j].lines, c.cpiEvents, ix.ProgramID, meta, onEvent)
		next = j + 1
	}
	flush(len(segments))
}

// CollectEventsFromTx 收集整笔交易的事件，panic 时返回已收集部分
func (p *Parser) CollectEventsFromTx(tx *core.AdaptedTx) []core.ProtocolEvent {
	var events []core.ProtocolEvent
	p.ExtractEventsFromTx(tx, func(evt core.ProtocolEvent) {
		events = append(events, evt)
	})
	return events
}

func ExtractEventsFromTx(tx *core.AdaptedTx, onEvent func(core.ProtocolEvent)) {
	defaultParser.ExtractEventsFromTx(tx, onEvent)
}

func CollectEventsFromTx(tx *core.AdaptedTx) []core.ProtocolEvent {
	return defaultParser.CollectEventsFromTx(tx)
}
