package eventparser

import (
	"encoding/base64"
	"encoding/binary"
	"strings"

	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/types"
)

const (
	// minLogLineLen 短于 "Program data: " + 8 字节判别符的 base64 的行不可能是事件
	minLogLineLen = 20

	programDataPrefix = "Program data: "
	rayLogPrefix      = "Program log: ray_log: "

	// 12 个 base64 字符 = 9 字节，足够覆盖 8 字节判别符
	discB64Len = 12
	// 4 个 base64 字符 = 3 字节，首字节即 ray_log 类型
	rayLogB64Len = 4
)

// decodeLogLine 解码单行日志。hint 为当前调用帧所属程序：
//   - 零值表示没有上下文，按注册顺序尝试所有匹配判别符的协议，首个成功者胜出
//   - 非零时只尝试该程序的路由（未注册程序的帧传入 consts.InvalidAddress，不会命中任何路由）
func (r *Registry) decodeLogLine(line string, hint types.Pubkey, meta core.EventMetadata, filter *core.EventTypeFilter) core.ProtocolEvent {
	if len(line) < minLogLineLen {
		return nil
	}
	switch {
	case strings.HasPrefix(line, programDataPrefix):
		return r.decodeProgramData(firstField(line[len(programDataPrefix):]), hint, meta, filter)
	case strings.HasPrefix(line, rayLogPrefix):
		return r.decodeRayLog(firstField(line[len(rayLogPrefix):]), hint, meta, filter)
	default:
		return nil
	}
}

func (r *Registry) decodeProgramData(b64 string, hint types.Pubkey, meta core.EventMetadata, filter *core.EventTypeFilter) core.ProtocolEvent {
	if len(b64) < discB64Len {
		return nil
	}
	var src [discB64Len]byte
	var head [9]byte
	copy(src[:], b64)
	n, err := base64.StdEncoding.Decode(head[:], src[:])
	if err != nil || n < 8 {
		return nil
	}
	routes := r.programData[binary.BigEndian.Uint64(head[:8])]
	if len(routes) == 0 {
		return nil
	}
	return decodeRoutes(routes, b64, 8, hint, meta, filter)
}

func (r *Registry) decodeRayLog(b64 string, hint types.Pubkey, meta core.EventMetadata, filter *core.EventTypeFilter) core.ProtocolEvent {
	if len(b64) < rayLogB64Len {
		return nil
	}
	var src [rayLogB64Len]byte
	var head [3]byte
	copy(src[:], b64)
	if _, err := base64.StdEncoding.Decode(head[:], src[:]); err != nil {
		return nil
	}
	routes := r.rayLog[head[0]]
	if len(routes) == 0 {
		return nil
	}
	return decodeRoutes(routes, b64, 1, hint, meta, filter)
}

// decodeRoutes 判别符命中后才做完整 base64 解码，且只解码一次
func decodeRoutes(routes []route, b64 string, discLen int, hint types.Pubkey, meta core.EventMetadata, filter *core.EventTypeFilter) core.ProtocolEvent {
	var payload []byte
	for _, rt := range routes {
		if !hint.IsZero() && rt.programID != hint {
			continue
		}
		if !filter.ShouldIncludeAny(rt.handler.Kinds) {
			continue
		}
		if payload == nil {
			raw, err := base64.StdEncoding.DecodeString(b64)
			if err != nil || len(raw) < discLen {
				return nil
			}
			payload = raw[discLen:]
		}
		evt := rt.handler.Decode(payload, meta)
		if evt == nil {
			continue
		}
		// 同一判别符可能产出多种类型（如 CPMM LpChangeEvent），按实际类型再过滤一次
		if !filter.ShouldInclude(evt.Type()) {
			continue
		}
		return evt
	}
	return nil
}

// decodeSelfCPIEvent 解码 Anchor emit_cpi! 事件指令：8 字节自调用前缀之后与 "Program data:" 的内容相同。
// 只尝试 programID 自己的路由。
func (r *Registry) decodeSelfCPIEvent(data []byte, programID types.Pubkey, meta core.EventMetadata, filter *core.EventTypeFilter) core.ProtocolEvent {
	if len(data) < 16 || binary.BigEndian.Uint64(data[:8]) != common.AnchorSelfCPIPrefix {
		return nil
	}
	for _, rt := range r.programData[binary.BigEndian.Uint64(data[8:16])] {
		if rt.programID != programID || !filter.ShouldIncludeAny(rt.handler.Kinds) {
			continue
		}
		if evt := rt.handler.Decode(data[16:], meta); evt != nil && filter.ShouldInclude(evt.Type()) {
			return evt
		}
	}
	return nil
}

// firstField sol_log_data 多段数据以空格分隔，事件只占第一段
func firstField(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

type programLineKind uint8

const (
	lineOther programLineKind = iota
	lineInvoke
	lineExit
)

// parseProgramLine 识别 "Program <id> invoke [n]"、"Program <id> success"、"Program <id> failed: ..."
func parseProgramLine(line string) (string, programLineKind) {
	const prefix = "Program "
	if !strings.HasPrefix(line, prefix) {
		return "", lineOther
	}
	rest := line[len(prefix):]
	sp := strings.IndexByte(rest, ' ')
	if sp <= 0 {
		return "", lineOther
	}
	id, tail := rest[:sp], rest[sp+1:]
	// "Program log:" / "Program data:" / "Program return:"
	if id[len(id)-1] == ':' {
		return "", lineOther
	}
	switch {
	case strings.HasPrefix(tail, "invoke ["):
		return id, lineInvoke
	case tail == "success", strings.HasPrefix(tail, "failed"):
		return id, lineExit
	default:
		return "", lineOther
	}
}
