package eventparser

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/bonk"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/logic/eventparser/meteoradammv2"
	"dex-event-parser-sol/internal/logic/eventparser/meteorapools"
	"dex-event-parser-sol/internal/logic/eventparser/orcawhirlpool"
	"dex-event-parser-sol/internal/logic/eventparser/pumpfun"
	"dex-event-parser-sol/internal/logic/eventparser/pumpswap"
	"dex-event-parser-sol/internal/logic/eventparser/raydiumclmm"
	"dex-event-parser-sol/internal/logic/eventparser/raydiumcpmm"
	"dex-event-parser-sol/internal/logic/eventparser/raydiumv4"
	"dex-event-parser-sol/internal/types"
)

// route 日志判别符 → 所属程序 + 解码函数
type route struct {
	programID types.Pubkey
	handler   common.LogHandler
}

// Registry 程序 ID → 解码器映射，构造后只读，可在多个 goroutine 间共享
type Registry struct {
	// protocols 按链上出现频率排序，DecodeInstruction 顺序比对 [32]byte
	protocols []common.Protocol

	// byIDStr 日志中 invoke 行携带的是 base58 文本，直接按文本查找，避免逐行 base58 解码
	byIDStr map[string]types.Pubkey

	programData map[uint64][]route
	rayLog      [256][]route
}

// NewRegistry 构造包含全部受支持协议的注册表
func NewRegistry() *Registry {
	return newRegistry(
		pumpfun.Protocol(),
		pumpswap.Protocol(),
		raydiumv4.Protocol(),
		raydiumclmm.Protocol(),
		raydiumcpmm.Protocol(),
		orcawhirlpool.Protocol(),
		meteoradammv2.Protocol(),
		bonk.Protocol(),
		meteorapools.Protocol(),
	)
}

func newRegistry(protocols ...common.Protocol) *Registry {
	r := &Registry{
		protocols:   protocols,
		byIDStr:     make(map[string]types.Pubkey, len(protocols)),
		programData: make(map[uint64][]route),
	}
	for _, p := range protocols {
		r.byIDStr[p.ProgramIDStr] = p.ProgramID
		for _, h := range p.ProgramData {
			r.programData[h.Discriminator] = append(r.programData[h.Discriminator], route{programID: p.ProgramID, handler: h})
		}
		for _, h := range p.RayLog {
			if h.Discriminator < uint64(len(r.rayLog)) {
				r.rayLog[h.Discriminator] = append(r.rayLog[h.Discriminator], route{programID: p.ProgramID, handler: h})
			}
		}
	}
	return r
}

// DecodeInstruction 按程序 ID 分发到对应协议的指令解码器。
// 空数据、未知程序或解码失败均返回 nil。
func (r *Registry) DecodeInstruction(programID types.Pubkey, data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if len(data) == 0 {
		return nil
	}
	for i := range r.protocols {
		if r.protocols[i].ProgramID == programID {
			return r.protocols[i].DecodeInstruction(data, accounts, meta)
		}
	}
	return nil
}

// IsSupported 程序是否在注册表中
func (r *Registry) IsSupported(programID types.Pubkey) bool {
	for i := range r.protocols {
		if r.protocols[i].ProgramID == programID {
			return true
		}
	}
	return false
}

// lookupIDStr 按 base58 文本查找已注册程序
func (r *Registry) lookupIDStr(id string) (types.Pubkey, bool) {
	p, ok := r.byIDStr[id]
	return p, ok
}

// Protocols 返回注册顺序的协议列表副本
func (r *Registry) Protocols() []common.Protocol {
	out := make([]common.Protocol, len(r.protocols))
	copy(out, r.protocols)
	return out
}
