package main

import (
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/utils"
	"encoding/json"
	"io"
)

// eventRecord 回放输出的一行 JSON
type eventRecord struct {
	Type      string             `json:"type"`
	Dex       string             `json:"dex"`
	Signature string             `json:"signature"`
	Slot      uint64             `json:"slot"`
	TxIndex   uint64             `json:"tx_index"`
	IxIndex   uint16             `json:"ix_index"`
	Inner     uint16             `json:"inner_index"`
	SlippageB *uint16            `json:"slippage_bps,omitempty"` // 实际成交相对最小成交约束的余量
	Event     core.ProtocolEvent `json:"event"`
}

func newEventRecord(evt core.ProtocolEvent) eventRecord {
	meta := evt.Metadata()
	return eventRecord{
		Type:      evt.Type().String(),
		Dex:       consts.DexName(evt.Type().Dex()),
		Signature: meta.Signature.String(),
		Slot:      meta.Slot,
		TxIndex:   meta.TxIndex,
		IxIndex:   meta.IxIndex,
		Inner:     meta.InnerIndex,
		SlippageB: slippageOf(evt),
		Event:     evt,
	}
}

// slippageOf 只对指令参数里带最小成交量的 exact-in swap 计算
func slippageOf(evt core.ProtocolEvent) *uint16 {
	var bps uint16
	switch e := evt.(type) {
	case *core.RaydiumCpmmSwapEvent:
		if !e.BaseInput || e.MinimumAmountOut == 0 {
			return nil
		}
		bps = utils.PriceImpactBps(e.InputAmount, e.MinimumAmountOut, e.OutputAmount)
	default:
		return nil
	}
	return &bps
}

type jsonWriter struct {
	enc *json.Encoder
}

func newJSONWriter(w io.Writer) *jsonWriter {
	return &jsonWriter{enc: json.NewEncoder(w)}
}

func (w *jsonWriter) write(v any) error {
	return w.enc.Encode(v)
}
