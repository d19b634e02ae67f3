package bonk

import (
	"encoding/binary"
	"testing"

	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b byte) types.Pubkey {
	var p types.Pubkey
	p[0], p[31] = b, b
	return p
}

func keys(n int) []types.Pubkey {
	out := make([]types.Pubkey, n)
	for i := range out {
		out[i] = key(byte(i + 1))
	}
	return out
}

func ixData(disc uint64, args ...uint64) []byte {
	data := binary.BigEndian.AppendUint64(nil, disc)
	for _, a := range args {
		data = binary.LittleEndian.AppendUint64(data, a)
	}
	return data
}

type tradeEventLayout struct {
	PoolState       types.Pubkey
	TotalBaseSell   uint64
	VirtualBase     uint64
	VirtualQuote    uint64
	RealBaseBefore  uint64
	RealQuoteBefore uint64
	RealBaseAfter   uint64
	RealQuoteAfter  uint64
	AmountIn        uint64
	AmountOut       uint64
	ProtocolFee     uint64
	PlatformFee     uint64
	ShareFee        uint64
	TradeDirection  uint8
	PoolStatus      uint8
}

func TestDecodeTradeInstructions(t *testing.T) {
	accounts := keys(15)

	cases := []struct {
		name    string
		disc    uint64
		dir     core.TradeDirection
		exactIn bool
	}{
		{"buy exact in", BuyExactIn, core.TradeDirectionBuy, true},
		{"buy exact out", BuyExactOut, core.TradeDirectionBuy, false},
		{"sell exact in", SellExactIn, core.TradeDirectionSell, true},
		{"sell exact out", SellExactOut, core.TradeDirectionSell, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			evt := decodeInstruction(ixData(tc.disc, 100, 90, 25), accounts, core.EventMetadata{})
			require.NotNil(t, evt)
			trade := evt.(*core.BonkTradeEvent)

			assert.Equal(t, tc.dir, trade.TradeDirection)
			assert.Equal(t, tc.exactIn, trade.ExactIn)
			assert.Equal(t, uint64(25), trade.ShareFeeRate)
			assert.Equal(t, accounts[4], trade.PoolState)
			assert.Equal(t, accounts[9], trade.BaseMint)
			if tc.exactIn {
				assert.Equal(t, uint64(100), trade.AmountIn)
				assert.Equal(t, uint64(90), trade.MinimumAmountOut)
			} else {
				assert.Equal(t, uint64(100), trade.AmountOut)
				assert.Equal(t, uint64(90), trade.MaximumAmountIn)
			}
		})
	}

	assert.Nil(t, decodeInstruction(ixData(BuyExactIn, 100, 90), accounts, core.EventMetadata{}))
	assert.Nil(t, decodeInstruction(ixData(BuyExactIn, 100, 90, 25), accounts[:10], core.EventMetadata{}))
}

func TestDecodeInitialize(t *testing.T) {
	args, err := borsh.Serialize(struct {
		Decimals          uint8
		Name, Symbol, Uri string
	}{6, "Bonk Cat", "BCAT", "ipfs://cat"})
	require.NoError(t, err)
	data := append(binary.BigEndian.AppendUint64(nil, Initialize), args...)
	// 曲线参数等尾部数据
	data = append(data, 1, 2, 3, 4)

	accounts := keys(18)
	evt := decodeInstruction(data, accounts, core.EventMetadata{}).(*core.BonkPoolCreateEvent)
	assert.Equal(t, uint8(6), evt.Decimals)
	assert.Equal(t, "BCAT", evt.Symbol)
	assert.Equal(t, accounts[1], evt.Creator)
	assert.Equal(t, accounts[5], evt.PoolState)
	assert.Equal(t, accounts[7], evt.QuoteMint)
}

func TestDecodeTradeLog(t *testing.T) {
	payload, err := borsh.Serialize(tradeEventLayout{
		PoolState:      key(9),
		AmountIn:       1_000,
		AmountOut:      42,
		ShareFee:       1,
		TradeDirection: uint8(core.TradeDirectionSell),
		PoolStatus:     1,
	})
	require.NoError(t, err)

	trade := decodeTradeLog(payload, core.EventMetadata{}).(*core.BonkTradeEvent)
	assert.Equal(t, key(9), trade.PoolState)
	assert.Equal(t, uint64(42), trade.AmountOut)
	assert.Equal(t, core.TradeDirectionSell, trade.TradeDirection)
	assert.False(t, trade.ExactIn)

	withExactIn := append(append([]byte{}, payload...), 1)
	assert.True(t, decodeTradeLog(withExactIn, core.EventMetadata{}).(*core.BonkTradeEvent).ExactIn)

	assert.Nil(t, decodeTradeLog(payload[:len(payload)-1], core.EventMetadata{}))
}
