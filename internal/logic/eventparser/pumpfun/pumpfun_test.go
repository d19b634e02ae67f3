package pumpfun

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

func withDisc(t *testing.T, disc uint64, body any) []byte {
	t.Helper()
	raw, err := borsh.Serialize(body)
	require.NoError(t, err)
	return append(binary.BigEndian.AppendUint64(nil, disc), raw...)
}

type tradeLogV1 struct {
	Mint                 types.Pubkey
	SolAmount            uint64
	TokenAmount          uint64
	IsBuy                bool
	User                 types.Pubkey
	Timestamp            int64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
}

type tradeLogV2 struct {
	V1                    tradeLogV1
	FeeRecipient          types.Pubkey
	FeeBasisPoints        uint64
	Fee                   uint64
	Creator               types.Pubkey
	CreatorFeeBasisPoints uint64
	CreatorFee            uint64
}

func TestDecodeBuyInstruction(t *testing.T) {
	accounts := keys(12)
	data := binary.BigEndian.AppendUint64(nil, Buy)
	data = binary.LittleEndian.AppendUint64(data, 1_000_000)
	data = binary.LittleEndian.AppendUint64(data, 5_000)

	evt := decodeInstruction(data, accounts, core.EventMetadata{Slot: 7})
	require.NotNil(t, evt)
	trade, ok := evt.(*core.PumpFunTradeEvent)
	require.True(t, ok)

	assert.Equal(t, core.EventPumpFunTrade, trade.Type())
	assert.True(t, trade.IsBuy)
	assert.Equal(t, uint64(1_000_000), trade.TokenAmount)
	assert.Equal(t, uint64(5_000), trade.MaxSolCost)
	assert.Zero(t, trade.MinSolOutput)
	assert.Equal(t, accounts[2], trade.Mint)
	assert.Equal(t, accounts[3], trade.BondingCurve)
	assert.Equal(t, accounts[6], trade.User)
	assert.Equal(t, uint64(7), trade.Slot)
	// 成交 SOL 只能来自日志
	assert.Zero(t, trade.SolAmount)
}

func TestDecodeSellInstruction(t *testing.T) {
	data := binary.BigEndian.AppendUint64(nil, Sell)
	data = binary.LittleEndian.AppendUint64(data, 42)
	data = binary.LittleEndian.AppendUint64(data, 9)

	trade := decodeInstruction(data, keys(7), core.EventMetadata{}).(*core.PumpFunTradeEvent)
	assert.False(t, trade.IsBuy)
	assert.Equal(t, uint64(9), trade.MinSolOutput)
	assert.Zero(t, trade.MaxSolCost)
}

func TestDecodeInstructionRejectsMalformed(t *testing.T) {
	full := binary.BigEndian.AppendUint64(nil, Buy)
	full = binary.LittleEndian.AppendUint64(full, 1)
	full = binary.LittleEndian.AppendUint64(full, 2)

	assert.Nil(t, decodeInstruction(nil, keys(12), core.EventMetadata{}))
	assert.Nil(t, decodeInstruction(full[:7], keys(12), core.EventMetadata{}))
	assert.Nil(t, decodeInstruction(full[:23], keys(12), core.EventMetadata{}))
	assert.Nil(t, decodeInstruction(full, keys(6), core.EventMetadata{}))

	unknown := binary.BigEndian.AppendUint64(nil, 0x0102030405060708)
	assert.Nil(t, decodeInstruction(unknown, keys(12), core.EventMetadata{}))
}

func TestDecodeCreateInstruction(t *testing.T) {
	args := struct {
		Name    string
		Symbol  string
		Uri     string
		Creator types.Pubkey
	}{"Doge", "DOGE", "https://example.com/doge.json", key(0xAA)}
	accounts := keys(14)

	evt := decodeInstruction(withDisc(t, Create, args), accounts, core.EventMetadata{})
	require.NotNil(t, evt)
	create := evt.(*core.PumpFunCreateTokenEvent)
	assert.Equal(t, "Doge", create.Name)
	assert.Equal(t, "DOGE", create.Symbol)
	assert.Equal(t, args.Uri, create.Uri)
	assert.Equal(t, key(0xAA), create.Creator)
	assert.Equal(t, accounts[0], create.Mint)
	assert.Equal(t, accounts[7], create.User)
}

func TestDecodeTradeLog(t *testing.T) {
	v1 := tradeLogV1{
		Mint:                 key(1),
		SolAmount:            300,
		TokenAmount:          400,
		IsBuy:                true,
		User:                 key(2),
		Timestamp:            1_700_000_000,
		VirtualSolReserves:   10,
		VirtualTokenReserves: 20,
		RealSolReserves:      30,
		RealTokenReserves:    40,
	}

	t.Run("legacy layout", func(t *testing.T) {
		payload, err := borsh.Serialize(v1)
		require.NoError(t, err)

		trade := decodeTradeLog(payload, core.EventMetadata{}).(*core.PumpFunTradeEvent)
		assert.Equal(t, key(1), trade.Mint)
		assert.Equal(t, uint64(300), trade.SolAmount)
		assert.Equal(t, uint64(400), trade.TokenAmount)
		assert.True(t, trade.IsBuy)
		assert.Equal(t, int64(1_700_000_000), trade.Timestamp)
		assert.Equal(t, uint64(40), trade.RealTokenReserves)
		assert.True(t, trade.FeeRecipient.IsZero())
		assert.Zero(t, trade.Fee)
	})

	t.Run("with fee fields", func(t *testing.T) {
		payload, err := borsh.Serialize(tradeLogV2{
			V1:                    v1,
			FeeRecipient:          key(3),
			FeeBasisPoints:        95,
			Fee:                   3,
			Creator:               key(4),
			CreatorFeeBasisPoints: 5,
			CreatorFee:            1,
		})
		require.NoError(t, err)

		trade := decodeTradeLog(payload, core.EventMetadata{}).(*core.PumpFunTradeEvent)
		assert.Equal(t, key(3), trade.FeeRecipient)
		assert.Equal(t, uint64(95), trade.FeeBasisPoints)
		assert.Equal(t, key(4), trade.Creator)
		assert.Equal(t, uint64(1), trade.CreatorFee)
	})

	t.Run("truncated", func(t *testing.T) {
		payload, err := borsh.Serialize(v1)
		require.NoError(t, err)
		assert.Nil(t, decodeTradeLog(payload[:len(payload)-1], core.EventMetadata{}))
	})
}

func TestDecodeCreateAndMigrateLog(t *testing.T) {
	create, err := borsh.Serialize(struct {
		Name, Symbol, Uri        string
		Mint, BondingCurve, User types.Pubkey
	}{"A", "B", "C", key(1), key(2), key(3)})
	require.NoError(t, err)

	evt := decodeCreateLog(create, core.EventMetadata{}).(*core.PumpFunCreateTokenEvent)
	assert.Equal(t, "A", evt.Name)
	assert.Equal(t, key(3), evt.User)
	assert.True(t, evt.Creator.IsZero())
	assert.Nil(t, decodeCreateLog(create[:20], core.EventMetadata{}))

	migrate, err := borsh.Serialize(struct {
		User, Mint                              types.Pubkey
		MintAmount, SolAmount, PoolMigrationFee uint64
		BondingCurve                            types.Pubkey
		Timestamp                               int64
		Pool                                    types.Pubkey
	}{key(1), key(2), 100, 200, 3, key(4), 99, key(5)})
	require.NoError(t, err)

	m := decodeMigrateLog(migrate, core.EventMetadata{}).(*core.PumpFunMigrateEvent)
	assert.Equal(t, key(5), m.Pool)
	assert.Equal(t, uint64(200), m.SolAmount)
	assert.Equal(t, uint64(3), m.PoolMigrationFee)
}
