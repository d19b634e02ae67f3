package orcawhirlpool

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

type swapArgs struct {
	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimit         types.Uint128
	AmountSpecifiedIsInput bool
	AToB                   bool
}

type liquidityArgs struct {
	Liquidity   types.Uint128
	TokenLimitA uint64
	TokenLimitB uint64
}

func TestDecodeSwapV1AndV2(t *testing.T) {
	args := swapArgs{Amount: 10, OtherAmountThreshold: 9, AmountSpecifiedIsInput: true, AToB: true}
	accounts := keys(11)

	v1 := decodeInstruction(withDisc(t, Swap, args), accounts, core.EventMetadata{}).(*core.OrcaWhirlpoolSwapEvent)
	assert.Equal(t, accounts[2], v1.Whirlpool)
	assert.Equal(t, accounts[6], v1.TokenVaultB)
	assert.True(t, v1.AToB)
	assert.True(t, v1.AmountSpecifiedIsInput)
	assert.True(t, v1.TokenMintA.IsZero())

	v2 := decodeInstruction(withDisc(t, SwapV2, args), accounts, core.EventMetadata{}).(*core.OrcaWhirlpoolSwapEvent)
	assert.Equal(t, accounts[4], v2.Whirlpool)
	assert.Equal(t, accounts[5], v2.TokenMintA)
	assert.Equal(t, accounts[10], v2.TokenVaultB)
	assert.Equal(t, uint64(9), v2.OtherAmountThreshold)

	assert.Nil(t, decodeInstruction(withDisc(t, SwapV2, args), accounts[:10], core.EventMetadata{}))
}

func TestDecodeLiquidityInstructions(t *testing.T) {
	args := liquidityArgs{Liquidity: types.Uint128{Lo: 3}, TokenLimitA: 100, TokenLimitB: 200}
	accounts := keys(9)

	inc := decodeInstruction(withDisc(t, IncreaseLiquidity, args), accounts, core.EventMetadata{}).(*core.OrcaWhirlpoolIncreaseLiquidityEvent)
	assert.Equal(t, accounts[3], inc.Position)
	assert.Equal(t, uint64(200), inc.TokenLimitB)

	dec := decodeInstruction(withDisc(t, DecreaseLiquidityV2, args), accounts, core.EventMetadata{}).(*core.OrcaWhirlpoolDecreaseLiquidityEvent)
	assert.Equal(t, accounts[5], dec.Position)
	assert.Equal(t, accounts[8], dec.TokenMintB)
	assert.Equal(t, core.EventOrcaWhirlpoolDecreaseLiquidity, dec.Type())
}

func TestDecodeInitializePool(t *testing.T) {
	v1 := withDisc(t, InitializePool, struct {
		Bump        uint8
		TickSpacing uint16
		Sqrt        types.Uint128
	}{255, 64, types.Uint128{Hi: 1}})
	evt := decodeInstruction(v1, keys(8), core.EventMetadata{}).(*core.OrcaWhirlpoolPoolInitializeEvent)
	assert.Equal(t, uint8(255), evt.Bump)
	assert.Equal(t, uint16(64), evt.TickSpacing)
	assert.Equal(t, key(5), evt.Whirlpool)

	v2 := withDisc(t, InitializePoolV2, struct {
		TickSpacing uint16
		Sqrt        types.Uint128
	}{8, types.Uint128{Lo: 1}})
	evt = decodeInstruction(v2, keys(10), core.EventMetadata{}).(*core.OrcaWhirlpoolPoolInitializeEvent)
	assert.Equal(t, key(6), evt.Funder)
	assert.Equal(t, key(7), evt.Whirlpool)
}

func TestDecodeTradedLog(t *testing.T) {
	payload, err := borsh.Serialize(struct {
		Whirlpool                                        types.Pubkey
		AToB                                             bool
		PreSqrtPrice, PostSqrtPrice                      types.Uint128
		InputAmount, OutputAmount                        uint64
		InputTransferFee, OutputTransferFee, LpFee, Fee2 uint64
	}{Whirlpool: key(1), InputAmount: 50, OutputAmount: 40, LpFee: 1, Fee2: 2})
	require.NoError(t, err)

	evt := decodeTradedLog(payload, core.EventMetadata{}).(*core.OrcaWhirlpoolSwapEvent)
	assert.Equal(t, key(1), evt.Whirlpool)
	assert.False(t, evt.AToB)
	assert.Equal(t, uint64(40), evt.OutputAmount)
	assert.Equal(t, uint64(2), evt.ProtocolFee)
	assert.Nil(t, decodeTradedLog(payload[:len(payload)-1], core.EventMetadata{}))
}

func TestDecodeLiquidityLog(t *testing.T) {
	payload, err := borsh.Serialize(struct {
		Whirlpool, Position          types.Pubkey
		TickLower, TickUpper         int32
		Liquidity                    types.Uint128
		AmountA, AmountB, FeeA, FeeB uint64
	}{key(1), key(2), -100, 100, types.Uint128{Lo: 7}, 11, 12, 0, 1})
	require.NoError(t, err)

	inc := decodeLiquidityIncreasedLog(payload, core.EventMetadata{}).(*core.OrcaWhirlpoolIncreaseLiquidityEvent)
	assert.Equal(t, int32(-100), inc.TickLowerIndex)
	assert.Equal(t, uint64(12), inc.TokenBAmount)
	assert.Equal(t, uint64(1), inc.TokenBTransferFee)

	dec := decodeLiquidityDecreasedLog(payload, core.EventMetadata{}).(*core.OrcaWhirlpoolDecreaseLiquidityEvent)
	assert.Equal(t, key(2), dec.Position)
}
