package raydiumclmm

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
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    types.Uint128
	IsBaseInput          bool
}

type decreaseLiquidityLayout struct {
	PositionNftMint types.Pubkey
	Liquidity       types.Uint128
	DecreaseAmount0 uint64
	DecreaseAmount1 uint64
	FeeAmount0      uint64
	FeeAmount1      uint64
	RewardAmounts   [3]uint64
	TransferFee0    uint64
	TransferFee1    uint64
}

func TestDecodeSwapInstruction(t *testing.T) {
	args := swapArgs{Amount: 1_000, OtherAmountThreshold: 900, SqrtPriceLimitX64: types.Uint128{Lo: 5, Hi: 1}, IsBaseInput: true}
	accounts := keys(13)

	v1 := decodeInstruction(withDisc(t, Swap, args), accounts, core.EventMetadata{}).(*core.RaydiumClmmSwapEvent)
	assert.Equal(t, uint64(1_000), v1.Amount)
	assert.Equal(t, uint64(900), v1.OtherAmountThreshold)
	assert.Equal(t, types.Uint128{Lo: 5, Hi: 1}, v1.SqrtPriceLimitX64)
	assert.True(t, v1.IsBaseInput)
	assert.Equal(t, accounts[2], v1.PoolState)
	assert.True(t, v1.InputVaultMint.IsZero())

	v2 := decodeInstruction(withDisc(t, SwapV2, args), accounts, core.EventMetadata{}).(*core.RaydiumClmmSwapEvent)
	assert.Equal(t, accounts[11], v2.InputVaultMint)
	assert.Equal(t, accounts[12], v2.OutputVaultMint)

	// is_base_input 缺失
	truncated := withDisc(t, Swap, args)
	assert.Nil(t, decodeInstruction(truncated[:len(truncated)-1], accounts, core.EventMetadata{}))
	assert.Nil(t, decodeInstruction(withDisc(t, Swap, args), accounts[:6], core.EventMetadata{}))
}

func TestDecodeLiquidityInstructions(t *testing.T) {
	accounts := keys(15)
	args := struct {
		Liquidity  types.Uint128
		Amount0    uint64
		Amount1    uint64
	}{types.Uint128{Lo: 77}, 10, 20}

	inc := decodeInstruction(withDisc(t, IncreaseLiquidityV2, args), accounts, core.EventMetadata{}).(*core.RaydiumClmmIncreaseLiquidityEvent)
	assert.Equal(t, uint64(77), inc.Liquidity.Lo)
	assert.Equal(t, uint64(20), inc.Amount1Max)
	assert.Equal(t, accounts[2], inc.PoolState)

	dec := decodeInstruction(withDisc(t, DecreaseLiquidity, args), accounts, core.EventMetadata{}).(*core.RaydiumClmmDecreaseLiquidityEvent)
	assert.Equal(t, uint64(10), dec.Amount0Min)
	assert.Equal(t, accounts[3], dec.PoolState)
	assert.Equal(t, accounts[2], dec.PersonalPosition)
}

func TestDecodeDecreaseLiquidityLog(t *testing.T) {
	payload, err := borsh.Serialize(decreaseLiquidityLayout{
		PositionNftMint: key(1),
		Liquidity:       types.Uint128{Lo: 500},
		DecreaseAmount0: 10,
		DecreaseAmount1: 20,
		RewardAmounts:   [3]uint64{1, 2, 3},
		TransferFee1:    4,
	})
	require.NoError(t, err)

	dec := decodeDecreaseLiquidityLog(payload, core.EventMetadata{}).(*core.RaydiumClmmDecreaseLiquidityEvent)
	assert.Equal(t, [3]uint64{1, 2, 3}, dec.RewardAmounts)
	assert.Equal(t, uint64(4), dec.TransferFee1)
	assert.Equal(t, uint64(20), dec.DecreaseAmount1)

	assert.Nil(t, decodeDecreaseLiquidityLog(payload[:len(payload)-8], core.EventMetadata{}))
}

func TestDecodeSwapLog(t *testing.T) {
	payload, err := borsh.Serialize(struct {
		PoolState, Sender, TokenAccount0, TokenAccount1 types.Pubkey
		Amount0, TransferFee0, Amount1, TransferFee1    uint64
		ZeroForOne                                      bool
		SqrtPriceX64, Liquidity                         types.Uint128
		Tick                                            int32
	}{
		PoolState: key(1), Sender: key(2),
		Amount0: 100, Amount1: 95,
		ZeroForOne: true,
		Liquidity:  types.Uint128{Lo: 9},
		Tick:       -12,
	})
	require.NoError(t, err)

	swap := decodeSwapLog(payload, core.EventMetadata{}).(*core.RaydiumClmmSwapEvent)
	assert.Equal(t, key(1), swap.PoolState)
	assert.Equal(t, uint64(95), swap.Amount1)
	assert.True(t, swap.ZeroForOne)
	assert.Equal(t, int32(-12), swap.Tick)
	assert.Nil(t, decodeSwapLog(payload[:len(payload)-4], core.EventMetadata{}))
}
