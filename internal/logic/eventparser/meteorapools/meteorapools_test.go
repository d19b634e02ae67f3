package meteorapools

import (
	"encoding/binary"
	"testing"

	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
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

func u64s(args ...uint64) []byte {
	return ixData(0, args...)[8:]
}

func TestDecodeSwap(t *testing.T) {
	accounts := keys(15)
	evt := decodeInstruction(ixData(Swap, 1_000, 950), accounts, core.EventMetadata{})
	require.NotNil(t, evt)
	swap := evt.(*core.MeteoraPoolsSwapEvent)
	assert.Equal(t, accounts[0], swap.Pool)
	assert.Equal(t, accounts[11], swap.ProtocolTokenFee)
	assert.Equal(t, accounts[12], swap.User)
	assert.Equal(t, uint64(950), swap.MinimumOutAmount)

	assert.Nil(t, decodeInstruction(ixData(Swap, 1_000, 950), accounts[:12], core.EventMetadata{}))
	assert.Nil(t, decodeInstruction(ixData(Swap, 1_000), accounts, core.EventMetadata{}))
}

func TestDecodeLiquidityInstructions(t *testing.T) {
	accounts := keys(16)

	add := decodeInstruction(ixData(AddBalanceLiquidity, 10, 20, 30), accounts, core.EventMetadata{}).(*core.MeteoraPoolsAddLiquidityEvent)
	assert.Equal(t, accounts[13], add.User)
	assert.Equal(t, uint64(30), add.MaximumTokenBAmount)

	remove := decodeInstruction(ixData(RemoveBalanceLiquidity, 10, 1, 2), accounts, core.EventMetadata{}).(*core.MeteoraPoolsRemoveLiquidityEvent)
	assert.Equal(t, accounts[1], remove.LpMint)
	assert.Equal(t, uint64(1), remove.MinimumTokenAAmount)

	boot := decodeInstruction(ixData(BootstrapLiquidity, 5, 6), accounts, core.EventMetadata{}).(*core.MeteoraPoolsBootstrapLiquidityEvent)
	assert.Equal(t, uint64(6), boot.TokenBAmount)
}

func TestDecodeLogs(t *testing.T) {
	swap := decodeSwapLog(u64s(100, 98, 1, 2, 3), core.EventMetadata{}).(*core.MeteoraPoolsSwapEvent)
	assert.Equal(t, uint64(98), swap.OutAmount)
	assert.Equal(t, uint64(3), swap.HostFee)
	assert.True(t, swap.Pool.IsZero())
	assert.Nil(t, decodeSwapLog(u64s(100, 98, 1, 2), core.EventMetadata{}))

	pool := key(7)
	boot := decodeBootstrapLiquidityLog(append(u64s(1, 2, 3), pool[:]...), core.EventMetadata{}).(*core.MeteoraPoolsBootstrapLiquidityEvent)
	assert.Equal(t, pool, boot.Pool)
	assert.Equal(t, uint64(1), boot.LpMintAmount)
	assert.Nil(t, decodeBootstrapLiquidityLog(u64s(1, 2, 3), core.EventMetadata{}))

	remove := decodeRemoveLiquidityLog(u64s(9, 8, 7), core.EventMetadata{}).(*core.MeteoraPoolsRemoveLiquidityEvent)
	assert.Equal(t, uint64(7), remove.TokenBOutAmount)
}
