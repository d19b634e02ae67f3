package eventparser

import (
	"encoding/base64"
	"encoding/binary"
	"math/rand"
	"testing"

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
	"dex-event-parser-sol/internal/types"
	"github.com/stretchr/testify/require"
)

// 随机数据只有极小概率命中判别符，这里把已知指令判别符作为前缀混入
var instructionDiscs = []uint64{
	pumpfun.Create, pumpfun.Buy, pumpfun.Sell, pumpfun.Migrate,
	pumpswap.CreatePool, pumpswap.Deposit, pumpswap.Withdraw,
	bonk.BuyExactIn, bonk.BuyExactOut, bonk.SellExactIn, bonk.SellExactOut, bonk.Initialize,
	raydiumcpmm.SwapBaseInput, raydiumcpmm.SwapBaseOutput,
	raydiumclmm.Swap, raydiumclmm.SwapV2, raydiumclmm.CreatePool,
	raydiumclmm.IncreaseLiquidity, raydiumclmm.IncreaseLiquidityV2,
	raydiumclmm.DecreaseLiquidity, raydiumclmm.DecreaseLiquidityV2,
	orcawhirlpool.InitializePool, orcawhirlpool.InitializePoolV2,
	meteorapools.AddBalanceLiquidity, meteorapools.RemoveBalanceLiquidity, meteorapools.BootstrapLiquidity,
	meteoradammv2.AddLiquidity, meteoradammv2.RemoveLiquidity, meteoradammv2.ClaimPositionFee,
	meteoradammv2.FundReward, meteoradammv2.ClaimReward,
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func randomInstruction(rng *rand.Rand) []byte {
	data := randomBytes(rng, rng.Intn(257))
	if len(data) >= 8 && rng.Intn(2) == 0 {
		binary.BigEndian.PutUint64(data, instructionDiscs[rng.Intn(len(instructionDiscs))])
	}
	// RaydiumV4 单字节判别符
	if len(data) > 0 && rng.Intn(4) == 0 {
		data[0] = byte(rng.Intn(12))
	}
	return data
}

func TestFuzzInstructionDecoders(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	r := NewRegistry()

	for _, p := range r.Protocols() {
		for i := 0; i < 2_000; i++ {
			data := randomInstruction(rng)
			accounts := keys(rng.Intn(11))
			require.NotPanics(t, func() {
				evt := r.DecodeInstruction(p.ProgramID, data, accounts, core.EventMetadata{})
				if evt != nil {
					require.Equal(t, p.Dex, evt.Type().Dex())
				}
			}, "program=%s data=%x accounts=%d", p.ProgramIDStr, data, len(accounts))
		}
	}
}

func TestFuzzLogDecoders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NewRegistry()

	for _, p := range r.Protocols() {
		handlers := append(append([]common.LogHandler(nil), p.ProgramData...), p.RayLog...)
		for _, h := range handlers {
			for i := 0; i < 500; i++ {
				payload := randomBytes(rng, rng.Intn(257))
				require.NotPanics(t, func() {
					evt := h.Decode(payload, core.EventMetadata{})
					if evt != nil {
						require.Contains(t, h.Kinds, evt.Type())
					}
				}, "program=%s disc=%x payload=%x", p.ProgramIDStr, h.Discriminator, payload)
			}
		}
	}
}

func TestFuzzLogLines(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	discs := make([]uint64, 0, len(defaultRegistry.programData))
	for d := range defaultRegistry.programData {
		discs = append(discs, d)
	}

	for i := 0; i < 5_000; i++ {
		payload := randomBytes(rng, rng.Intn(257))
		var line string
		switch rng.Intn(3) {
		case 0:
			if len(payload) >= 8 {
				binary.BigEndian.PutUint64(payload, discs[rng.Intn(len(discs))])
			}
			line = programDataPrefix + base64.StdEncoding.EncodeToString(payload)
		case 1:
			if len(payload) > 0 {
				payload[0] = byte(rng.Intn(5))
			}
			line = rayLogPrefix + base64.StdEncoding.EncodeToString(payload)
		default:
			line = string(payload)
		}
		require.NotPanics(t, func() {
			DecodeLogLine(line, types.Signature{}, 1, nil)
		}, "line=%q", line)
	}
}
