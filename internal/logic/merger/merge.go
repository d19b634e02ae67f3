package merger

import (
	"fmt"

	"dex-event-parser-sol/internal/logic/core"
)

// fill 当 dst 为哨兵（零值）且 src 非零时用 src 回填；dst 已有值则保持不变（日志优先）。
// 数值 0 同时表示"未知"，无法区分链上真实的 0。
// 方向类布尔字段（IsBuy、BaseInput、BaseIn、ZeroForOne、AToB、HasReferral）的 false 是合法取值而非哨兵，各合并函数不对其调用 fill。
func fill[T comparable](dst *T, src T) {
	var zero T
	if *dst == zero && src != zero {
		*dst = src
	}
}

func fillMetadata(dst *core.EventMetadata, src *core.EventMetadata) {
	fill(&dst.Signature, src.Signature)
	fill(&dst.Slot, src.Slot)
	fill(&dst.TxIndex, src.TxIndex)
	fill(&dst.BlockTimeUs, src.BlockTimeUs)
	fill(&dst.RecvUs, src.RecvUs)
	fill(&dst.IxIndex, src.IxIndex)
	fill(&dst.InnerIndex, src.InnerIndex)
}

// as 类型断言失败说明调用方把不同类型的事件送进了合并，属于编程错误
func as[T core.ProtocolEvent](e core.ProtocolEvent) T {
	v, ok := e.(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("merger: mismatched event %T, want %T", e, want))
	}
	return v
}

// Merge 合并同一动作的日志事件与指令事件，返回新事件，不修改入参。
// 以日志事件为基础，仅回填日志中为哨兵值的字段。任一方为 nil 时原样返回另一方。
func Merge(logEvt, ixEvt core.ProtocolEvent) core.ProtocolEvent {
	if logEvt == nil {
		return ixEvt
	}
	if ixEvt == nil {
		return logEvt
	}
	if logEvt.Type() != ixEvt.Type() {
		panic(fmt.Sprintf("merger: cannot merge %s with %s", logEvt.Type(), ixEvt.Type()))
	}

	switch l := logEvt.(type) {
	// PumpFun
	case *core.PumpFunTradeEvent:
		return mergePumpFunTrade(l, as[*core.PumpFunTradeEvent](ixEvt))
	case *core.PumpFunCreateTokenEvent:
		return mergePumpFunCreateToken(l, as[*core.PumpFunCreateTokenEvent](ixEvt))
	case *core.PumpFunCompleteEvent:
		return mergePumpFunComplete(l, as[*core.PumpFunCompleteEvent](ixEvt))
	case *core.PumpFunMigrateEvent:
		return mergePumpFunMigrate(l, as[*core.PumpFunMigrateEvent](ixEvt))

	// PumpSwap
	case *core.PumpSwapBuyEvent:
		return mergePumpSwapBuy(l, as[*core.PumpSwapBuyEvent](ixEvt))
	case *core.PumpSwapSellEvent:
		return mergePumpSwapSell(l, as[*core.PumpSwapSellEvent](ixEvt))
	case *core.PumpSwapCreatePoolEvent:
		return mergePumpSwapCreatePool(l, as[*core.PumpSwapCreatePoolEvent](ixEvt))
	case *core.PumpSwapDepositEvent:
		return mergePumpSwapDeposit(l, as[*core.PumpSwapDepositEvent](ixEvt))
	case *core.PumpSwapWithdrawEvent:
		return mergePumpSwapWithdraw(l, as[*core.PumpSwapWithdrawEvent](ixEvt))

	// Bonk
	case *core.BonkTradeEvent:
		return mergeBonkTrade(l, as[*core.BonkTradeEvent](ixEvt))
	case *core.BonkPoolCreateEvent:
		return mergeBonkPoolCreate(l, as[*core.BonkPoolCreateEvent](ixEvt))

	// Raydium CPMM
	case *core.RaydiumCpmmSwapEvent:
		return mergeRaydiumCpmmSwap(l, as[*core.RaydiumCpmmSwapEvent](ixEvt))
	case *core.RaydiumCpmmDepositEvent:
		return mergeRaydiumCpmmDeposit(l, as[*core.RaydiumCpmmDepositEvent](ixEvt))
	case *core.RaydiumCpmmWithdrawEvent:
		return mergeRaydiumCpmmWithdraw(l, as[*core.RaydiumCpmmWithdrawEvent](ixEvt))
	case *core.RaydiumCpmmInitializeEvent:
		return mergeRaydiumCpmmInitialize(l, as[*core.RaydiumCpmmInitializeEvent](ixEvt))

	// Raydium CLMM
	case *core.RaydiumClmmSwapEvent:
		return mergeRaydiumClmmSwap(l, as[*core.RaydiumClmmSwapEvent](ixEvt))
	case *core.RaydiumClmmCreatePoolEvent:
		return mergeRaydiumClmmCreatePool(l, as[*core.RaydiumClmmCreatePoolEvent](ixEvt))
	case *core.RaydiumClmmIncreaseLiquidityEvent:
		return mergeRaydiumClmmIncreaseLiquidity(l, as[*core.RaydiumClmmIncreaseLiquidityEvent](ixEvt))
	case *core.RaydiumClmmDecreaseLiquidityEvent:
		return mergeRaydiumClmmDecreaseLiquidity(l, as[*core.RaydiumClmmDecreaseLiquidityEvent](ixEvt))

	// Raydium AMM V4
	case *core.RaydiumAmmV4SwapEvent:
		return mergeRaydiumAmmV4Swap(l, as[*core.RaydiumAmmV4SwapEvent](ixEvt))
	case *core.RaydiumAmmV4DepositEvent:
		return mergeRaydiumAmmV4Deposit(l, as[*core.RaydiumAmmV4DepositEvent](ixEvt))
	case *core.RaydiumAmmV4WithdrawEvent:
		return mergeRaydiumAmmV4Withdraw(l, as[*core.RaydiumAmmV4WithdrawEvent](ixEvt))
	case *core.RaydiumAmmV4InitializeEvent:
		return mergeRaydiumAmmV4Initialize(l, as[*core.RaydiumAmmV4InitializeEvent](ixEvt))

	// Orca Whirlpool
	case *core.OrcaWhirlpoolSwapEvent:
		return mergeOrcaWhirlpoolSwap(l, as[*core.OrcaWhirlpoolSwapEvent](ixEvt))
	case *core.OrcaWhirlpoolIncreaseLiquidityEvent:
		return mergeOrcaWhirlpoolIncreaseLiquidity(l, as[*core.OrcaWhirlpoolIncreaseLiquidityEvent](ixEvt))
	case *core.OrcaWhirlpoolDecreaseLiquidityEvent:
		return mergeOrcaWhirlpoolDecreaseLiquidity(l, as[*core.OrcaWhirlpoolDecreaseLiquidityEvent](ixEvt))
	case *core.OrcaWhirlpoolPoolInitializeEvent:
		return mergeOrcaWhirlpoolPoolInitialize(l, as[*core.OrcaWhirlpoolPoolInitializeEvent](ixEvt))

	// Meteora Pools
	case *core.MeteoraPoolsSwapEvent:
		return mergeMeteoraPoolsSwap(l, as[*core.MeteoraPoolsSwapEvent](ixEvt))
	case *core.MeteoraPoolsAddLiquidityEvent:
		return mergeMeteoraPoolsAddLiquidity(l, as[*core.MeteoraPoolsAddLiquidityEvent](ixEvt))
	case *core.MeteoraPoolsRemoveLiquidityEvent:
		return mergeMeteoraPoolsRemoveLiquidity(l, as[*core.MeteoraPoolsRemoveLiquidityEvent](ixEvt))
	case *core.MeteoraPoolsBootstrapLiquidityEvent:
		return mergeMeteoraPoolsBootstrapLiquidity(l, as[*core.MeteoraPoolsBootstrapLiquidityEvent](ixEvt))

	// Meteora DAMM v2
	case *core.MeteoraDammV2SwapEvent:
		return mergeMeteoraDammV2Swap(l, as[*core.MeteoraDammV2SwapEvent](ixEvt))
	case *core.MeteoraDammV2AddLiquidityEvent:
		return mergeMeteoraDammV2AddLiquidity(l, as[*core.MeteoraDammV2AddLiquidityEvent](ixEvt))
	case *core.MeteoraDammV2RemoveLiquidityEvent:
		return mergeMeteoraDammV2RemoveLiquidity(l, as[*core.MeteoraDammV2RemoveLiquidityEvent](ixEvt))
	case *core.MeteoraDammV2InitializePoolEvent:
		return mergeMeteoraDammV2InitializePool(l, as[*core.MeteoraDammV2InitializePoolEvent](ixEvt))
	case *core.MeteoraDammV2ClaimPositionFeeEvent:
		return mergeMeteoraDammV2ClaimPositionFee(l, as[*core.MeteoraDammV2ClaimPositionFeeEvent](ixEvt))
	case *core.MeteoraDammV2FundRewardEvent:
		return mergeMeteoraDammV2FundReward(l, as[*core.MeteoraDammV2FundRewardEvent](ixEvt))
	case *core.MeteoraDammV2ClaimRewardEvent:
		return mergeMeteoraDammV2ClaimReward(l, as[*core.MeteoraDammV2ClaimRewardEvent](ixEvt))
	}

	panic(fmt.Sprintf("merger: unsupported event %T", logEvt))
}
