package raydiumcpmm

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/types"
	"dex-event-parser-sol/internal/utils"
)

func decodeInstruction(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	disc, ok := common.Discriminator8(data)
	if !ok {
		return nil
	}
	switch disc {
	case SwapBaseInput:
		return decodeSwap(data, accounts, meta, true)
	case SwapBaseOutput:
		return decodeSwap(data, accounts, meta, false)
	case Deposit:
		return decodeLiquidity(data, accounts, meta, true)
	case Withdraw:
		return decodeLiquidity(data, accounts, meta, false)
	case Initialize:
		return decodeInitialize(data, accounts, meta)
	default:
		return nil
	}
}

// decodeSwap 账户布局：
//
//	#0  - Payer
//	#1  - Authority
//	#2  - Amm Config
//	#3  - Pool State
//	#4  - Input Token Account
//	#5  - Output Token Account
//	#6  - Input Vault
//	#7  - Output Vault
//	#8  - Input Token Program
//	#9  - Output Token Program
//	#10 - Input Token Mint
//	#11 - Output Token Mint
//	#12 - Observation State
//
// 数据：base_input 为 (amount_in, minimum_amount_out)，base_output 为 (max_amount_in, amount_out)
func decodeSwap(data []byte, accounts []types.Pubkey, meta core.EventMetadata, baseInput bool) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 12) {
		return nil
	}
	a, ok1 := utils.ReadU64(data, 8)
	b, ok2 := utils.ReadU64(data, 16)
	if !ok1 || !ok2 {
		return nil
	}

	evt := &core.RaydiumCpmmSwapEvent{
		EventMetadata:      meta,
		Payer:              accounts[0],
		AmmConfig:          accounts[2],
		PoolState:          accounts[3],
		InputTokenAccount:  accounts[4],
		OutputTokenAccount: accounts[5],
		InputVault:         accounts[6],
		OutputVault:        accounts[7],
		InputTokenMint:     accounts[10],
		OutputTokenMint:    accounts[11],
		BaseInput:          baseInput,
	}
	if baseInput {
		evt.InputAmount = a
		evt.MinimumAmountOut = b
	} else {
		evt.MaxAmountIn = a
		evt.OutputAmount = b
	}
	return evt
}

// decodeLiquidity deposit / withdraw 账户布局相同：
//
//	#0  - Owner
//	#1  - Authority
//	#2  - Pool State
//	#3  - Owner LP Token Account
//	#4  - Token 0 Account
//	#5  - Token 1 Account
//	#6  - Token 0 Vault
//	#7  - Token 1 Vault
//	#8  - Token Program
//	#9  - Token Program 2022
//	#10 - Vault 0 Mint
//	#11 - Vault 1 Mint
//	#12 - LP Mint
//	#13 - Memo Program（仅 withdraw）
//
// 数据：lp_token_amount, token_0 限额, token_1 限额
func decodeLiquidity(data []byte, accounts []types.Pubkey, meta core.EventMetadata, deposit bool) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 13) {
		return nil
	}
	r := utils.NewReader(data[8:])
	liq := core.RaydiumCpmmLiquidity{
		Owner:             accounts[0],
		PoolState:         accounts[2],
		Token0Mint:        accounts[10],
		Token1Mint:        accounts[11],
		LpMint:            accounts[12],
		LpTokenAmount:     r.U64(),
		Token0AmountLimit: r.U64(),
		Token1AmountLimit: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	if deposit {
		return &core.RaydiumCpmmDepositEvent{EventMetadata: meta, RaydiumCpmmLiquidity: liq}
	}
	return &core.RaydiumCpmmWithdrawEvent{EventMetadata: meta, RaydiumCpmmLiquidity: liq}
}

// decodeInitialize 账户布局：
//
//	#0 - Creator
//	#1 - Amm Config
//	#2 - Authority
//	#3 - Pool State
//	#4 - Token 0 Mint
//	#5 - Token 1 Mint
//	#6 - LP Mint
//
// 数据：init_amount_0, init_amount_1, open_time
func decodeInitialize(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 7) {
		return nil
	}
	r := utils.NewReader(data[8:])
	evt := &core.RaydiumCpmmInitializeEvent{
		EventMetadata: meta,
		Creator:       accounts[0],
		AmmConfig:     accounts[1],
		PoolState:     accounts[3],
		Token0Mint:    accounts[4],
		Token1Mint:    accounts[5],
		LpMint:        accounts[6],
		InitAmount0:   r.U64(),
		InitAmount1:   r.U64(),
		OpenTime:      r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
