package raydiumv4

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/eventparser/common"
	"dex-event-parser-sol/internal/types"
	"dex-event-parser-sol/internal/utils"
)

// decodeInstruction RaydiumV4 非 Anchor 程序，判别符为首字节
func decodeInstruction(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case SwapBaseIn:
		return decodeSwap(data, accounts, meta, true)
	case SwapBaseOut:
		return decodeSwap(data, accounts, meta, false)
	case Deposit:
		return decodeDeposit(data, accounts, meta)
	case Withdraw:
		return decodeWithdraw(data, accounts, meta)
	case Initialize2:
		return decodeInitialize2(data, accounts, meta)
	default:
		return nil
	}
}

// Swap 指令账户布局（18 个账户时，17 个账户缺少 #4 target orders，后续下标整体前移）：
//
//	 0. SPL Token Program
//	 1. AMM 主账户（池子地址）
//	 2. 权限 PDA
//	 3. AMM open_orders
//	 4. AMM target orders（可选）
//	 5. 池子 coin vault
//	 6. 池子 pc vault
//	 7~14. Serum 市场相关账户
//	15. 用户 source token 账户
//	16. 用户 destination token 账户
//	17. 用户钱包
func decodeSwap(data []byte, accounts []types.Pubkey, meta core.EventMetadata, baseIn bool) core.ProtocolEvent {
	// 超过 18 个账户的布局未知，无法定位字段
	if !common.HasAccounts(accounts, 17) || len(accounts) > 18 {
		return nil
	}
	off := len(accounts) - 17
	a, ok1 := utils.ReadU64(data, 1)
	b, ok2 := utils.ReadU64(data, 9)
	if !ok1 || !ok2 {
		return nil
	}

	evt := &core.RaydiumAmmV4SwapEvent{
		EventMetadata:          meta,
		Amm:                    accounts[1],
		PoolCoinTokenAccount:   accounts[4+off],
		PoolPcTokenAccount:     accounts[5+off],
		UserSourceTokenAccount: accounts[14+off],
		UserDestTokenAccount:   accounts[15+off],
		UserSourceOwner:        accounts[16+off],
		BaseIn:                 baseIn,
	}
	if baseIn {
		evt.AmountIn, evt.MinimumAmountOut = a, b
	} else {
		evt.MaxAmountIn, evt.AmountOut = a, b
	}
	return evt
}

// Deposit 账户：#1 AMM，#5 LP Mint，#12 用户钱包
// 数据：max_coin_amount u64, max_pc_amount u64, base_side u64
func decodeDeposit(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 13) {
		return nil
	}
	r := utils.NewReader(data[1:])
	evt := &core.RaydiumAmmV4DepositEvent{
		EventMetadata: meta,
		Amm:           accounts[1],
		LpMint:        accounts[5],
		UserOwner:     accounts[12],
		MaxCoinAmount: r.U64(),
		MaxPcAmount:   r.U64(),
		BaseSide:      r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}

// Withdraw 账户：#1 AMM，#5 LP Mint，#16 用户钱包
// 数据：amount u64
func decodeWithdraw(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 17) {
		return nil
	}
	amount, ok := utils.ReadU64(data, 1)
	if !ok {
		return nil
	}
	return &core.RaydiumAmmV4WithdrawEvent{
		EventMetadata: meta,
		Amm:           accounts[1],
		LpMint:        accounts[5],
		UserOwner:     accounts[16],
		WithdrawLp:    amount,
	}
}

// Initialize2 账户布局：
//
//	 4. AMM 主账户
//	 7. LP Mint
//	 8. Coin Mint
//	 9. Pc Mint
//	10. Pool Coin Vault
//	11. Pool Pc Vault
//	16. Serum Market
//	17. 用户钱包
//
// 数据：nonce u8, open_time u64, init_pc_amount u64, init_coin_amount u64
func decodeInitialize2(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 18) {
		return nil
	}
	r := utils.NewReader(data[1:])
	evt := &core.RaydiumAmmV4InitializeEvent{
		EventMetadata:  meta,
		Amm:            accounts[4],
		LpMint:         accounts[7],
		CoinMint:       accounts[8],
		PcMint:         accounts[9],
		PoolCoinVault:  accounts[10],
		PoolPcVault:    accounts[11],
		Market:         accounts[16],
		UserWallet:     accounts[17],
		Nonce:          r.U8(),
		OpenTime:       r.U64(),
		InitPcAmount:   r.U64(),
		InitCoinAmount: r.U64(),
	}
	if !r.Ok() {
		return nil
	}
	return evt
}
