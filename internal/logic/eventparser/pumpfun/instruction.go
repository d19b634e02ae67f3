package pumpfun

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
	case Buy:
		return decodeTrade(data, accounts, meta, true)
	case Sell:
		return decodeTrade(data, accounts, meta, false)
	case Create:
		return decodeCreate(data, accounts, meta)
	case Migrate:
		return decodeMigrate(data, accounts, meta)
	default:
		return nil
	}
}

// decodeTrade 解析 buy / sell 指令。
//
// 账户布局：
//
//	#0  - Global 配置账户
//	#1  - 手续费账户
//	#2  - Mint
//	#3  - Bonding Curve（池子地址）
//	#4  - Bonding Curve Vault
//	#5  - 用户 Token Account
//	#6  - 用户钱包
//	#7+ - System / Token Program、Creator Vault、Event Authority、Program
//
// 数据：amount u64（token 数量），max_sol_cost / min_sol_output u64
func decodeTrade(data []byte, accounts []types.Pubkey, meta core.EventMetadata, isBuy bool) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 7) {
		return nil
	}
	amount, ok := utils.ReadU64(data, 8)
	if !ok {
		return nil
	}
	limit, ok := utils.ReadU64(data, 16)
	if !ok {
		return nil
	}

	evt := &core.PumpFunTradeEvent{
		EventMetadata:          meta,
		FeeRecipient:           accounts[1],
		Mint:                   accounts[2],
		BondingCurve:           accounts[3],
		AssociatedBondingCurve: accounts[4],
		User:                   accounts[6],
		TokenAmount:            amount,
		IsBuy:                  isBuy,
	}
	if isBuy {
		evt.MaxSolCost = limit
	} else {
		evt.MinSolOutput = limit
	}
	return evt
}

// decodeCreate 解析 create 指令。
//
// 账户布局：
//
//	#0  - Mint（新创建的 Token Mint）
//	#1  - Mint Authority
//	#2  - Bonding Curve
//	#3  - Bonding Curve Vault
//	#4  - Global 配置账户
//	#5  - Metaplex Token Metadata 程序
//	#6  - Metadata 账户
//	#7  - 用户钱包
//
// 数据：name、symbol、uri（borsh String），新版追加 creator Pubkey
func decodeCreate(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 8) {
		return nil
	}
	r := utils.NewReader(data[8:])
	name := r.String()
	symbol := r.String()
	uri := r.String()
	if !r.Ok() {
		return nil
	}

	evt := &core.PumpFunCreateTokenEvent{
		EventMetadata:          meta,
		Name:                   name,
		Symbol:                 symbol,
		Uri:                    uri,
		Mint:                   accounts[0],
		BondingCurve:           accounts[2],
		AssociatedBondingCurve: accounts[3],
		User:                   accounts[7],
	}
	// 旧版指令没有 creator 参数
	if r.Remaining() >= 32 {
		evt.Creator = r.Pubkey()
	}
	return evt
}

// decodeMigrate 解析 migrate 指令（bonding curve 迁移到 PumpSwap）。
//
// 账户布局：
//
//	#0  - Global Config
//	#1  - Withdraw Authority
//	#2  - Base Token Mint
//	#3  - Bonding Curve
//	#4  - Bonding Curve Vault
//	#5  - User
//	#6  - System Program
//	#7  - Token Program
//	#8  - Pump AMM Program
//	#9  - Pool
func decodeMigrate(data []byte, accounts []types.Pubkey, meta core.EventMetadata) core.ProtocolEvent {
	if !common.HasAccounts(accounts, 10) {
		return nil
	}
	return &core.PumpFunMigrateEvent{
		EventMetadata: meta,
		Mint:          accounts[2],
		BondingCurve:  accounts[3],
		User:          accounts[5],
		Pool:          accounts[9],
	}
}
