package consts

import "dex-event-parser-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr          = "11111111111111111111111111111111"
	TokenProgramStr           = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TokenProgram2022Str       = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
	ComputeBudgetProgramIdStr = "ComputeBudget111111111111111111111111111111"

	WSOLMintStr = "So11111111111111111111111111111111111111112"

	// DEX: PumpFun
	PumpFunProgramStr  = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
	PumpSwapProgramStr = "pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA"

	// DEX: Raydium
	RaydiumV4ProgramStr   = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	RaydiumCLMMProgramStr = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"
	RaydiumCPMMProgramStr = "CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C"

	// DEX: Bonk（Raydium Launchpad）
	BonkProgramStr = "LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj"

	// DEX: Orca
	OrcaWhirlpoolProgramStr = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"

	// DEX: Meteora
	MeteoraDammV2ProgramStr = "cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG"
	MeteoraPoolsProgramStr  = "Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB"
)

// 公钥形式的地址常量（types.Pubkey），热路径上直接做 [32]byte 比对
var (
	SystemProgram    = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram     = types.PubkeyFromBase58(TokenProgramStr)
	TokenProgram2022 = types.PubkeyFromBase58(TokenProgram2022Str)
	WSOLMint         = types.PubkeyFromBase58(WSOLMintStr)

	PumpFunProgram       = types.PubkeyFromBase58(PumpFunProgramStr)
	PumpSwapProgram      = types.PubkeyFromBase58(PumpSwapProgramStr)
	RaydiumV4Program     = types.PubkeyFromBase58(RaydiumV4ProgramStr)
	RaydiumCLMMProgram   = types.PubkeyFromBase58(RaydiumCLMMProgramStr)
	RaydiumCPMMProgram   = types.PubkeyFromBase58(RaydiumCPMMProgramStr)
	BonkProgram          = types.PubkeyFromBase58(BonkProgramStr)
	OrcaWhirlpoolProgram = types.PubkeyFromBase58(OrcaWhirlpoolProgramStr)
	MeteoraDammV2Program = types.PubkeyFromBase58(MeteoraDammV2ProgramStr)
	MeteoraPoolsProgram  = types.PubkeyFromBase58(MeteoraPoolsProgramStr)
)

// InvalidAddress 全 0xFF 哨兵地址，日志扫描时标记未注册程序的调用帧
var InvalidAddress = types.Pubkey{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}
