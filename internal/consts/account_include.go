package consts

// GrpcAccountInclude 用于 gRPC 区块订阅过滤器：只推送涉及已支持 DEX 程序的交易
var GrpcAccountInclude = []string{
	PumpFunProgramStr,
	PumpSwapProgramStr,
	RaydiumV4ProgramStr,
	RaydiumCLMMProgramStr,
	RaydiumCPMMProgramStr,
	OrcaWhirlpoolProgramStr,
	MeteoraDammV2ProgramStr,
	BonkProgramStr,
	MeteoraPoolsProgramStr,
}
