package consts

// Dex 编号按协议上线先后排列，与分发顺序无关
const (
	DexRaydiumV4     = iota + 1 // 1
	DexRaydiumCLMM              // 2
	DexPumpSwap                 // 3
	DexPumpfun                  // 4
	DexRaydiumCPMM              // 5
	DexOrcaWhirlpool            // 6
	DexMeteoraDammV2            // 7
	DexMeteoraPools             // 8
	DexBonk                     // 9
)

var DexNames = []string{
	"Unknown",       // 0 (保留)
	"RaydiumV4",     // 1
	"RaydiumCLMM",   // 2
	"PumpSwap",      // 3
	"Pumpfun",       // 4
	"RaydiumCPMM",   // 5
	"OrcaWhirlpool", // 6
	"MeteoraDammV2", // 7
	"MeteoraPools",  // 8
	"Bonk",          // 9
}

func DexName(dex int) string {
	if dex >= 1 && dex < len(DexNames) {
		return DexNames[dex]
	}
	return DexNames[0] // Unknown
}
