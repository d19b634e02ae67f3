package progress

// SlotStatus 表示 slot 的处理状态（统一 Redis 与 DB 编码）
type SlotStatus int

const (
	SlotUnknown   SlotStatus = 0 // Redis 不存在
	SlotProcessed SlotStatus = 1 // 已解析并投递
	SlotInvalid   SlotStatus = 2 // 结构错误、跳过
	SlotPending   SlotStatus = 3 // 处理中（仅 Redis 用）
)

// Source 表示 slot 的来源模块
const (
	SourceUnknown int16 = 0
	SourceGrpc    int16 = 1
	SourceRpc     int16 = 2
)

func SourceName(src int16) string {
	switch src {
	case SourceGrpc:
		return "grpc"
	case SourceRpc:
		return "rpc"
	default:
		return "unknown"
	}
}

// SlotRecord 表示一条待写入 DB 的 slot 记录
type SlotRecord struct {
	Slot       uint64     // Solana slot
	Source     int16      // 来源：1=grpc, 2=rpc
	BlockTime  int64      // Unix timestamp（秒）
	Status     SlotStatus // 处理状态：1=已处理，2=无效
	EventCount int        // 该 slot 解析出的事件数
}
