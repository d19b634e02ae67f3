package consts

import "runtime"

// ChainIDSolana 写入 EventBatch 与 Kafka 消息 key 的链标识
const ChainIDSolana uint32 = 100000

// DefaultParseWorkers parser.workers 未配置时，单个区块内并发解析交易的 worker 数
var DefaultParseWorkers = runtime.NumCPU() + 2
