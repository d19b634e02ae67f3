package config

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/pkg/logger"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置
type KafkaProducerConfig struct {
	Brokers   string `yaml:"brokers"`    // Kafka broker 地址，多个用英文逗号分隔
	BatchSize int    `yaml:"batch_size"` // 批处理大小（单位字节）
	LingerMs  int    `yaml:"linger_ms"`  // 批处理最大延迟（毫秒）

	Topics struct {
		Event string `yaml:"event"` // DEX 事件 topic
	} `yaml:"topics"`

	Partitions struct {
		Event int `yaml:"event"` // event topic 的分区数
	} `yaml:"partitions"`
}

// TimeConfig 表示各种超时配置（单位：毫秒）
type TimeConfig struct {
	SlotDispatchTimeoutMs int `yaml:"slot_dispatch_timeout_ms"` // 每个 slot 的处理最大耗时（Kafka + Redis）
	EventSendTimeoutMs    int `yaml:"event_send_timeout_ms"`    // 单条消息发送到 Kafka 并等待 ack 的超时时间
}

// RpcConfig Solana JSON-RPC 配置，用于空块检测和按签名回放
type RpcConfig struct {
	Endpoint  string `yaml:"endpoint"`
	SlotCheck bool   `yaml:"slot_check"` // 是否开启 slot 缺口检测
}

// ParserConfig 事件解析配置
type ParserConfig struct {
	IncludeEvents []string `yaml:"include_events"` // 为空表示不过滤
	Workers       int      `yaml:"workers"`        // 单个区块内并发解析交易的 worker 数，<=0 使用 CPU 数 + 2
}

// ToEventFilter 将事件名列表转换为过滤器，未知名称返回错误；列表为空时返回 nil（全部保留）
func (c *ParserConfig) ToEventFilter() (*core.EventTypeFilter, error) {
	if len(c.IncludeEvents) == 0 {
		return nil, nil
	}
	kinds := make([]core.EventType, 0, len(c.IncludeEvents))
	for _, name := range c.IncludeEvents {
		t, ok := core.ParseEventType(name)
		if !ok {
			return nil, fmt.Errorf("unknown event type %q in parser.include_events", name)
		}
		kinds = append(kinds, t)
	}
	return core.IncludeOnly(kinds...), nil
}

// GrpcClientConfig yellowstone gRPC 客户端连接相关配置
type GrpcClientConfig struct {
	Endpoint string `yaml:"endpoint"` // gRPC 服务端地址
	XToken   string `yaml:"x_token"`  // x-token 认证

	// 应用级逻辑心跳（ping）配置
	StreamPingIntervalSec int `yaml:"stream_ping_interval_sec"` // 应用层 ping 心跳间隔（秒）

	// gRPC Keepalive 底层连接检测配置
	KeepalivePingIntervalSec int `yaml:"keepalive_ping_interval_sec"` // 底层 keepalive 间隔（秒）
	KeepalivePingTimeoutSec  int `yaml:"keepalive_ping_timeout_sec"`  // 底层 keepalive 超时（秒）

	// gRPC 窗口大小调优（用于大数据流推送）
	InitialWindowSize     int `yaml:"initial_window_size"`      // 单流窗口大小（字节）
	InitialConnWindowSize int `yaml:"initial_conn_window_size"` // 整体连接窗口大小（字节）

	// 消息体大小限制
	MaxCallSendMsgSize int `yaml:"max_call_send_msg_size"` // 单条消息最大发送字节数
	MaxCallRecvMsgSize int `yaml:"max_call_recv_msg_size"` // 单条消息最大接收字节数

	// 超时与重连策略
	ReconnectIntervalSec int `yaml:"reconnect_interval_sec"` // 重连最小间隔（秒）
	ConnectTimeoutSec    int `yaml:"connect_timeout_sec"`    // 连接建立超时（秒）
	SendTimeoutSec       int `yaml:"send_timeout_sec"`       // 发送超时（秒）
	BlockRecvTimeoutSec  int `yaml:"block_recv_timeout_sec"` // 超过该时间未收到 block 触发重连（秒）
	MaxLatencyWarnMs     int `yaml:"max_latency_warn_ms"`    // 延迟告警阈值（毫秒）
}

// GrpcConfig 是主配置结构体，用于驱动 gRPC 事件解析服务
type GrpcConfig struct {
	LogConf           LogConfig           `yaml:"logger"`         // 日志配置
	KafkaProducerConf KafkaProducerConfig `yaml:"kafka_producer"` // Kafka 生产者配置
	TimeConf          TimeConfig          `yaml:"time_conf"`      // 时间相关配置
	RpcConf           RpcConfig           `yaml:"rpc"`            // JSON-RPC 配置
	ParserConf        ParserConfig        `yaml:"parser"`         // 解析配置

	RedisAddr   string `yaml:"redis_addr"`   // Redis 地址
	PostgresDSN string `yaml:"postgres_dsn"` // PostgreSQL 数据源，为空时不落库
	ProgressConf struct {
		RecentThresholdSec int `yaml:"recent_threshold_sec"` // 判定为“近期 block”的时间阈值（秒）
		FlushIntervalSec   int `yaml:"flush_interval_sec"`   // 进度批量落库间隔（秒）
	} `yaml:"progress"`

	Grpc GrpcClientConfig `yaml:"grpc"` // gRPC 订阅配置
}

// Load 读取 YAML 配置文件，支持 ${ENV} 形式的环境变量替换
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), v); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// MustLoad 加载失败直接退出进程，仅用于 main
func MustLoad(path string, v any) {
	if err := Load(path, v); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
