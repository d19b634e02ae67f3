package svc

import (
	"context"
	"dex-event-parser-sol/internal/config"
	"dex-event-parser-sol/internal/logic/eventparser"
	"dex-event-parser-sol/internal/logic/progress"
	"dex-event-parser-sol/internal/mq"
	"dex-event-parser-sol/internal/pkg/logger"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"
)

// GrpcServiceContext 包含 gRPC 事件解析服务的共享资源
type GrpcServiceContext struct {
	Config          config.GrpcConfig
	Parser          *eventparser.Parser
	Producer        *kafka.Producer
	Redis           *redis.Client
	ProgressDB      *progress.DBProgressStore // 未配置 postgres_dsn 时为 nil
	ProgressManager *progress.ProgressManager
}

// NewGrpcServiceContext 按配置初始化解析器、Kafka、Redis 与可选的 PostgreSQL
func NewGrpcServiceContext(c config.GrpcConfig) (*GrpcServiceContext, error) {
	// 1. 解析器（事件白名单）
	filter, err := c.ParserConf.ToEventFilter()
	if err != nil {
		return nil, err
	}
	sc := &GrpcServiceContext{
		Config: c,
		Parser: eventparser.NewParser(filter),
	}

	// 2. Kafka 生产者
	sc.Producer, err = mq.NewKafkaProducer(c.KafkaProducerConf)
	if err != nil {
		logger.Errorf("Kafka producer 初始化失败: %v", err)
		return nil, err
	}

	// 3. Redis（slot 状态判重）
	sc.Redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sc.Redis.Ping(pingCtx).Err(); err != nil {
		sc.Close()
		return nil, fmt.Errorf("redis ping %s failed: %w", c.RedisAddr, err)
	}

	// 4. PostgreSQL（可选，slot 进度持久化）
	var records progress.RecordStore
	if c.PostgresDSN != "" {
		sc.ProgressDB, err = progress.NewDBProgressStore(pingCtx, c.PostgresDSN)
		if err != nil {
			sc.Close()
			return nil, err
		}
		records = sc.ProgressDB
	}

	// 5. 进度管理器，“近期 block”阈值默认 60 秒
	threshold := c.ProgressConf.RecentThresholdSec
	if threshold <= 0 {
		threshold = 60
	}
	sc.ProgressManager = progress.NewProgressManager(progress.NewRedisProgressStore(sc.Redis), records, threshold)

	logger.Infof("gRPC 服务上下文初始化完成, include_events=%v", c.ParserConf.IncludeEvents)
	return sc, nil
}

// Close 关闭服务上下文中的资源
func (sc *GrpcServiceContext) Close() {
	if sc.Producer != nil {
		sc.Producer.Flush(3000)
		sc.Producer.Close()
	}
	if sc.Redis != nil {
		_ = sc.Redis.Close()
	}
	if sc.ProgressDB != nil {
		sc.ProgressDB.Close()
	}
}
