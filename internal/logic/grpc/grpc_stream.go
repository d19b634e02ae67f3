package grpc

import (
	"context"
	"crypto/tls"
	"dex-event-parser-sol/internal/config"
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/svc"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"
)

type GrpcStreamManager struct {
	mu                    sync.Mutex                    // 保护连接状态
	conn                  *grpc.ClientConn              // gRPC 连接对象
	client                pb.GeyserClient               // gRPC 客户端
	stream                pb.Geyser_SubscribeClient     // gRPC 订阅流
	stopped               bool                          // 是否已经停止
	reconnectAttempts     int                           // 已重连次数
	reconnectInterval     time.Duration                 // 重连基础间隔
	xToken                string                        // 认证用的 x-token
	streamPingIntervalSec int                           // Stream 心跳包发送间隔（秒）
	blockChan             chan *pb.SubscribeUpdateBlock // 区块数据通道
	connCtx               context.Context               // 当前连接的 context
	connCancel            context.CancelFunc            // 当前连接的 cancel 函数
	blockRecvTimeout      time.Duration                 // 超时未收到 block 触发重连
	sendTimeout           time.Duration                 // gRPC 发送超时
	latencyWarn           time.Duration                 // block 延迟告警阈值
	logx.Logger
}

func NewGrpcStreamManager(sc *svc.GrpcServiceContext, blockChan chan *pb.SubscribeUpdateBlock) (*GrpcStreamManager, error) {
	conf := sc.Config.Grpc

	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(conf.ConnectTimeoutSec)*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, conf.Endpoint, dialOptions(conf)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect %s: %w", conf.Endpoint, err)
	}

	return &GrpcStreamManager{
		conn:                  conn,
		client:                pb.NewGeyserClient(conn),
		reconnectInterval:     time.Duration(max(conf.ReconnectIntervalSec, 1)) * time.Second,
		xToken:                conf.XToken,
		streamPingIntervalSec: max(conf.StreamPingIntervalSec, 1),
		blockChan:             blockChan,
		blockRecvTimeout:      time.Duration(max(conf.BlockRecvTimeoutSec, 5)) * time.Second,
		sendTimeout:           time.Duration(max(conf.SendTimeoutSec, 1)) * time.Second,
		latencyWarn:           time.Duration(conf.MaxLatencyWarnMs) * time.Millisecond,
		Logger:                logx.WithContext(context.Background()).WithFields(logx.Field("service", "grpc_stream")),
	}, nil
}

func dialOptions(conf config.GrpcClientConfig) []grpc.DialOption {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{InsecureSkipVerify: true})),
		grpc.WithBlock(),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                time.Duration(conf.KeepalivePingIntervalSec) * time.Second,
			Timeout:             time.Duration(conf.KeepalivePingTimeoutSec) * time.Second,
			PermitWithoutStream: true,
		}),
	}
	// 0 表示沿用 grpc 默认值
	if conf.InitialWindowSize > 0 {
		opts = append(opts, grpc.WithInitialWindowSize(int32(conf.InitialWindowSize)))
	}
	if conf.InitialConnWindowSize > 0 {
		opts = append(opts, grpc.WithInitialConnWindowSize(int32(conf.InitialConnWindowSize)))
	}
	var callOpts []grpc.CallOption
	if conf.MaxCallSendMsgSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallSendMsgSize(conf.MaxCallSendMsgSize))
	}
	if conf.MaxCallRecvMsgSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallRecvMsgSize(conf.MaxCallRecvMsgSize))
	}
	if len(callOpts) > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(callOpts...))
	}
	return opts
}

func (m *GrpcStreamManager) Start() {
	m.mustConnect()
}

func (m *GrpcStreamManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopped = true
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
	}
}

func (m *GrpcStreamManager) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// reconnectDelay 第 attempt 次重连前的等待，按 2 倍递增，最多 8 倍基础间隔
func reconnectDelay(attempt int, base time.Duration) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return base << min(attempt-1, 3)
}

// mustConnect 循环重试直到连接成功或被停止
func (m *GrpcStreamManager) mustConnect() {
	for !m.isStopped() {
		time.Sleep(reconnectDelay(m.reconnectAttempts, m.reconnectInterval))
		m.reconnectAttempts++
		m.Infof("connecting, attempt %d", m.reconnectAttempts)
		if err := m.connect(); err != nil {
			m.Errorf("connect failed: %v, will retry", err)
			continue
		}
		return
	}
}

// buildSubscribeRequest 只订阅涉及已支持 DEX 程序的区块交易
func buildSubscribeRequest() *pb.SubscribeRequest {
	blocks := make(map[string]*pb.SubscribeRequestFilterBlocks)
	blocks["blocks"] = &pb.SubscribeRequestFilterBlocks{
		AccountInclude:      consts.GrpcAccountInclude,
		IncludeTransactions: boolPtr(true),
		IncludeAccounts:     boolPtr(false),
		IncludeEntries:      boolPtr(false),
	}
	commitment := pb.CommitmentLevel_CONFIRMED
	return &pb.SubscribeRequest{
		Blocks:     blocks,
		Commitment: &commitment,
	}
}

// connect 只尝试一次连接
func (m *GrpcStreamManager) connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return errors.New("manager is stopped")
	}

	// 先关闭旧连接的 goroutine
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	m.connCtx, m.connCancel = context.WithCancel(context.Background())

	metaCtx := metadata.NewOutgoingContext(
		m.connCtx,
		metadata.New(map[string]string{"x-token": m.xToken}),
	)
	stream, err := m.client.Subscribe(metaCtx)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	req := buildSubscribeRequest()
	if err := sendWithTimeout(m.connCtx, stream.Send, req, m.sendTimeout); err != nil {
		return fmt.Errorf("send subscribe request: %w", err)
	}

	m.stream = stream
	m.reconnectAttempts = 0
	m.Infof("subscription established, programs=%d", len(consts.GrpcAccountInclude))

	go m.pingLoop(m.connCtx, stream)
	go m.blockRecvLoop(m.connCtx, stream)
	return nil
}

func (m *GrpcStreamManager) blockRecvLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	last := time.Now()
	for {
		if ctx.Err() != nil {
			return
		}

		update, err := stream.Recv()
		now := time.Now()
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.Infof("stream closed by server (EOF), will reconnect")
				m.reconnect()
				return
			}
			if ctx.Err() != nil {
				return
			}
			m.Errorf("stream error: %v", err)
			if m.reconnectIfBlockTimeout(last) {
				return
			}
			time.Sleep(100 * time.Millisecond)
			continue
		}

		switch u := update.GetUpdateOneof().(type) {
		case *pb.SubscribeUpdate_Block:
			m.pushBlock(ctx, u.Block, now)
			last = now
		case *pb.SubscribeUpdate_Pong:
			m.Debugf("pong id=%d", u.Pong.GetId())
		case *pb.SubscribeUpdate_Ping:
			// 服务端保活，无需回应
		}

		if m.reconnectIfBlockTimeout(last) {
			return
		}
	}
}

// pushBlock 将 block 写入处理通道，通道已满时阻塞等待（连接关闭时放弃）
func (m *GrpcStreamManager) pushBlock(ctx context.Context, block *pb.SubscribeUpdateBlock, now time.Time) {
	if block.BlockTime != nil {
		latency := now.Sub(time.Unix(block.BlockTime.Timestamp, 0))
		if m.latencyWarn > 0 && latency > m.latencyWarn {
			m.Infof("block %d latency %v exceeds %v, size=%d bytes, txs=%d",
				block.Slot, latency, m.latencyWarn, proto.Size(block), len(block.Transactions))
		}
	}

	select {
	case m.blockChan <- block:
	default:
		m.Infof("blockChan is full (len=%d), waiting, slot=%d", len(m.blockChan), block.Slot)
		select {
		case m.blockChan <- block:
		case <-ctx.Done():
		}
	}
}

// 带超时的 Send
func sendWithTimeout[T any](ctx context.Context, sendFunc func(T) error, req T, timeout time.Duration) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sendFunc(req)
	}()

	select {
	case <-timeoutCtx.Done():
		return timeoutCtx.Err()
	case err := <-done:
		return err
	}
}

// pingLoop 应用层心跳，id 递增便于与 pong 对应；失败只记录日志，重连由 blockRecvLoop 负责
func (m *GrpcStreamManager) pingLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	ticker := time.NewTicker(time.Duration(m.streamPingIntervalSec) * time.Second)
	defer ticker.Stop()

	var id int32
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			id++
			req := &pb.SubscribeRequest{Ping: &pb.SubscribeRequestPing{Id: id}}
			if err := sendWithTimeout(ctx, stream.Send, req, m.sendTimeout); err != nil {
				m.Errorf("ping %d failed: %v", id, err)
			}
		}
	}
}

func (m *GrpcStreamManager) reconnectIfBlockTimeout(last time.Time) bool {
	if time.Since(last) > m.blockRecvTimeout {
		m.Errorf("no block received in %v, reconnecting", m.blockRecvTimeout)
		m.reconnect()
		return true
	}
	return false
}

func (m *GrpcStreamManager) reconnect() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	m.mu.Unlock()

	go m.mustConnect()
}

func boolPtr(b bool) *bool {
	return &b
}
