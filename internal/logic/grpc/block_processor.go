package grpc

import (
	"context"
	"dex-event-parser-sol/internal/consts"
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/logic/dispatcher"
	"dex-event-parser-sol/internal/logic/eventparser"
	"dex-event-parser-sol/internal/logic/progress"
	"dex-event-parser-sol/internal/logic/txadapter"
	"dex-event-parser-sol/internal/mq"
	"dex-event-parser-sol/internal/svc"
	"dex-event-parser-sol/internal/utils"
	"errors"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultSlotDispatchTimeout = 3 * time.Second
	defaultEventSendTimeout    = 2 * time.Second
)

type BlockProcessor struct {
	sc          *svc.GrpcServiceContext
	blockChan   chan *pb.SubscribeUpdateBlock // 接收 block 的 channel
	slotChecker *SlotChecker                  // 可为 nil
	workers     int
	lastSlot    uint64
	ctx         context.Context
	cancel      func(err error)
	logx.Logger
}

// ParsedTxResult 单笔交易的解析结果
type ParsedTxResult struct {
	TxIndex uint32
	Events  []core.ProtocolEvent
	Err     error // 适配失败时非空
}

// BlockResult 单个区块的解析结果，事件按交易顺序排列
type BlockResult struct {
	TotalTxs  int
	ValidTxs  int
	FailedTxs int
	Events    []core.ProtocolEvent
}

func NewBlockProcessor(sc *svc.GrpcServiceContext, blockChan chan *pb.SubscribeUpdateBlock, slotChecker *SlotChecker) *BlockProcessor {
	ctx, cancel := context.WithCancelCause(context.Background())
	workers := sc.Config.ParserConf.Workers
	if workers <= 0 {
		workers = consts.DefaultParseWorkers
	}
	return &BlockProcessor{
		sc:          sc,
		blockChan:   blockChan,
		slotChecker: slotChecker,
		workers:     workers,
		Logger:      logx.WithContext(ctx).WithFields(logx.Field("service", "block_processor")),
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (p *BlockProcessor) Start() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case block := <-p.blockChan:
			p.procBlock(block)
			if len(p.blockChan) > 10 {
				p.Debugf("block chan len:%v", len(p.blockChan))
			}
		}
	}
}

func (p *BlockProcessor) Stop() {
	p.cancel(errors.New("service stop"))
}

func (p *BlockProcessor) procBlock(block *pb.SubscribeUpdateBlock) {
	startTime := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.Errorf("procBlock panic, slot=%d: %v", block.Slot, r)
		}
	}()

	p.checkSlotGap(block.Slot)

	txCtx := buildTxContext(block)
	blockTime := int64(0)
	if txCtx.BlockTime != nil {
		blockTime = *txCtx.BlockTime
	}

	// 1. 判重（重连、回放时旧 block 可能重复推送）
	should, err := p.sc.ProgressManager.ShouldProcessSlot(p.ctx, block.Slot, blockTime)
	if err != nil {
		p.Errorf("ShouldProcessSlot failed, slot=%d: %v", block.Slot, err)
	} else if !should {
		p.Infof("slot %d already processed, skipped", block.Slot)
		return
	}

	// 2. 并发解析
	parseStart := time.Now()
	result := ExtractBlockEvents(p.sc.Parser, txCtx, block.Transactions, p.workers)
	parseCost := time.Since(parseStart)

	// 3. 构建并发送 Kafka 消息
	header := dispatcher.SlotHeader{Slot: block.Slot, Source: progress.SourceGrpc, BlockTime: txCtx.BlockTime}
	jobs, stats, err := dispatcher.BuildAllKafkaJobs(header, result.Events, p.sc.Config.KafkaProducerConf)
	if err != nil {
		p.Errorf("BuildAllKafkaJobs failed, slot=%d: %v", block.Slot, err)
		p.markSlot(block.Slot, blockTime, progress.SlotInvalid, 0)
		return
	}
	if failed := p.sendJobs(jobs); len(failed) > 0 {
		for _, f := range failed {
			p.Errorf("kafka send failed, slot=%d, partition=%d, events=%d: %v",
				block.Slot, f.Job.Partition, f.Job.Events, f.Err)
		}
		// 不标记进度，重连后可再次处理
		return
	}

	// 4. 记录进度
	p.markSlot(block.Slot, blockTime, progress.SlotProcessed, stats.Events)

	p.Infof("slot=%d txs=%d valid=%d failed=%d events=%d trades=%d pools=%d jobs=%d parse=%v total=%v",
		block.Slot, result.TotalTxs, result.ValidTxs, result.FailedTxs, stats.Events, stats.Trades, stats.Pools,
		len(jobs), parseCost, time.Since(startTime))
}

func (p *BlockProcessor) sendJobs(jobs []*mq.KafkaJob) []mq.KafkaSendResult {
	if len(jobs) == 0 {
		return nil
	}
	timeConf := p.sc.Config.TimeConf
	slotTimeout := defaultSlotDispatchTimeout
	if timeConf.SlotDispatchTimeoutMs > 0 {
		slotTimeout = time.Duration(timeConf.SlotDispatchTimeoutMs) * time.Millisecond
	}
	sendTimeout := defaultEventSendTimeout
	if timeConf.EventSendTimeoutMs > 0 {
		sendTimeout = time.Duration(timeConf.EventSendTimeoutMs) * time.Millisecond
	}

	ctx, cancel := context.WithTimeout(p.ctx, slotTimeout)
	defer cancel()
	_, failed := mq.SendKafkaJobs(ctx, p.sc.Producer, jobs, sendTimeout)
	return failed
}

func (p *BlockProcessor) markSlot(slot uint64, blockTime int64, status progress.SlotStatus, events int) {
	err := p.sc.ProgressManager.MarkSlotStatus(p.ctx, &progress.SlotRecord{
		Slot:       slot,
		Source:     progress.SourceGrpc,
		BlockTime:  blockTime,
		Status:     status,
		EventCount: events,
	})
	if err != nil {
		p.Errorf("MarkSlotStatus failed, slot=%d: %v", slot, err)
	}
}

// checkSlotGap 发现 slot 跳跃时交给 SlotChecker 延迟核对
func (p *BlockProcessor) checkSlotGap(slot uint64) {
	last := p.lastSlot
	if slot > last {
		p.lastSlot = slot
	}
	if p.slotChecker == nil || last == 0 || slot <= last+1 {
		return
	}
	p.slotChecker.Submit(last+1, slot-1)
}

// ExtractBlockEvents 过滤无效交易后并发解析，结果保持区块内交易顺序。
func ExtractBlockEvents(
	parser *eventparser.Parser,
	txCtx *core.TxContext,
	txs []*pb.SubscribeUpdateTransactionInfo,
	workers int,
) BlockResult {
	validTxs := make([]*pb.SubscribeUpdateTransactionInfo, 0, len(txs))
	for _, tx := range txs {
		if txadapter.ValidateGrpcTx(tx) == nil {
			validTxs = append(validTxs, tx)
		}
	}

	results := utils.ParallelMap(validTxs, workers, func(tx *pb.SubscribeUpdateTransactionInfo) ParsedTxResult {
		return parseTx(parser, txCtx, tx)
	})

	out := BlockResult{TotalTxs: len(txs), ValidTxs: len(validTxs)}
	total := 0
	for _, r := range results {
		total += len(r.Events)
	}
	out.Events = make([]core.ProtocolEvent, 0, total)
	for _, r := range results {
		if r.Err != nil {
			out.FailedTxs++
			logx.Errorf("AdaptGrpcTx failed, slot=%d, txIndex=%d: %v", txCtx.Slot, r.TxIndex, r.Err)
			continue
		}
		out.Events = append(out.Events, r.Events...)
	}
	return out
}

func parseTx(parser *eventparser.Parser, txCtx *core.TxContext, tx *pb.SubscribeUpdateTransactionInfo) ParsedTxResult {
	adaptedTx, err := txadapter.AdaptGrpcTx(txCtx, tx)
	if err != nil {
		return ParsedTxResult{TxIndex: uint32(tx.Index), Err: err}
	}
	return ParsedTxResult{
		TxIndex: adaptedTx.TxIndex,
		Events:  parser.CollectEventsFromTx(adaptedTx),
	}
}

func buildTxContext(block *pb.SubscribeUpdateBlock) *core.TxContext {
	txCtx := &core.TxContext{
		Slot:       block.Slot,
		ParentSlot: block.ParentSlot,
		RecvUs:     core.NowMicros(),
	}
	if block.BlockTime != nil {
		ts := block.BlockTime.Timestamp
		txCtx.BlockTime = &ts
	}
	return txCtx
}
